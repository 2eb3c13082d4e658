// file: internals/features/academics/catalog/model/semester_model.go
package model

type SemesterModel struct {
	// PK
	SemesterID int `gorm:"primaryKey;autoIncrement;column:semester_id" json:"semester_id"`

	// 1..8 (divalidasi di DTO)
	SemesterNumber int `gorm:"not null;uniqueIndex:uq_semesters_number;column:semester_number" json:"semester_number"`
}

func (SemesterModel) TableName() string { return "semesters" }
