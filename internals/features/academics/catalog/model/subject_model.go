// file: internals/features/academics/catalog/model/subject_model.go
package model

type SubjectModel struct {
	// PK
	SubjectID int `gorm:"primaryKey;autoIncrement;column:subject_id" json:"subject_id"`

	// Identitas logis = (name, semester). Baris boleh ganda per branch:
	// branch_id NULL artinya mapel umum untuk semua branch.
	SubjectName       string `gorm:"type:text;not null;uniqueIndex:uq_subjects_name_semester_branch;column:subject_name" json:"subject_name"`
	SubjectSemesterID int    `gorm:"not null;uniqueIndex:uq_subjects_name_semester_branch;column:subject_semester_id" json:"subject_semester_id"`
	SubjectBranchID   *int   `gorm:"uniqueIndex:uq_subjects_name_semester_branch;column:subject_branch_id" json:"subject_branch_id,omitempty"`
}

func (SubjectModel) TableName() string { return "subjects" }
