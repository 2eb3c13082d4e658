// file: internals/features/academics/catalog/model/branch_model.go
package model

type BranchModel struct {
	// PK
	BranchID int `gorm:"primaryKey;autoIncrement;column:branch_id" json:"branch_id"`

	// Identitas
	BranchName string `gorm:"type:text;not null;uniqueIndex:uq_branches_name;column:branch_name" json:"branch_name"`
}

func (BranchModel) TableName() string { return "branches" }
