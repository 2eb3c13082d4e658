// file: internals/features/academics/papers/model/question_paper_model.go
package model

import "time"

type QuestionPaperModel struct {
	// PK
	QuestionPaperID int `gorm:"primaryKey;autoIncrement;column:question_paper_id" json:"question_paper_id"`

	// FK
	QuestionPaperBranchID   int `gorm:"not null;index;column:question_paper_branch_id" json:"question_paper_branch_id"`
	QuestionPaperSemesterID int `gorm:"not null;index;column:question_paper_semester_id" json:"question_paper_semester_id"`
	QuestionPaperSubjectID  int `gorm:"not null;index;column:question_paper_subject_id" json:"question_paper_subject_id"`

	// Atribut
	QuestionPaperAcademicYear string    `gorm:"type:text;not null;column:question_paper_academic_year" json:"question_paper_academic_year"`
	QuestionPaperFilePath     string    `gorm:"type:text;not null;column:question_paper_file_path" json:"question_paper_file_path"`
	QuestionPaperUploadDate   time.Time `gorm:"not null;autoCreateTime;column:question_paper_upload_date" json:"question_paper_upload_date"`
	QuestionPaperDescription  *string   `gorm:"type:text;column:question_paper_description" json:"question_paper_description,omitempty"`
}

func (QuestionPaperModel) TableName() string { return "question_papers" }
