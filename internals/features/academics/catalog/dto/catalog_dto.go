// file: internals/features/academics/catalog/dto/catalog_dto.go
package dto

import (
	"strings"

	"paperbank_backend/internals/features/academics/catalog/model"
)

/* =========================================================
   1) REQUEST DTO
========================================================= */

type CreateBranchRequest struct {
	Name string `json:"name" validate:"required"`
}

func (r *CreateBranchRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

// Number pointer supaya "tidak dikirim" bisa dibedakan dari 0.
type CreateSemesterRequest struct {
	Number *int `json:"number" validate:"required,min=1,max=8"`
}

type CreateSubjectRequest struct {
	Name       string `json:"name" validate:"required"`
	SemesterID int    `json:"semester_id" validate:"required"`
	BranchID   *int   `json:"branch_id" validate:"omitempty"`
}

func (r *CreateSubjectRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	// branch_id 0 dari form lama artinya "semua branch"
	if r.BranchID != nil && *r.BranchID == 0 {
		r.BranchID = nil
	}
}

func (r *CreateSubjectRequest) ToModel() model.SubjectModel {
	return model.SubjectModel{
		SubjectName:       r.Name,
		SubjectSemesterID: r.SemesterID,
		SubjectBranchID:   r.BranchID,
	}
}

/* =========================================================
   2) RESPONSE DTO — key JSON mengikuti kontrak API lama
========================================================= */

type BranchResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func FromBranchModel(m model.BranchModel) BranchResponse {
	return BranchResponse{ID: m.BranchID, Name: m.BranchName}
}

type SemesterResponse struct {
	ID     int `json:"id"`
	Number int `json:"number"`
}

func FromSemesterModel(m model.SemesterModel) SemesterResponse {
	return SemesterResponse{ID: m.SemesterID, Number: m.SemesterNumber}
}

// Listing publik: satu baris per nama mapel (id = MIN(subject_id)).
// semester_id null kalau listing sudah difilter per semester.
type SubjectResponse struct {
	ID         int    `gorm:"column:id" json:"id"`
	Name       string `gorm:"column:name" json:"name"`
	SemesterID *int   `gorm:"column:semester_id" json:"semester_id"`
}

// Listing admin: masih memperlihatkan scope branch per baris.
type AdminSubjectResponse struct {
	ID         int    `gorm:"column:id" json:"id"`
	Name       string `gorm:"column:name" json:"name"`
	SemesterID int    `gorm:"column:semester_id" json:"semester_id"`
	BranchID   *int   `gorm:"column:branch_id" json:"branch_id"`
}
