// file: internals/features/academics/papers/dto/paper_dto.go
package dto

import (
	"mime/multipart"
	"regexp"
	"strings"
	"time"
)

// Format tahun akademik, contoh "2023-24".
var YearPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

/* =========================================================
   1) REQUEST DTO — upload via multipart/form-data
========================================================= */

type UploadPaperRequest struct {
	BranchID     int
	SemesterID   int
	SubjectID    int
	AcademicYear string
	Description  string
	File         *multipart.FileHeader
}

func (r *UploadPaperRequest) Normalize() {
	r.AcademicYear = strings.TrimSpace(r.AcademicYear)
	r.Description = strings.TrimSpace(r.Description)
}

// HasRequired: semua field wajib terisi (deskripsi opsional).
func (r *UploadPaperRequest) HasRequired() bool {
	return r.BranchID > 0 && r.SemesterID > 0 && r.SubjectID > 0 &&
		r.AcademicYear != "" && r.File != nil
}

// IsPDF: nama file harus berakhiran .pdf (validasi konten di luar scope).
func (r *UploadPaperRequest) IsPDF() bool {
	return r.File != nil && r.File.Filename != "" &&
		strings.HasSuffix(strings.ToLower(r.File.Filename), ".pdf")
}

/* =========================================================
   2) RESPONSE DTO
========================================================= */

// PaperRow: hasil join papers × branches × semesters × subjects.
type PaperRow struct {
	ID           int       `gorm:"column:id"`
	AcademicYear string    `gorm:"column:academic_year"`
	FilePath     string    `gorm:"column:file_path"`
	UploadDate   time.Time `gorm:"column:upload_date"`
	Description  *string   `gorm:"column:description"`
	BranchName   string    `gorm:"column:branch_name"`
	SemesterNum  int       `gorm:"column:semester_num"`
	SubjectName  string    `gorm:"column:subject_name"`
}

type PaperResponse struct {
	ID           int    `json:"id"`
	AcademicYear string `json:"academic_year"`
	FilePath     string `json:"file_path"`
	UploadDate   string `json:"upload_date"`
	Description  string `json:"description"`
	BranchName   string `json:"branch_name"`
	SemesterNum  int    `json:"semester_num"`
	SubjectName  string `json:"subject_name"`
}

func FromPaperRow(r PaperRow) PaperResponse {
	desc := ""
	if r.Description != nil {
		desc = *r.Description
	}
	return PaperResponse{
		ID:           r.ID,
		AcademicYear: r.AcademicYear,
		FilePath:     r.FilePath,
		UploadDate:   r.UploadDate.Format("2006-01-02 15:04:05"),
		Description:  desc,
		BranchName:   r.BranchName,
		SemesterNum:  r.SemesterNum,
		SubjectName:  r.SubjectName,
	}
}

func FromPaperRows(rows []PaperRow) []PaperResponse {
	out := make([]PaperResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromPaperRow(r))
	}
	return out
}
