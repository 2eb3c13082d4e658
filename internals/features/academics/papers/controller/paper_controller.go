// file: internals/features/academics/papers/controller/paper_controller.go
package controller

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "paperbank_backend/internals/databases"
	catalogModel "paperbank_backend/internals/features/academics/catalog/model"
	"paperbank_backend/internals/features/academics/papers/dto"
	"paperbank_backend/internals/features/academics/papers/model"
	helper "paperbank_backend/internals/helpers"
)

// Tahun demo supaya dropdown UI tidak kosong sebelum ada upload.
var fallbackYears = []string{"2024-25", "2023-24", "2022-23", "2021-22"}

type PaperController struct {
	DB     *gorm.DB
	PDFDir string
}

func NewPaperController(db *gorm.DB, pdfDir string) *PaperController {
	return &PaperController{DB: db, PDFDir: pdfDir}
}

/* ===============================
   LISTING PUBLIK
   GET /api/years
   GET /api/papers?branch_id=&semester_id=&subject_id=&year=
   =============================== */

func (ctl *PaperController) ListYears(c *fiber.Ctx) error {
	years := make([]string, 0)
	if err := ctl.DB.WithContext(c.Context()).
		Model(&model.QuestionPaperModel{}).
		Distinct("question_paper_academic_year").
		Order("question_paper_academic_year DESC").
		Pluck("question_paper_academic_year", &years).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if len(years) == 0 {
		years = fallbackYears
	}
	return helper.JsonData(c, years)
}

// ListPapers butuh keempat filter; kurang satu saja hasilnya kosong.
// subject_id dilebarkan ke semua baris mapel dengan nama sama di
// semester itu (baris umum + per-branch dianggap satu mapel).
func (ctl *PaperController) ListPapers(c *fiber.Ctx) error {
	branchID := c.QueryInt("branch_id", 0)
	semesterID := c.QueryInt("semester_id", 0)
	subjectID := c.QueryInt("subject_id", 0)
	year := c.Query("year")

	if branchID <= 0 || semesterID <= 0 || subjectID <= 0 || year == "" {
		return helper.JsonData(c, []dto.PaperResponse{})
	}

	db := ctl.DB.WithContext(c.Context())

	var subjectIDs []int
	if err := db.Model(&catalogModel.SubjectModel{}).
		Where("subject_name = (?) AND subject_semester_id = ?",
			db.Model(&catalogModel.SubjectModel{}).
				Select("subject_name").
				Where("subject_id = ?", subjectID),
			semesterID).
		Pluck("subject_id", &subjectIDs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if len(subjectIDs) == 0 {
		return helper.JsonData(c, []dto.PaperResponse{})
	}

	rows := make([]dto.PaperRow, 0)
	if err := ctl.joinedPapers(db).
		Where("question_papers.question_paper_branch_id = ?", branchID).
		Where("question_papers.question_paper_semester_id = ?", semesterID).
		Where("question_papers.question_paper_subject_id IN ?", subjectIDs).
		Where("question_papers.question_paper_academic_year = ?", year).
		Scan(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonData(c, dto.FromPaperRows(rows))
}

// GET /api/papers/download/:id
func (ctl *PaperController) DownloadPaper(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Paper not found")
	}

	var paper model.QuestionPaperModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&paper, "question_paper_id = ?", id).Error; err != nil {
		if database.IsNotFound(err) {
			return fiber.NewError(fiber.StatusNotFound, "Paper not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	path := filepath.Join(ctl.PDFDir, paper.QuestionPaperFilePath)
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return fiber.NewError(fiber.StatusNotFound, "File not found")
	}
	return c.Download(path, filepath.Base(paper.QuestionPaperFilePath))
}

/* ===============================
   ADMIN
   GET    /api/admin/papers
   POST   /api/admin/papers (multipart)
   DELETE /api/admin/papers/:id
   =============================== */

func (ctl *PaperController) ListAdminPapers(c *fiber.Ctx) error {
	rows := make([]dto.PaperRow, 0)
	if err := ctl.joinedPapers(ctl.DB.WithContext(c.Context())).
		Scan(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonData(c, dto.FromPaperRows(rows))
}

func (ctl *PaperController) UploadPaper(c *fiber.Ctx) error {
	req := dto.UploadPaperRequest{
		BranchID:     formInt(c, "branch_id"),
		SemesterID:   formInt(c, "semester_id"),
		SubjectID:    formInt(c, "subject_id"),
		AcademicYear: c.FormValue("academic_year"),
		Description:  c.FormValue("description"),
	}
	if file, err := c.FormFile("file"); err == nil {
		req.File = file
	}
	req.Normalize()

	if !req.HasRequired() {
		return fiber.NewError(fiber.StatusBadRequest, "Branch, semester, subject, year and file required")
	}
	if !dto.YearPattern.MatchString(req.AcademicYear) {
		return fiber.NewError(fiber.StatusBadRequest, "Year must be format 2023-24")
	}
	if !req.IsPDF() {
		return fiber.NewError(fiber.StatusBadRequest, "Valid PDF file required")
	}

	db := ctl.DB.WithContext(c.Context())

	// Resolve nama tampilan untuk nama file deterministik
	var branch catalogModel.BranchModel
	var semester catalogModel.SemesterModel
	var subject catalogModel.SubjectModel
	if err := db.First(&branch, "branch_id = ?", req.BranchID).Error; err != nil {
		return invalidRefError(err)
	}
	if err := db.First(&semester, "semester_id = ?", req.SemesterID).Error; err != nil {
		return invalidRefError(err)
	}
	if err := db.First(&subject, "subject_id = ?", req.SubjectID).Error; err != nil {
		return invalidRefError(err)
	}

	filename := helper.SanitizeFilename(fmt.Sprintf("%s_%d_%s_%s.pdf",
		helper.Slugify(branch.BranchName),
		semester.SemesterNumber,
		helper.Slugify(subject.SubjectName),
		req.AcademicYear,
	))
	path := filepath.Join(ctl.PDFDir, filename)

	if err := os.MkdirAll(ctl.PDFDir, 0o755); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	// nama file sama = timpa; tidak ada penanganan tabrakan lain
	if err := c.SaveFile(req.File, path); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	paper := model.QuestionPaperModel{
		QuestionPaperBranchID:     req.BranchID,
		QuestionPaperSemesterID:   req.SemesterID,
		QuestionPaperSubjectID:    req.SubjectID,
		QuestionPaperAcademicYear: req.AcademicYear,
		QuestionPaperFilePath:     filename,
	}
	if req.Description != "" {
		paper.QuestionPaperDescription = &req.Description
	}
	if err := db.Create(&paper).Error; err != nil {
		// file yang sudah tertulis jangan jadi yatim
		if rmErr := os.Remove(path); rmErr != nil && !os.IsNotExist(rmErr) {
			log.Printf("⚠️ Gagal bersihkan file upload %s: %v", path, rmErr)
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonSuccess(c, fiber.Map{"file_path": filename})
}

// DeletePaper: file dihapus dulu (best-effort), lalu baris DB. Gagal
// hapus file tidak membatalkan penghapusan baris.
func (ctl *PaperController) DeletePaper(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Paper not found")
	}

	db := ctl.DB.WithContext(c.Context())

	var paper model.QuestionPaperModel
	if err := db.First(&paper, "question_paper_id = ?", id).Error; err != nil {
		if database.IsNotFound(err) {
			return fiber.NewError(fiber.StatusNotFound, "Paper not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	path := filepath.Join(ctl.PDFDir, paper.QuestionPaperFilePath)
	if rmErr := os.Remove(path); rmErr != nil && !os.IsNotExist(rmErr) {
		log.Printf("⚠️ Gagal hapus file %s: %v", path, rmErr)
	}

	if err := db.Delete(&paper).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonSuccess(c)
}

/* ===============================
   Helpers
   =============================== */

func (ctl *PaperController) joinedPapers(db *gorm.DB) *gorm.DB {
	return db.Table("question_papers").
		Select(`question_papers.question_paper_id AS id,
			question_papers.question_paper_academic_year AS academic_year,
			question_papers.question_paper_file_path AS file_path,
			question_papers.question_paper_upload_date AS upload_date,
			question_papers.question_paper_description AS description,
			branches.branch_name AS branch_name,
			semesters.semester_number AS semester_num,
			subjects.subject_name AS subject_name`).
		Joins("JOIN branches ON question_papers.question_paper_branch_id = branches.branch_id").
		Joins("JOIN semesters ON question_papers.question_paper_semester_id = semesters.semester_id").
		Joins("JOIN subjects ON question_papers.question_paper_subject_id = subjects.subject_id").
		Order("question_papers.question_paper_upload_date DESC")
}

func invalidRefError(err error) error {
	if database.IsNotFound(err) {
		return fiber.NewError(fiber.StatusNotFound, "Invalid branch/semester/subject")
	}
	return fiber.NewError(fiber.StatusInternalServerError, err.Error())
}

func formInt(c *fiber.Ctx, key string) int {
	v, err := strconv.Atoi(strings.TrimSpace(c.FormValue(key)))
	if err != nil {
		return 0
	}
	return v
}
