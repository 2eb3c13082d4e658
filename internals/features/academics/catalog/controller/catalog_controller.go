// file: internals/features/academics/catalog/controller/catalog_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "paperbank_backend/internals/databases"
	"paperbank_backend/internals/features/academics/catalog/dto"
	"paperbank_backend/internals/features/academics/catalog/model"
	helper "paperbank_backend/internals/helpers"
)

type CatalogController struct {
	DB *gorm.DB
}

func NewCatalogController(db *gorm.DB) *CatalogController {
	return &CatalogController{DB: db}
}

var validate = validator.New()

/* ===============================
   BRANCHES
   GET  /api/branches, /api/admin/branches
   POST /api/admin/branches
   DELETE /api/admin/branches/:id
   =============================== */

func (ctl *CatalogController) ListBranches(c *fiber.Ctx) error {
	var rows []model.BranchModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("branch_name").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.BranchResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.FromBranchModel(m))
	}
	return helper.JsonData(c, out)
}

func (ctl *CatalogController) CreateBranch(c *fiber.Ctx) error {
	var req dto.CreateBranchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Branch name required")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Branch name required")
	}

	var created model.BranchModel
	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&model.BranchModel{}).
			Where("branch_name = ?", req.Name).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Branch already exists")
		}

		created = model.BranchModel{BranchName: req.Name}
		if err := tx.Create(&created).Error; err != nil {
			if database.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusBadRequest, "Branch already exists")
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonSuccess(c, fiber.Map{"branch": dto.FromBranchModel(created)})
}

func (ctl *CatalogController) DeleteBranch(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid branch id")
	}

	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var branch model.BranchModel
		if err := tx.First(&branch, "branch_id = ?", id).Error; err != nil {
			if database.IsNotFound(err) {
				return fiber.NewError(fiber.StatusNotFound, "Branch not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		var papers int64
		if err := tx.Table("question_papers").
			Where("question_paper_branch_id = ?", id).
			Count(&papers).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if papers > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Cannot delete: branch has question papers")
		}

		return tx.Delete(&branch).Error
	}); err != nil {
		return err
	}

	return helper.JsonSuccess(c)
}

/* ===============================
   SEMESTERS
   =============================== */

func (ctl *CatalogController) ListSemesters(c *fiber.Ctx) error {
	var rows []model.SemesterModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("semester_number").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.SemesterResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.FromSemesterModel(m))
	}
	return helper.JsonData(c, out)
}

func (ctl *CatalogController) CreateSemester(c *fiber.Ctx) error {
	var req dto.CreateSemesterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Semester must be 1-8")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Semester must be 1-8")
	}

	var created model.SemesterModel
	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&model.SemesterModel{}).
			Where("semester_number = ?", *req.Number).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Semester already exists")
		}

		created = model.SemesterModel{SemesterNumber: *req.Number}
		if err := tx.Create(&created).Error; err != nil {
			if database.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusBadRequest, "Semester already exists")
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonSuccess(c, fiber.Map{"semester": dto.FromSemesterModel(created)})
}

// DeleteSemester ikut menghapus seluruh mapel semester itu (cascade
// aplikasi), tapi ditolak selama masih ada paper yang menunjuk semester.
func (ctl *CatalogController) DeleteSemester(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid semester id")
	}

	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var papers int64
		if err := tx.Table("question_papers").
			Where("question_paper_semester_id = ?", id).
			Count(&papers).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if papers > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Cannot delete: semester has question papers")
		}

		if err := tx.Where("subject_semester_id = ?", id).
			Delete(&model.SubjectModel{}).Error; err != nil {
			return err
		}
		return tx.Where("semester_id = ?", id).
			Delete(&model.SemesterModel{}).Error
	}); err != nil {
		return err
	}

	return helper.JsonSuccess(c)
}

/* ===============================
   SUBJECTS
   =============================== */

// ListSubjects (publik): satu entri per nama mapel. Baris ganda
// (umum vs per-branch) dilebur, id diambil MIN(subject_id).
func (ctl *CatalogController) ListSubjects(c *fiber.Ctx) error {
	semesterID := c.QueryInt("semester_id", 0)
	branchID := c.QueryInt("branch_id", 0)

	q := ctl.DB.WithContext(c.Context()).Model(&model.SubjectModel{})
	if semesterID > 0 {
		q = q.Select("MIN(subject_id) AS id, subject_name AS name").
			Where("subject_semester_id = ?", semesterID)
		if branchID > 0 {
			q = q.Where("subject_branch_id IS NULL OR subject_branch_id = ?", branchID)
		}
		q = q.Group("subject_name").Order("subject_name")
	} else {
		q = q.Select("MIN(subject_id) AS id, subject_name AS name, subject_semester_id AS semester_id").
			Group("subject_name, subject_semester_id").
			Order("subject_semester_id, subject_name")
	}

	rows := make([]dto.SubjectResponse, 0)
	if err := q.Scan(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonData(c, rows)
}

// ListAdminSubjects: versi admin masih menampilkan scope branch per baris.
func (ctl *CatalogController) ListAdminSubjects(c *fiber.Ctx) error {
	semesterID := c.QueryInt("semester_id", 0)

	q := ctl.DB.WithContext(c.Context()).Model(&model.SubjectModel{}).
		Select("MIN(subject_id) AS id, subject_name AS name, subject_semester_id AS semester_id, subject_branch_id AS branch_id")
	if semesterID > 0 {
		q = q.Where("subject_semester_id = ?", semesterID).
			Group("subject_name, subject_branch_id").
			Order("subject_name")
	} else {
		q = q.Group("subject_name, subject_semester_id, subject_branch_id").
			Order("subject_semester_id, subject_name")
	}

	rows := make([]dto.AdminSubjectResponse, 0)
	if err := q.Scan(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonData(c, rows)
}

func (ctl *CatalogController) CreateSubject(c *fiber.Ctx) error {
	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Subject name and semester required")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Subject name and semester required")
	}

	var created model.SubjectModel
	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		// cek duplikasi eksplisit: unique index sqlite tidak menahan
		// baris ganda kalau branch_id NULL
		dup := tx.Model(&model.SubjectModel{}).
			Where("subject_name = ? AND subject_semester_id = ?", req.Name, req.SemesterID)
		if req.BranchID != nil {
			dup = dup.Where("subject_branch_id = ?", *req.BranchID)
		} else {
			dup = dup.Where("subject_branch_id IS NULL")
		}
		var cnt int64
		if err := dup.Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Subject already exists for this semester")
		}

		created = req.ToModel()
		if err := tx.Create(&created).Error; err != nil {
			if database.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusBadRequest, "Subject already exists for this semester")
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonSuccess(c, fiber.Map{"subject": fiber.Map{
		"id":          created.SubjectID,
		"name":        created.SubjectName,
		"semester_id": created.SubjectSemesterID,
		"branch_id":   created.SubjectBranchID,
	}})
}

// DeleteSubject menghapus SEMUA baris dengan (name, semester) yang sama,
// bukan satu baris saja: identitas mapel di luar memang logis per
// name+semester. Ditolak kalau ada paper yang menunjuk salah satunya.
func (ctl *CatalogController) DeleteSubject(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid subject id")
	}

	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var subject model.SubjectModel
		if err := tx.First(&subject, "subject_id = ?", id).Error; err != nil {
			if database.IsNotFound(err) {
				return fiber.NewError(fiber.StatusNotFound, "Subject not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		var papers int64
		if err := tx.Table("question_papers").
			Joins("JOIN subjects ON question_papers.question_paper_subject_id = subjects.subject_id").
			Where("subjects.subject_name = ? AND subjects.subject_semester_id = ?",
				subject.SubjectName, subject.SubjectSemesterID).
			Count(&papers).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if papers > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Cannot delete: subject has question papers")
		}

		return tx.Where("subject_name = ? AND subject_semester_id = ?",
			subject.SubjectName, subject.SubjectSemesterID).
			Delete(&model.SubjectModel{}).Error
	}); err != nil {
		return err
	}

	return helper.JsonSuccess(c)
}
