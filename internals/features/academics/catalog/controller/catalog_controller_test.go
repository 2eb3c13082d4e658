// file: internals/features/academics/catalog/controller/catalog_controller_test.go
package controller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"paperbank_backend/internals/configs"
	database "paperbank_backend/internals/databases"
	catalogModel "paperbank_backend/internals/features/academics/catalog/model"
	paperModel "paperbank_backend/internals/features/academics/papers/model"
	"paperbank_backend/internals/features/users/auth/session"
	routes "paperbank_backend/internals/route"
	"paperbank_backend/internals/seeds"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	configs.AdminUsername = "admin"
	configs.AdminPassword = "Admin@1234"
	configs.PDFDir = t.TempDir()

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := seeds.InitDB(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	app := routes.NewApp(db, session.NewStore("test-secret", time.Hour))
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, target string, payload any) (*http.Response, []byte) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	resp.Body.Close()
	return resp, data
}

func semesterByNumber(t *testing.T, db *gorm.DB, number int) catalogModel.SemesterModel {
	t.Helper()
	var sem catalogModel.SemesterModel
	if err := db.First(&sem, "semester_number = ?", number).Error; err != nil {
		t.Fatalf("semester %d: %v", number, err)
	}
	return sem
}

func insertPaper(t *testing.T, db *gorm.DB, branchID, semesterID, subjectID int) paperModel.QuestionPaperModel {
	t.Helper()
	paper := paperModel.QuestionPaperModel{
		QuestionPaperBranchID:     branchID,
		QuestionPaperSemesterID:   semesterID,
		QuestionPaperSubjectID:    subjectID,
		QuestionPaperAcademicYear: "2023-24",
		QuestionPaperFilePath:     "seed_test_paper.pdf",
	}
	if err := db.Create(&paper).Error; err != nil {
		t.Fatalf("insert paper: %v", err)
	}
	return paper
}

/* ===============================
   SEED
   =============================== */

func TestSeedPopulatesCatalog(t *testing.T) {
	_, db := newTestApp(t)

	var branches, semesters, subjects int64
	db.Model(&catalogModel.BranchModel{}).Count(&branches)
	db.Model(&catalogModel.SemesterModel{}).Count(&semesters)
	db.Model(&catalogModel.SubjectModel{}).Count(&subjects)

	if branches != 7 {
		t.Errorf("branches = %d, want 7", branches)
	}
	if semesters != 8 {
		t.Errorf("semesters = %d, want 8", semesters)
	}
	if subjects != 40 {
		t.Errorf("subjects = %d, want 40", subjects)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	_, db := newTestApp(t)

	if err := seeds.InitDB(db); err != nil {
		t.Fatalf("re-seed: %v", err)
	}

	var subjects int64
	db.Model(&catalogModel.SubjectModel{}).Count(&subjects)
	if subjects != 40 {
		t.Errorf("subjects setelah re-seed = %d, want 40", subjects)
	}
}

/* ===============================
   BRANCHES
   =============================== */

func TestListBranchesSortedByName(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/branches", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var rows []map[string]any
	if err := json.Unmarshal(body, &rows); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(rows) != 7 {
		t.Fatalf("len = %d, want 7", len(rows))
	}
	if rows[0]["name"] != "Civil Engineering" {
		t.Errorf("first branch = %v, want Civil Engineering", rows[0]["name"])
	}
}

func TestCreateBranchThenConflict(t *testing.T) {
	app, _ := newTestApp(t)

	payload := map[string]any{
		"username": "admin", "password": "Admin@1234",
		"name": "Robotics Engineering",
	}

	resp, _ := doJSON(t, app, http.MethodPost, "/api/admin/branches", payload)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create: status = %d, want 200", resp.StatusCode)
	}

	resp, body := doJSON(t, app, http.MethodPost, "/api/admin/branches", payload)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate: status = %d, want 400", resp.StatusCode)
	}
	var out map[string]any
	_ = json.Unmarshal(body, &out)
	if out["error"] != "Branch already exists" {
		t.Errorf("error = %v", out["error"])
	}
}

func TestCreateBranchUnauthorized(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/admin/branches",
		map[string]any{"name": "Should Not Exist"})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestCreateBranchRequiresName(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/admin/branches",
		map[string]any{"username": "admin", "password": "Admin@1234", "name": "   "})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestDeleteBranchNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodDelete, "/api/admin/branches/9999",
		map[string]any{"username": "admin", "password": "Admin@1234"})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestDeleteBranchBlockedByPapers(t *testing.T) {
	app, db := newTestApp(t)

	var branch catalogModel.BranchModel
	if err := db.First(&branch, "branch_name = ?", "Computer Engineering").Error; err != nil {
		t.Fatalf("branch: %v", err)
	}
	sem := semesterByNumber(t, db, 3)
	var subject catalogModel.SubjectModel
	if err := db.First(&subject, "subject_semester_id = ?", sem.SemesterID).Error; err != nil {
		t.Fatalf("subject: %v", err)
	}
	insertPaper(t, db, branch.BranchID, sem.SemesterID, subject.SubjectID)

	resp, body := doJSON(t, app, http.MethodDelete,
		"/api/admin/branches/"+itoa(branch.BranchID),
		map[string]any{"username": "admin", "password": "Admin@1234"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (%s)", resp.StatusCode, body)
	}

	var still int64
	db.Model(&catalogModel.BranchModel{}).
		Where("branch_id = ?", branch.BranchID).Count(&still)
	if still != 1 {
		t.Error("branch ikut terhapus padahal ditolak")
	}
}

/* ===============================
   SEMESTERS
   =============================== */

func TestCreateSemesterValidation(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/admin/semesters",
		map[string]any{"username": "admin", "password": "Admin@1234", "number": 9})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("number 9: status = %d, want 400", resp.StatusCode)
	}
	var out map[string]any
	_ = json.Unmarshal(body, &out)
	if out["error"] != "Semester must be 1-8" {
		t.Errorf("error = %v", out["error"])
	}

	// semua 1..8 sudah di-seed
	resp, _ = doJSON(t, app, http.MethodPost, "/api/admin/semesters",
		map[string]any{"username": "admin", "password": "Admin@1234", "number": 3})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate: status = %d, want 400", resp.StatusCode)
	}
}

func TestDeleteSemesterCascadesSubjects(t *testing.T) {
	app, db := newTestApp(t)

	sem := semesterByNumber(t, db, 8)

	resp, _ := doJSON(t, app, http.MethodDelete,
		"/api/admin/semesters/"+itoa(sem.SemesterID),
		map[string]any{"username": "admin", "password": "Admin@1234"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var semesters, subjects int64
	db.Model(&catalogModel.SemesterModel{}).
		Where("semester_id = ?", sem.SemesterID).Count(&semesters)
	db.Model(&catalogModel.SubjectModel{}).
		Where("subject_semester_id = ?", sem.SemesterID).Count(&subjects)
	if semesters != 0 {
		t.Error("semester masih ada")
	}
	if subjects != 0 {
		t.Errorf("subjects tersisa = %d, want 0 (cascade)", subjects)
	}
}

func TestDeleteSemesterBlockedByPapers(t *testing.T) {
	app, db := newTestApp(t)

	sem := semesterByNumber(t, db, 5)
	var branch catalogModel.BranchModel
	if err := db.First(&branch).Error; err != nil {
		t.Fatalf("branch: %v", err)
	}
	var subject catalogModel.SubjectModel
	if err := db.First(&subject, "subject_semester_id = ?", sem.SemesterID).Error; err != nil {
		t.Fatalf("subject: %v", err)
	}
	insertPaper(t, db, branch.BranchID, sem.SemesterID, subject.SubjectID)

	resp, _ := doJSON(t, app, http.MethodDelete,
		"/api/admin/semesters/"+itoa(sem.SemesterID),
		map[string]any{"username": "admin", "password": "Admin@1234"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	var subjects int64
	db.Model(&catalogModel.SubjectModel{}).
		Where("subject_semester_id = ?", sem.SemesterID).Count(&subjects)
	if subjects == 0 {
		t.Error("subjects ikut terhapus padahal ditolak")
	}
}

/* ===============================
   SUBJECTS
   =============================== */

func TestListSubjectsDeduplicatesByName(t *testing.T) {
	app, db := newTestApp(t)

	sem := semesterByNumber(t, db, 1)
	var branch catalogModel.BranchModel
	if err := db.First(&branch).Error; err != nil {
		t.Fatalf("branch: %v", err)
	}

	// baris ganda per-branch untuk nama yang sudah ada sebagai umum
	dup := catalogModel.SubjectModel{
		SubjectName:       "Engineering Physics",
		SubjectSemesterID: sem.SemesterID,
		SubjectBranchID:   &branch.BranchID,
	}
	if err := db.Create(&dup).Error; err != nil {
		t.Fatalf("insert dup: %v", err)
	}

	resp, body := doJSON(t, app, http.MethodGet,
		"/api/subjects?semester_id="+itoa(sem.SemesterID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var rows []map[string]any
	if err := json.Unmarshal(body, &rows); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("len = %d, want 5 (dedup per nama)", len(rows))
	}
	seen := map[string]bool{}
	for _, r := range rows {
		name := r["name"].(string)
		if seen[name] {
			t.Fatalf("nama %q muncul dua kali", name)
		}
		seen[name] = true
	}
}

func TestListAllSubjectsGroupedBySemester(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/subjects", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var rows []map[string]any
	if err := json.Unmarshal(body, &rows); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(rows) != 40 {
		t.Fatalf("len = %d, want 40", len(rows))
	}
	if rows[0]["semester_id"] == nil {
		t.Error("listing tanpa filter harus menyertakan semester_id")
	}
}

func TestCreateSubjectConflict(t *testing.T) {
	app, db := newTestApp(t)

	sem := semesterByNumber(t, db, 2)
	payload := map[string]any{
		"username": "admin", "password": "Admin@1234",
		"name": "Data Structures", "semester_id": sem.SemesterID,
	}

	resp, body := doJSON(t, app, http.MethodPost, "/api/admin/subjects", payload)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (%s)", resp.StatusCode, body)
	}
	var out map[string]any
	_ = json.Unmarshal(body, &out)
	if out["error"] != "Subject already exists for this semester" {
		t.Errorf("error = %v", out["error"])
	}
}

func TestDeleteSubjectRemovesAllLogicalRows(t *testing.T) {
	app, db := newTestApp(t)

	sem := semesterByNumber(t, db, 4)
	var branch catalogModel.BranchModel
	if err := db.First(&branch).Error; err != nil {
		t.Fatalf("branch: %v", err)
	}

	var common catalogModel.SubjectModel
	if err := db.First(&common,
		"subject_name = ? AND subject_semester_id = ?",
		"Software Engineering", sem.SemesterID).Error; err != nil {
		t.Fatalf("subject: %v", err)
	}
	dup := catalogModel.SubjectModel{
		SubjectName:       "Software Engineering",
		SubjectSemesterID: sem.SemesterID,
		SubjectBranchID:   &branch.BranchID,
	}
	if err := db.Create(&dup).Error; err != nil {
		t.Fatalf("insert dup: %v", err)
	}

	resp, _ := doJSON(t, app, http.MethodDelete,
		"/api/admin/subjects/"+itoa(common.SubjectID),
		map[string]any{"username": "admin", "password": "Admin@1234"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var remaining int64
	db.Model(&catalogModel.SubjectModel{}).
		Where("subject_name = ? AND subject_semester_id = ?",
			"Software Engineering", sem.SemesterID).
		Count(&remaining)
	if remaining != 0 {
		t.Errorf("baris tersisa = %d, want 0 (hapus logis per name+semester)", remaining)
	}
}

func TestDeleteSubjectBlockedByPapersOnSiblingRow(t *testing.T) {
	app, db := newTestApp(t)

	sem := semesterByNumber(t, db, 3)
	var branch catalogModel.BranchModel
	if err := db.First(&branch).Error; err != nil {
		t.Fatalf("branch: %v", err)
	}

	var common catalogModel.SubjectModel
	if err := db.First(&common,
		"subject_name = ? AND subject_semester_id = ?",
		"Operating Systems", sem.SemesterID).Error; err != nil {
		t.Fatalf("subject: %v", err)
	}
	dup := catalogModel.SubjectModel{
		SubjectName:       "Operating Systems",
		SubjectSemesterID: sem.SemesterID,
		SubjectBranchID:   &branch.BranchID,
	}
	if err := db.Create(&dup).Error; err != nil {
		t.Fatalf("insert dup: %v", err)
	}

	// paper menunjuk baris duplikat, hapus lewat baris umum → tetap ditolak
	insertPaper(t, db, branch.BranchID, sem.SemesterID, dup.SubjectID)

	resp, _ := doJSON(t, app, http.MethodDelete,
		"/api/admin/subjects/"+itoa(common.SubjectID),
		map[string]any{"username": "admin", "password": "Admin@1234"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestDeleteSubjectNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodDelete, "/api/admin/subjects/99999",
		map[string]any{"username": "admin", "password": "Admin@1234"})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
