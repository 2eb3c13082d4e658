// file: internals/seeds/seed_catalog.go
package seeds

import (
	"log"

	"gorm.io/gorm"

	catalogModel "paperbank_backend/internals/features/academics/catalog/model"
	paperModel "paperbank_backend/internals/features/academics/papers/model"
	userModel "paperbank_backend/internals/features/users/user/model"
)

// Daftar branch bawaan (dataset PCCOE).
var defaultBranches = []string{
	"Computer Engineering",
	"Information Technology",
	"Electronics and Telecommunication Engineering (E&TC)",
	"Mechanical Engineering",
	"Civil Engineering",
	"Computer Science & Engineering (AI-ML)",
	"Computer Engineering (Regional/Marathi)",
}

// Mapel umum per semester (branch_id NULL = berlaku semua branch).
var defaultSemesterSubjects = map[int][]string{
	1: {"Engineering Mathematics-I", "Engineering Physics", "Engineering Chemistry", "Basic Electrical Engineering", "Programming in C"},
	2: {"Engineering Mathematics-II", "Engineering Mechanics", "Data Structures", "Digital Electronics", "Object Oriented Programming"},
	3: {"Engineering Mathematics-III", "Data Structures and Algorithms", "Database Management Systems", "Computer Networks", "Operating Systems"},
	4: {"Discrete Mathematics", "Theory of Computation", "Software Engineering", "Computer Organization", "Web Technologies"},
	5: {"Machine Learning", "Artificial Intelligence", "Compiler Design", "Computer Graphics", "Microprocessors"},
	6: {"Data Science", "Cyber Security", "Cloud Computing", "Mobile Computing", "Design Patterns"},
	7: {"Big Data Analytics", "Natural Language Processing", "Deep Learning", "Project Management", "Professional Ethics"},
	8: {"Project Phase-II", "Industry Training", "Elective-I", "Elective-II", "Elective-III"},
}

// InitDB migrasi lima tabel lalu seed data awal. Aman dipanggil tiap start.
func InitDB(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&catalogModel.BranchModel{},
		&catalogModel.SemesterModel{},
		&catalogModel.SubjectModel{},
		&userModel.UserModel{},
		&paperModel.QuestionPaperModel{},
	); err != nil {
		return err
	}
	return seedCatalog(db)
}

func seedCatalog(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, name := range defaultBranches {
			branch := catalogModel.BranchModel{BranchName: name}
			if err := tx.Where("branch_name = ?", name).
				FirstOrCreate(&branch).Error; err != nil {
				return err
			}
		}

		for number := 1; number <= 8; number++ {
			semester := catalogModel.SemesterModel{SemesterNumber: number}
			if err := tx.Where("semester_number = ?", number).
				FirstOrCreate(&semester).Error; err != nil {
				return err
			}

			// UNIQUE sqlite menganggap NULL berbeda-beda, jadi cek dulu
			// supaya seed tidak menduplikasi baris branch-NULL tiap restart.
			for _, subjectName := range defaultSemesterSubjects[number] {
				subject := catalogModel.SubjectModel{
					SubjectName:       subjectName,
					SubjectSemesterID: semester.SemesterID,
				}
				if err := tx.Where(
					"subject_name = ? AND subject_semester_id = ? AND subject_branch_id IS NULL",
					subjectName, semester.SemesterID,
				).FirstOrCreate(&subject).Error; err != nil {
					return err
				}
			}
		}

		log.Println("✅ Seed katalog selesai (branches, semesters, subjects)")
		return nil
	})
}
