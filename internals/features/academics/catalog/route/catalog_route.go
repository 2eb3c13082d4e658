// file: internals/features/academics/catalog/route/catalog_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"paperbank_backend/internals/features/academics/catalog/controller"
	authMiddleware "paperbank_backend/internals/middlewares/auth"
)

func CatalogRoutes(app *fiber.App, db *gorm.DB, guard *authMiddleware.AdminGuard) {
	ctl := controller.NewCatalogController(db)

	// ==========================
	// PUBLIK (browsing siswa)
	// Base: /api
	// ==========================
	api := app.Group("/api")
	api.Get("/branches", ctl.ListBranches)
	api.Get("/semesters", ctl.ListSemesters)
	api.Get("/subjects", ctl.ListSubjects)

	// ==========================
	// ADMIN (GET terbuka, mutasi lewat guard)
	// Base: /api/admin
	// ==========================
	admin := api.Group("/admin")

	admin.Get("/branches", ctl.ListBranches)
	admin.Post("/branches", guard.RequireAdmin(), ctl.CreateBranch)
	admin.Delete("/branches/:id", guard.RequireAdmin(), ctl.DeleteBranch)

	admin.Get("/semesters", ctl.ListSemesters)
	admin.Post("/semesters", guard.RequireAdmin(), ctl.CreateSemester)
	admin.Delete("/semesters/:id", guard.RequireAdmin(), ctl.DeleteSemester)

	admin.Get("/subjects", ctl.ListAdminSubjects)
	admin.Post("/subjects", guard.RequireAdmin(), ctl.CreateSubject)
	admin.Delete("/subjects/:id", guard.RequireAdmin(), ctl.DeleteSubject)
}
