// file: internals/features/academics/papers/route/paper_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"paperbank_backend/internals/configs"
	"paperbank_backend/internals/features/academics/papers/controller"
	authMiddleware "paperbank_backend/internals/middlewares/auth"
)

func PaperRoutes(app *fiber.App, db *gorm.DB, guard *authMiddleware.AdminGuard) {
	ctl := controller.NewPaperController(db, configs.PDFDir)

	// ==========================
	// PUBLIK (browsing + download)
	// Base: /api
	// ==========================
	api := app.Group("/api")
	api.Get("/years", ctl.ListYears)
	api.Get("/papers", ctl.ListPapers)
	api.Get("/papers/download/:id", ctl.DownloadPaper)

	// ==========================
	// ADMIN (upload multipart + delete)
	// Base: /api/admin
	// ==========================
	admin := api.Group("/admin")
	admin.Get("/papers", ctl.ListAdminPapers)
	admin.Post("/papers", guard.RequireAdmin(), ctl.UploadPaper)
	admin.Delete("/papers/:id", guard.RequireAdmin(), ctl.DeletePaper)
}
