// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"paperbank_backend/internals/features/users/auth/controller"
	"paperbank_backend/internals/features/users/auth/session"
)

func AuthRoutes(app *fiber.App, db *gorm.DB, store *session.Store) {
	authController := controller.NewAuthController(db, store)

	api := app.Group("/api")

	// 🔓 Login gabungan (admin dulu, lalu user)
	api.Post("/login", authController.Login)

	// Jalur khusus admin
	admin := api.Group("/admin")
	admin.Post("/login", authController.AdminLogin)
	admin.Post("/logout", authController.AdminLogout)
	admin.Get("/check", authController.AdminCheck)
}
