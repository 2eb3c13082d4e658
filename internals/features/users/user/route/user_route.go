// file: internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"paperbank_backend/internals/features/users/user/controller"
)

func UserRoutes(app *fiber.App, db *gorm.DB) {
	ctl := controller.NewUserController(db)

	user := app.Group("/api/user")
	user.Post("/signup", ctl.Signup)
	user.Post("/login", ctl.Login)
}
