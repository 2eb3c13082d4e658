// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"gorm.io/gorm"

	catalogRoute "paperbank_backend/internals/features/academics/catalog/route"
	paperRoute "paperbank_backend/internals/features/academics/papers/route"
	authRoute "paperbank_backend/internals/features/users/auth/route"
	"paperbank_backend/internals/features/users/auth/session"
	userRoute "paperbank_backend/internals/features/users/user/route"
	helper "paperbank_backend/internals/helpers"
	middlewares "paperbank_backend/internals/middlewares"
	authMiddleware "paperbank_backend/internals/middlewares/auth"
)

var startTime time.Time

// NewApp merakit fiber.App lengkap (codec sonic, error handler JSON,
// middleware, routes). Dipakai main dan test.
func NewApp(db *gorm.DB, store *session.Store) *fiber.App {
	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		BodyLimit:             25 * 1024 * 1024, // PDF upload
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			return helper.JsonError(c, code, err.Error())
		},
	})

	// 🔎 Request-ID + timing (observability ringan)
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		err := c.Next()
		dur := time.Since(start)
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), dur)
		return err
	})

	middlewares.SetupMiddlewares(app)

	BaseRoutes(app, db)
	SetupRoutes(app, db, store)
	return app
}

func SetupRoutes(app *fiber.App, db *gorm.DB, store *session.Store) {
	startTime = time.Now()

	guard := authMiddleware.NewAdminGuard(store)

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db, store)

	log.Println("[INFO] Setting up UserRoutes...")
	userRoute.UserRoutes(app, db)

	log.Println("[INFO] Setting up CatalogRoutes...")
	catalogRoute.CatalogRoutes(app, db, guard)

	log.Println("[INFO] Setting up PaperRoutes...")
	paperRoute.PaperRoutes(app, db, guard)
}
