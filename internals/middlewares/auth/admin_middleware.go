// file: internals/middlewares/auth/admin_middleware.go
package auth

import (
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"paperbank_backend/internals/configs"
	"paperbank_backend/internals/features/users/auth/session"
	helper "paperbank_backend/internals/helpers"
)

// Nama cookie sesi admin (HttpOnly).
const AdminCookieName = "admin_session"

type AdminGuard struct {
	Sessions *session.Store
}

func NewAdminGuard(store *session.Store) *AdminGuard {
	return &AdminGuard{Sessions: store}
}

// IsLoggedIn: cookie sesi masih hidup di store.
func (g *AdminGuard) IsLoggedIn(c *fiber.Ctx) bool {
	return g.Sessions.Validate(c.Cookies(AdminCookieName))
}

// RequireAdmin menerima dua jalur: sesi aktif ATAU kredensial admin yang
// dikirim ulang di body (form/JSON). Jalur kedua sengaja dipertahankan
// supaya klien API tanpa cookie tetap bisa per-request auth.
func (g *AdminGuard) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if g.IsLoggedIn(c) {
			return c.Next()
		}
		if username, password := credsFromBody(c); CheckAdminCreds(username, password) {
			return c.Next()
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
}

func CheckAdminCreds(username, password string) bool {
	return username != "" &&
		username == configs.AdminUsername &&
		password == configs.AdminPassword
}

// credsFromBody membaca username/password dari multipart/urlencoded form
// atau body JSON, tanpa mengganggu parsing ulang di handler.
func credsFromBody(c *fiber.Ctx) (string, string) {
	if u := c.FormValue("username"); u != "" {
		return u, c.FormValue("password")
	}
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := sonic.Unmarshal(c.Body(), &body); err == nil {
		return body.Username, body.Password
	}
	return "", ""
}
