// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"paperbank_backend/internals/constants"
	database "paperbank_backend/internals/databases"
	"paperbank_backend/internals/features/users/auth/session"
	userDTO "paperbank_backend/internals/features/users/user/dto"
	userModel "paperbank_backend/internals/features/users/user/model"
	helper "paperbank_backend/internals/helpers"
	authMiddleware "paperbank_backend/internals/middlewares/auth"
)

type AuthController struct {
	DB       *gorm.DB
	Sessions *session.Store
}

func NewAuthController(db *gorm.DB, store *session.Store) *AuthController {
	return &AuthController{DB: db, Sessions: store}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

/* ===============================
   POST /api/login
   Satu pintu: coba admin dulu, lalu user (bcrypt).
   =============================== */

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Username and password required")
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Password = strings.TrimSpace(req.Password)
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Username and password required")
	}

	if authMiddleware.CheckAdminCreds(req.Username, req.Password) {
		if err := ctl.startAdminSession(c); err != nil {
			return err
		}
		return helper.JsonSuccess(c, fiber.Map{"role": constants.RoleAdmin})
	}

	var user userModel.UserModel
	err := ctl.DB.WithContext(c.Context()).
		First(&user, "user_username = ?", req.Username).Error
	if err != nil && !database.IsNotFound(err) {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if err == nil && bcrypt.CompareHashAndPassword(
		[]byte(user.UserPassword), []byte(req.Password)) == nil {
		return helper.JsonSuccess(c, fiber.Map{
			"role": constants.RoleUser,
			"user": userDTO.FromUserModel(user),
		})
	}

	return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
}

/* ===============================
   Jalur khusus admin
   =============================== */

// POST /api/admin/login
func (ctl *AuthController) AdminLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}
	if !authMiddleware.CheckAdminCreds(req.Username, req.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}
	if err := ctl.startAdminSession(c); err != nil {
		return err
	}
	return helper.JsonSuccess(c)
}

// GET /api/admin/check
func (ctl *AuthController) AdminCheck(c *fiber.Ctx) error {
	loggedIn := ctl.Sessions.Validate(c.Cookies(authMiddleware.AdminCookieName))
	return helper.JsonData(c, fiber.Map{"logged_in": loggedIn})
}

// POST /api/admin/logout — revoke sesi, token tidak bisa dipakai lagi.
func (ctl *AuthController) AdminLogout(c *fiber.Ctx) error {
	if token := c.Cookies(authMiddleware.AdminCookieName); token != "" {
		ctl.Sessions.Revoke(token)
	}
	c.Cookie(&fiber.Cookie{
		Name:     authMiddleware.AdminCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return helper.JsonSuccess(c)
}

func (ctl *AuthController) startAdminSession(c *fiber.Ctx) error {
	token, err := ctl.Sessions.Issue()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create session")
	}
	c.Cookie(&fiber.Cookie{
		Name:     authMiddleware.AdminCookieName,
		Value:    token,
		Expires:  time.Now().Add(session.DefaultTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return nil
}
