// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	database "paperbank_backend/internals/databases"
	"paperbank_backend/internals/features/users/user/dto"
	"paperbank_backend/internals/features/users/user/model"
	helper "paperbank_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

var validate = validator.New()

// POST /api/user/signup
func (ctl *UserController) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Username and password required")
	}
	req.Normalize()
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Username and password required")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid email")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		dup := tx.Model(&model.UserModel{}).Where("user_username = ?", req.Username)
		if req.Email != "" {
			dup = tx.Model(&model.UserModel{}).
				Where("user_username = ? OR user_email = ?", req.Username, req.Email)
		}
		var cnt int64
		if err := dup.Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Username or email already exists")
		}

		m := req.ToModel(string(hash))
		if err := tx.Create(&m).Error; err != nil {
			if database.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusBadRequest, "Username or email already exists")
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonSuccess(c)
}

// POST /api/user/login — jalur sekunder tanpa cek password, sekadar
// ambil profil per username (+ email harus cocok kalau dikirim).
func (ctl *UserController) Login(c *fiber.Ctx) error {
	var req dto.UserLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Username required")
	}
	req.Normalize()
	if req.Username == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Username required")
	}

	var user model.UserModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&user, "user_username = ?", req.Username).Error; err != nil {
		if database.IsNotFound(err) {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if req.Email != "" && (user.UserEmail == nil || *user.UserEmail != req.Email) {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	return helper.JsonSuccess(c, fiber.Map{"user": dto.FromUserModel(user)})
}
