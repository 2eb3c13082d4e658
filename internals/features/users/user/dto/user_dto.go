// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"strings"

	"paperbank_backend/internals/features/users/user/model"
)

/* =========================================================
   1) REQUEST DTO
========================================================= */

type SignupRequest struct {
	Username     string `json:"username" validate:"required"`
	Password     string `json:"password" validate:"required"`
	Email        string `json:"email" validate:"omitempty,email"`
	AcademicYear string `json:"academic_year"`
}

func (r *SignupRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Password = strings.TrimSpace(r.Password)
	r.Email = strings.TrimSpace(r.Email)
	r.AcademicYear = strings.TrimSpace(r.AcademicYear)
}

// ToModel: field opsional kosong disimpan NULL, bukan string kosong.
func (r *SignupRequest) ToModel(passwordHash string) model.UserModel {
	m := model.UserModel{
		UserUsername: r.Username,
		UserPassword: passwordHash,
	}
	if r.Email != "" {
		email := r.Email
		m.UserEmail = &email
	}
	if r.AcademicYear != "" {
		year := r.AcademicYear
		m.UserAcademicYear = &year
	}
	return m
}

// Login sekunder tanpa password: lookup profil by username (+ cocokkan
// email kalau dikirim).
type UserLoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (r *UserLoginRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)
}

/* =========================================================
   2) RESPONSE DTO
========================================================= */

type UserProfileResponse struct {
	ID           int     `json:"id"`
	Username     string  `json:"username"`
	Email        *string `json:"email"`
	AcademicYear *string `json:"academic_year"`
}

func FromUserModel(m model.UserModel) UserProfileResponse {
	return UserProfileResponse{
		ID:           m.UserID,
		Username:     m.UserUsername,
		Email:        m.UserEmail,
		AcademicYear: m.UserAcademicYear,
	}
}
