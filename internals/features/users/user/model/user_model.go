// file: internals/features/users/user/model/user_model.go
package model

import "time"

type UserModel struct {
	// PK
	UserID int `gorm:"primaryKey;autoIncrement;column:user_id" json:"user_id"`

	// Identitas
	UserUsername string  `gorm:"type:text;not null;uniqueIndex:uq_users_username;column:user_username" json:"user_username"`
	UserPassword string  `gorm:"type:text;not null;column:user_password" json:"-"`
	UserEmail    *string `gorm:"type:text;uniqueIndex:uq_users_email;column:user_email" json:"user_email,omitempty"`

	// Opsional
	UserAcademicYear *string   `gorm:"type:text;column:user_academic_year" json:"user_academic_year,omitempty"`
	UserCreatedAt    time.Time `gorm:"not null;autoCreateTime;column:user_created_at" json:"user_created_at"`
}

func (UserModel) TableName() string { return "users" }
