package model

import (
	"time"

	"github.com/ShohjahonSohibov/Aberno/constant"
)

// UserEntity represents the users table entity
type UserEntity struct {
	ID           string `db:"id" json:"_id"`
	Fullname     string `db:"fullname" json:"fullname"`
	Phone        string `db:"phone" json:"phone"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password_hash" json:"-"`
	Timestamps
}

// UserFilter for querying users; set fields are AND-ed.
type UserFilter struct {
	ID    string
	Email string
	Phone string
}

// AdminEntity represents the admins table entity
type AdminEntity struct {
	ID             string        `db:"id" json:"_id"`
	Username       string        `db:"username" json:"username"`
	Fullname       string        `db:"fullname" json:"fullname"`
	Phone          string        `db:"phone" json:"phone"`
	Email          string        `db:"email" json:"email"`
	PasswordHash   string        `db:"password_hash" json:"-"`
	ProfilePicture string        `db:"profile_picture" json:"profilePicture"`
	Bio            string        `db:"bio" json:"bio"`
	RefreshToken   string        `db:"refresh_token" json:"-"`
	LastVisit      *time.Time    `db:"last_visit" json:"lastVisit,omitempty"`
	Type           constant.Role `db:"type" json:"type"`
	Timestamps
}

type AdminFilter struct {
	ID       string
	Username string
	Email    string
	Phone    string
}

// RegisterRequest for user registration; email or phone is required.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required_without=Phone,omitempty,email"`
	Phone    string `json:"phone" validate:"required_without=Email"`
	Password string `json:"password" validate:"required,min=2,max=72"`
}

// LoginRequest for user login (email or phone)
type LoginRequest struct {
	Email    string `json:"email" validate:"required_without=Phone"`
	Phone    string `json:"phone" validate:"required_without=Email"`
	Password string `json:"password" validate:"required"`
}

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type TokenResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

type UpdateUserRequest struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"omitempty,min=2,max=72"`
}

type CreateAdminRequest struct {
	Username       string `json:"username" validate:"required"`
	Fullname       string `json:"fullname" validate:"required"`
	Phone          string `json:"phone" validate:"required"`
	Email          string `json:"email" validate:"omitempty,email"`
	Password       string `json:"password" validate:"required,min=2,max=72"`
	ProfilePicture string `json:"profilePicture"`
	Bio            string `json:"bio"`
}

type UpdateAdminRequest struct {
	Username       string `json:"username"`
	Fullname       string `json:"fullname"`
	Phone          string `json:"phone"`
	Email          string `json:"email" validate:"omitempty,email"`
	Bio            string `json:"bio"`
	ProfilePicture string `json:"profilePicture"`
	Password       string `json:"password" validate:"omitempty,min=2,max=72"`
}
