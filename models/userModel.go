package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleUser     = "user"
	RoleOperator = "operator"
)

type User struct {
	gorm.Model
	Fullname                    string    `json:"fullname"`
	Email                       string    `json:"email" gorm:"uniqueIndex"`
	Password                    string    `json:"-"`
	Contact                     string    `json:"contact"`
	Address                     string    `json:"address"`
	City                        string    `json:"city"`
	ProfilePicture              string    `json:"profilePicture"`
	Role                        string    `json:"role"`
	LastLogin                   time.Time `json:"lastLogin"`
	IsVerified                  bool      `json:"isVerified"`
	VerificationToken           string    `json:"-"`
	VerificationTokenExpiresAt  time.Time `json:"-"`
	ResetPasswordToken          string    `json:"-"`
	ResetPasswordTokenExpiresAt time.Time `json:"-"`
}

type SignupData struct {
	Fullname string `json:"fullname" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Contact  string `json:"contact" binding:"required"`
}

type LoginData struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
