package authapimodels

import (
	"strings"

	"github.com/pkg/errors"

	"hiring-backend/models"
)

type RegisterRequest struct {
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Role     models.UserRole `json:"role"`
}

func (r RegisterRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" || r.Password == "" {
		return errors.New("email and password are required")
	}
	if len(r.Password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	if r.Role != "" && !r.Role.Valid() {
		return errors.New("invalid role specified")
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return errors.New("email and password are required")
	}
	return nil
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (r UpdatePasswordRequest) Validate() error {
	if r.CurrentPassword == "" || r.NewPassword == "" {
		return errors.New("current and new passwords are required")
	}
	if len(r.NewPassword) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}

type UpdateRoleRequest struct {
	UserID  string          `json:"user_id"`
	NewRole models.UserRole `json:"new_role"`
}

func (r UpdateRoleRequest) Validate() error {
	if r.UserID == "" || r.NewRole == "" {
		return errors.New("user_id and new_role are required")
	}
	if !r.NewRole.Valid() {
		return errors.New("invalid role specified")
	}
	return nil
}

type TokenResponse struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

type UserView struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Email  string          `json:"email"`
	Role   models.UserRole `json:"role"`
	Active bool            `json:"active"`
}
