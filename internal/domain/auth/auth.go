package auth

import (
	"context"
	"errors"
	"time"

	"github.com/workforcehq/workforce-backend-go/internal/pkg/validator"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// User is an API account. EmployeeID links non-admin accounts to their
// employee row.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	FullName     string
	IsAdmin      bool
	EmployeeID   *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, user User) (User, error)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is invalid"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	FullName   string `json:"fullName"`
	IsAdmin    bool   `json:"isAdmin"`
	EmployeeID *int64 `json:"employeeId,omitempty"`
}
