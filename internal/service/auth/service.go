package auth

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/workforcehq/workforce-backend-go/internal/domain/auth"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/jwt"
)

type Service interface {
	Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error)
}

type service struct {
	userRepo auth.UserRepository
	jwt      jwt.Service
	logger   *slog.Logger
}

func NewService(userRepo auth.UserRepository, jwtService jwt.Service, logger *slog.Logger) Service {
	return &service{
		userRepo: userRepo,
		jwt:      jwtService,
		logger:   logger,
	}
}

// Login implements Service. Unknown emails and bad passwords both come back
// as ErrInvalidCredentials so the response does not leak which one it was.
func (s *service) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, _, err := s.jwt.GenerateAccessToken(user.ID, user.Email, user.IsAdmin, user.EmployeeID)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	s.logger.Info("user logged in", "user_id", user.ID)

	return auth.LoginResponse{
		Token: token,
		User: auth.UserResponse{
			ID:         user.ID,
			Email:      user.Email,
			FullName:   user.FullName,
			IsAdmin:    user.IsAdmin,
			EmployeeID: user.EmployeeID,
		},
	}, nil
}
