package usecase

import (
	"context"
	"fmt"

	"tour-booking/internal/data/repository"
	"tour-booking/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	// IssueToken signs an access token carrying the user's current
	// email and role.
	IssueToken(ctx context.Context, email string) (string, error)
}

type authService struct {
	users  repository.UserRepository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(users repository.UserRepository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		users:  users,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) IssueToken(ctx context.Context, email string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	if user == nil {
		return "", fmt.Errorf("user %s not found", email)
	}

	token, err := utils.GenerateToken(user.Email, string(user.Role), s.config.JWT.Secret, s.config.JWT.ExpiryDays)
	if err != nil {
		s.log.Error("Failed to sign token",
			zap.Error(err),
			zap.String("email", email),
		)
		return "", fmt.Errorf("sign token: %w", err)
	}

	s.log.Info("Token issued",
		zap.String("email", user.Email),
		zap.String("role", string(user.Role)),
	)

	return token, nil
}
