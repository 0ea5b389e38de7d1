package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Adarshcode-012/ActivityHub/internal/domain"
	"github.com/Adarshcode-012/ActivityHub/internal/service/ports"
	"github.com/Adarshcode-012/ActivityHub/internal/validator"
	"github.com/wb-go/wbf/logger"
)

type AuthService struct {
	users  ports.UserRepo
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	logger logger.Logger
}

func NewAuthService(
	users ports.UserRepo,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	logger logger.Logger,
) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

// Login checks the credentials and issues a bearer token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, input domain.LoginInput) (string, *domain.User, error) {
	input.Email = normalizeEmail(input.Email)
	if err := validator.Validate(ctx, input); err != nil {
		return "", nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("get user: %w", err)
	}

	if err = s.hasher.Compare(user.PasswordHash, input.Password); err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			s.logger.Info("login rejected", logger.String("user_id", user.ID))
		}
		return "", nil, err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info("user logged in",
		logger.String("user_id", user.ID),
		logger.String("role", string(user.Role)),
	)

	return token, user, nil
}
