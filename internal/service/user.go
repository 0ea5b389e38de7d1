package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Adarshcode-012/ActivityHub/internal/domain"
	"github.com/Adarshcode-012/ActivityHub/internal/service/ports"
	"github.com/Adarshcode-012/ActivityHub/internal/validator"
	"github.com/google/uuid"
)

type UserService struct {
	repo   ports.UserRepo
	hasher ports.PasswordHasher
}

func NewUserService(repo ports.UserRepo, hasher ports.PasswordHasher) *UserService {
	return &UserService{repo: repo, hasher: hasher}
}

func (s *UserService) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	input.Email = normalizeEmail(input.Email)
	input.Name = strings.TrimSpace(input.Name)
	if input.Role == "" {
		input.Role = domain.RoleUser
	}

	if err := validator.Validate(ctx, input); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err = s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Ensure returns the user with the input's email, creating it first if needed.
// An existing user is returned as stored; its password and role are not touched.
func (s *UserService) Ensure(ctx context.Context, input domain.CreateUserInput) (*domain.User, bool, error) {
	existing, err := s.repo.GetByEmail(ctx, normalizeEmail(input.Email))
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, false, fmt.Errorf("lookup user: %w", err)
	}

	user, err := s.Create(ctx, input)
	if errors.Is(err, domain.ErrEmailTaken) {
		existing, err = s.repo.GetByEmail(ctx, normalizeEmail(input.Email))
		if err != nil {
			return nil, false, fmt.Errorf("lookup user: %w", err)
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return user, true, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
