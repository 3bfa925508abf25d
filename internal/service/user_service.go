package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"designdesk/internal/domain"
	"designdesk/internal/port"
)

// CreateUserInput is the DTO for creating a user account.
type CreateUserInput struct {
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=8"`
	FullName string          `json:"full_name" binding:"required"`
	Role     domain.UserRole `json:"role" binding:"required"`
}

// UserService defines the user administration contract. There is no open
// registration; accounts are created by an admin.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	SetRole(ctx context.Context, id uuid.UUID, role domain.UserRole) error
}

type userService struct {
	repo port.UserRepository
}

// NewUserService creates a new UserService implementation.
func NewUserService(repo port.UserRepository) UserService {
	return &userService{repo: repo}
}

var validRoles = map[domain.UserRole]bool{
	domain.RoleAdmin:    true,
	domain.RoleDesigner: true,
	domain.RoleAccounts: true,
}

func (s *userService) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if !validRoles[input.Role] {
		return nil, fmt.Errorf("invalid role %q; allowed: admin, designer, accounts", input.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &domain.User{
		Email:        input.Email,
		PasswordHash: string(hash),
		FullName:     input.FullName,
		Role:         input.Role,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) List(ctx context.Context, offset, limit int) ([]domain.User, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *userService) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	user.IsActive = active
	return s.repo.Update(ctx, user)
}

func (s *userService) SetRole(ctx context.Context, id uuid.UUID, role domain.UserRole) error {
	if !validRoles[role] {
		return fmt.Errorf("invalid role %q; allowed: admin, designer, accounts", role)
	}
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	user.Role = role
	return s.repo.Update(ctx, user)
}
