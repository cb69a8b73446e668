package service

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"aqari/internal/domain"
	"aqari/internal/port"
	"aqari/internal/validator"
)

// CreateUserInput is the DTO for creating a user within a tenant.
type CreateUserInput struct {
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=8"`
	FullName string          `json:"full_name" binding:"required"`
	Role     domain.UserRole `json:"role" binding:"required"`
}

// UpdateUserInput is the DTO for updating a user.
type UpdateUserInput struct {
	FullName *string          `json:"full_name"`
	Role     *domain.UserRole `json:"role"`
	IsActive *bool            `json:"is_active"`
}

// UserService defines the user management contract.
type UserService interface {
	Create(ctx context.Context, tenantID uuid.UUID, input CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, tenantID, userID uuid.UUID) (*domain.User, error)
	List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.User, int, error)
	Update(ctx context.Context, tenantID, userID uuid.UUID, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, tenantID, userID uuid.UUID) error
}

type userService struct {
	repo port.UserRepository
}

// NewUserService creates a new UserService implementation.
func NewUserService(repo port.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Create(ctx context.Context, tenantID uuid.UUID, input CreateUserInput) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		TenantID:     tenantID,
		Email:        validator.NormalizeEmail(input.Email),
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

func (s *userService) GetByID(ctx context.Context, tenantID, userID uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, tenantID, userID)
}

func (s *userService) List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.User, int, error) {
	return s.repo.ListByTenant(ctx, tenantID, offset, limit)
}

func (s *userService) Update(ctx context.Context, tenantID, userID uuid.UUID, input UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, tenantID, userID)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, tenantID, userID uuid.UUID) error {
	return s.repo.Delete(ctx, tenantID, userID)
}
