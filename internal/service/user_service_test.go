package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"aqari/internal/domain"
	"aqari/internal/service"
	"aqari/mocks"
)

func TestUserService_Create(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewUserService(repo)

	tenantID := uuid.New()
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	user, err := svc.Create(context.Background(), tenantID, service.CreateUserInput{
		Email:    "  Manager@Gulf.AE ",
		Password: "password123",
		FullName: "Manager",
		Role:     domain.RoleManager,
	})

	require.NoError(t, err)
	assert.Equal(t, "manager@gulf.ae", user.Email)
	assert.True(t, user.IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
	assert.NotEqual(t, "password123", user.PasswordHash)
}

func TestUserService_Update_PartialFields(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewUserService(repo)

	tenantID := uuid.New()
	userID := uuid.New()
	existing := &domain.User{
		ID:       userID,
		TenantID: tenantID,
		FullName: "Old Name",
		Role:     domain.RoleMember,
		IsActive: true,
	}

	repo.On("GetByID", mock.Anything, tenantID, userID).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	inactive := false
	updated, err := svc.Update(context.Background(), tenantID, userID, service.UpdateUserInput{
		IsActive: &inactive,
	})

	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "Old Name", updated.FullName)
	assert.Equal(t, domain.RoleMember, updated.Role)
}
