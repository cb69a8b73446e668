package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"aqari/internal/config"
	"aqari/internal/domain"
	"aqari/internal/service"
	"aqari/mocks"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:             "test-secret-key-for-unit-tests",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 168 * time.Hour,
		Issuer:             "aqari-test",
	}
}

func hashPassword(password string) string {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return string(hash)
}

func TestAuthService_Login_Success(t *testing.T) {
	tenantRepo := new(mocks.MockTenantRepo)
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, tenantRepo, testJWTConfig())

	tenantID := uuid.New()
	tenant := &domain.Tenant{ID: tenantID, Name: "Gulf PM", Slug: "gulf-pm", IsActive: true}
	user := &domain.User{
		ID:           uuid.New(),
		TenantID:     tenantID,
		Email:        "manager@gulf.ae",
		PasswordHash: hashPassword("password123"),
		Role:         domain.RoleManager,
		IsActive:     true,
	}

	tenantRepo.On("GetBySlug", mock.Anything, "gulf-pm").Return(tenant, nil)
	userRepo.On("GetByEmail", mock.Anything, tenantID, "manager@gulf.ae").Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		TenantSlug: "gulf-pm",
		Email:      "manager@gulf.ae",
		Password:   "password123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.True(t, pair.ExpiresAt.After(time.Now()))

	tenantRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	tenantRepo := new(mocks.MockTenantRepo)
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, tenantRepo, testJWTConfig())

	tenantID := uuid.New()
	tenant := &domain.Tenant{ID: tenantID, Slug: "gulf-pm", IsActive: true}
	user := &domain.User{
		ID:           uuid.New(),
		TenantID:     tenantID,
		Email:        "manager@gulf.ae",
		PasswordHash: hashPassword("correct-password"),
		IsActive:     true,
	}

	tenantRepo.On("GetBySlug", mock.Anything, "gulf-pm").Return(tenant, nil)
	userRepo.On("GetByEmail", mock.Anything, tenantID, "manager@gulf.ae").Return(user, nil)

	_, err := svc.Login(context.Background(), service.LoginInput{
		TenantSlug: "gulf-pm",
		Email:      "manager@gulf.ae",
		Password:   "wrong-password",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveTenant(t *testing.T) {
	tenantRepo := new(mocks.MockTenantRepo)
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, tenantRepo, testJWTConfig())

	tenant := &domain.Tenant{ID: uuid.New(), Slug: "dormant", IsActive: false}
	tenantRepo.On("GetBySlug", mock.Anything, "dormant").Return(tenant, nil)

	_, err := svc.Login(context.Background(), service.LoginInput{
		TenantSlug: "dormant",
		Email:      "manager@gulf.ae",
		Password:   "password123",
	})

	assert.ErrorIs(t, err, domain.ErrTenantInactive)
}

func TestAuthService_Login_UnknownTenantMaskedAsInvalidCredentials(t *testing.T) {
	tenantRepo := new(mocks.MockTenantRepo)
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, tenantRepo, testJWTConfig())

	tenantRepo.On("GetBySlug", mock.Anything, "nope").Return(nil, domain.ErrNotFound)

	_, err := svc.Login(context.Background(), service.LoginInput{
		TenantSlug: "nope",
		Email:      "manager@gulf.ae",
		Password:   "password123",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_ValidateToken_RoundTrip(t *testing.T) {
	tenantRepo := new(mocks.MockTenantRepo)
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, tenantRepo, testJWTConfig())

	tenantID := uuid.New()
	tenant := &domain.Tenant{ID: tenantID, Slug: "gulf-pm", IsActive: true}
	user := &domain.User{
		ID:           uuid.New(),
		TenantID:     tenantID,
		Email:        "admin@gulf.ae",
		PasswordHash: hashPassword("password123"),
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}

	tenantRepo.On("GetBySlug", mock.Anything, "gulf-pm").Return(tenant, nil)
	userRepo.On("GetByEmail", mock.Anything, tenantID, "admin@gulf.ae").Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		TenantSlug: "gulf-pm",
		Email:      "admin@gulf.ae",
		Password:   "password123",
	})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, tenantID, claims.TenantID)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)

	// a refresh token is not an access token
	_, err = svc.ValidateToken(pair.RefreshToken)
	assert.Error(t, err)
}

func TestAuthService_RefreshToken(t *testing.T) {
	tenantRepo := new(mocks.MockTenantRepo)
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, tenantRepo, testJWTConfig())

	tenantID := uuid.New()
	tenant := &domain.Tenant{ID: tenantID, Slug: "gulf-pm", IsActive: true}
	user := &domain.User{
		ID:           uuid.New(),
		TenantID:     tenantID,
		Email:        "admin@gulf.ae",
		PasswordHash: hashPassword("password123"),
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}

	tenantRepo.On("GetBySlug", mock.Anything, "gulf-pm").Return(tenant, nil)
	userRepo.On("GetByEmail", mock.Anything, tenantID, "admin@gulf.ae").Return(user, nil)
	userRepo.On("GetByID", mock.Anything, tenantID, user.ID).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		TenantSlug: "gulf-pm",
		Email:      "admin@gulf.ae",
		Password:   "password123",
	})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}
