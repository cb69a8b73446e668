package handler

import (
	"time"

	"aqari/internal/domain"
)

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// LoginRequest represents the login request body.
type LoginRequest struct {
	TenantSlug string `json:"tenant_slug" binding:"required" example:"gulf-pm"`
	Email      string `json:"email" binding:"required" example:"admin@gulf.ae"`
	Password   string `json:"password" binding:"required" example:"securepassword123"`
}

// RefreshRequest represents the token refresh request body.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// CreateTenantRequest represents the create tenant request body.
type CreateTenantRequest struct {
	Name string `json:"name" binding:"required" example:"Gulf Property Management"`
	Slug string `json:"slug" binding:"required" example:"gulf-pm"`
}

// UpdateTenantRequest represents the update tenant request body.
type UpdateTenantRequest struct {
	Name     *string `json:"name" example:"Gulf PM Holdings"`
	Slug     *string `json:"slug" example:"gulf-pm-holdings"`
	IsActive *bool   `json:"is_active" example:"false"`
}

// CreateUserRequest represents the create user request body.
type CreateUserRequest struct {
	Email    string          `json:"email" binding:"required" example:"jane.doe@gulf.ae"`
	Password string          `json:"password" binding:"required" example:"securepassword123"`
	FullName string          `json:"full_name" binding:"required" example:"Jane Doe"`
	Role     domain.UserRole `json:"role" binding:"required" example:"member"`
}

// UpdateUserRequest represents the update user request body.
type UpdateUserRequest struct {
	FullName *string          `json:"full_name" example:"Jane Smith"`
	Role     *domain.UserRole `json:"role" example:"manager"`
	IsActive *bool            `json:"is_active" example:"true"`
}

// TransitionChequeRequest represents the cheque transition request body.
type TransitionChequeRequest struct {
	Status domain.PdcStatus `json:"status" binding:"required" example:"DEPOSITED"`
	Notes  string           `json:"notes" example:"deposited at Deira branch"`
}

// --- Response Types ---

// TokenResponse represents the authentication token response.
type TokenResponse struct {
	AccessToken  string    `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string    `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt    time.Time `json:"expires_at" example:"2026-09-15T10:30:00Z"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed successfully"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
