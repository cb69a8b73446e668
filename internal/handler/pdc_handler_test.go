package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"aqari/internal/domain"
	"aqari/internal/handler"
	"aqari/internal/middleware"
	"aqari/internal/service"
	"aqari/internal/validator"
	"aqari/mocks"
)

// authStub injects tenant and user context the way AuthMiddleware would.
func authStub(tenantID, userID uuid.UUID, role domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextKeyTenantID, tenantID)
		c.Set(middleware.ContextKeyUserID, userID)
		c.Set(middleware.ContextKeyRole, string(role))
		c.Next()
	}
}

func newPdcRouter(repo *mocks.MockPdcRepo, tenantID, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewPdcService(repo, new(mocks.MockUserRepo), new(mocks.MockEmailSender), 7)
	h := handler.NewPdcHandler(svc)

	r := gin.New()
	r.Use(authStub(tenantID, userID, domain.RoleManager))
	r.POST("/cheques", h.Create)
	r.POST("/cheques/:id/transition", h.Transition)
	r.GET("/cheques/:id/next-statuses", h.NextStatuses)
	return r
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPdcHandler_Create(t *testing.T) {
	repo := new(mocks.MockPdcRepo)
	tenantID, userID := uuid.New(), uuid.New()
	r := newPdcRouter(repo, tenantID, userID)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.PostDatedCheque")).Return(nil)

	w := postJSON(r, "/cheques", gin.H{
		"property_id":   uuid.New().String(),
		"lease_ref":     "L-2026-001",
		"cheque_number": "100045",
		"bank_name":     "Emirates NBD",
		"amount":        42500,
		"due_date":      time.Now().UTC().Add(72 * time.Hour).Format(validator.DateLayout),
		"status":        "RECEIVED",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestPdcHandler_Create_ValidationFailed(t *testing.T) {
	repo := new(mocks.MockPdcRepo)
	r := newPdcRouter(repo, uuid.New(), uuid.New())

	w := postJSON(r, "/cheques", gin.H{
		"property_id": "not-a-uuid",
		"amount":      0,
		"due_date":    "2020-01-01",
	})

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
	assert.Contains(t, resp.Error.Fields, "cheque_number")
	assert.Contains(t, resp.Error.Fields, "amount")
	assert.Contains(t, resp.Error.Fields, "due_date")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPdcHandler_Transition_Conflict(t *testing.T) {
	repo := new(mocks.MockPdcRepo)
	tenantID := uuid.New()
	r := newPdcRouter(repo, tenantID, uuid.New())

	chequeID := uuid.New()
	cheque := &domain.PostDatedCheque{ID: chequeID, TenantID: tenantID, Status: domain.PdcStatusCleared}
	repo.On("GetByID", mock.Anything, tenantID, chequeID).Return(cheque, nil)

	w := postJSON(r, "/cheques/"+chequeID.String()+"/transition", gin.H{"status": "DEPOSITED"})

	require.Equal(t, http.StatusConflict, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_TRANSITION", resp.Error.Code)
}

func TestPdcHandler_NextStatuses(t *testing.T) {
	repo := new(mocks.MockPdcRepo)
	tenantID := uuid.New()
	r := newPdcRouter(repo, tenantID, uuid.New())

	chequeID := uuid.New()
	cheque := &domain.PostDatedCheque{ID: chequeID, TenantID: tenantID, Status: domain.PdcStatusReceived}
	repo.On("GetByID", mock.Anything, tenantID, chequeID).Return(cheque, nil)

	req := httptest.NewRequest(http.MethodGet, "/cheques/"+chequeID.String()+"/next-statuses", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "DEPOSITED")
	assert.Contains(t, w.Body.String(), "WITHDRAWN")
}
