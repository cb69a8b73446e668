package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aqari/internal/service"
	"aqari/internal/validator/forms"
)

// SettingsHandler handles tenant settings endpoints: the company profile and
// payout bank accounts.
type SettingsHandler struct {
	settingsService service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetCompanyProfile handles GET /api/v1/settings/company
// @Summary Get the company profile
// @Tags settings
// @Produce json
// @Success 200 {object} Response{data=domain.CompanyProfile} "Company profile"
// @Failure 404 {object} ErrorResponseBody "Profile not yet saved"
// @Security BearerAuth
// @Router /settings/company [get]
func (h *SettingsHandler) GetCompanyProfile(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	profile, err := h.settingsService.GetCompanyProfile(c.Request.Context(), tenantID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, profile)
}

// SaveCompanyProfile handles PUT /api/v1/settings/company
// @Summary Save the company profile
// @Description Validate and upsert the profile; fields are stored trimmed, email lowercased
// @Tags settings
// @Accept json
// @Produce json
// @Param request body forms.CompanyProfileForm true "Company profile"
// @Success 200 {object} Response{data=domain.CompanyProfile} "Profile saved"
// @Failure 422 {object} ErrorResponseBody "Validation failed"
// @Security BearerAuth
// @Router /settings/company [put]
func (h *SettingsHandler) SaveCompanyProfile(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var form forms.CompanyProfileForm
	if err := c.ShouldBindJSON(&form); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	profile, err := h.settingsService.SaveCompanyProfile(c.Request.Context(), tenantID, form)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, profile)
}

// CreateBankAccount handles POST /api/v1/settings/bank-accounts
// @Summary Add a bank account
// @Tags settings
// @Accept json
// @Produce json
// @Param request body forms.BankAccountForm true "Bank account details"
// @Success 201 {object} Response{data=domain.BankAccount} "Account added"
// @Failure 422 {object} ErrorResponseBody "Validation failed"
// @Security BearerAuth
// @Router /settings/bank-accounts [post]
func (h *SettingsHandler) CreateBankAccount(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var form forms.BankAccountForm
	if err := c.ShouldBindJSON(&form); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	account, err := h.settingsService.CreateBankAccount(c.Request.Context(), tenantID, form)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, account)
}

// ListBankAccounts handles GET /api/v1/settings/bank-accounts
// @Summary List bank accounts
// @Tags settings
// @Produce json
// @Success 200 {object} Response{data=[]domain.BankAccount} "Bank accounts"
// @Security BearerAuth
// @Router /settings/bank-accounts [get]
func (h *SettingsHandler) ListBankAccounts(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	accounts, err := h.settingsService.ListBankAccounts(c.Request.Context(), tenantID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, accounts)
}

// GetBankAccount handles GET /api/v1/settings/bank-accounts/:id
// @Summary Get bank account by ID
// @Tags settings
// @Produce json
// @Param id path string true "Account ID (UUID)"
// @Success 200 {object} Response{data=domain.BankAccount} "Account details"
// @Failure 404 {object} ErrorResponseBody "Account not found"
// @Security BearerAuth
// @Router /settings/bank-accounts/{id} [get]
func (h *SettingsHandler) GetBankAccount(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	account, err := h.settingsService.GetBankAccount(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, account)
}

// UpdateBankAccount handles PUT /api/v1/settings/bank-accounts/:id
// @Summary Update a bank account
// @Description Update account details; the default flag only changes through the set-default endpoint
// @Tags settings
// @Accept json
// @Produce json
// @Param id path string true "Account ID (UUID)"
// @Param request body forms.BankAccountForm true "Bank account details"
// @Success 200 {object} Response{data=domain.BankAccount} "Account updated"
// @Failure 422 {object} ErrorResponseBody "Validation failed"
// @Security BearerAuth
// @Router /settings/bank-accounts/{id} [put]
func (h *SettingsHandler) UpdateBankAccount(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var form forms.BankAccountForm
	if err := c.ShouldBindJSON(&form); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	account, err := h.settingsService.UpdateBankAccount(c.Request.Context(), tenantID, id, form)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, account)
}

// SetDefaultBankAccount handles POST /api/v1/settings/bank-accounts/:id/default
// @Summary Set the default bank account
// @Tags settings
// @Produce json
// @Param id path string true "Account ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Default account set"
// @Failure 404 {object} ErrorResponseBody "Account not found"
// @Security BearerAuth
// @Router /settings/bank-accounts/{id}/default [post]
func (h *SettingsHandler) SetDefaultBankAccount(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.settingsService.SetDefaultBankAccount(c.Request.Context(), tenantID, id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "default account set"})
}

// DeleteBankAccount handles DELETE /api/v1/settings/bank-accounts/:id
// @Summary Delete a bank account
// @Tags settings
// @Produce json
// @Param id path string true "Account ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Account deleted"
// @Security BearerAuth
// @Router /settings/bank-accounts/{id} [delete]
func (h *SettingsHandler) DeleteBankAccount(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.settingsService.DeleteBankAccount(c.Request.Context(), tenantID, id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "bank account deleted"})
}
