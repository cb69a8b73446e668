package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aqari/internal/service"
	"aqari/internal/validator/forms"
)

// ViolationHandler handles violation endpoints.
type ViolationHandler struct {
	violationService service.ViolationService
}

// NewViolationHandler creates a new ViolationHandler.
func NewViolationHandler(violationService service.ViolationService) *ViolationHandler {
	return &ViolationHandler{violationService: violationService}
}

// Create handles POST /api/v1/violations
// @Summary Record a violation
// @Description Record a violation; a fine requires an amount, a deadline must not precede the violation date
// @Tags violations
// @Accept json
// @Produce json
// @Param request body forms.ViolationForm true "Violation details"
// @Success 201 {object} Response{data=domain.Violation} "Violation recorded"
// @Failure 422 {object} ErrorResponseBody "Validation failed"
// @Security BearerAuth
// @Router /violations [post]
func (h *ViolationHandler) Create(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var form forms.ViolationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	violation, err := h.violationService.Create(c.Request.Context(), tenantID, userID, form)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, violation)
}

// List handles GET /api/v1/violations
// @Summary List violations
// @Tags violations
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Violation,meta=PagMeta} "List of violations"
// @Security BearerAuth
// @Router /violations [get]
func (h *ViolationHandler) List(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	offset, limit := pagination(c)
	violations, total, err := h.violationService.List(c.Request.Context(), tenantID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, violations, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// ListByProperty handles GET /api/v1/properties/:id/violations
// @Summary List violations for a property
// @Tags violations
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Violation,meta=PagMeta} "List of violations"
// @Security BearerAuth
// @Router /properties/{id}/violations [get]
func (h *ViolationHandler) ListByProperty(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	propertyID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	offset, limit := pagination(c)
	violations, total, err := h.violationService.ListByProperty(c.Request.Context(), tenantID, propertyID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, violations, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/violations/:id
// @Summary Get violation by ID
// @Tags violations
// @Produce json
// @Param id path string true "Violation ID (UUID)"
// @Success 200 {object} Response{data=domain.Violation} "Violation details"
// @Failure 404 {object} ErrorResponseBody "Violation not found"
// @Security BearerAuth
// @Router /violations/{id} [get]
func (h *ViolationHandler) GetByID(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	violation, err := h.violationService.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, violation)
}

// Update handles PUT /api/v1/violations/:id
// @Summary Update a violation
// @Tags violations
// @Accept json
// @Produce json
// @Param id path string true "Violation ID (UUID)"
// @Param request body forms.ViolationForm true "Violation details"
// @Success 200 {object} Response{data=domain.Violation} "Violation updated"
// @Failure 422 {object} ErrorResponseBody "Validation failed"
// @Security BearerAuth
// @Router /violations/{id} [put]
func (h *ViolationHandler) Update(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var form forms.ViolationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	violation, err := h.violationService.Update(c.Request.Context(), tenantID, id, form)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, violation)
}

// Delete handles DELETE /api/v1/violations/:id
// @Summary Delete a violation
// @Tags violations
// @Produce json
// @Param id path string true "Violation ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Violation deleted"
// @Security BearerAuth
// @Router /violations/{id} [delete]
func (h *ViolationHandler) Delete(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.violationService.Delete(c.Request.Context(), tenantID, id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "violation deleted"})
}
