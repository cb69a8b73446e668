package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aqari/internal/service"
	"aqari/internal/validator/forms"
)

// ComplianceHandler handles compliance requirement endpoints.
type ComplianceHandler struct {
	complianceService service.ComplianceService
}

// NewComplianceHandler creates a new ComplianceHandler.
func NewComplianceHandler(complianceService service.ComplianceService) *ComplianceHandler {
	return &ComplianceHandler{complianceService: complianceService}
}

// Create handles POST /api/v1/compliance
// @Summary Create a compliance requirement
// @Tags compliance
// @Accept json
// @Produce json
// @Param request body forms.ComplianceRequirementForm true "Requirement details"
// @Success 201 {object} Response{data=domain.ComplianceRequirement} "Requirement created"
// @Failure 422 {object} ErrorResponseBody "Validation failed"
// @Security BearerAuth
// @Router /compliance [post]
func (h *ComplianceHandler) Create(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var form forms.ComplianceRequirementForm
	if err := c.ShouldBindJSON(&form); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	requirement, err := h.complianceService.Create(c.Request.Context(), tenantID, userID, form)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, requirement)
}

// List handles GET /api/v1/compliance
// @Summary List compliance requirements
// @Tags compliance
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.ComplianceRequirement,meta=PagMeta} "List of requirements"
// @Security BearerAuth
// @Router /compliance [get]
func (h *ComplianceHandler) List(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	offset, limit := pagination(c)
	requirements, total, err := h.complianceService.List(c.Request.Context(), tenantID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, requirements, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// ListForProperty handles GET /api/v1/properties/:id/compliance
// @Summary List requirements applying to a property
// @Tags compliance
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Success 200 {object} Response{data=[]domain.ComplianceRequirement} "Applicable requirements"
// @Security BearerAuth
// @Router /properties/{id}/compliance [get]
func (h *ComplianceHandler) ListForProperty(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	propertyID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	requirements, err := h.complianceService.ListForProperty(c.Request.Context(), tenantID, propertyID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, requirements)
}

// GetByID handles GET /api/v1/compliance/:id
// @Summary Get requirement by ID
// @Tags compliance
// @Produce json
// @Param id path string true "Requirement ID (UUID)"
// @Success 200 {object} Response{data=domain.ComplianceRequirement} "Requirement details"
// @Failure 404 {object} ErrorResponseBody "Requirement not found"
// @Security BearerAuth
// @Router /compliance/{id} [get]
func (h *ComplianceHandler) GetByID(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	requirement, err := h.complianceService.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, requirement)
}

// Update handles PUT /api/v1/compliance/:id
// @Summary Update a requirement
// @Tags compliance
// @Accept json
// @Produce json
// @Param id path string true "Requirement ID (UUID)"
// @Param request body forms.ComplianceRequirementForm true "Requirement details"
// @Success 200 {object} Response{data=domain.ComplianceRequirement} "Requirement updated"
// @Failure 422 {object} ErrorResponseBody "Validation failed"
// @Security BearerAuth
// @Router /compliance/{id} [put]
func (h *ComplianceHandler) Update(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var form forms.ComplianceRequirementForm
	if err := c.ShouldBindJSON(&form); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	requirement, err := h.complianceService.Update(c.Request.Context(), tenantID, id, form)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, requirement)
}

// Delete handles DELETE /api/v1/compliance/:id
// @Summary Delete a requirement
// @Tags compliance
// @Produce json
// @Param id path string true "Requirement ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Requirement deleted"
// @Security BearerAuth
// @Router /compliance/{id} [delete]
func (h *ComplianceHandler) Delete(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.complianceService.Delete(c.Request.Context(), tenantID, id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "requirement deleted"})
}
