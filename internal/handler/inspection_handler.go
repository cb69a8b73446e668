package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aqari/internal/service"
	"aqari/internal/validator/forms"
)

// InspectionHandler handles inspection endpoints.
type InspectionHandler struct {
	inspectionService service.InspectionService
}

// NewInspectionHandler creates a new InspectionHandler.
func NewInspectionHandler(inspectionService service.InspectionService) *InspectionHandler {
	return &InspectionHandler{inspectionService: inspectionService}
}

// Create handles POST /api/v1/inspections
// @Summary Schedule an inspection
// @Description Schedule an inspection; the scheduled date must be today or later
// @Tags inspections
// @Accept json
// @Produce json
// @Param request body forms.InspectionForm true "Inspection details"
// @Success 201 {object} Response{data=domain.Inspection} "Inspection scheduled"
// @Failure 422 {object} ErrorResponseBody "Validation failed"
// @Security BearerAuth
// @Router /inspections [post]
func (h *InspectionHandler) Create(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var form forms.InspectionForm
	if err := c.ShouldBindJSON(&form); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	inspection, err := h.inspectionService.Create(c.Request.Context(), tenantID, userID, form)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, inspection)
}

// List handles GET /api/v1/inspections
// @Summary List inspections
// @Tags inspections
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Inspection,meta=PagMeta} "List of inspections"
// @Security BearerAuth
// @Router /inspections [get]
func (h *InspectionHandler) List(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	offset, limit := pagination(c)
	inspections, total, err := h.inspectionService.List(c.Request.Context(), tenantID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, inspections, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// ListByProperty handles GET /api/v1/properties/:id/inspections
// @Summary List inspections for a property
// @Tags inspections
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Inspection,meta=PagMeta} "List of inspections"
// @Security BearerAuth
// @Router /properties/{id}/inspections [get]
func (h *InspectionHandler) ListByProperty(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	propertyID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	offset, limit := pagination(c)
	inspections, total, err := h.inspectionService.ListByProperty(c.Request.Context(), tenantID, propertyID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, inspections, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/inspections/:id
// @Summary Get inspection by ID
// @Tags inspections
// @Produce json
// @Param id path string true "Inspection ID (UUID)"
// @Success 200 {object} Response{data=domain.Inspection} "Inspection details"
// @Failure 404 {object} ErrorResponseBody "Inspection not found"
// @Security BearerAuth
// @Router /inspections/{id} [get]
func (h *InspectionHandler) GetByID(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	inspection, err := h.inspectionService.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, inspection)
}

// Update handles PUT /api/v1/inspections/:id
// @Summary Update an inspection
// @Description Update an inspection; a terminal status requires a result, and a failed result requires issues
// @Tags inspections
// @Accept json
// @Produce json
// @Param id path string true "Inspection ID (UUID)"
// @Param request body forms.InspectionForm true "Inspection details"
// @Success 200 {object} Response{data=domain.Inspection} "Inspection updated"
// @Failure 422 {object} ErrorResponseBody "Validation failed"
// @Security BearerAuth
// @Router /inspections/{id} [put]
func (h *InspectionHandler) Update(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var form forms.InspectionForm
	if err := c.ShouldBindJSON(&form); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	inspection, err := h.inspectionService.Update(c.Request.Context(), tenantID, id, form)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, inspection)
}

// Delete handles DELETE /api/v1/inspections/:id
// @Summary Delete an inspection
// @Tags inspections
// @Produce json
// @Param id path string true "Inspection ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Inspection deleted"
// @Security BearerAuth
// @Router /inspections/{id} [delete]
func (h *InspectionHandler) Delete(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.inspectionService.Delete(c.Request.Context(), tenantID, id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "inspection deleted"})
}
