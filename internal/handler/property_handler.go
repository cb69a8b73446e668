package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aqari/internal/service"
	"aqari/internal/validator/forms"
)

// PropertyHandler handles property portfolio endpoints.
type PropertyHandler struct {
	propertyService service.PropertyService
}

// NewPropertyHandler creates a new PropertyHandler.
func NewPropertyHandler(propertyService service.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// Create handles POST /api/v1/properties
// @Summary Create a property
// @Tags properties
// @Accept json
// @Produce json
// @Param request body forms.PropertyForm true "Property details"
// @Success 201 {object} Response{data=domain.Property} "Property created"
// @Failure 422 {object} ErrorResponseBody "Validation failed"
// @Security BearerAuth
// @Router /properties [post]
func (h *PropertyHandler) Create(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var form forms.PropertyForm
	if err := c.ShouldBindJSON(&form); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	property, err := h.propertyService.Create(c.Request.Context(), tenantID, form)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, property)
}

// List handles GET /api/v1/properties
// @Summary List properties
// @Tags properties
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Property,meta=PagMeta} "List of properties"
// @Security BearerAuth
// @Router /properties [get]
func (h *PropertyHandler) List(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	offset, limit := pagination(c)
	properties, total, err := h.propertyService.List(c.Request.Context(), tenantID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, properties, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/properties/:id
// @Summary Get property by ID
// @Tags properties
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Success 200 {object} Response{data=domain.Property} "Property details"
// @Failure 404 {object} ErrorResponseBody "Property not found"
// @Security BearerAuth
// @Router /properties/{id} [get]
func (h *PropertyHandler) GetByID(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	property, err := h.propertyService.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, property)
}

// Update handles PUT /api/v1/properties/:id
// @Summary Update a property
// @Tags properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Param request body forms.PropertyForm true "Property details"
// @Success 200 {object} Response{data=domain.Property} "Property updated"
// @Failure 422 {object} ErrorResponseBody "Validation failed"
// @Security BearerAuth
// @Router /properties/{id} [put]
func (h *PropertyHandler) Update(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var form forms.PropertyForm
	if err := c.ShouldBindJSON(&form); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	property, err := h.propertyService.Update(c.Request.Context(), tenantID, id, form)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, property)
}

// Delete handles DELETE /api/v1/properties/:id
// @Summary Delete a property
// @Tags properties
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Property deleted"
// @Security BearerAuth
// @Router /properties/{id} [delete]
func (h *PropertyHandler) Delete(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.propertyService.Delete(c.Request.Context(), tenantID, id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "property deleted"})
}
