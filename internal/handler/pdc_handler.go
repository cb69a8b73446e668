package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"aqari/internal/domain"
	"aqari/internal/port"
	"aqari/internal/service"
	"aqari/internal/validator"
	"aqari/internal/validator/forms"
)

// PdcHandler handles post-dated cheque register endpoints.
type PdcHandler struct {
	pdcService service.PdcService
}

// NewPdcHandler creates a new PdcHandler.
func NewPdcHandler(pdcService service.PdcService) *PdcHandler {
	return &PdcHandler{pdcService: pdcService}
}

// Create handles POST /api/v1/cheques
// @Summary Register a cheque
// @Description Register a post-dated cheque; the due date must not be in the past
// @Tags cheques
// @Accept json
// @Produce json
// @Param request body forms.PdcForm true "Cheque details"
// @Success 201 {object} Response{data=domain.PostDatedCheque} "Cheque registered"
// @Failure 422 {object} ErrorResponseBody "Validation failed"
// @Security BearerAuth
// @Router /cheques [post]
func (h *PdcHandler) Create(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var form forms.PdcForm
	if err := c.ShouldBindJSON(&form); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	cheque, err := h.pdcService.Create(c.Request.Context(), tenantID, userID, form)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, cheque)
}

// List handles GET /api/v1/cheques
// @Summary List cheques
// @Description List the cheque register, optionally filtered by property, status, and due-date window
// @Tags cheques
// @Produce json
// @Param property_id query string false "Filter by property (UUID)"
// @Param status query string false "Filter by status"
// @Param due_before query string false "Due on or before (YYYY-MM-DD)"
// @Param due_after query string false "Due on or after (YYYY-MM-DD)"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.PostDatedCheque,meta=PagMeta} "List of cheques"
// @Security BearerAuth
// @Router /cheques [get]
func (h *PdcHandler) List(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	filters, ok := parsePdcFilters(c)
	if !ok {
		return
	}
	offset, limit := pagination(c)

	cheques, total, err := h.pdcService.List(c.Request.Context(), tenantID, filters, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, cheques, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/cheques/:id
// @Summary Get cheque by ID
// @Tags cheques
// @Produce json
// @Param id path string true "Cheque ID (UUID)"
// @Success 200 {object} Response{data=domain.PostDatedCheque} "Cheque details"
// @Failure 404 {object} ErrorResponseBody "Cheque not found"
// @Security BearerAuth
// @Router /cheques/{id} [get]
func (h *PdcHandler) GetByID(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	cheque, err := h.pdcService.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, cheque)
}

// Update handles PUT /api/v1/cheques/:id
// @Summary Update a cheque
// @Description Update cheque details; status and its timestamps can only change through a transition
// @Tags cheques
// @Accept json
// @Produce json
// @Param id path string true "Cheque ID (UUID)"
// @Param request body forms.PdcForm true "Cheque details"
// @Success 200 {object} Response{data=domain.PostDatedCheque} "Cheque updated"
// @Failure 422 {object} ErrorResponseBody "Validation failed"
// @Security BearerAuth
// @Router /cheques/{id} [put]
func (h *PdcHandler) Update(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var form forms.PdcForm
	if err := c.ShouldBindJSON(&form); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	cheque, err := h.pdcService.Update(c.Request.Context(), tenantID, id, form)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, cheque)
}

// Transition handles POST /api/v1/cheques/:id/transition
// @Summary Transition cheque status
// @Description Move a cheque along its lifecycle; disallowed transitions return 409
// @Tags cheques
// @Accept json
// @Produce json
// @Param id path string true "Cheque ID (UUID)"
// @Param request body TransitionChequeRequest true "Target status"
// @Success 200 {object} Response{data=domain.PostDatedCheque} "Cheque transitioned"
// @Failure 409 {object} ErrorResponseBody "Transition not allowed"
// @Security BearerAuth
// @Router /cheques/{id}/transition [post]
func (h *PdcHandler) Transition(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input service.TransitionPdcInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	cheque, err := h.pdcService.Transition(c.Request.Context(), tenantID, id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, cheque)
}

// NextStatuses handles GET /api/v1/cheques/:id/next-statuses
// @Summary Allowed next statuses
// @Description List the statuses a cheque may transition to from its current state
// @Tags cheques
// @Produce json
// @Param id path string true "Cheque ID (UUID)"
// @Success 200 {object} Response{data=[]string} "Allowed statuses"
// @Failure 404 {object} ErrorResponseBody "Cheque not found"
// @Security BearerAuth
// @Router /cheques/{id}/next-statuses [get]
func (h *PdcHandler) NextStatuses(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	statuses, err := h.pdcService.NextStatuses(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, statuses)
}

// SendReminders handles POST /api/v1/cheques/reminders
// @Summary Send due-soon reminders
// @Description Email admins a reminder for every cheque due within the configured window
// @Tags cheques
// @Produce json
// @Success 200 {object} Response "Number of cheques reminded about"
// @Security BearerAuth
// @Router /cheques/reminders [post]
func (h *PdcHandler) SendReminders(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	count, err := h.pdcService.SendDueReminders(c.Request.Context(), tenantID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"reminded": count})
}

// Delete handles DELETE /api/v1/cheques/:id
// @Summary Delete a cheque
// @Tags cheques
// @Produce json
// @Param id path string true "Cheque ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Cheque deleted"
// @Security BearerAuth
// @Router /cheques/{id} [delete]
func (h *PdcHandler) Delete(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.pdcService.Delete(c.Request.Context(), tenantID, id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "cheque deleted"})
}

// parsePdcFilters reads the optional cheque listing filters from the query
// string, writing a 400 on a malformed value.
func parsePdcFilters(c *gin.Context) (port.PdcFilters, bool) {
	var filters port.PdcFilters

	if v := c.Query("property_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_FILTER", "property_id must be a UUID")
			return filters, false
		}
		filters.PropertyID = &id
	}
	if v := c.Query("status"); v != "" {
		status := domain.PdcStatus(v)
		filters.Status = &status
	}
	if v := c.Query("due_before"); v != "" {
		d, err := time.Parse(validator.DateLayout, v)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_FILTER", "due_before must be YYYY-MM-DD")
			return filters, false
		}
		filters.DueBefore = &d
	}
	if v := c.Query("due_after"); v != "" {
		d, err := time.Parse(validator.DateLayout, v)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_FILTER", "due_after must be YYYY-MM-DD")
			return filters, false
		}
		filters.DueAfter = &d
	}
	return filters, true
}
