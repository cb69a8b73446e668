package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aqari/internal/derive"
	"aqari/internal/service"
	"aqari/internal/validator/forms"
)

// CheckoutHandler handles tenant checkout case endpoints.
type CheckoutHandler struct {
	checkoutService service.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Create handles POST /api/v1/checkouts
// @Summary Open a checkout case
// @Description Open a move-out case; a unit can only have one open case at a time
// @Tags checkouts
// @Accept json
// @Produce json
// @Param request body forms.CheckoutForm true "Checkout details"
// @Success 201 {object} Response{data=domain.CheckoutCase} "Checkout opened"
// @Failure 409 {object} ErrorResponseBody "Unit already has an open checkout"
// @Failure 422 {object} ErrorResponseBody "Validation failed"
// @Security BearerAuth
// @Router /checkouts [post]
func (h *CheckoutHandler) Create(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var form forms.CheckoutForm
	if err := c.ShouldBindJSON(&form); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	checkout, err := h.checkoutService.Create(c.Request.Context(), tenantID, userID, form)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, checkout)
}

// List handles GET /api/v1/checkouts
// @Summary List checkout cases
// @Tags checkouts
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.CheckoutCase,meta=PagMeta} "List of checkouts"
// @Security BearerAuth
// @Router /checkouts [get]
func (h *CheckoutHandler) List(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	offset, limit := pagination(c)
	checkouts, total, err := h.checkoutService.List(c.Request.Context(), tenantID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, checkouts, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/checkouts/:id
// @Summary Get checkout by ID
// @Tags checkouts
// @Produce json
// @Param id path string true "Checkout ID (UUID)"
// @Success 200 {object} Response "Checkout details with the derived notice period"
// @Failure 404 {object} ErrorResponseBody "Checkout not found"
// @Security BearerAuth
// @Router /checkouts/{id} [get]
func (h *CheckoutHandler) GetByID(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	checkout, err := h.checkoutService.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	months, days := derive.Span(checkout.NoticeDate, checkout.MoveOutDate)
	RespondOK(c, gin.H{
		"checkout":      checkout,
		"notice_period": derive.FormatSpan(months, days),
	})
}

// Update handles PUT /api/v1/checkouts/:id
// @Summary Update a checkout case
// @Description Update a case; once a refund is issued the case is frozen
// @Tags checkouts
// @Accept json
// @Produce json
// @Param id path string true "Checkout ID (UUID)"
// @Param request body forms.CheckoutForm true "Checkout details"
// @Success 200 {object} Response{data=domain.CheckoutCase} "Checkout updated"
// @Failure 409 {object} ErrorResponseBody "Refund already issued"
// @Failure 422 {object} ErrorResponseBody "Validation failed"
// @Security BearerAuth
// @Router /checkouts/{id} [put]
func (h *CheckoutHandler) Update(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var form forms.CheckoutForm
	if err := c.ShouldBindJSON(&form); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	checkout, err := h.checkoutService.Update(c.Request.Context(), tenantID, id, form)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, checkout)
}

// IssueRefund handles POST /api/v1/checkouts/:id/refund
// @Summary Issue the deposit refund
// @Description Issue the refund; bank transfer needs full bank details, cash needs acknowledgement
// @Tags checkouts
// @Accept json
// @Produce json
// @Param id path string true "Checkout ID (UUID)"
// @Param request body forms.RefundForm true "Refund details"
// @Success 200 {object} Response{data=domain.CheckoutCase} "Refund issued"
// @Failure 409 {object} ErrorResponseBody "Refund already issued"
// @Failure 422 {object} ErrorResponseBody "Validation failed"
// @Security BearerAuth
// @Router /checkouts/{id}/refund [post]
func (h *CheckoutHandler) IssueRefund(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var form forms.RefundForm
	if err := c.ShouldBindJSON(&form); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	checkout, err := h.checkoutService.IssueRefund(c.Request.Context(), tenantID, id, form)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, checkout)
}

// Delete handles DELETE /api/v1/checkouts/:id
// @Summary Delete a checkout case
// @Tags checkouts
// @Produce json
// @Param id path string true "Checkout ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Checkout deleted"
// @Security BearerAuth
// @Router /checkouts/{id} [delete]
func (h *CheckoutHandler) Delete(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.checkoutService.Delete(c.Request.Context(), tenantID, id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "checkout deleted"})
}
