package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aqari/internal/service"
	"aqari/internal/validator/forms"
)

// AnnouncementHandler handles announcement endpoints.
type AnnouncementHandler struct {
	announcementService service.AnnouncementService
}

// NewAnnouncementHandler creates a new AnnouncementHandler.
func NewAnnouncementHandler(announcementService service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: announcementService}
}

// Create handles POST /api/v1/announcements
// @Summary Compose an announcement
// @Description Create an announcement draft
// @Tags announcements
// @Accept json
// @Produce json
// @Param request body forms.AnnouncementForm true "Announcement details"
// @Success 201 {object} Response{data=domain.Announcement} "Draft created"
// @Failure 422 {object} ErrorResponseBody "Validation failed"
// @Security BearerAuth
// @Router /announcements [post]
func (h *AnnouncementHandler) Create(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var form forms.AnnouncementForm
	if err := c.ShouldBindJSON(&form); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	announcement, err := h.announcementService.Create(c.Request.Context(), tenantID, userID, form)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, announcement)
}

// List handles GET /api/v1/announcements
// @Summary List announcements
// @Tags announcements
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Announcement,meta=PagMeta} "List of announcements"
// @Security BearerAuth
// @Router /announcements [get]
func (h *AnnouncementHandler) List(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	offset, limit := pagination(c)
	announcements, total, err := h.announcementService.List(c.Request.Context(), tenantID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, announcements, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/announcements/:id
// @Summary Get announcement by ID
// @Tags announcements
// @Produce json
// @Param id path string true "Announcement ID (UUID)"
// @Success 200 {object} Response{data=domain.Announcement} "Announcement details"
// @Failure 404 {object} ErrorResponseBody "Announcement not found"
// @Security BearerAuth
// @Router /announcements/{id} [get]
func (h *AnnouncementHandler) GetByID(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	announcement, err := h.announcementService.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, announcement)
}

// Update handles PUT /api/v1/announcements/:id
// @Summary Edit a draft announcement
// @Description Only drafts are editable; published and archived announcements are frozen
// @Tags announcements
// @Accept json
// @Produce json
// @Param id path string true "Announcement ID (UUID)"
// @Param request body forms.AnnouncementForm true "Announcement details"
// @Success 200 {object} Response{data=domain.Announcement} "Draft updated"
// @Failure 409 {object} ErrorResponseBody "Announcement is not a draft"
// @Failure 422 {object} ErrorResponseBody "Validation failed"
// @Security BearerAuth
// @Router /announcements/{id} [put]
func (h *AnnouncementHandler) Update(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var form forms.AnnouncementForm
	if err := c.ShouldBindJSON(&form); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	announcement, err := h.announcementService.Update(c.Request.Context(), tenantID, id, form)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, announcement)
}

// Publish handles POST /api/v1/announcements/:id/publish
// @Summary Publish an announcement
// @Description Publish a draft and email it to the tenant's active users
// @Tags announcements
// @Produce json
// @Param id path string true "Announcement ID (UUID)"
// @Success 200 {object} Response{data=domain.Announcement} "Announcement published"
// @Failure 409 {object} ErrorResponseBody "Announcement is not a draft"
// @Security BearerAuth
// @Router /announcements/{id}/publish [post]
func (h *AnnouncementHandler) Publish(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	announcement, err := h.announcementService.Publish(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, announcement)
}

// Archive handles POST /api/v1/announcements/:id/archive
// @Summary Archive an announcement
// @Tags announcements
// @Produce json
// @Param id path string true "Announcement ID (UUID)"
// @Success 200 {object} Response{data=domain.Announcement} "Announcement archived"
// @Security BearerAuth
// @Router /announcements/{id}/archive [post]
func (h *AnnouncementHandler) Archive(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	announcement, err := h.announcementService.Archive(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, announcement)
}

// Delete handles DELETE /api/v1/announcements/:id
// @Summary Delete an announcement
// @Tags announcements
// @Produce json
// @Param id path string true "Announcement ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Announcement deleted"
// @Security BearerAuth
// @Router /announcements/{id} [delete]
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.announcementService.Delete(c.Request.Context(), tenantID, id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "announcement deleted"})
}
