package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"aqari/internal/service"
)

// AttachmentHandler handles attachment upload and download endpoints.
type AttachmentHandler struct {
	attachmentService service.AttachmentService
}

// NewAttachmentHandler creates a new AttachmentHandler.
func NewAttachmentHandler(attachmentService service.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{attachmentService: attachmentService}
}

// Upload handles POST /api/v1/attachments
// @Summary Upload an attachment
// @Description Upload a pdf, jpg, or png and tie it to an owning record
// @Tags attachments
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Param owner_id formData string true "Owning record ID (UUID)"
// @Param owner_kind formData string true "Owning record kind (e.g. inspection, cheque, vendor)"
// @Success 201 {object} Response{data=domain.Attachment} "Attachment uploaded"
// @Failure 400 {object} ErrorResponseBody "Unsupported file type"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Security BearerAuth
// @Router /attachments [post]
func (h *AttachmentHandler) Upload(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	ownerID, err := uuid.Parse(c.PostForm("owner_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "owner_id must be a UUID")
		return
	}
	ownerKind := c.PostForm("owner_kind")
	if ownerKind == "" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "owner_kind is required")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "file is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "could not read uploaded file")
		return
	}
	defer file.Close()

	attachment, err := h.attachmentService.Upload(c.Request.Context(), service.AttachmentUploadInput{
		TenantID:   tenantID,
		UploadedBy: userID,
		OwnerID:    ownerID,
		OwnerKind:  ownerKind,
		File:       file,
		Header:     fileHeader,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, attachment)
}

// ListByOwner handles GET /api/v1/attachments
// @Summary List attachments for a record
// @Tags attachments
// @Produce json
// @Param owner_id query string true "Owning record ID (UUID)"
// @Param owner_kind query string true "Owning record kind"
// @Success 200 {object} Response{data=[]domain.Attachment} "Attachments"
// @Security BearerAuth
// @Router /attachments [get]
func (h *AttachmentHandler) ListByOwner(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	ownerID, err := uuid.Parse(c.Query("owner_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "owner_id must be a UUID")
		return
	}
	ownerKind := c.Query("owner_kind")
	if ownerKind == "" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "owner_kind is required")
		return
	}

	attachments, err := h.attachmentService.ListByOwner(c.Request.Context(), tenantID, ownerID, ownerKind)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, attachments)
}

// GetByID handles GET /api/v1/attachments/:id
// @Summary Get attachment metadata
// @Tags attachments
// @Produce json
// @Param id path string true "Attachment ID (UUID)"
// @Success 200 {object} Response{data=domain.Attachment} "Attachment metadata"
// @Failure 404 {object} ErrorResponseBody "Attachment not found"
// @Security BearerAuth
// @Router /attachments/{id} [get]
func (h *AttachmentHandler) GetByID(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	attachment, err := h.attachmentService.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, attachment)
}

// Download handles GET /api/v1/attachments/:id/download
// @Summary Get a download URL
// @Description Return a short-lived presigned URL for the stored object
// @Tags attachments
// @Produce json
// @Param id path string true "Attachment ID (UUID)"
// @Success 200 {object} Response "Presigned download URL"
// @Failure 404 {object} ErrorResponseBody "Attachment not found"
// @Security BearerAuth
// @Router /attachments/{id}/download [get]
func (h *AttachmentHandler) Download(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	url, err := h.attachmentService.GetDownloadURL(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"download_url": url})
}

// Delete handles DELETE /api/v1/attachments/:id
// @Summary Delete an attachment
// @Tags attachments
// @Produce json
// @Param id path string true "Attachment ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Attachment deleted"
// @Security BearerAuth
// @Router /attachments/{id} [delete]
func (h *AttachmentHandler) Delete(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.attachmentService.Delete(c.Request.Context(), tenantID, id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "attachment deleted"})
}
