package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aqari/internal/service"
	"aqari/internal/validator/forms"
)

// VendorHandler handles the vendor directory endpoints.
type VendorHandler struct {
	vendorService service.VendorService
}

// NewVendorHandler creates a new VendorHandler.
func NewVendorHandler(vendorService service.VendorService) *VendorHandler {
	return &VendorHandler{vendorService: vendorService}
}

// Create handles POST /api/v1/vendors
// @Summary Register a vendor
// @Tags vendors
// @Accept json
// @Produce json
// @Param request body forms.VendorForm true "Vendor details"
// @Success 201 {object} Response{data=domain.Vendor} "Vendor registered"
// @Failure 422 {object} ErrorResponseBody "Validation failed"
// @Security BearerAuth
// @Router /vendors [post]
func (h *VendorHandler) Create(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var form forms.VendorForm
	if err := c.ShouldBindJSON(&form); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	vendor, err := h.vendorService.Create(c.Request.Context(), tenantID, form)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, vendor)
}

// List handles GET /api/v1/vendors
// @Summary List vendors
// @Tags vendors
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Vendor,meta=PagMeta} "List of vendors"
// @Security BearerAuth
// @Router /vendors [get]
func (h *VendorHandler) List(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	offset, limit := pagination(c)
	vendors, total, err := h.vendorService.List(c.Request.Context(), tenantID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, vendors, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/vendors/:id
// @Summary Get vendor by ID
// @Tags vendors
// @Produce json
// @Param id path string true "Vendor ID (UUID)"
// @Success 200 {object} Response{data=domain.Vendor} "Vendor details"
// @Failure 404 {object} ErrorResponseBody "Vendor not found"
// @Security BearerAuth
// @Router /vendors/{id} [get]
func (h *VendorHandler) GetByID(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	vendor, err := h.vendorService.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, vendor)
}

// Update handles PUT /api/v1/vendors/:id
// @Summary Update a vendor
// @Tags vendors
// @Accept json
// @Produce json
// @Param id path string true "Vendor ID (UUID)"
// @Param request body forms.VendorForm true "Vendor details"
// @Success 200 {object} Response{data=domain.Vendor} "Vendor updated"
// @Failure 422 {object} ErrorResponseBody "Validation failed"
// @Security BearerAuth
// @Router /vendors/{id} [put]
func (h *VendorHandler) Update(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var form forms.VendorForm
	if err := c.ShouldBindJSON(&form); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	vendor, err := h.vendorService.Update(c.Request.Context(), tenantID, id, form)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, vendor)
}

// Delete handles DELETE /api/v1/vendors/:id
// @Summary Delete a vendor
// @Tags vendors
// @Produce json
// @Param id path string true "Vendor ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Vendor deleted"
// @Security BearerAuth
// @Router /vendors/{id} [delete]
func (h *VendorHandler) Delete(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.vendorService.Delete(c.Request.Context(), tenantID, id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "vendor deleted"})
}

// AssetHandler handles the asset register endpoints.
type AssetHandler struct {
	assetService service.AssetService
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(assetService service.AssetService) *AssetHandler {
	return &AssetHandler{assetService: assetService}
}

// Create handles POST /api/v1/assets
// @Summary Register an asset
// @Tags assets
// @Accept json
// @Produce json
// @Param request body forms.AssetForm true "Asset details"
// @Success 201 {object} Response{data=domain.Asset} "Asset registered"
// @Failure 422 {object} ErrorResponseBody "Validation failed"
// @Security BearerAuth
// @Router /assets [post]
func (h *AssetHandler) Create(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var form forms.AssetForm
	if err := c.ShouldBindJSON(&form); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	asset, err := h.assetService.Create(c.Request.Context(), tenantID, form)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, asset)
}

// List handles GET /api/v1/assets
// @Summary List assets
// @Tags assets
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Asset,meta=PagMeta} "List of assets"
// @Security BearerAuth
// @Router /assets [get]
func (h *AssetHandler) List(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	offset, limit := pagination(c)
	assets, total, err := h.assetService.List(c.Request.Context(), tenantID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, assets, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// ListByProperty handles GET /api/v1/properties/:id/assets
// @Summary List assets for a property
// @Tags assets
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Asset,meta=PagMeta} "List of assets"
// @Security BearerAuth
// @Router /properties/{id}/assets [get]
func (h *AssetHandler) ListByProperty(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	propertyID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	offset, limit := pagination(c)
	assets, total, err := h.assetService.ListByProperty(c.Request.Context(), tenantID, propertyID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, assets, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/assets/:id
// @Summary Get asset by ID
// @Tags assets
// @Produce json
// @Param id path string true "Asset ID (UUID)"
// @Success 200 {object} Response{data=domain.Asset} "Asset details"
// @Failure 404 {object} ErrorResponseBody "Asset not found"
// @Security BearerAuth
// @Router /assets/{id} [get]
func (h *AssetHandler) GetByID(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	asset, err := h.assetService.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, asset)
}

// Update handles PUT /api/v1/assets/:id
// @Summary Update an asset
// @Tags assets
// @Accept json
// @Produce json
// @Param id path string true "Asset ID (UUID)"
// @Param request body forms.AssetForm true "Asset details"
// @Success 200 {object} Response{data=domain.Asset} "Asset updated"
// @Failure 422 {object} ErrorResponseBody "Validation failed"
// @Security BearerAuth
// @Router /assets/{id} [put]
func (h *AssetHandler) Update(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var form forms.AssetForm
	if err := c.ShouldBindJSON(&form); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	asset, err := h.assetService.Update(c.Request.Context(), tenantID, id, form)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, asset)
}

// Delete handles DELETE /api/v1/assets/:id
// @Summary Delete an asset
// @Tags assets
// @Produce json
// @Param id path string true "Asset ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Asset deleted"
// @Security BearerAuth
// @Router /assets/{id} [delete]
func (h *AssetHandler) Delete(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.assetService.Delete(c.Request.Context(), tenantID, id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "asset deleted"})
}
