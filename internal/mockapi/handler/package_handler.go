package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Didine-06/travel-agency-sub000/internal/dto"
	"github.com/Didine-06/travel-agency-sub000/internal/mockapi/service"
	"github.com/Didine-06/travel-agency-sub000/pkg/response"
)

// PackageHandler handles travel package HTTP requests
type PackageHandler struct {
	packages *service.PackageService
}

// NewPackageHandler creates a new PackageHandler
func NewPackageHandler(packages *service.PackageService) *PackageHandler {
	return &PackageHandler{packages: packages}
}

// List handles GET /api/v1/packages
func (h *PackageHandler) List(c *gin.Context) {
	items, err := h.packages.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, items)
}

// Get handles GET /api/v1/packages/:id
func (h *PackageHandler) Get(c *gin.Context) {
	item, err := h.packages.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, item)
}

// Create handles POST /api/v1/packages
func (h *PackageHandler) Create(c *gin.Context) {
	var req dto.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	item, err := h.packages.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, item)
}

// Update handles PUT /api/v1/packages/:id
func (h *PackageHandler) Update(c *gin.Context) {
	var req dto.UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	item, err := h.packages.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, item)
}

// Delete handles DELETE /api/v1/packages/:id
func (h *PackageHandler) Delete(c *gin.Context) {
	if err := h.packages.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessMessage(c, nil, "package deleted")
}

// BulkDelete handles POST /api/v1/packages/bulk-delete
func (h *PackageHandler) BulkDelete(c *gin.Context) {
	var req dto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.packages.DeleteMany(c.Request.Context(), req.IDs); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessMessage(c, nil, "packages deleted")
}

// SetStatus handles PATCH /api/v1/packages/:id/status
func (h *PackageHandler) SetStatus(c *gin.Context) {
	var req dto.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.packages.SetStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessMessage(c, nil, "status updated")
}
