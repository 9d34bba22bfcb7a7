package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Didine-06/travel-agency-sub000/internal/dto"
	"github.com/Didine-06/travel-agency-sub000/internal/mockapi/service"
	"github.com/Didine-06/travel-agency-sub000/pkg/response"
)

// DestinationHandler handles destination HTTP requests
type DestinationHandler struct {
	destinations *service.DestinationService
}

// NewDestinationHandler creates a new DestinationHandler
func NewDestinationHandler(destinations *service.DestinationService) *DestinationHandler {
	return &DestinationHandler{destinations: destinations}
}

// List handles GET /api/v1/destinations
func (h *DestinationHandler) List(c *gin.Context) {
	items, err := h.destinations.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, items)
}

// Get handles GET /api/v1/destinations/:id
func (h *DestinationHandler) Get(c *gin.Context) {
	item, err := h.destinations.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, item)
}

// Create handles POST /api/v1/destinations
func (h *DestinationHandler) Create(c *gin.Context) {
	var req dto.CreateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	item, err := h.destinations.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, item)
}

// Update handles PUT /api/v1/destinations/:id
func (h *DestinationHandler) Update(c *gin.Context) {
	var req dto.UpdateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	item, err := h.destinations.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, item)
}

// Delete handles DELETE /api/v1/destinations/:id
func (h *DestinationHandler) Delete(c *gin.Context) {
	if err := h.destinations.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessMessage(c, nil, "destination deleted")
}

// BulkDelete handles POST /api/v1/destinations/bulk-delete
func (h *DestinationHandler) BulkDelete(c *gin.Context) {
	var req dto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.destinations.DeleteMany(c.Request.Context(), req.IDs); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessMessage(c, nil, "destinations deleted")
}

// SetStatus handles PATCH /api/v1/destinations/:id/status
func (h *DestinationHandler) SetStatus(c *gin.Context) {
	var req dto.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.destinations.SetStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessMessage(c, nil, "status updated")
}
