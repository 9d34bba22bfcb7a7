package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Didine-06/travel-agency-sub000/internal/dto"
	"github.com/Didine-06/travel-agency-sub000/internal/mockapi/middleware"
	"github.com/Didine-06/travel-agency-sub000/internal/mockapi/service"
	"github.com/Didine-06/travel-agency-sub000/pkg/response"
)

// BookingHandler handles booking HTTP requests
type BookingHandler struct {
	bookings *service.BookingService
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(bookings *service.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// List handles GET /api/v1/bookings
func (h *BookingHandler) List(c *gin.Context) {
	items, err := h.bookings.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, items)
}

// Get handles GET /api/v1/bookings/:id
func (h *BookingHandler) Get(c *gin.Context) {
	item, err := h.bookings.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, item)
}

// Create handles POST /api/v1/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	clientID := c.GetString(middleware.CtxUserID)
	item, err := h.bookings.Create(c.Request.Context(), clientID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, item)
}

// Delete handles DELETE /api/v1/bookings/:id
func (h *BookingHandler) Delete(c *gin.Context) {
	if err := h.bookings.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessMessage(c, nil, "booking deleted")
}

// BulkDelete handles POST /api/v1/bookings/bulk-delete
func (h *BookingHandler) BulkDelete(c *gin.Context) {
	var req dto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.bookings.DeleteMany(c.Request.Context(), req.IDs); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessMessage(c, nil, "bookings deleted")
}

// Confirm handles PATCH /api/v1/bookings/:id/confirm
func (h *BookingHandler) Confirm(c *gin.Context) {
	if err := h.bookings.Confirm(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessMessage(c, nil, "booking confirmed")
}

// Cancel handles PATCH /api/v1/bookings/:id/cancel
func (h *BookingHandler) Cancel(c *gin.Context) {
	if err := h.bookings.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessMessage(c, nil, "booking cancelled")
}
