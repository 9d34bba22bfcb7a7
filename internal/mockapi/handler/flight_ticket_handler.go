package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Didine-06/travel-agency-sub000/internal/dto"
	"github.com/Didine-06/travel-agency-sub000/internal/mockapi/service"
	"github.com/Didine-06/travel-agency-sub000/pkg/response"
)

// FlightTicketHandler handles flight ticket HTTP requests
type FlightTicketHandler struct {
	tickets *service.FlightTicketService
}

// NewFlightTicketHandler creates a new FlightTicketHandler
func NewFlightTicketHandler(tickets *service.FlightTicketService) *FlightTicketHandler {
	return &FlightTicketHandler{tickets: tickets}
}

// List handles GET /api/v1/flight-tickets
func (h *FlightTicketHandler) List(c *gin.Context) {
	items, err := h.tickets.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, items)
}

// Get handles GET /api/v1/flight-tickets/:id
func (h *FlightTicketHandler) Get(c *gin.Context) {
	item, err := h.tickets.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, item)
}

// Create handles POST /api/v1/flight-tickets
func (h *FlightTicketHandler) Create(c *gin.Context) {
	var req dto.CreateFlightTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	item, err := h.tickets.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, item)
}

// Update handles PUT /api/v1/flight-tickets/:id
func (h *FlightTicketHandler) Update(c *gin.Context) {
	var req dto.UpdateFlightTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	item, err := h.tickets.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, item)
}

// Delete handles DELETE /api/v1/flight-tickets/:id
func (h *FlightTicketHandler) Delete(c *gin.Context) {
	if err := h.tickets.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessMessage(c, nil, "ticket deleted")
}

// BulkDelete handles POST /api/v1/flight-tickets/bulk-delete
func (h *FlightTicketHandler) BulkDelete(c *gin.Context) {
	var req dto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.tickets.DeleteMany(c.Request.Context(), req.IDs); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessMessage(c, nil, "tickets deleted")
}

// MarkPaid handles PATCH /api/v1/flight-tickets/:id/pay
func (h *FlightTicketHandler) MarkPaid(c *gin.Context) {
	if err := h.tickets.MarkPaid(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessMessage(c, nil, "ticket paid")
}

// Cancel handles PATCH /api/v1/flight-tickets/:id/cancel
func (h *FlightTicketHandler) Cancel(c *gin.Context) {
	if err := h.tickets.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessMessage(c, nil, "ticket cancelled")
}
