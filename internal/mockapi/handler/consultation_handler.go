package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Didine-06/travel-agency-sub000/internal/dto"
	"github.com/Didine-06/travel-agency-sub000/internal/mockapi/service"
	"github.com/Didine-06/travel-agency-sub000/pkg/response"
)

// ConsultationHandler handles consultation HTTP requests
type ConsultationHandler struct {
	consultations *service.ConsultationService
}

// NewConsultationHandler creates a new ConsultationHandler
func NewConsultationHandler(consultations *service.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{consultations: consultations}
}

// List handles GET /api/v1/consultations
func (h *ConsultationHandler) List(c *gin.Context) {
	items, err := h.consultations.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, items)
}

// Get handles GET /api/v1/consultations/:id
func (h *ConsultationHandler) Get(c *gin.Context) {
	item, err := h.consultations.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, item)
}

// Create handles POST /api/v1/consultations
func (h *ConsultationHandler) Create(c *gin.Context) {
	var req dto.CreateConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	item, err := h.consultations.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, item)
}

// Delete handles DELETE /api/v1/consultations/:id
func (h *ConsultationHandler) Delete(c *gin.Context) {
	if err := h.consultations.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessMessage(c, nil, "consultation deleted")
}

// BulkDelete handles POST /api/v1/consultations/bulk-delete
func (h *ConsultationHandler) BulkDelete(c *gin.Context) {
	var req dto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.consultations.DeleteMany(c.Request.Context(), req.IDs); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessMessage(c, nil, "consultations deleted")
}

// Close handles PATCH /api/v1/consultations/:id/close
func (h *ConsultationHandler) Close(c *gin.Context) {
	if err := h.consultations.Close(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessMessage(c, nil, "consultation closed")
}
