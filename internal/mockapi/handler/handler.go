package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Didine-06/travel-agency-sub000/internal/domain"
	"github.com/Didine-06/travel-agency-sub000/internal/mockapi/service"
	"github.com/Didine-06/travel-agency-sub000/pkg/response"
)

// respondServiceError maps service errors to envelope responses.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.NotFound(c, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		response.Error(c, 409, "already exists")
	case errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrInvalidDatetime),
		errors.Is(err, service.ErrTicketPaid),
		errors.Is(err, service.ErrTicketCancelled):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}
