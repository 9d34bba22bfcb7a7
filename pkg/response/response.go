package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the wire format shared by every API endpoint. The client side
// decodes the same shape in internal/apiclient.
type Envelope struct {
	IsSuccess  bool        `json:"isSuccess"`
	IsError    bool        `json:"isError"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	ResultInfo interface{} `json:"resultInfo,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{
		IsSuccess: true,
		Data:      data,
	})
}

func SuccessMessage(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Envelope{
		IsSuccess: true,
		Data:      data,
		Message:   message,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{
		IsSuccess: true,
		Data:      data,
	})
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{
		IsError: true,
		Message: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

func InternalError(c *gin.Context, err error) {
	Error(c, http.StatusInternalServerError, err.Error())
}
