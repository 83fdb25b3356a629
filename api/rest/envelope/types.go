package envelope

import (
	"github.com/gin-gonic/gin"
)

const (
	MessageSuccess       = "Success"
	MessageTableNotFound = "Table not found"
)

// Response is the wrapper every /api/game endpoint answers with
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// writes data wrapped in the envelope, code mirrors the HTTP status
func JSON(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Response{
		Code:    status,
		Message: message,
		Data:    data,
	})
}
