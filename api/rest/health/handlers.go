package health

import (
	"net/http"

	"codeberg.org/wepoker/server/api/rest/envelope"
	"github.com/gin-gonic/gin"
)

// Handler returns the server health status
// @Summary Health check
// @Tags game
// @Produce json
// @Success 200 {object} envelope.Response{data=Status}
// @Router /api/game/health [get]
func Handler(c *gin.Context) {
	envelope.JSON(c, http.StatusOK, Message, Status{
		Status:  StatusHealthy,
		Version: Version,
	})
}
