package network

import (
	"net/http"

	"codeberg.org/wepoker/server/api/rest/envelope"
	"github.com/gin-gonic/gin"
)

// InfoHandler reports the LAN address for sharing a game link
// @Summary Network info
// @Tags game
// @Produce json
// @Success 200 {object} envelope.Response{data=Info}
// @Router /api/game/network-info [get]
func InfoHandler(port int, detect func() *string) gin.HandlerFunc {
	return func(c *gin.Context) {
		envelope.JSON(c, http.StatusOK, envelope.MessageSuccess, Info{
			LanIP:      detect(),
			ServerPort: ServerPort(c.Request, port),
			Scheme:     Scheme(c.Request),
		})
	}
}

func RegisterRoutes(router *gin.RouterGroup, port int) {
	router.GET("/network-info", InfoHandler(port, DetectLanIPv4))
}
