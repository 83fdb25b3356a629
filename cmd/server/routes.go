package main

import (
	"strings"

	"codeberg.org/wepoker/server/api/rest/apidocs"
	"codeberg.org/wepoker/server/api/rest/health"
	"codeberg.org/wepoker/server/api/rest/network"
	"codeberg.org/wepoker/server/api/rest/tables"
	"codeberg.org/wepoker/server/api/rest/web"
	apierrors "codeberg.org/wepoker/server/internal/errors"
	"codeberg.org/wepoker/server/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	apiPrefix  = "/api/game"
	healthPath = apiPrefix + "/health"
)

// sets up all routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(),
	)

	if server.limiter != nil {
		router.Use(server.limiter.Middleware())
	}

	// CORS stays on the API group so unmatched preflights still reach the 404 handler
	game := router.Group(apiPrefix, middleware.CORS(server.config.AllowedOrigins))

	{
		game.GET("/health", health.Handler)
		game.GET("/docs", apidocs.Handler)

		tables.RegisterRoutes(game)
		network.RegisterRoutes(game, server.config.Port)
	}

	registerPreflightRoutes(router, game)

	web.RegisterRoutes(router, server.assets)
}

// adds an OPTIONS route for every API GET route so CORS preflights are answered
// for defined paths only. an OPTIONS request that is not a preflight gets a 404.
func registerPreflightRoutes(router *gin.Engine, game *gin.RouterGroup) {
	for _, route := range router.Routes() {
		if route.Method != "GET" || !strings.HasPrefix(route.Path, apiPrefix+"/") {
			continue
		}

		game.OPTIONS(strings.TrimPrefix(route.Path, apiPrefix), func(c *gin.Context) {
			apierrors.NotFound(c, "")
		})
	}
}
