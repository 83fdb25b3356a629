package main

import (
	"codeberg.org/wepoker/server/internal/config"
	"codeberg.org/wepoker/server/internal/middleware"
	"codeberg.org/wepoker/server/internal/static"
	"github.com/gin-gonic/gin"
)

// holds all dependencies and state for one server instance
type Server struct {
	config  *config.Config
	assets  *static.Store
	limiter *middleware.RateLimiter
	router  *gin.Engine
}
