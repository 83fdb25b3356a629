package tables

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/tables", ListTablesHandler)
	router.GET("/tables/:tableId", GetTableHandler)
	router.GET("/stats", StatsHandler)
}
