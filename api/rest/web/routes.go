package web

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.Engine, assets Assets) {
	router.GET("/", IndexHandler(assets))
	router.NoRoute(AssetHandler(assets))
}
