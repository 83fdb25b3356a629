package tables

import (
	"net/http"

	"codeberg.org/wepoker/server/api/rest/envelope"
	"github.com/gin-gonic/gin"
)

// ListTablesHandler lists active tables, currently always none
// @Summary List tables
// @Tags game
// @Produce json
// @Success 200 {object} envelope.Response{data=[]object}
// @Router /api/game/tables [get]
func ListTablesHandler(c *gin.Context) {
	envelope.JSON(c, http.StatusOK, envelope.MessageSuccess, []Table{})
}

// GetTableHandler looks up a single table; with no tracked tables every id misses
// @Summary Get table
// @Tags game
// @Produce json
// @Param tableId path string true "Table ID"
// @Failure 404 {object} envelope.Response
// @Router /api/game/tables/{tableId} [get]
func GetTableHandler(c *gin.Context) {
	envelope.JSON(c, http.StatusNotFound, envelope.MessageTableNotFound, nil)
}

// StatsHandler reports table totals, all zero while no tables are tracked
// @Summary Table statistics
// @Tags game
// @Produce json
// @Success 200 {object} envelope.Response{data=Stats}
// @Router /api/game/stats [get]
func StatsHandler(c *gin.Context) {
	envelope.JSON(c, http.StatusOK, envelope.MessageSuccess, Stats{})
}
