package apidocs

import (
	"net/http"

	_ "codeberg.org/wepoker/server/docs" // registers the generated spec
	apierrors "codeberg.org/wepoker/server/internal/errors"
	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag"
)

// Handler serves the registered OpenAPI document
func Handler(c *gin.Context) {
	doc, err := swag.ReadDoc()
	if err != nil {
		apierrors.InternalError(c, "failed to render api docs", err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
}
