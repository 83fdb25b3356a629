package web

import (
	"errors"
	"net/http"

	apierrors "codeberg.org/wepoker/server/internal/errors"
	"codeberg.org/wepoker/server/internal/logger"
	"codeberg.org/wepoker/server/internal/static"
	"github.com/gin-gonic/gin"
)

const htmlContentType = "text/html; charset=utf-8"

// Assets is the file access the web handlers need
type Assets interface {
	ReadIndex() ([]byte, error)
	Open(urlPath string) (*static.Asset, error)
}

// IndexHandler serves index.html, read from disk on every request
func IndexHandler(assets Assets) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := assets.ReadIndex()
		if err != nil {
			apierrors.InternalError(c, "failed to load index page", err)
			return
		}

		c.Data(http.StatusOK, htmlContentType, page)
	}
}

// AssetHandler serves files under the static root for GET and HEAD.
// it is installed as the NoRoute handler, so every other request ends here as a 404.
func AssetHandler(assets Assets) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			apierrors.NotFound(c, "")
			return
		}

		asset, err := assets.Open(c.Request.URL.Path)
		if err != nil {
			if !errors.Is(err, static.ErrNotFound) {
				logger.FromContext(c.Request.Context()).Error("failed to open static asset",
					"error", err,
					"path", c.Request.URL.Path,
				)
			}

			apierrors.NotFound(c, "")
			return
		}
		defer asset.Close() //nolint:errcheck // read-only handle

		head, err := asset.Head(static.SniffLen)
		if err != nil {
			apierrors.InternalError(c, "failed to read static asset", err)
			return
		}

		c.Header("Content-Type", static.ContentType(asset.Name, head))
		http.ServeContent(c.Writer, c.Request, asset.Name, asset.ModTime, asset)
	}
}
