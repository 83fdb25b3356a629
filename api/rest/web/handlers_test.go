package web

import (
	"fmt"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"testing"

	"codeberg.org/wepoker/server/internal/static"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// fails every read with a fixed error
type brokenAssets struct {
	err error
}

func (b brokenAssets) ReadIndex() ([]byte, error) {
	return nil, b.err
}

func (b brokenAssets) Open(string) (*static.Asset, error) {
	return nil, b.err
}

func newRouter(assets Assets) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	RegisterRoutes(r, assets)
	return r
}

func TestIndexHandler_ReadErrorIs500(t *testing.T) {
	r := newRouter(brokenAssets{err: fmt.Errorf("read index.html: %w", fs.ErrPermission)})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "failed to load index page")
}

func TestAssetHandler_UnexpectedErrorIs404(t *testing.T) {
	r := newRouter(brokenAssets{err: fmt.Errorf("open root: %w", fs.ErrPermission)})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/app.js", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not_found")
}

func TestAssetHandler_OnlyGetAndHead(t *testing.T) {
	r := newRouter(brokenAssets{err: static.ErrNotFound})

	for _, method := range []string{http.MethodPut, http.MethodDelete, http.MethodPatch} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(method, "/app.js", nil))
		assert.Equal(t, http.StatusNotFound, w.Code, method)
	}
}
