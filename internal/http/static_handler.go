package http

import (
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"goal-board/internal/view"
)

const staticCacheControl = "public, max-age=3600"

// StaticHandler sirve los assets publicos y responde 404 para todo lo demas.
type StaticHandler struct {
	logger *zap.Logger
	files  http.FileSystem
}

// NewStaticHandler crea un StaticHandler sobre files (puede ser nil).
func NewStaticHandler(logger *zap.Logger, files http.FileSystem) *StaticHandler {
	return &StaticHandler{logger: logger, files: files}
}

// NoRoute intenta servir un asset estatico y, si no existe, renderiza la pagina 404.
func (h *StaticHandler) NoRoute(c *gin.Context) {
	method := c.Request.Method
	if (method == http.MethodGet || method == http.MethodHead) && h.serveAsset(c) {
		return
	}
	h.NotFound(c)
}

// NotFound renderiza la pagina 404.
func (h *StaticHandler) NotFound(c *gin.Context) {
	page, err := view.NotFound()
	if err != nil {
		failRequest(c, err)
		return
	}
	c.Data(http.StatusNotFound, htmlContentType, []byte(page))
}

func (h *StaticHandler) serveAsset(c *gin.Context) bool {
	if h.files == nil {
		return false
	}
	name := path.Clean("/" + c.Request.URL.Path)
	if name == "/" {
		return false
	}

	f, err := h.files.Open(name)
	if err != nil {
		return false
	}
	info, err := f.Stat()
	_ = f.Close()
	if err != nil || info.IsDir() {
		return false
	}

	h.logger.Debug("serving static asset", zap.String("path", name))
	c.Header("Cache-Control", staticCacheControl)
	c.FileFromFS(name, h.files)
	return true
}
