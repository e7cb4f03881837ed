package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	goalH *GoalHandler,
	staticH *StaticHandler,
	showStack bool,
) *gin.Engine {
	r := gin.New()

	// Orden: request id, logging, paginas de error (incluye recovery).
	r.Use(requestIDMiddleware(), zapLoggerMiddleware(logger), errorPagesMiddleware(logger, showStack))

	r.GET("/", goalH.Home)
	r.POST("/store-goal", goalH.StoreGoal)

	api := r.Group("/api")
	api.GET("/goal", goalH.GetGoal)
	api.POST("/goal", goalH.UpdateGoal)

	r.NoRoute(staticH.NoRoute)

	return r
}
