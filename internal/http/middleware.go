package http

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"goal-board/internal/view"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
	htmlContentType = "text/html; charset=utf-8"
)

// stackError conserva el stack del punto donde fallo el handler.
type stackError struct {
	err   error
	stack []byte
}

func (e *stackError) Error() string { return e.err.Error() }

func (e *stackError) Unwrap() error { return e.err }

// failRequest registra el error en el contexto y corta la cadena de handlers.
// errorPagesMiddleware se encarga de responder con la pagina 500.
func failRequest(c *gin.Context, err error) {
	_ = c.Error(&stackError{err: err, stack: debug.Stack()})
	c.Abort()
}

// requestIDMiddleware propaga X-Request-ID o genera uno nuevo.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// zapLoggerMiddleware registra cada request antes de despacharlo y su resultado al terminar.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetString(requestIDKey)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Time("timestamp", start.UTC()),
			zap.String("request_id", requestID),
		)
		c.Next()
		logger.Debug("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", requestID),
		)
	}
}

// errorPagesMiddleware convierte panics y errores de handlers en la pagina 500.
// El detalle solo llega al cliente cuando showStack es true.
func errorPagesMiddleware(logger *zap.Logger, showStack bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			stack := debug.Stack()
			logger.Error("panic recovered",
				zap.Any("panic", rec),
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetString(requestIDKey)),
				zap.ByteString("stack", stack),
			)
			c.Abort()
			writeServerError(c, logger, fmt.Sprintf("panic: %v\n\n%s", rec, stack), showStack)
		}()

		c.Next()

		last := c.Errors.Last()
		if last == nil || c.Writer.Written() {
			return
		}
		detail := last.Err.Error()
		var se *stackError
		if errors.As(last.Err, &se) {
			detail = fmt.Sprintf("%s\n\n%s", se.err.Error(), se.stack)
		}
		logger.Error("request failed",
			zap.Error(last.Err),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.String("detail", detail),
		)
		writeServerError(c, logger, detail, showStack)
	}
}

func writeServerError(c *gin.Context, logger *zap.Logger, detail string, showStack bool) {
	page, err := view.ServerError(detail, showStack)
	if err != nil {
		logger.Error("render error page failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	c.Data(http.StatusInternalServerError, htmlContentType, []byte(page))
}
