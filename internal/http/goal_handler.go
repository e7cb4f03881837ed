package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"goal-board/internal/domain"
	"goal-board/internal/service"
	"goal-board/internal/view"
)

// Formato ISO-8601 en UTC con milisegundos.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// GoalHandler mantiene dependencias para las rutas de la meta (HTML y API).
type GoalHandler struct {
	logger  *zap.Logger
	goalSrv *service.GoalService
	now     func() time.Time
}

// NewGoalHandler crea una instancia de GoalHandler con dependencias necesarias.
func NewGoalHandler(logger *zap.Logger, goalSrv *service.GoalService) *GoalHandler {
	return &GoalHandler{
		logger:  logger,
		goalSrv: goalSrv,
		now:     time.Now,
	}
}

// Home maneja GET /.
func (h *GoalHandler) Home(c *gin.Context) {
	goal, err := h.goalSrv.Current(c.Request.Context())
	if err != nil {
		failRequest(c, err)
		return
	}

	page, err := view.Home(view.HomeData{
		Goal:    goal.Text,
		Success: c.Query("success"),
		Error:   c.Query("error"),
	})
	if err != nil {
		failRequest(c, err)
		return
	}
	c.Data(http.StatusOK, htmlContentType, []byte(page))
}

// StoreGoal maneja POST /store-goal.
func (h *GoalHandler) StoreGoal(c *gin.Context) {
	_, err := h.goalSrv.Update(c.Request.Context(), c.PostForm("goal"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidGoal) {
			c.Redirect(http.StatusFound, "/?error="+view.InvalidGoalFlag)
			return
		}
		failRequest(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/?success=true")
}

// GetGoal maneja GET /api/goal.
func (h *GoalHandler) GetGoal(c *gin.Context) {
	goal, err := h.goalSrv.Current(c.Request.Context())
	if err != nil {
		failRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"goal":      goal.Text,
		"timestamp": h.timestamp(),
	})
}

// UpdateGoal maneja POST /api/goal.
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	var req struct {
		Goal string `json:"goal"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("invalid update goal request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.InvalidGoalMessage})
		return
	}

	goal, err := h.goalSrv.Update(c.Request.Context(), req.Goal)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidGoal) {
			c.JSON(http.StatusBadRequest, gin.H{"error": domain.InvalidGoalMessage})
			return
		}
		failRequest(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"goal":      goal.Text,
		"timestamp": h.timestamp(),
	})
}

func (h *GoalHandler) timestamp() string {
	return h.now().UTC().Format(timestampLayout)
}
