package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"goeed/app"
	"goeed/domain/core"
	"goeed/ports"
)

// ScoreHandler exposes corpus scoring and run lookups over HTTP
type ScoreHandler struct {
	service *app.EvalService
	repo    ports.RunRepository // nil when persistence is not configured
}

// NewScoreHandler creates a new scoring handler
func NewScoreHandler(service *app.EvalService, repo ports.RunRepository) *ScoreHandler {
	return &ScoreHandler{service: service, repo: repo}
}

// RegisterRoutes attaches the scoring API to a router
func (h *ScoreHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/healthz", h.Health)
	r.POST("/api/score", h.Score)
	r.GET("/api/runs", h.ListRuns)
	r.GET("/api/runs/:id", h.GetRun)
}

// Health reports liveness
func (h *ScoreHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Score evaluates a batch of hypothesis/reference pairs
func (h *ScoreHandler) Score(c *gin.Context) {
	var req app.EvalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	evaluation, err := h.service.Evaluate(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		if core.IsInvalidArgument(err) || errors.Is(err, core.ErrDivisionUndefined) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, evaluation)
}

// ListRuns returns recent evaluation runs
func (h *ScoreHandler) ListRuns(c *gin.Context) {
	if h.repo == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "run persistence not configured"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	runs, err := h.repo.ListRuns(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

// GetRun returns one evaluation run with its sentence scores
func (h *ScoreHandler) GetRun(c *gin.Context) {
	if h.repo == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "run persistence not configured"})
		return
	}

	id, err := core.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	evaluation, err := h.repo.GetRun(c.Request.Context(), id)
	if err != nil {
		if core.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, evaluation)
}
