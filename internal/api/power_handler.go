package api

import (
	"context"
	"net/http"
	"strconv"

	"evident/app"
	"evident/domain/core"
	"evident/domain/stats"
	"evident/internal/errors"
	"evident/ports"

	"github.com/gin-gonic/gin"
)

// Analyzer is the service surface the HTTP handlers call
type Analyzer interface {
	Power(ctx context.Context, source app.Source, column string, grid stats.PowerGrid) (*stats.PowerTable, error)
	EffectSizes(ctx context.Context, req app.EffectSizeRequest) (*stats.EffectSizeTable, error)
	RepeatedMeasures(ctx context.Context, req app.RepeatedMeasuresRequest) (*stats.RepeatedMeasuresTable, error)
	GetPowerTable(ctx context.Context, id core.ID) (*stats.PowerTable, error)
	ListResults(ctx context.Context, limit int) ([]ports.ResultSummary, error)
}

// PowerRequest is the body of POST /api/v1/power
type PowerRequest struct {
	Source app.Source      `json:"source"`
	Column string          `json:"column" binding:"required"`
	Grid   stats.PowerGrid `json:"grid"`
}

// PowerHandler handles power and effect-size requests
type PowerHandler struct {
	analyzer Analyzer
}

// NewPowerHandler creates a new power handler
func NewPowerHandler(analyzer Analyzer) *PowerHandler {
	return &PowerHandler{analyzer: analyzer}
}

// PowerAnalysis solves a power grid for one column
func (h *PowerHandler) PowerAnalysis(c *gin.Context) {
	var req PowerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidInput("invalid power request", err))
		return
	}

	table, err := h.analyzer.Power(c.Request.Context(), req.Source, req.Column, req.Grid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

// EffectSize computes effect sizes of several columns
func (h *PowerHandler) EffectSize(c *gin.Context) {
	var req app.EffectSizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidInput("invalid effect size request", err))
		return
	}

	table, err := h.analyzer.EffectSizes(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

// RepeatedMeasures computes repeated-measures power of a state column
func (h *PowerHandler) RepeatedMeasures(c *gin.Context) {
	var req app.RepeatedMeasuresRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidInput("invalid repeated measures request", err))
		return
	}

	table, err := h.analyzer.RepeatedMeasures(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

// GetResult returns a stored power table
func (h *PowerHandler) GetResult(c *gin.Context) {
	id, err := core.ParseID(c.Param("id"))
	if err != nil {
		respondError(c, errors.InvalidInput("invalid result ID", err))
		return
	}

	table, err := h.analyzer.GetPowerTable(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

// ListResults returns recent result summaries
func (h *PowerHandler) ListResults(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer", "code": errors.CodeInvalidInput})
			return
		}
		limit = parsed
	}

	summaries, err := h.analyzer.ListResults(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": summaries})
}

// respondError writes err with the status of its application code.
// Domain validation errors that reach here unclassified are 422.
func respondError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	if !errors.IsAppError(err) && core.IsValidationError(err) {
		code = errors.CodeValidationError
	}
	c.JSON(errors.HTTPStatus(code), gin.H{"error": err.Error(), "code": code})
}
