package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/greenthumb/internal/domain/models"
	"github.com/mamadbah2/greenthumb/internal/service"
	"github.com/mamadbah2/greenthumb/internal/service/reporting"
)

// ReportGenerator builds the on-demand garden report.
type ReportGenerator interface {
	GenerateDailyReport(ctx context.Context, now time.Time) (models.DailyReport, error)
	History(ctx context.Context, limit int) ([]models.DailyReport, error)
}

// GardenHandler exposes the garden services over HTTP.
type GardenHandler struct {
	garden  *service.Registry
	reports ReportGenerator
	logger  *zap.Logger
}

// NewGardenHandler constructs the HTTP handler adapter.
func NewGardenHandler(garden *service.Registry, reports ReportGenerator, logger *zap.Logger) *GardenHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GardenHandler{garden: garden, reports: reports, logger: logger}
}

// DailyReport summarizes the garden as of now.
func (h *GardenHandler) DailyReport(c *gin.Context) {
	report, err := h.reports.GenerateDailyReport(c.Request.Context(), time.Now())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// ReportHistory lists archived reports, ?limit= bounding the count.
func (h *GardenHandler) ReportHistory(c *gin.Context) {
	limit, ok := intQuery(c, "limit")
	if !ok {
		return
	}
	reports, err := h.reports.History(c.Request.Context(), limit)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// fail maps service errors onto HTTP responses.
func (h *GardenHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, reporting.ErrArchiveDisabled):
		c.JSON(http.StatusNotImplemented, gin.H{"error": err.Error()})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		h.logger.Warn("request aborted", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "request aborted"})
	default:
		h.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func (h *GardenHandler) bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.logger.Warn("invalid request body", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	return true
}

// bindOptional is bind for endpoints whose body may be empty.
func (h *GardenHandler) bindOptional(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	h.logger.Warn("invalid request body", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
	return false
}

func (h *GardenHandler) photo(c *gin.Context) ([]byte, bool) {
	data, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable request body"})
		return nil, false
	}
	return data, true
}

func intQuery(c *gin.Context, key string) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": key + " must be an integer"})
		return 0, false
	}
	return v, true
}

func coordinates(c *gin.Context) (lat, lon float64, ok bool) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	if errLat != nil || errLon != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon must be numbers"})
		return 0, 0, false
	}
	return lat, lon, true
}
