package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/airaware/ai-service/internal/domain/activity"
	"github.com/airaware/ai-service/internal/domain/airquality"
	"github.com/airaware/ai-service/internal/domain/exposure"
	"github.com/airaware/ai-service/internal/domain/forecast"
	"github.com/airaware/ai-service/internal/domain/healthrisk"
	apperrors "github.com/airaware/ai-service/pkg/errors"
)

const (
	serviceName    = "AirAware AI Service"
	serviceVersion = "1.0.0"
)

// Handler wires the HTTP transport to the analytic domains.
type Handler struct {
	riskSvc     healthrisk.Service
	forecastSvc forecast.Service
	exposureSvc exposure.Service
	activitySvc activity.Service
	logger      *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(
	riskSvc healthrisk.Service,
	forecastSvc forecast.Service,
	exposureSvc exposure.Service,
	activitySvc activity.Service,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		riskSvc:     riskSvc,
		forecastSvc: forecastSvc,
		exposureSvc: exposureSvc,
		activitySvc: activitySvc,
		logger:      logger.With("component", "http.handler"),
	}
}

// Root reports the service identity.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  serviceName,
		"version": serviceVersion,
	})
}

// Health is the liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   serviceName,
	})
}

// AnalyzeHealthRisk scores a reading against a health profile.
func (h *Handler) AnalyzeHealthRisk(c *gin.Context) {
	var req healthrisk.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.riskSvc.Analyze(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		code := "analysis_failed"
		if apperrors.IsCode(err, apperrors.CodeInvalidInput) {
			status = http.StatusBadRequest
			code = "invalid_request"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ForecastAQI extrapolates an hourly AQI series from history.
func (h *Handler) ForecastAQI(c *gin.Context) {
	var req forecast.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.forecastSvc.Forecast(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		code := "forecast_failed"
		switch {
		case apperrors.IsCode(err, apperrors.CodeInsufficientHistory):
			status = http.StatusUnprocessableEntity
			code = apperrors.CodeInsufficientHistory
		case apperrors.IsCode(err, apperrors.CodeInvalidInput):
			status = http.StatusBadRequest
			code = "invalid_request"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CalculateExposure integrates dose over parallel interval arrays.
func (h *Handler) CalculateExposure(c *gin.Context) {
	var req exposure.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.exposureSvc.Accumulate(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		code := "exposure_failed"
		if apperrors.IsCode(err, apperrors.CodeLengthMismatch) {
			status = http.StatusBadRequest
			code = apperrors.CodeLengthMismatch
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SuggestActivities filters the activity catalog by current conditions.
func (h *Handler) SuggestActivities(c *gin.Context) {
	var req activity.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.activitySvc.Suggest(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		code := "suggestion_failed"
		if apperrors.IsCode(err, apperrors.CodeInvalidInput) {
			status = http.StatusBadRequest
			code = "invalid_request"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

type convertRequest struct {
	PM25 *float64 `json:"pm25" binding:"required"`
}

// ConvertPM25 maps a PM2.5 concentration onto the AQI scale.
func (h *Handler) ConvertPM25(c *gin.Context) {
	var req convertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	if *req.PM25 < 0 {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "pm25 cannot be negative", nil))
		return
	}

	c.JSON(http.StatusOK, airquality.ConvertPM25(*req.PM25))
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
