package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/AnjalSotang/FYP-sub002/internal/models"
	"github.com/AnjalSotang/FYP-sub002/internal/repositories"
	"github.com/labstack/echo/v4"
)

// MeasurementHandler handles body measurement HTTP requests
type MeasurementHandler struct {
	measurementRepository repositories.MeasurementRepository
}

// NewMeasurementHandler creates a new MeasurementHandler
func NewMeasurementHandler(measurementRepo repositories.MeasurementRepository) *MeasurementHandler {
	return &MeasurementHandler{measurementRepository: measurementRepo}
}

// RegisterMeasurementRoutes registers measurement routes
func (h *MeasurementHandler) RegisterMeasurementRoutes(g *echo.Group) {
	g.POST("/measurements", h.CreateMeasurement)
	g.GET("/measurements", h.GetMeasurements)
	g.DELETE("/measurements/:id", h.DeleteMeasurement)
}

// CreateMeasurement logs a body measurement
func (h *MeasurementHandler) CreateMeasurement(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateMeasurementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	recordedAt := time.Now()
	if req.RecordedAt != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.RecordedAt, time.Local)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid recorded date")
		}
		recordedAt = parsed
	}

	measurement := &models.Measurement{
		UserID:     currentUserID,
		WeightKg:   req.WeightKg,
		BodyFatPct: req.BodyFatPct,
		ChestCm:    req.ChestCm,
		WaistCm:    req.WaistCm,
		Notes:      req.Notes,
		RecordedAt: recordedAt,
	}

	if err := h.measurementRepository.CreateMeasurement(measurement); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": measurement})
}

// GetMeasurements lists the authenticated user's measurements, newest first
func (h *MeasurementHandler) GetMeasurements(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 || limit > 100 {
		limit = 30
	}

	measurements, err := h.measurementRepository.GetByUserID(currentUserID, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"measurements": measurements}})
}

// DeleteMeasurement removes one of the authenticated user's measurements
func (h *MeasurementHandler) DeleteMeasurement(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid measurement ID")
	}

	if err := h.measurementRepository.DeleteMeasurement(uint(id), currentUserID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}
