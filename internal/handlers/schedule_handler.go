package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/AnjalSotang/FYP-sub002/internal/models"
	"github.com/AnjalSotang/FYP-sub002/internal/notifications"
	"github.com/AnjalSotang/FYP-sub002/internal/repositories"
	"github.com/labstack/echo/v4"
)

// achievementStep is the weekly completion milestone cadence.
const achievementStep = 5

// ScheduleHandler handles workout schedule HTTP requests
type ScheduleHandler struct {
	scheduleRepository repositories.ScheduleRepository
	workoutRepository  repositories.WorkoutRepository
	notifier           notifications.Service
}

// NewScheduleHandler creates a new ScheduleHandler
func NewScheduleHandler(scheduleRepo repositories.ScheduleRepository, workoutRepo repositories.WorkoutRepository, notifier notifications.Service) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleRepository: scheduleRepo,
		workoutRepository:  workoutRepo,
		notifier:           notifier,
	}
}

// RegisterScheduleRoutes registers schedule routes
func (h *ScheduleHandler) RegisterScheduleRoutes(g *echo.Group) {
	g.POST("/schedules", h.CreateSchedule)
	g.GET("/schedules", h.GetSchedules)
	g.PUT("/schedules/:id/complete", h.CompleteSchedule)
}

// CreateSchedule plans a workout for a specific day and time
func (h *ScheduleHandler) CreateSchedule(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateScheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if _, err := h.workoutRepository.GetWorkoutByID(req.WorkoutID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Workout not found")
	}

	scheduledDate, err := time.ParseInLocation("2006-01-02", req.ScheduledDate, time.Local)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid scheduled date")
	}

	schedule := &models.WorkoutSchedule{
		UserID:        currentUserID,
		WorkoutID:     req.WorkoutID,
		ScheduledDate: scheduledDate,
		ScheduledTime: req.ScheduledTime,
		Status:        models.ScheduleStatusScheduled,
	}

	if err := h.scheduleRepository.CreateSchedule(schedule); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": schedule})
}

// GetSchedules lists the authenticated user's schedules for a date range
// (defaults to the coming week).
func (h *ScheduleHandler) GetSchedules(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 0, 7)

	if v := c.QueryParam("from"); v != "" {
		parsed, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid from date")
		}
		from = parsed
	}
	if v := c.QueryParam("to"); v != "" {
		parsed, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid to date")
		}
		to = parsed
	}

	schedules, err := h.scheduleRepository.GetByUserID(currentUserID, from, to)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"schedules": schedules}})
}

// CompleteSchedule marks a scheduled workout as done and fires an
// achievement notification when a weekly milestone is reached.
func (h *ScheduleHandler) CompleteSchedule(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid schedule ID")
	}

	schedule, err := h.scheduleRepository.GetScheduleByID(uint(id))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Schedule not found")
	}
	if schedule.UserID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "Not your schedule")
	}
	if schedule.Status == models.ScheduleStatusCompleted {
		return echo.NewHTTPError(http.StatusConflict, "Schedule already completed")
	}

	now := time.Now()
	if err := h.scheduleRepository.MarkCompleted(uint(id), now); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.checkAchievement(c, currentUserID, now)

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"completed_at": now}})
}

// checkAchievement counts this week's completions and notifies on every
// fifth one. Failures are ignored; completion already succeeded.
func (h *ScheduleHandler) checkAchievement(c echo.Context, userID uint, now time.Time) {
	weekStart := startOfWeek(now)
	count, err := h.scheduleRepository.CountCompletedSince(userID, weekStart)
	if err != nil || count == 0 || count%achievementStep != 0 {
		return
	}

	data := notifications.EventData{Count: count}
	h.notifier.Notify(c.Request().Context(), userID, models.NotificationTypeAchievement, data, nil)
}

// startOfWeek returns midnight of the most recent Monday.
func startOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the week that started last Monday
	}
	return day.AddDate(0, 0, -(weekday - 1))
}
