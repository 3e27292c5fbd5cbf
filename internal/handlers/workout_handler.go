package handlers

import (
	"context"
	"math"
	"net/http"
	"strconv"

	"github.com/AnjalSotang/FYP-sub002/internal/models"
	"github.com/AnjalSotang/FYP-sub002/internal/notifications"
	"github.com/AnjalSotang/FYP-sub002/internal/repositories"
	"github.com/labstack/echo/v4"
)

// WorkoutHandler handles workout plan HTTP requests
type WorkoutHandler struct {
	workoutRepository repositories.WorkoutRepository
	userRepository    repositories.UserRepository
	notifier          notifications.Service
}

// NewWorkoutHandler creates a new WorkoutHandler
func NewWorkoutHandler(workoutRepo repositories.WorkoutRepository, userRepo repositories.UserRepository, notifier notifications.Service) *WorkoutHandler {
	return &WorkoutHandler{
		workoutRepository: workoutRepo,
		userRepository:    userRepo,
		notifier:          notifier,
	}
}

// RegisterWorkoutRoutes registers read routes on the user group and write
// routes on the admin group.
func (h *WorkoutHandler) RegisterWorkoutRoutes(g *echo.Group, admin *echo.Group) {
	g.GET("/workouts", h.GetWorkouts)
	g.GET("/workouts/:id", h.GetWorkout)
	admin.POST("/workouts", h.CreateWorkout)
	admin.PUT("/workouts/:id", h.UpdateWorkout)
	admin.DELETE("/workouts/:id", h.DeleteWorkout)
}

// GetWorkouts returns paginated workout plans
func (h *WorkoutHandler) GetWorkouts(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	workouts, total, err := h.workoutRepository.GetWorkouts(page, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"workouts": workouts,
		},
		"meta": echo.Map{
			"currentPage":  page,
			"totalPages":   totalPages,
			"totalItems":   total,
			"itemsPerPage": limit,
		},
	})
}

// GetWorkout returns a single workout plan with its exercises
func (h *WorkoutHandler) GetWorkout(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid workout ID")
	}

	workout, err := h.workoutRepository.GetWorkoutByID(uint(id))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Workout not found")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": workout})
}

// CreateWorkout creates a workout plan and announces it to all users
func (h *WorkoutHandler) CreateWorkout(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateWorkoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	workout := &models.Workout{
		Name:        req.Name,
		Description: req.Description,
		Difficulty:  req.Difficulty,
		DurationMin: req.DurationMin,
		CreatedBy:   currentUserID,
	}
	for i, ex := range req.Exercises {
		workout.Exercises = append(workout.Exercises, models.WorkoutExercise{
			ExerciseID: ex.ExerciseID,
			Sets:       ex.Sets,
			Reps:       ex.Reps,
			RestSec:    ex.RestSec,
			Position:   i,
		})
	}

	if err := h.workoutRepository.CreateWorkout(workout); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Announce the new plan to admins. Best-effort; creation already
	// succeeded.
	go h.announceWorkout(workout)

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": workout})
}

func (h *WorkoutHandler) announceWorkout(workout *models.Workout) {
	admins, err := h.userRepository.GetAdmins()
	if err != nil {
		return
	}
	ctx := context.Background()
	related := &notifications.RelatedRef{ID: workout.ID, Type: "workout"}
	for _, admin := range admins {
		if admin.ID == workout.CreatedBy {
			continue
		}
		h.notifier.Notify(ctx, admin.ID, models.NotificationTypeWorkoutAdded, notifications.EventData{}, related)
	}
}

// UpdateWorkout updates a workout plan
func (h *WorkoutHandler) UpdateWorkout(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid workout ID")
	}

	var req models.UpdateWorkoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	workout, err := h.workoutRepository.GetWorkoutByID(uint(id))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Workout not found")
	}

	if req.Name != "" {
		workout.Name = req.Name
	}
	if req.Description != "" {
		workout.Description = req.Description
	}
	if req.Difficulty != "" {
		workout.Difficulty = req.Difficulty
	}
	if req.DurationMin > 0 {
		workout.DurationMin = req.DurationMin
	}

	if err := h.workoutRepository.UpdateWorkout(workout); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": workout})
}

// DeleteWorkout removes a workout plan
func (h *WorkoutHandler) DeleteWorkout(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid workout ID")
	}

	if err := h.workoutRepository.DeleteWorkout(uint(id)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}
