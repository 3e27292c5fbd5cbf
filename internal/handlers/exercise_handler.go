package handlers

import (
	"net/http"
	"strconv"

	"github.com/AnjalSotang/FYP-sub002/internal/models"
	"github.com/AnjalSotang/FYP-sub002/internal/repositories"
	"github.com/labstack/echo/v4"
)

// ExerciseHandler handles exercise library HTTP requests
type ExerciseHandler struct {
	exerciseRepository repositories.ExerciseRepository
}

// NewExerciseHandler creates a new ExerciseHandler
func NewExerciseHandler(exerciseRepo repositories.ExerciseRepository) *ExerciseHandler {
	return &ExerciseHandler{exerciseRepository: exerciseRepo}
}

// RegisterExerciseRoutes registers read routes on the user group and write
// routes on the admin group.
func (h *ExerciseHandler) RegisterExerciseRoutes(g *echo.Group, admin *echo.Group) {
	g.GET("/exercises", h.GetExercises)
	g.GET("/exercises/:id", h.GetExercise)
	admin.POST("/exercises", h.CreateExercise)
	admin.PUT("/exercises/:id", h.UpdateExercise)
	admin.DELETE("/exercises/:id", h.DeleteExercise)
}

// GetExercises lists exercises, optionally filtered by muscle group
func (h *ExerciseHandler) GetExercises(c echo.Context) error {
	skip, _ := strconv.ParseInt(c.QueryParam("skip"), 10, 64)
	limit, _ := strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	if limit < 1 || limit > 100 {
		limit = 50
	}
	muscleGroup := c.QueryParam("muscle_group")

	exercises, err := h.exerciseRepository.GetExercises(c.Request().Context(), muscleGroup, skip, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"exercises": exercises}})
}

// GetExercise returns a single exercise document
func (h *ExerciseHandler) GetExercise(c echo.Context) error {
	exercise, err := h.exerciseRepository.GetExerciseByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Exercise not found")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": exercise})
}

// CreateExercise adds an exercise to the library
func (h *ExerciseHandler) CreateExercise(c echo.Context) error {
	var req models.CreateExerciseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	exercise := &models.Exercise{
		Name:         req.Name,
		MuscleGroup:  req.MuscleGroup,
		Equipment:    req.Equipment,
		Difficulty:   req.Difficulty,
		Instructions: req.Instructions,
		VideoURL:     req.VideoURL,
		ImageURL:     req.ImageURL,
	}

	if err := h.exerciseRepository.CreateExercise(c.Request().Context(), exercise); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": exercise})
}

// UpdateExercise updates an exercise document
func (h *ExerciseHandler) UpdateExercise(c echo.Context) error {
	var req models.UpdateExerciseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	exercise, err := h.exerciseRepository.GetExerciseByID(ctx, c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Exercise not found")
	}

	if req.Name != "" {
		exercise.Name = req.Name
	}
	if req.MuscleGroup != "" {
		exercise.MuscleGroup = req.MuscleGroup
	}
	if req.Equipment != "" {
		exercise.Equipment = req.Equipment
	}
	if req.Difficulty != "" {
		exercise.Difficulty = req.Difficulty
	}
	if req.Instructions != nil {
		exercise.Instructions = req.Instructions
	}
	if req.VideoURL != "" {
		exercise.VideoURL = req.VideoURL
	}
	if req.ImageURL != "" {
		exercise.ImageURL = req.ImageURL
	}

	if err := h.exerciseRepository.UpdateExercise(ctx, c.Param("id"), exercise); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": exercise})
}

// DeleteExercise removes an exercise from the library
func (h *ExerciseHandler) DeleteExercise(c echo.Context) error {
	if err := h.exerciseRepository.DeleteExercise(c.Request().Context(), c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Exercise not found")
	}

	return c.NoContent(http.StatusNoContent)
}
