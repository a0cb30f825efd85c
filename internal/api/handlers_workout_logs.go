package api

import (
	"errors"
	"math"

	"github.com/akulinich/gaintrack/internal/models"
	"github.com/akulinich/gaintrack/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) CreateWorkoutLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, exercises, err := parseWorkoutLogPayload(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if len(exercises) == 0 {
		return apiError(c, fiber.StatusBadRequest, "at least one exercise is required")
	}

	entry, err := handler.workoutService.CreateWorkout(user.ID, day, exercises)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create workout log")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) GetWorkoutLogs(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	from, err := parseOptionalDayQuery(c, "startDate")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid start date")
	}
	to, err := parseOptionalDayQuery(c, "endDate")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid end date")
	}
	limit, page := parsePagination(c, 20)

	entries, total, err := handler.workoutService.ListWorkouts(user.ID, from, to, limit, page)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch workout logs")
	}

	return c.JSON(fiber.Map{
		"workoutLogs": entries,
		"total":       total,
		"totalPages":  int(math.Ceil(float64(total) / float64(limit))),
		"currentPage": page,
	})
}

func (handler *Handler) GetWorkoutLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	workoutID, err := c.ParamsInt("id")
	if err != nil || workoutID < 1 {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	entry, err := handler.workoutService.GetWorkout(user.ID, uint(workoutID))
	if err != nil {
		return workoutErrorResponse(c, err, "failed to fetch workout log")
	}
	return c.JSON(entry)
}

func (handler *Handler) UpdateWorkoutLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	workoutID, err := c.ParamsInt("id")
	if err != nil || workoutID < 1 {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	_, exercises, err := parseWorkoutExercisesPayload(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if len(exercises) == 0 {
		return apiError(c, fiber.StatusBadRequest, "at least one exercise is required")
	}

	entry, err := handler.workoutService.UpdateExercises(user.ID, uint(workoutID), exercises)
	if err != nil {
		return workoutErrorResponse(c, err, "failed to update workout log")
	}
	return c.JSON(entry)
}

func (handler *Handler) DeleteWorkoutLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	workoutID, err := c.ParamsInt("id")
	if err != nil || workoutID < 1 {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := handler.workoutService.DeleteWorkout(user.ID, uint(workoutID)); err != nil {
		return workoutErrorResponse(c, err, "failed to delete workout log")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) AddExercise(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	workoutID, err := c.ParamsInt("id")
	if err != nil || workoutID < 1 {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	exercise := models.Exercise{}
	if err := c.BodyParser(&exercise); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	exercise, err = normalizeExercise(exercise)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid exercise")
	}

	entry, err := handler.workoutService.AddExercise(user.ID, uint(workoutID), exercise)
	if err != nil {
		return workoutErrorResponse(c, err, "failed to add exercise")
	}
	return c.JSON(entry)
}

func (handler *Handler) RemoveExercise(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	workoutID, err := c.ParamsInt("id")
	if err != nil || workoutID < 1 {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	index, err := c.ParamsInt("index")
	if err != nil || index < 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid exercise index")
	}

	entry, deleted, err := handler.workoutService.RemoveExercise(user.ID, uint(workoutID), index)
	if err != nil {
		if errors.Is(err, services.ErrExerciseIndexInvalid) {
			return apiError(c, fiber.StatusBadRequest, "invalid exercise index")
		}
		return workoutErrorResponse(c, err, "failed to remove exercise")
	}
	if deleted {
		return c.JSON(fiber.Map{"ok": true, "deleted": true})
	}
	return c.JSON(entry)
}

// parseWorkoutExercisesPayload reads just the exercises array for updates
// that leave the date untouched.
func parseWorkoutExercisesPayload(c *fiber.Ctx) (string, []models.Exercise, error) {
	payload := workoutLogPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return "", nil, err
	}
	for index := range payload.Exercises {
		normalized, err := normalizeExercise(payload.Exercises[index])
		if err != nil {
			return "", nil, err
		}
		payload.Exercises[index] = normalized
	}
	return payload.Date, payload.Exercises, nil
}

func workoutErrorResponse(c *fiber.Ctx, err error, fallback string) error {
	if errors.Is(err, services.ErrWorkoutNotFound) {
		return apiError(c, fiber.StatusNotFound, "workout log not found")
	}
	if errors.Is(err, services.ErrWorkoutForbidden) {
		return apiError(c, fiber.StatusForbidden, "not authorized for this log")
	}
	if errors.Is(err, services.ErrWorkoutNoExercises) {
		return apiError(c, fiber.StatusBadRequest, "at least one exercise is required")
	}
	return apiError(c, fiber.StatusInternalServerError, fallback)
}
