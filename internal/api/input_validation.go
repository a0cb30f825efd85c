package api

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/akulinich/gaintrack/internal/models"
	"github.com/akulinich/gaintrack/internal/services"
	"github.com/gofiber/fiber/v2"
)

var (
	errInvalidDate     = errors.New("invalid date")
	errInvalidWeight   = errors.New("weight out of range")
	errInvalidEggs     = errors.New("eggs consumed out of range")
	errInvalidRating   = errors.New("rating out of range")
	errNotesTooLong    = errors.New("notes too long")
	errInvalidExercise = errors.New("invalid exercise")
)

type dailyLogPayload struct {
	Date           string  `json:"date"`
	Weight         float64 `json:"weight"`
	EggsConsumed   int     `json:"eggsConsumed"`
	GymAttendance  bool    `json:"gymAttendance"`
	CreatineIntake bool    `json:"creatineIntake"`
	EnergyLevel    *int    `json:"energyLevel"`
	StrengthInGym  *int    `json:"strengthInGym"`
	Notes          string  `json:"notes"`
}

type workoutLogPayload struct {
	Date      string            `json:"date"`
	Exercises []models.Exercise `json:"exercises"`
}

// parseDailyLogInput rejects anything outside the documented ranges before
// the computation core ever sees the entry.
func parseDailyLogInput(c *fiber.Ctx) (services.DailyLogInput, error) {
	payload := dailyLogPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return services.DailyLogInput{}, err
	}

	day, err := parseDayParam(payload.Date)
	if err != nil {
		return services.DailyLogInput{}, errInvalidDate
	}
	if payload.Weight < models.MinWeightKg || payload.Weight > models.MaxWeightKg || !hasAtMostTwoDecimals(payload.Weight) {
		return services.DailyLogInput{}, errInvalidWeight
	}
	if payload.EggsConsumed < 0 || payload.EggsConsumed > models.MaxEggs {
		return services.DailyLogInput{}, errInvalidEggs
	}
	if !isValidRating(payload.EnergyLevel) || !isValidRating(payload.StrengthInGym) {
		return services.DailyLogInput{}, errInvalidRating
	}

	notes := strings.TrimSpace(payload.Notes)
	if len(notes) > models.MaxDailyNotesLength {
		return services.DailyLogInput{}, errNotesTooLong
	}

	return services.DailyLogInput{
		Date:           day,
		Weight:         payload.Weight,
		EggsConsumed:   payload.EggsConsumed,
		GymAttendance:  payload.GymAttendance,
		CreatineIntake: payload.CreatineIntake,
		EnergyLevel:    payload.EnergyLevel,
		StrengthInGym:  payload.StrengthInGym,
		Notes:          notes,
	}, nil
}

func parseWorkoutLogPayload(c *fiber.Ctx) (time.Time, []models.Exercise, error) {
	payload := workoutLogPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return time.Time{}, nil, err
	}

	day, err := parseDayParam(payload.Date)
	if err != nil {
		return time.Time{}, nil, errInvalidDate
	}

	for index := range payload.Exercises {
		normalized, err := normalizeExercise(payload.Exercises[index])
		if err != nil {
			return time.Time{}, nil, err
		}
		payload.Exercises[index] = normalized
	}
	return day, payload.Exercises, nil
}

func normalizeExercise(exercise models.Exercise) (models.Exercise, error) {
	exercise.ExerciseName = strings.TrimSpace(exercise.ExerciseName)
	exercise.Notes = strings.TrimSpace(exercise.Notes)

	if exercise.ExerciseName == "" || len(exercise.ExerciseName) > models.MaxExerciseNameLength {
		return models.Exercise{}, errInvalidExercise
	}
	if !isValidMuscleGroup(exercise.MuscleGroup) {
		return models.Exercise{}, errInvalidExercise
	}
	if len(exercise.Notes) > models.MaxExerciseNotesLength {
		return models.Exercise{}, errInvalidExercise
	}

	if exercise.HasDetailedSets() {
		for _, set := range exercise.SetsData {
			if set.Reps < models.MinReps || set.Reps > models.MaxReps {
				return models.Exercise{}, errInvalidExercise
			}
			if set.Weight < models.MinSetWeightKg || set.Weight > models.MaxSetWeightKg {
				return models.Exercise{}, errInvalidExercise
			}
		}
		return exercise, nil
	}

	if exercise.Sets < 1 || exercise.Sets > 10 {
		return models.Exercise{}, errInvalidExercise
	}
	if exercise.Reps < models.MinReps || exercise.Reps > models.MaxReps {
		return models.Exercise{}, errInvalidExercise
	}
	if exercise.WeightUsed < models.MinSetWeightKg || exercise.WeightUsed > models.MaxSetWeightKg {
		return models.Exercise{}, errInvalidExercise
	}
	return exercise, nil
}

func isValidMuscleGroup(group string) bool {
	for _, known := range models.MuscleGroups() {
		if group == known {
			return true
		}
	}
	return false
}

func isValidRating(rating *int) bool {
	if rating == nil {
		return true
	}
	return *rating >= models.MinRating && *rating <= models.MaxRating
}

func hasAtMostTwoDecimals(value float64) bool {
	scaled := value * 100
	return math.Abs(scaled-math.Round(scaled)) < 1e-9
}

func parseDayParam(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errors.New("date is required")
	}
	parsed, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return services.DateUTC(parsed), nil
}

// parseRangeQuery reads the required startDate/endDate query pair and
// rejects inverted ranges.
func parseRangeQuery(c *fiber.Ctx) (time.Time, time.Time, error) {
	from, err := parseDayParam(c.Query("startDate"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := parseDayParam(c.Query("endDate"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, errors.New("invalid range")
	}
	return from, to, nil
}

func parseOptionalDayQuery(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	parsed, err := parseDayParam(raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func parseMonthQuery(c *fiber.Ctx) (int, time.Month, error) {
	month, err := strconv.Atoi(strings.TrimSpace(c.Query("month")))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, errors.New("invalid month")
	}
	year, err := strconv.Atoi(strings.TrimSpace(c.Query("year")))
	if err != nil || year < 2000 || year > 2200 {
		return 0, 0, errors.New("invalid year")
	}
	return year, time.Month(month), nil
}

func parsePagination(c *fiber.Ctx, defaultLimit int) (int, int) {
	limit := c.QueryInt("limit", defaultLimit)
	if limit < 1 || limit > 100 {
		limit = defaultLimit
	}
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	return limit, page
}
