package api

import (
	"errors"

	"github.com/akulinich/gaintrack/internal/services"
	"github.com/gofiber/fiber/v2"
)

type settingsPayload struct {
	CreatineStartDate *string  `json:"creatineStartDate"`
	TargetWeight      *float64 `json:"targetWeight"`
	WeightUnit        string   `json:"weightUnit"`
	Theme             string   `json:"theme"`
	WeekStartsOn      string   `json:"weekStartsOn"`
}

func (handler *Handler) GetSettings(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	settings, err := handler.settingsService.LoadOrDefault(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load settings")
	}
	return c.JSON(settings)
}

func (handler *Handler) UpdateSettings(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := settingsPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	input := services.SettingsInput{
		TargetWeight: payload.TargetWeight,
		WeightUnit:   payload.WeightUnit,
		Theme:        payload.Theme,
		WeekStartsOn: payload.WeekStartsOn,
	}
	if payload.CreatineStartDate != nil && *payload.CreatineStartDate != "" {
		pivot, err := parseDayParam(*payload.CreatineStartDate)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid creatine start date")
		}
		input.CreatineStartDate = &pivot
	}

	settings, err := handler.settingsService.Update(user.ID, input)
	if err != nil {
		if isSettingsValidationError(err) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to update settings")
	}
	return c.JSON(settings)
}

func isSettingsValidationError(err error) bool {
	return errors.Is(err, services.ErrInvalidTargetWeight) ||
		errors.Is(err, services.ErrInvalidWeightUnit) ||
		errors.Is(err, services.ErrInvalidTheme) ||
		errors.Is(err, services.ErrInvalidWeekStart)
}
