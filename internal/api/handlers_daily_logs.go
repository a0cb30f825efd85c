package api

import (
	"errors"
	"math"

	"github.com/akulinich/gaintrack/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) CreateDailyLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input, err := parseDailyLogInput(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	entry, err := handler.dailyLogService.CreateEntry(user.ID, input)
	if err != nil {
		if errors.Is(err, services.ErrDailyLogExists) {
			return apiError(c, fiber.StatusConflict, "entry already exists for this date")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create daily log")
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) GetDailyLogs(c *fiber.Ctx) error {
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
	limit, page := parsePagination(c, 30)

	entries, total, err := handler.dailyLogService.ListEntries(user.ID, from, to, limit, page)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch daily logs")
	}

	return c.JSON(fiber.Map{
		"logs":        entries,
		"total":       total,
		"totalPages":  int(math.Ceil(float64(total) / float64(limit))),
		"currentPage": page,
	})
}

func (handler *Handler) GetDailyLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entryID, err := c.ParamsInt("id")
	if err != nil || entryID < 1 {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	entry, err := handler.dailyLogService.GetEntry(user.ID, uint(entryID))
	if err != nil {
		return dailyLogErrorResponse(c, err, "failed to fetch daily log")
	}
	return c.JSON(entry)
}

func (handler *Handler) UpdateDailyLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entryID, err := c.ParamsInt("id")
	if err != nil || entryID < 1 {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	input, err := parseDailyLogInput(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	entry, err := handler.dailyLogService.UpdateEntry(user.ID, uint(entryID), input)
	if err != nil {
		if errors.Is(err, services.ErrDailyLogExists) {
			return apiError(c, fiber.StatusConflict, "entry already exists for this date")
		}
		return dailyLogErrorResponse(c, err, "failed to update daily log")
	}
	return c.JSON(entry)
}

func (handler *Handler) DeleteDailyLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entryID, err := c.ParamsInt("id")
	if err != nil || entryID < 1 {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := handler.dailyLogService.DeleteEntry(user.ID, uint(entryID)); err != nil {
		return dailyLogErrorResponse(c, err, "failed to delete daily log")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func dailyLogErrorResponse(c *fiber.Ctx, err error, fallback string) error {
	if errors.Is(err, services.ErrDailyLogNotFound) {
		return apiError(c, fiber.StatusNotFound, "daily log not found")
	}
	if errors.Is(err, services.ErrDailyLogForbidden) {
		return apiError(c, fiber.StatusForbidden, "not authorized for this log")
	}
	return apiError(c, fiber.StatusInternalServerError, fallback)
}
