package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetWeeklySummary(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	from, to, err := parseRangeQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date range")
	}

	summary, err := handler.analytics.WeeklySummary(user.ID, from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build weekly summary")
	}
	return c.JSON(weeklySummaryView(summary))
}

func (handler *Handler) GetMonthlySummary(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	year, month, err := parseMonthQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid month or year")
	}

	summary, err := handler.analytics.MonthlySummary(user.ID, year, month)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build monthly summary")
	}
	return c.JSON(monthlySummaryView(summary))
}

func (handler *Handler) GetDashboardStats(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	stats, err := handler.analytics.Dashboard(user.ID, time.Now().In(handler.location))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build dashboard")
	}
	return c.JSON(dashboardView(stats))
}

// GetCreatineComparison splits the history at the pivot from the startDate
// query, falling back to the creatine start date stored in settings.
func (handler *Handler) GetCreatineComparison(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	pivot, err := parseOptionalDayQuery(c, "startDate")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid start date")
	}
	if pivot == nil {
		settings, err := handler.settingsService.LoadOrDefault(user.ID)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to load settings")
		}
		pivot = settings.CreatineStartDate
	}
	if pivot == nil {
		return apiError(c, fiber.StatusBadRequest, "creatine start date is not set")
	}

	comparison, err := handler.analytics.CreatineComparison(user.ID, *pivot)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build comparison")
	}
	return c.JSON(creatineComparisonView(comparison))
}
