package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetPersonalRecords(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	from, to, err := parseRangeQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date range")
	}

	records, err := handler.analytics.PersonalRecordsForRange(user.ID, from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch personal records")
	}
	return c.JSON(fiber.Map{
		"prs":   records,
		"count": len(records),
	})
}

func (handler *Handler) GetVolumeStats(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	from, to, err := parseRangeQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date range")
	}

	volume, err := handler.analytics.VolumeForRange(user.ID, from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch volume stats")
	}
	return c.JSON(fiber.Map{"volumeByMuscle": volume})
}
