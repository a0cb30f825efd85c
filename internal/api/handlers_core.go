package api

import (
	"time"

	"github.com/akulinich/gaintrack/internal/db"
	"github.com/akulinich/gaintrack/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, secretKey string, location *time.Location, cookieSecure bool) *Handler {
	if location == nil {
		location = time.UTC
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(secretKey),
		location:     location,
		cookieSecure: cookieSecure,
	}

	handler.repositories = db.NewRepositories(database)
	handler.dailyLogService = services.NewDailyLogService(handler.repositories.DailyLogs)
	handler.workoutService = services.NewWorkoutService(handler.repositories.WorkoutLogs)
	handler.analytics = services.NewAnalyticsService(handler.repositories.DailyLogs, handler.repositories.WorkoutLogs)
	handler.settingsService = services.NewSettingsService(handler.repositories.Settings)

	return handler
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
}
