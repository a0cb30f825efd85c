package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	dailyLogs := api.Group("/daily-logs", handler.AuthRequired)
	dailyLogs.Post("", handler.CreateDailyLog)
	dailyLogs.Get("", handler.GetDailyLogs)
	dailyLogs.Get("/:id", handler.GetDailyLog)
	dailyLogs.Put("/:id", handler.UpdateDailyLog)
	dailyLogs.Delete("/:id", handler.DeleteDailyLog)

	workoutLogs := api.Group("/workout-logs", handler.AuthRequired)
	workoutLogs.Get("/stats/prs", handler.GetPersonalRecords)
	workoutLogs.Get("/stats/volume", handler.GetVolumeStats)
	workoutLogs.Post("", handler.CreateWorkoutLog)
	workoutLogs.Get("", handler.GetWorkoutLogs)
	workoutLogs.Get("/:id", handler.GetWorkoutLog)
	workoutLogs.Put("/:id", handler.UpdateWorkoutLog)
	workoutLogs.Delete("/:id", handler.DeleteWorkoutLog)
	workoutLogs.Post("/:id/exercises", handler.AddExercise)
	workoutLogs.Delete("/:id/exercises/:index", handler.RemoveExercise)

	analytics := api.Group("/analytics", handler.AuthRequired)
	analytics.Get("/weekly", handler.GetWeeklySummary)
	analytics.Get("/monthly", handler.GetMonthlySummary)
	analytics.Get("/dashboard", handler.GetDashboardStats)
	analytics.Get("/creatine", handler.GetCreatineComparison)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Get("", handler.GetSettings)
	settings.Put("", handler.UpdateSettings)
}
