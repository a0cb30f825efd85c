package services

import (
	"math"
	"sort"
	"time"

	"github.com/akulinich/gaintrack/internal/models"
)

// DateUTC truncates a timestamp to UTC midnight. All calendar dates in the
// system are stored and compared at UTC midnight so that the per-user
// one-entry-per-date uniqueness cannot depend on the server time zone.
func DateUTC(value time.Time) time.Time {
	localized := value.In(time.UTC)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func DayRange(value time.Time) (time.Time, time.Time) {
	start := DateUTC(value)
	return start, start.AddDate(0, 0, 1)
}

func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

func RoundTo2(value float64) float64 {
	return math.Round(value*100) / 100
}

func SameDay(a time.Time, b time.Time) bool {
	return DateUTC(a).Equal(DateUTC(b))
}

func sortLogsAscending(logs []models.DailyLog) []models.DailyLog {
	sorted := make([]models.DailyLog, 0, len(logs))
	sorted = append(sorted, logs...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

func sortLogsDescending(logs []models.DailyLog) []models.DailyLog {
	sorted := make([]models.DailyLog, 0, len(logs))
	sorted = append(sorted, logs...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	return sorted
}

func ratingValue(rating *int) float64 {
	if rating == nil {
		return 0
	}
	return float64(*rating)
}
