package services

import (
	"time"

	"github.com/akulinich/gaintrack/internal/models"
)

type AnalyticsDailyLogReader interface {
	ListByUser(userID uint) ([]models.DailyLog, error)
	ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time, limit int, offset int) ([]models.DailyLog, error)
}

type AnalyticsWorkoutReader interface {
	ListByUser(userID uint) ([]models.WorkoutLog, error)
	ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time, limit int, offset int) ([]models.WorkoutLog, error)
}

// AnalyticsService fetches the raw entries for a user and window and hands
// them to the pure aggregation functions. It owns no computation rules
// itself.
type AnalyticsService struct {
	logs     AnalyticsDailyLogReader
	workouts AnalyticsWorkoutReader
}

func NewAnalyticsService(logs AnalyticsDailyLogReader, workouts AnalyticsWorkoutReader) *AnalyticsService {
	return &AnalyticsService{
		logs:     logs,
		workouts: workouts,
	}
}

func (service *AnalyticsService) WeeklySummary(userID uint, from time.Time, to time.Time) (WeeklySummary, error) {
	entries, err := service.fetchLogsBetween(userID, from, to)
	if err != nil {
		return WeeklySummary{}, err
	}
	return BuildWeeklySummary(entries), nil
}

func (service *AnalyticsService) MonthlySummary(userID uint, year int, month time.Month) (MonthlySummary, error) {
	monthStart, monthEnd := MonthRange(year, month)
	entries, err := service.logs.ListByUserRange(userID, &monthStart, &monthEnd, 0, 0)
	if err != nil {
		return MonthlySummary{}, err
	}
	return BuildMonthlySummary(entries), nil
}

// Dashboard aggregates the trailing 30 days of daily entries and the full
// workout history as of now.
func (service *AnalyticsService) Dashboard(userID uint, now time.Time) (DashboardStats, error) {
	windowStart := DateUTC(now).AddDate(0, 0, -30)
	entries, err := service.logs.ListByUserRange(userID, &windowStart, nil, 0, 0)
	if err != nil {
		return DashboardStats{}, err
	}
	workouts, err := service.workouts.ListByUser(userID)
	if err != nil {
		return DashboardStats{}, err
	}
	return BuildDashboardStats(entries, workouts), nil
}

func (service *AnalyticsService) CreatineComparison(userID uint, pivot time.Time) (CreatineComparison, error) {
	entries, err := service.logs.ListByUser(userID)
	if err != nil {
		return CreatineComparison{}, err
	}
	workouts, err := service.workouts.ListByUser(userID)
	if err != nil {
		return CreatineComparison{}, err
	}
	return BuildCreatineComparison(entries, workouts, pivot), nil
}

func (service *AnalyticsService) PersonalRecordsForRange(userID uint, from time.Time, to time.Time) ([]PersonalRecord, error) {
	workouts, err := service.fetchWorkoutsBetween(userID, from, to)
	if err != nil {
		return nil, err
	}
	return PersonalRecords(workouts), nil
}

func (service *AnalyticsService) VolumeForRange(userID uint, from time.Time, to time.Time) (map[string]float64, error) {
	workouts, err := service.fetchWorkoutsBetween(userID, from, to)
	if err != nil {
		return nil, err
	}
	return VolumeByMuscleGroup(workouts), nil
}

func (service *AnalyticsService) fetchLogsBetween(userID uint, from time.Time, to time.Time) ([]models.DailyLog, error) {
	fromStart, _ := DayRange(from)
	_, toEnd := DayRange(to)
	return service.logs.ListByUserRange(userID, &fromStart, &toEnd, 0, 0)
}

func (service *AnalyticsService) fetchWorkoutsBetween(userID uint, from time.Time, to time.Time) ([]models.WorkoutLog, error) {
	fromStart, _ := DayRange(from)
	_, toEnd := DayRange(to)
	return service.workouts.ListByUserRange(userID, &fromStart, &toEnd, 0, 0)
}
