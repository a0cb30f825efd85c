package services

import "github.com/akulinich/gaintrack/internal/models"

const (
	TrendStable   = "Stable"
	TrendGoingUp  = "Going Up"
	TrendDropping = "Dropping"

	trendDeadZoneKg = 0.2

	// Progress baseline and target of the bulking plan.
	progressBaselineKg = 50.0
	progressTargetKg   = 60.0
)

type DashboardStats struct {
	CurrentWeight    float64
	SevenDayAvg      float64
	Trend            string
	GymConsistency   float64
	TotalPRs         int
	AvgEnergy        float64
	AvgStrength      float64
	ProgressToTarget float64
}

// BuildDashboardStats rolls up the last 30 days of daily entries together
// with the user's full workout history. The PR total is deliberately not
// date-filtered. Empty daily history yields the zero stats with a Stable
// trend.
func BuildDashboardStats(recentLogs []models.DailyLog, workouts []models.WorkoutLog) DashboardStats {
	if len(recentLogs) == 0 {
		return DashboardStats{Trend: TrendStable}
	}

	sorted := sortLogsDescending(recentLogs)
	stats := DashboardStats{
		CurrentWeight: sorted[0].Weight,
		Trend:         TrendStable,
		TotalPRs:      CountPersonalRecords(workouts),
	}

	window := len(sorted)
	if window > 7 {
		window = 7
	}
	windowTotal := 0.0
	for _, entry := range sorted[:window] {
		windowTotal += entry.Weight
	}
	stats.SevenDayAvg = windowTotal / float64(window)

	if len(sorted) > 1 {
		change := stats.CurrentWeight - sorted[1].Weight
		if change > trendDeadZoneKg {
			stats.Trend = TrendGoingUp
		} else if change < -trendDeadZoneKg {
			stats.Trend = TrendDropping
		}
	}

	gymDays := 0
	energyTotal, strengthTotal := 0.0, 0.0
	for _, entry := range sorted {
		if entry.GymAttendance {
			gymDays++
		}
		// Known inconsistency carried over from the existing API: entries
		// without a rating count as zero in the sum while the divisor stays
		// the full entry count. The weekly summary excludes missing ratings
		// instead.
		energyTotal += ratingValue(entry.EnergyLevel)
		strengthTotal += ratingValue(entry.StrengthInGym)
	}
	stats.GymConsistency = float64(gymDays) / float64(len(sorted)) * 100
	stats.AvgEnergy = energyTotal / float64(len(sorted))
	stats.AvgStrength = strengthTotal / float64(len(sorted))

	progress := (stats.CurrentWeight - progressBaselineKg) / (progressTargetKg - progressBaselineKg) * 100
	if progress > 100 {
		progress = 100
	}
	stats.ProgressToTarget = progress

	return stats
}
