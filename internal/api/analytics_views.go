package api

import (
	"fmt"

	"github.com/akulinich/gaintrack/internal/services"
	"github.com/gofiber/fiber/v2"
)

// The analytics endpoints report derived figures as fixed-decimal strings so
// clients render them without rounding of their own: weights with one
// decimal, gains and gain speeds with two, percentages and rating averages
// with one.
func formatWeight(value float64) string {
	return fmt.Sprintf("%.1f", value)
}

func formatGain(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

func formatAverage(value float64) string {
	return fmt.Sprintf("%.1f", value)
}

func weeklySummaryView(summary services.WeeklySummary) fiber.Map {
	return fiber.Map{
		"startWeight":  formatWeight(summary.StartWeight),
		"endWeight":    formatWeight(summary.EndWeight),
		"totalGain":    formatGain(summary.TotalGain),
		"avgEggs":      formatAverage(summary.AvgEggs),
		"gymDays":      summary.GymDays,
		"creatineDays": summary.CreatineDays,
		"avgEnergy":    formatAverage(summary.AvgEnergy),
		"avgStrength":  formatAverage(summary.AvgStrength),
		"status":       summary.Status,
	}
}

func monthlySummaryView(summary services.MonthlySummary) fiber.Map {
	return fiber.Map{
		"startWeight":    formatWeight(summary.StartWeight),
		"endWeight":      formatWeight(summary.EndWeight),
		"monthlyGain":    formatGain(summary.MonthlyGain),
		"avgWeeklyGain":  formatGain(summary.AvgWeeklyGain),
		"gymConsistency": formatAverage(summary.GymConsistency),
		"creatineUsage":  formatAverage(summary.CreatineUsage),
		"totalDays":      summary.TotalDays,
	}
}

func dashboardView(stats services.DashboardStats) fiber.Map {
	return fiber.Map{
		"currentWeight":    formatWeight(stats.CurrentWeight),
		"sevenDayAvg":      formatWeight(stats.SevenDayAvg),
		"trend":            stats.Trend,
		"gymConsistency":   formatAverage(stats.GymConsistency),
		"totalPRs":         stats.TotalPRs,
		"avgEnergy":        formatAverage(stats.AvgEnergy),
		"avgStrength":      formatAverage(stats.AvgStrength),
		"progressToTarget": formatAverage(stats.ProgressToTarget),
	}
}

func segmentStatsView(stats services.SegmentStats) fiber.Map {
	return fiber.Map{
		"weightGainSpeed": formatGain(stats.WeightGainSpeed),
		"avgStrength":     formatAverage(stats.AvgStrength),
		"avgEnergy":       formatAverage(stats.AvgEnergy),
		"gymConsistency":  formatAverage(stats.GymConsistency),
		"prCount":         stats.PRCount,
		"daysCount":       stats.DaysCount,
	}
}

func creatineComparisonView(comparison services.CreatineComparison) fiber.Map {
	return fiber.Map{
		"preCreatine":  segmentStatsView(comparison.PreCreatine),
		"postCreatine": segmentStatsView(comparison.PostCreatine),
		"improvement": fiber.Map{
			"weightGainSpeed": comparison.Improvement.WeightGainSpeed,
			"strength":        comparison.Improvement.Strength,
			"energy":          comparison.Improvement.Energy,
		},
	}
}
