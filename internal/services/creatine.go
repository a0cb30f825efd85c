package services

import (
	"fmt"
	"time"

	"github.com/akulinich/gaintrack/internal/models"
)

// ImprovementNotAvailable is reported when a before/after ratio has no
// usable baseline (empty pre segment or a zero pre metric).
const ImprovementNotAvailable = "N/A"

type SegmentStats struct {
	WeightGainSpeed float64
	AvgStrength     float64
	AvgEnergy       float64
	GymConsistency  float64
	PRCount         int
	DaysCount       int
}

type Improvement struct {
	WeightGainSpeed string
	Strength        string
	Energy          string
}

type CreatineComparison struct {
	PreCreatine  SegmentStats
	PostCreatine SegmentStats
	Improvement  Improvement
}

// BuildCreatineComparison splits the full history at the creatine start
// date (entries strictly before the pivot against entries at or after it)
// and computes the same statistics for both segments plus the percentage
// improvement of post over pre.
func BuildCreatineComparison(logs []models.DailyLog, workouts []models.WorkoutLog, pivot time.Time) CreatineComparison {
	pivotDay := DateUTC(pivot)

	preLogs := make([]models.DailyLog, 0, len(logs))
	postLogs := make([]models.DailyLog, 0, len(logs))
	for _, entry := range logs {
		if DateUTC(entry.Date).Before(pivotDay) {
			preLogs = append(preLogs, entry)
		} else {
			postLogs = append(postLogs, entry)
		}
	}

	preWorkouts := make([]models.WorkoutLog, 0, len(workouts))
	postWorkouts := make([]models.WorkoutLog, 0, len(workouts))
	for _, workout := range workouts {
		if DateUTC(workout.Date).Before(pivotDay) {
			preWorkouts = append(preWorkouts, workout)
		} else {
			postWorkouts = append(postWorkouts, workout)
		}
	}

	pre := buildSegmentStats(preLogs)
	pre.PRCount = CountPersonalRecords(preWorkouts)
	post := buildSegmentStats(postLogs)
	post.PRCount = CountPersonalRecords(postWorkouts)

	return CreatineComparison{
		PreCreatine:  pre,
		PostCreatine: post,
		Improvement: Improvement{
			WeightGainSpeed: improvementPercent(pre.WeightGainSpeed, post.WeightGainSpeed),
			Strength:        improvementPercent(pre.AvgStrength, post.AvgStrength),
			Energy:          improvementPercent(pre.AvgEnergy, post.AvgEnergy),
		},
	}
}

// buildSegmentStats computes per-segment figures. The gain speed spreads the
// first-to-last weight delta over the logged days and scales it to a week.
// Ratings use plain means with missing values counted as zero, matching the
// existing API.
func buildSegmentStats(logs []models.DailyLog) SegmentStats {
	if len(logs) == 0 {
		return SegmentStats{}
	}

	sorted := sortLogsAscending(logs)
	stats := SegmentStats{DaysCount: len(sorted)}

	totalGain := sorted[len(sorted)-1].Weight - sorted[0].Weight
	stats.WeightGainSpeed = totalGain / float64(stats.DaysCount) * 7

	gymDays := 0
	energyTotal, strengthTotal := 0.0, 0.0
	for _, entry := range sorted {
		if entry.GymAttendance {
			gymDays++
		}
		energyTotal += ratingValue(entry.EnergyLevel)
		strengthTotal += ratingValue(entry.StrengthInGym)
	}
	stats.AvgStrength = strengthTotal / float64(stats.DaysCount)
	stats.AvgEnergy = energyTotal / float64(stats.DaysCount)
	stats.GymConsistency = float64(gymDays) / float64(stats.DaysCount) * 100

	return stats
}

func improvementPercent(pre float64, post float64) string {
	if pre <= 0 {
		return ImprovementNotAvailable
	}
	return fmt.Sprintf("%.1f%%", (post-pre)/pre*100)
}
