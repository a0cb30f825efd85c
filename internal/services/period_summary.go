package services

import "github.com/akulinich/gaintrack/internal/models"

// Period status over an explicit window, classified from the total gain with
// the 0.3/1.2 kg thresholds. Deliberately a separate scheme from the daily
// WeightStatus (0.2/0.5, five states); callers must not mix the two.
const (
	PeriodStatusOnTrack  = "On Track"
	PeriodStatusTooSlow  = "Too Slow"
	PeriodStatusTooFast  = "Too Fast"
	PeriodStatusDropping = "Dropping"
	PeriodStatusNoData   = "No data"
)

type WeeklySummary struct {
	StartWeight  float64
	EndWeight    float64
	TotalGain    float64
	AvgEggs      float64
	GymDays      int
	CreatineDays int
	AvgEnergy    float64
	AvgStrength  float64
	Status       string
}

type MonthlySummary struct {
	StartWeight    float64
	EndWeight      float64
	MonthlyGain    float64
	AvgWeeklyGain  float64
	GymConsistency float64
	CreatineUsage  float64
	TotalDays      int
}

// PeriodStatus classifies a window gain: negative is Dropping, below 0.3 is
// Too Slow, above 1.2 is Too Fast, the [0.3, 1.2] band is On Track.
func PeriodStatus(gain float64) string {
	switch {
	case gain < 0:
		return PeriodStatusDropping
	case gain < 0.3:
		return PeriodStatusTooSlow
	case gain > 1.2:
		return PeriodStatusTooFast
	default:
		return PeriodStatusOnTrack
	}
}

// BuildWeeklySummary aggregates the entries of one caller-supplied window.
// The average energy and strength ratings only count entries that carry the
// rating. An empty window yields the zero summary with a "No data" status.
func BuildWeeklySummary(logs []models.DailyLog) WeeklySummary {
	if len(logs) == 0 {
		return WeeklySummary{Status: PeriodStatusNoData}
	}

	sorted := sortLogsAscending(logs)
	summary := WeeklySummary{
		StartWeight: sorted[0].Weight,
		EndWeight:   sorted[len(sorted)-1].Weight,
	}
	summary.TotalGain = summary.EndWeight - summary.StartWeight

	totalEggs := 0
	energyTotal, energyCount := 0.0, 0
	strengthTotal, strengthCount := 0.0, 0
	for _, entry := range sorted {
		totalEggs += entry.EggsConsumed
		if entry.GymAttendance {
			summary.GymDays++
		}
		if entry.CreatineIntake {
			summary.CreatineDays++
		}
		if entry.EnergyLevel != nil {
			energyTotal += float64(*entry.EnergyLevel)
			energyCount++
		}
		if entry.StrengthInGym != nil {
			strengthTotal += float64(*entry.StrengthInGym)
			strengthCount++
		}
	}

	summary.AvgEggs = float64(totalEggs) / float64(len(sorted))
	if energyCount > 0 {
		summary.AvgEnergy = energyTotal / float64(energyCount)
	}
	if strengthCount > 0 {
		summary.AvgStrength = strengthTotal / float64(strengthCount)
	}
	summary.Status = PeriodStatus(summary.TotalGain)

	return summary
}

// BuildMonthlySummary aggregates a calendar month of entries. Weekly-gain and
// consistency figures divide by the number of logged days, not the calendar
// length of the month, matching the existing API.
func BuildMonthlySummary(logs []models.DailyLog) MonthlySummary {
	if len(logs) == 0 {
		return MonthlySummary{}
	}

	sorted := sortLogsAscending(logs)
	summary := MonthlySummary{
		StartWeight: sorted[0].Weight,
		EndWeight:   sorted[len(sorted)-1].Weight,
		TotalDays:   len(sorted),
	}
	summary.MonthlyGain = summary.EndWeight - summary.StartWeight

	weeksLogged := float64(summary.TotalDays) / 7
	if weeksLogged > 0 {
		summary.AvgWeeklyGain = summary.MonthlyGain / weeksLogged
	}

	gymDays, creatineDays := 0, 0
	for _, entry := range sorted {
		if entry.GymAttendance {
			gymDays++
		}
		if entry.CreatineIntake {
			creatineDays++
		}
	}
	summary.GymConsistency = float64(gymDays) / float64(summary.TotalDays) * 100
	summary.CreatineUsage = float64(creatineDays) / float64(summary.TotalDays) * 100

	return summary
}
