package services

import (
	"fmt"
	"testing"

	"github.com/akulinich/gaintrack/internal/models"
)

func TestPeriodStatus_Boundaries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		gain float64
		want string
	}{
		{name: "negative", gain: -0.1, want: PeriodStatusDropping},
		{name: "zero", gain: 0, want: PeriodStatusTooSlow},
		{name: "just below band", gain: 0.29, want: PeriodStatusTooSlow},
		{name: "lower band edge", gain: 0.3, want: PeriodStatusOnTrack},
		{name: "upper band edge", gain: 1.2, want: PeriodStatusOnTrack},
		{name: "just above band", gain: 1.21, want: PeriodStatusTooFast},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			if got := PeriodStatus(testCase.gain); got != testCase.want {
				t.Fatalf("expected %q, got %q", testCase.want, got)
			}
		})
	}
}

// The daily and period classifications use different thresholds. A weekly
// gain of 0.25 kg sits inside the daily target band but below the period
// one; unifying the schemes would silently change one of the two.
func TestStatusSchemes_AreNotInterchangeable(t *testing.T) {
	t.Parallel()

	gain := 0.25
	if got := WeightStatus(&gain); got != WeightStatusGoingUp {
		t.Fatalf("expected daily status %q, got %q", WeightStatusGoingUp, got)
	}
	if got := PeriodStatus(gain); got != PeriodStatusTooSlow {
		t.Fatalf("expected period status %q, got %q", PeriodStatusTooSlow, got)
	}
}

func TestBuildWeeklySummary_Empty(t *testing.T) {
	t.Parallel()

	summary := BuildWeeklySummary(nil)
	if summary.Status != PeriodStatusNoData {
		t.Fatalf("expected status %q, got %q", PeriodStatusNoData, summary.Status)
	}
	if summary.StartWeight != 0 || summary.EndWeight != 0 || summary.TotalGain != 0 {
		t.Fatalf("expected zero weights, got %+v", summary)
	}
}

func TestBuildWeeklySummary_RatingAveragesSkipMissingValues(t *testing.T) {
	t.Parallel()

	logs := []models.DailyLog{
		{Date: mustParseDay(t, "2026-03-09"), Weight: 70.0, EggsConsumed: 4, GymAttendance: true, EnergyLevel: intPtr(4), StrengthInGym: intPtr(3)},
		{Date: mustParseDay(t, "2026-03-10"), Weight: 70.2, EggsConsumed: 6},
		{Date: mustParseDay(t, "2026-03-11"), Weight: 70.5, EggsConsumed: 5, GymAttendance: true, CreatineIntake: true, EnergyLevel: intPtr(2)},
	}

	summary := BuildWeeklySummary(logs)
	if !approxEqual(summary.StartWeight, 70.0) || !approxEqual(summary.EndWeight, 70.5) {
		t.Fatalf("expected weights 70.0 and 70.5, got %v and %v", summary.StartWeight, summary.EndWeight)
	}
	if !approxEqual(summary.TotalGain, 0.5) {
		t.Fatalf("expected total gain 0.5, got %v", summary.TotalGain)
	}
	if !approxEqual(summary.AvgEggs, 5.0) {
		t.Fatalf("expected avg eggs 5.0, got %v", summary.AvgEggs)
	}
	if summary.GymDays != 2 || summary.CreatineDays != 1 {
		t.Fatalf("expected 2 gym days and 1 creatine day, got %d and %d", summary.GymDays, summary.CreatineDays)
	}
	// Only the two rated entries divide the energy total; the single rated
	// entry divides strength.
	if !approxEqual(summary.AvgEnergy, 3.0) {
		t.Fatalf("expected avg energy 3.0, got %v", summary.AvgEnergy)
	}
	if !approxEqual(summary.AvgStrength, 3.0) {
		t.Fatalf("expected avg strength 3.0, got %v", summary.AvgStrength)
	}
	if summary.Status != PeriodStatusOnTrack {
		t.Fatalf("expected status %q, got %q", PeriodStatusOnTrack, summary.Status)
	}
}

func TestBuildWeeklySummary_SortsUnorderedInput(t *testing.T) {
	t.Parallel()

	logs := []models.DailyLog{
		makeLog(t, "2026-03-11", 70.5),
		makeLog(t, "2026-03-09", 70.0),
		makeLog(t, "2026-03-10", 70.2),
	}

	summary := BuildWeeklySummary(logs)
	if !approxEqual(summary.StartWeight, 70.0) || !approxEqual(summary.EndWeight, 70.5) {
		t.Fatalf("expected chronological endpoints, got %v and %v", summary.StartWeight, summary.EndWeight)
	}
}

func TestBuildMonthlySummary_Empty(t *testing.T) {
	t.Parallel()

	summary := BuildMonthlySummary(nil)
	if summary.TotalDays != 0 || summary.MonthlyGain != 0 {
		t.Fatalf("expected zero summary, got %+v", summary)
	}
}

func TestBuildMonthlySummary_ThirtyLoggedDays(t *testing.T) {
	t.Parallel()

	logs := make([]models.DailyLog, 0, 30)
	for day := 0; day < 30; day++ {
		entry := makeLog(t, fmt.Sprintf("2026-03-%02d", day+1), 70.0+float64(day)*0.1)
		entry.GymAttendance = day%3 != 0
		entry.CreatineIntake = day < 15
		logs = append(logs, entry)
	}
	// 70.0 through 72.9: gain 2.9 over 30 logged days.
	logs[29].Weight = 73.0

	summary := BuildMonthlySummary(logs)
	if summary.TotalDays != 30 {
		t.Fatalf("expected 30 logged days, got %d", summary.TotalDays)
	}
	if !approxEqual(summary.MonthlyGain, 3.0) {
		t.Fatalf("expected monthly gain 3.0, got %v", summary.MonthlyGain)
	}
	if !approxEqual(summary.AvgWeeklyGain, 0.7) {
		t.Fatalf("expected avg weekly gain 0.7, got %v", summary.AvgWeeklyGain)
	}
	if !approxEqual(summary.GymConsistency, 20.0/30.0*100) {
		t.Fatalf("expected gym consistency 66.67, got %v", summary.GymConsistency)
	}
	if !approxEqual(summary.CreatineUsage, 50.0) {
		t.Fatalf("expected creatine usage 50.0, got %v", summary.CreatineUsage)
	}
}

// The divisor is the number of logged entries, not the calendar length of
// the month.
func TestBuildMonthlySummary_SparseMonth(t *testing.T) {
	t.Parallel()

	logs := []models.DailyLog{
		makeLog(t, "2026-03-01", 70.0),
		makeLog(t, "2026-03-31", 70.7),
	}
	logs[0].GymAttendance = true

	summary := BuildMonthlySummary(logs)
	if summary.TotalDays != 2 {
		t.Fatalf("expected 2 logged days, got %d", summary.TotalDays)
	}
	if !approxEqual(summary.AvgWeeklyGain, 0.7/(2.0/7.0)) {
		t.Fatalf("expected avg weekly gain %v, got %v", 0.7/(2.0/7.0), summary.AvgWeeklyGain)
	}
	if !approxEqual(summary.GymConsistency, 50.0) {
		t.Fatalf("expected gym consistency 50.0, got %v", summary.GymConsistency)
	}
}
