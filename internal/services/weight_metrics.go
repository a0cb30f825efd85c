package services

import (
	"time"

	"github.com/akulinich/gaintrack/internal/models"
)

// Daily weight status, classified from the gain over the trailing week.
// The weekly and monthly summaries use a different scheme with coarser
// thresholds (see PeriodStatus); the two are intentionally not unified.
const (
	WeightStatusGoingUp  = "Going Up"
	WeightStatusTooSlow  = "Too Slow"
	WeightStatusDropping = "Dropping"
	WeightStatusTooFast  = "Too Fast"
	WeightStatusNoData   = "No Data"
)

// DailyChange returns the weight delta against the previous entry, rounded
// to two decimals. Nil previous weight means there is no earlier entry and
// no change can be derived.
func DailyChange(weight float64, previousWeight *float64) *float64 {
	if previousWeight == nil {
		return nil
	}
	change := RoundTo2(weight - *previousWeight)
	return &change
}

// PreviousWeight finds the weight of the most recent entry strictly before
// the given day.
func PreviousWeight(logs []models.DailyLog, day time.Time) *float64 {
	target := DateUTC(day)
	var previous *models.DailyLog
	for index := range logs {
		entryDay := DateUTC(logs[index].Date)
		if !entryDay.Before(target) {
			continue
		}
		if previous == nil || entryDay.After(DateUTC(previous.Date)) {
			previous = &logs[index]
		}
	}
	if previous == nil {
		return nil
	}
	weight := previous.Weight
	return &weight
}

// SevenDayAverage averages the weights of entries dated within the seven-day
// window ending on day, inclusive on both ends, rounded to two decimals.
// Nil means the window holds no entries.
func SevenDayAverage(logs []models.DailyLog, day time.Time) *float64 {
	windowEnd := DateUTC(day)
	windowStart := windowEnd.AddDate(0, 0, -6)

	total := 0.0
	count := 0
	for _, entry := range logs {
		entryDay := DateUTC(entry.Date)
		if entryDay.Before(windowStart) || entryDay.After(windowEnd) {
			continue
		}
		total += entry.Weight
		count++
	}
	if count == 0 {
		return nil
	}
	average := RoundTo2(total / float64(count))
	return &average
}

// WeeklyGain compares the given weight to the most recent entry dated at or
// before day minus seven days. Nil means no such anchor entry exists.
func WeeklyGain(logs []models.DailyLog, day time.Time, weight float64) *float64 {
	anchorDay := DateUTC(day).AddDate(0, 0, -7)
	var anchor *models.DailyLog
	for index := range logs {
		entryDay := DateUTC(logs[index].Date)
		if entryDay.After(anchorDay) {
			continue
		}
		if anchor == nil || entryDay.After(DateUTC(anchor.Date)) {
			anchor = &logs[index]
		}
	}
	if anchor == nil {
		return nil
	}
	gain := weight - anchor.Weight
	return &gain
}

// WeightStatus classifies a weekly gain into the daily five-state scheme:
// [0.2, 0.5] is the target band, anything at or below zero is Dropping.
func WeightStatus(weeklyGain *float64) string {
	if weeklyGain == nil {
		return WeightStatusNoData
	}
	gain := *weeklyGain
	switch {
	case gain >= 0.2 && gain <= 0.5:
		return WeightStatusGoingUp
	case gain > 0 && gain < 0.2:
		return WeightStatusTooSlow
	case gain <= 0:
		return WeightStatusDropping
	default:
		return WeightStatusTooFast
	}
}

// PopulateDerived recomputes the cached derived fields on an entry from the
// raw history. The history may or may not already contain the entry itself;
// any stored log sharing the entry's date is replaced by the entry before
// windowed computations so create and re-read derive identical values.
func PopulateDerived(entry *models.DailyLog, history []models.DailyLog) {
	combined := make([]models.DailyLog, 0, len(history)+1)
	for _, logged := range history {
		if SameDay(logged.Date, entry.Date) {
			continue
		}
		combined = append(combined, logged)
	}
	combined = append(combined, *entry)

	entry.DailyChange = DailyChange(entry.Weight, PreviousWeight(combined, entry.Date))
	entry.SevenDayAverage = SevenDayAverage(combined, entry.Date)
	entry.Status = WeightStatus(WeeklyGain(combined, entry.Date, entry.Weight))
}
