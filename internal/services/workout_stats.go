package services

import (
	"time"

	"github.com/akulinich/gaintrack/internal/models"
)

type PersonalRecord struct {
	Date        time.Time `json:"date"`
	Exercise    string    `json:"exercise"`
	MuscleGroup string    `json:"muscleGroup"`
	Weight      float64   `json:"weight"`
	Sets        int       `json:"sets"`
	Reps        int       `json:"reps"`
}

// ExerciseVolume is the single place that resolves the two set
// representations: per-set data sums reps times weight over every set, the
// legacy scalar triple multiplies sets by reps by weight.
func ExerciseVolume(exercise models.Exercise) float64 {
	if exercise.HasDetailedSets() {
		total := 0.0
		for _, set := range exercise.SetsData {
			total += float64(set.Reps) * set.Weight
		}
		return total
	}
	return float64(exercise.Sets) * float64(exercise.Reps) * exercise.WeightUsed
}

// WorkoutTotalVolume sums the exercise volumes of one workout entry. The
// result depends only on the exercises array, so recomputing is idempotent.
func WorkoutTotalVolume(entry models.WorkoutLog) float64 {
	total := 0.0
	for _, exercise := range entry.Exercises {
		total += ExerciseVolume(exercise)
	}
	return total
}

// PersonalRecords extracts every exercise flagged as a personal record, in
// entry iteration order. Exercises with per-set data report their heaviest
// set and the total set count.
func PersonalRecords(logs []models.WorkoutLog) []PersonalRecord {
	records := make([]PersonalRecord, 0)
	for _, entry := range logs {
		for _, exercise := range entry.Exercises {
			if !exercise.PersonalRecord {
				continue
			}
			record := PersonalRecord{
				Date:        entry.Date,
				Exercise:    exercise.ExerciseName,
				MuscleGroup: exercise.MuscleGroup,
				Weight:      exercise.WeightUsed,
				Sets:        exercise.Sets,
				Reps:        exercise.Reps,
			}
			if exercise.HasDetailedSets() {
				heaviest := heaviestSet(exercise.SetsData)
				record.Weight = heaviest.Weight
				record.Reps = heaviest.Reps
				record.Sets = len(exercise.SetsData)
			}
			records = append(records, record)
		}
	}
	return records
}

// VolumeByMuscleGroup totals exercise volume per muscle group. Groups
// without a matching exercise are absent from the map rather than present
// with a zero.
func VolumeByMuscleGroup(logs []models.WorkoutLog) map[string]float64 {
	totals := make(map[string]float64)
	for _, entry := range logs {
		for _, exercise := range entry.Exercises {
			totals[exercise.MuscleGroup] += ExerciseVolume(exercise)
		}
	}
	return totals
}

func CountPersonalRecords(logs []models.WorkoutLog) int {
	count := 0
	for _, entry := range logs {
		for _, exercise := range entry.Exercises {
			if exercise.PersonalRecord {
				count++
			}
		}
	}
	return count
}

func heaviestSet(sets []models.SetEntry) models.SetEntry {
	best := sets[0]
	for _, set := range sets[1:] {
		if set.Weight > best.Weight {
			best = set
		}
	}
	return best
}
