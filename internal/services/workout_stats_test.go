package services

import (
	"testing"

	"github.com/akulinich/gaintrack/internal/models"
)

func TestExerciseVolume_DetailedSetsWinOverLegacyFields(t *testing.T) {
	t.Parallel()

	exercise := models.Exercise{
		ExerciseName: "Bench Press",
		MuscleGroup:  models.MuscleGroupChest,
		SetsData: []models.SetEntry{
			{Reps: 10, Weight: 60},
			{Reps: 8, Weight: 70},
			{Reps: 6, Weight: 80},
		},
		// Stale legacy fields must be ignored when per-set data exists.
		Sets:       99,
		Reps:       99,
		WeightUsed: 999,
	}

	if got := ExerciseVolume(exercise); !approxEqual(got, 1640) {
		t.Fatalf("expected volume 1640, got %v", got)
	}
}

func TestExerciseVolume_LegacyTriple(t *testing.T) {
	t.Parallel()

	exercise := models.Exercise{
		ExerciseName: "Squat",
		MuscleGroup:  models.MuscleGroupLegs,
		Sets:         3,
		Reps:         10,
		WeightUsed:   80,
	}

	if got := ExerciseVolume(exercise); !approxEqual(got, 2400) {
		t.Fatalf("expected volume 2400, got %v", got)
	}
}

func TestWorkoutTotalVolume_SumsExercisesAndIsIdempotent(t *testing.T) {
	t.Parallel()

	entry := models.WorkoutLog{
		Date: mustParseDay(t, "2026-03-15"),
		Exercises: []models.Exercise{
			{ExerciseName: "Bench Press", MuscleGroup: models.MuscleGroupChest, Sets: 3, Reps: 10, WeightUsed: 60},
			{ExerciseName: "Incline Press", MuscleGroup: models.MuscleGroupChest, SetsData: []models.SetEntry{{Reps: 10, Weight: 40}, {Reps: 8, Weight: 52.5}}},
		},
	}

	first := WorkoutTotalVolume(entry)
	if !approxEqual(first, 2620) {
		t.Fatalf("expected total volume 2620, got %v", first)
	}
	entry.TotalVolume = first
	if second := WorkoutTotalVolume(entry); !approxEqual(second, first) {
		t.Fatalf("expected recomputation to be stable, got %v then %v", first, second)
	}
}

func TestPersonalRecords_DetailedSetsReportHeaviestSet(t *testing.T) {
	t.Parallel()

	logs := []models.WorkoutLog{
		{
			Date: mustParseDay(t, "2026-03-15"),
			Exercises: []models.Exercise{
				{
					ExerciseName:   "Bench Press",
					MuscleGroup:    models.MuscleGroupChest,
					PersonalRecord: true,
					SetsData: []models.SetEntry{
						{Reps: 10, Weight: 60},
						{Reps: 3, Weight: 85},
						{Reps: 8, Weight: 70},
					},
				},
				{ExerciseName: "Flyes", MuscleGroup: models.MuscleGroupChest, Sets: 3, Reps: 12, WeightUsed: 15},
			},
		},
	}

	records := PersonalRecords(logs)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	record := records[0]
	if record.Exercise != "Bench Press" {
		t.Fatalf("expected Bench Press, got %q", record.Exercise)
	}
	if !approxEqual(record.Weight, 85) {
		t.Fatalf("expected heaviest set weight 85, got %v", record.Weight)
	}
	if record.Reps != 3 {
		t.Fatalf("expected heaviest set reps 3, got %d", record.Reps)
	}
	if record.Sets != 3 {
		t.Fatalf("expected set count 3, got %d", record.Sets)
	}
}

func TestPersonalRecords_LegacyFieldsPassThrough(t *testing.T) {
	t.Parallel()

	logs := []models.WorkoutLog{
		{
			Date: mustParseDay(t, "2026-03-15"),
			Exercises: []models.Exercise{
				{
					ExerciseName:   "Squat",
					MuscleGroup:    models.MuscleGroupLegs,
					PersonalRecord: true,
					Sets:           5,
					Reps:           5,
					WeightUsed:     120,
				},
			},
		},
	}

	records := PersonalRecords(logs)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if !approxEqual(records[0].Weight, 120) || records[0].Sets != 5 || records[0].Reps != 5 {
		t.Fatalf("unexpected record %+v", records[0])
	}
}

func TestVolumeByMuscleGroup_OmitsAbsentGroups(t *testing.T) {
	t.Parallel()

	logs := []models.WorkoutLog{
		{
			Date: mustParseDay(t, "2026-03-15"),
			Exercises: []models.Exercise{
				{ExerciseName: "Bench Press", MuscleGroup: models.MuscleGroupChest, Sets: 3, Reps: 10, WeightUsed: 60},
				{ExerciseName: "Flyes", MuscleGroup: models.MuscleGroupChest, Sets: 3, Reps: 12, WeightUsed: 15},
				{ExerciseName: "Curls", MuscleGroup: models.MuscleGroupBiceps, Sets: 3, Reps: 10, WeightUsed: 20},
			},
		},
	}

	totals := VolumeByMuscleGroup(logs)
	if len(totals) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(totals))
	}
	if !approxEqual(totals[models.MuscleGroupChest], 2340) {
		t.Fatalf("expected chest volume 2340, got %v", totals[models.MuscleGroupChest])
	}
	if !approxEqual(totals[models.MuscleGroupBiceps], 600) {
		t.Fatalf("expected biceps volume 600, got %v", totals[models.MuscleGroupBiceps])
	}
	if _, present := totals[models.MuscleGroupLegs]; present {
		t.Fatalf("expected no entry for an untrained group")
	}
}

func TestCountPersonalRecords(t *testing.T) {
	t.Parallel()

	logs := []models.WorkoutLog{
		{
			Exercises: []models.Exercise{
				{ExerciseName: "Bench Press", MuscleGroup: models.MuscleGroupChest, PersonalRecord: true},
				{ExerciseName: "Squat", MuscleGroup: models.MuscleGroupLegs},
			},
		},
		{
			Exercises: []models.Exercise{
				{ExerciseName: "Deadlift", MuscleGroup: models.MuscleGroupBack, PersonalRecord: true},
			},
		},
	}
	if got := CountPersonalRecords(logs); got != 2 {
		t.Fatalf("expected 2 records, got %d", got)
	}
}
