package models

import "time"

const (
	MuscleGroupBack      = "Back"
	MuscleGroupBiceps    = "Biceps"
	MuscleGroupLegs      = "Legs"
	MuscleGroupShoulders = "Shoulders"
	MuscleGroupChest     = "Chest"
	MuscleGroupTriceps   = "Triceps"
	MuscleGroupForearms  = "Forearms"
	MuscleGroupCalves    = "Calves"
	MuscleGroupAbs       = "Abs"
	MuscleGroupOther     = "Other"
)

const (
	MaxExerciseNameLength  = 100
	MaxExerciseNotesLength = 300
	MinReps                = 1
	MaxReps                = 100
	MinSetWeightKg         = 0
	MaxSetWeightKg         = 500
)

func MuscleGroups() []string {
	return []string{
		MuscleGroupBack,
		MuscleGroupBiceps,
		MuscleGroupLegs,
		MuscleGroupShoulders,
		MuscleGroupChest,
		MuscleGroupTriceps,
		MuscleGroupForearms,
		MuscleGroupCalves,
		MuscleGroupAbs,
		MuscleGroupOther,
	}
}

type SetEntry struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

// Exercise is one logged exercise within a workout. Set data comes in two
// shapes: SetsData with per-set reps and weight, or the older scalar
// Sets/Reps/WeightUsed triple. SetsData wins when both are present; volume
// and record extraction go through the workout stats functions so the branch
// lives in exactly one place.
type Exercise struct {
	ExerciseName   string     `json:"exerciseName"`
	MuscleGroup    string     `json:"muscleGroup"`
	SetsData       []SetEntry `json:"setsData,omitempty"`
	Sets           int        `json:"sets,omitempty"`
	Reps           int        `json:"reps,omitempty"`
	WeightUsed     float64    `json:"weightUsed,omitempty"`
	PersonalRecord bool       `json:"personalRecord"`
	Notes          string     `json:"notes,omitempty"`
}

func (exercise Exercise) HasDetailedSets() bool {
	return len(exercise.SetsData) > 0
}

// WorkoutLog holds all exercises performed on one day. TotalVolume is a
// cache recomputed whenever Exercises changes.
type WorkoutLog struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"not null;index:idx_workout_user_date" json:"user_id"`
	Date        time.Time  `gorm:"type:date;not null;index:idx_workout_user_date" json:"date"`
	Exercises   []Exercise `gorm:"serializer:json" json:"exercises"`
	TotalVolume float64    `gorm:"not null;default:0" json:"total_volume"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
