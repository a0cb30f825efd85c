package models

import "time"

const (
	MinWeightKg = 0
	MaxWeightKg = 200
	MaxEggs     = 50
	MinRating   = 1
	MaxRating   = 5

	MaxDailyNotesLength = 500
)

// DailyLog holds one day's logged metrics for a user. Dates are stored at
// UTC midnight; the (user_id, date) pair is unique.
//
// DailyChange, SevenDayAverage and Status are caches of derived values and
// are recomputed from the raw fields on every read and write. They are never
// a source of truth.
type DailyLog struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;uniqueIndex:uidx_user_date" json:"user_id"`
	Date           time.Time `gorm:"type:date;not null;uniqueIndex:uidx_user_date" json:"date"`
	Weight         float64   `gorm:"not null" json:"weight"`
	EggsConsumed   int       `gorm:"not null;default:0" json:"eggs_consumed"`
	GymAttendance  bool      `gorm:"not null;default:false" json:"gym_attendance"`
	CreatineIntake bool      `gorm:"not null;default:false" json:"creatine_intake"`
	EnergyLevel    *int      `json:"energy_level,omitempty"`
	StrengthInGym  *int      `json:"strength_in_gym,omitempty"`
	Notes          string    `json:"notes,omitempty"`

	DailyChange     *float64 `json:"daily_change"`
	SevenDayAverage *float64 `json:"seven_day_average"`
	Status          string   `gorm:"not null;default:No Data" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
