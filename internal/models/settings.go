package models

import "time"

const (
	WeightUnitKg  = "kg"
	WeightUnitLbs = "lbs"

	ThemeLight = "light"
	ThemeDark  = "dark"

	WeekStartMonday = "Monday"
	WeekStartSunday = "Sunday"
)

type Settings struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	UserID            uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	CreatineStartDate *time.Time `gorm:"type:date" json:"creatine_start_date"`
	TargetWeight      *float64   `json:"target_weight"`
	WeightUnit        string     `gorm:"not null;default:kg" json:"weight_unit"`
	Theme             string     `gorm:"not null;default:light" json:"theme"`
	WeekStartsOn      string     `gorm:"not null;default:Monday" json:"week_starts_on"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
