package services

import (
	"errors"
	"time"

	"github.com/akulinich/gaintrack/internal/models"
)

var (
	ErrInvalidTargetWeight = errors.New("target weight out of range")
	ErrInvalidWeightUnit   = errors.New("invalid weight unit")
	ErrInvalidTheme        = errors.New("invalid theme")
	ErrInvalidWeekStart    = errors.New("invalid week start day")
)

type SettingsInput struct {
	CreatineStartDate *time.Time
	TargetWeight      *float64
	WeightUnit        string
	Theme             string
	WeekStartsOn      string
}

type SettingsRepository interface {
	FindByUser(userID uint) (models.Settings, bool, error)
	Create(settings *models.Settings) error
	Save(settings *models.Settings) error
}

type SettingsService struct {
	settings SettingsRepository
}

func NewSettingsService(settings SettingsRepository) *SettingsService {
	return &SettingsService{settings: settings}
}

// LoadOrDefault returns the stored settings for a user, or the defaults
// without persisting anything.
func (service *SettingsService) LoadOrDefault(userID uint) (models.Settings, error) {
	stored, found, err := service.settings.FindByUser(userID)
	if err != nil {
		return models.Settings{}, err
	}
	if !found {
		return defaultSettings(userID), nil
	}
	return stored, nil
}

// Update validates and upserts a user's settings. The creatine start date is
// truncated to UTC midnight like every other calendar date.
func (service *SettingsService) Update(userID uint, input SettingsInput) (models.Settings, error) {
	if err := validateSettingsInput(input); err != nil {
		return models.Settings{}, err
	}

	stored, found, err := service.settings.FindByUser(userID)
	if err != nil {
		return models.Settings{}, err
	}
	if !found {
		stored = defaultSettings(userID)
	}

	if input.CreatineStartDate != nil {
		pivot := DateUTC(*input.CreatineStartDate)
		stored.CreatineStartDate = &pivot
	} else {
		stored.CreatineStartDate = nil
	}
	stored.TargetWeight = input.TargetWeight
	stored.WeightUnit = input.WeightUnit
	stored.Theme = input.Theme
	stored.WeekStartsOn = input.WeekStartsOn

	if stored.ID == 0 {
		if err := service.settings.Create(&stored); err != nil {
			return models.Settings{}, err
		}
		return stored, nil
	}
	if err := service.settings.Save(&stored); err != nil {
		return models.Settings{}, err
	}
	return stored, nil
}

func validateSettingsInput(input SettingsInput) error {
	if input.TargetWeight != nil && (*input.TargetWeight < models.MinWeightKg || *input.TargetWeight > models.MaxWeightKg) {
		return ErrInvalidTargetWeight
	}
	switch input.WeightUnit {
	case models.WeightUnitKg, models.WeightUnitLbs:
	default:
		return ErrInvalidWeightUnit
	}
	switch input.Theme {
	case models.ThemeLight, models.ThemeDark:
	default:
		return ErrInvalidTheme
	}
	switch input.WeekStartsOn {
	case models.WeekStartMonday, models.WeekStartSunday:
	default:
		return ErrInvalidWeekStart
	}
	return nil
}

func defaultSettings(userID uint) models.Settings {
	return models.Settings{
		UserID:       userID,
		WeightUnit:   models.WeightUnitKg,
		Theme:        models.ThemeLight,
		WeekStartsOn: models.WeekStartMonday,
	}
}
