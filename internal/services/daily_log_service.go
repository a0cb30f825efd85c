package services

import (
	"errors"
	"time"

	"github.com/akulinich/gaintrack/internal/models"
)

var (
	ErrDailyLogNotFound  = errors.New("daily log not found")
	ErrDailyLogExists    = errors.New("daily log already exists for date")
	ErrDailyLogForbidden = errors.New("daily log belongs to another user")
)

type DailyLogInput struct {
	Date           time.Time
	Weight         float64
	EggsConsumed   int
	GymAttendance  bool
	CreatineIntake bool
	EnergyLevel    *int
	StrengthInGym  *int
	Notes          string
}

type DailyLogRepository interface {
	ListByUser(userID uint) ([]models.DailyLog, error)
	ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time, limit int, offset int) ([]models.DailyLog, error)
	CountByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time) (int64, error)
	FindByID(id uint) (models.DailyLog, bool, error)
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.DailyLog, bool, error)
	Create(entry *models.DailyLog) error
	Save(entry *models.DailyLog) error
	Delete(entry *models.DailyLog) error
}

type DailyLogService struct {
	logs DailyLogRepository
}

func NewDailyLogService(logs DailyLogRepository) *DailyLogService {
	return &DailyLogService{logs: logs}
}

// CreateEntry stores a new daily log after enforcing one entry per calendar
// date. Derived fields are computed from the history before the write so the
// stored caches match what a later read would derive.
func (service *DailyLogService) CreateEntry(userID uint, input DailyLogInput) (models.DailyLog, error) {
	dayStart, dayEnd := DayRange(input.Date)
	_, exists, err := service.logs.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.DailyLog{}, err
	}
	if exists {
		return models.DailyLog{}, ErrDailyLogExists
	}

	entry := models.DailyLog{
		UserID:         userID,
		Date:           dayStart,
		Weight:         input.Weight,
		EggsConsumed:   input.EggsConsumed,
		GymAttendance:  input.GymAttendance,
		CreatineIntake: input.CreatineIntake,
		EnergyLevel:    input.EnergyLevel,
		StrengthInGym:  input.StrengthInGym,
		Notes:          input.Notes,
	}

	history, err := service.logs.ListByUser(userID)
	if err != nil {
		return models.DailyLog{}, err
	}
	PopulateDerived(&entry, history)

	if err := service.logs.Create(&entry); err != nil {
		return models.DailyLog{}, err
	}
	return entry, nil
}

// UpdateEntry replaces the raw fields of an existing entry. Moving the entry
// onto a date that already has one is rejected.
func (service *DailyLogService) UpdateEntry(userID uint, entryID uint, input DailyLogInput) (models.DailyLog, error) {
	entry, err := service.loadOwnedEntry(userID, entryID)
	if err != nil {
		return models.DailyLog{}, err
	}

	dayStart, dayEnd := DayRange(input.Date)
	if !SameDay(entry.Date, dayStart) {
		occupant, exists, err := service.logs.FindByUserAndDayRange(userID, dayStart, dayEnd)
		if err != nil {
			return models.DailyLog{}, err
		}
		if exists && occupant.ID != entry.ID {
			return models.DailyLog{}, ErrDailyLogExists
		}
	}

	entry.Date = dayStart
	entry.Weight = input.Weight
	entry.EggsConsumed = input.EggsConsumed
	entry.GymAttendance = input.GymAttendance
	entry.CreatineIntake = input.CreatineIntake
	entry.EnergyLevel = input.EnergyLevel
	entry.StrengthInGym = input.StrengthInGym
	entry.Notes = input.Notes

	history, err := service.logs.ListByUser(userID)
	if err != nil {
		return models.DailyLog{}, err
	}
	PopulateDerived(&entry, history)

	if err := service.logs.Save(&entry); err != nil {
		return models.DailyLog{}, err
	}
	return entry, nil
}

func (service *DailyLogService) DeleteEntry(userID uint, entryID uint) error {
	entry, err := service.loadOwnedEntry(userID, entryID)
	if err != nil {
		return err
	}
	return service.logs.Delete(&entry)
}

// GetEntry fetches one entry with the derived fields recomputed from the
// current history rather than trusted from the stored cache.
func (service *DailyLogService) GetEntry(userID uint, entryID uint) (models.DailyLog, error) {
	entry, err := service.loadOwnedEntry(userID, entryID)
	if err != nil {
		return models.DailyLog{}, err
	}

	history, err := service.logs.ListByUser(userID)
	if err != nil {
		return models.DailyLog{}, err
	}
	PopulateDerived(&entry, history)
	return entry, nil
}

// ListEntries returns one page of entries, most recent first, with derived
// fields recomputed against the full history.
func (service *DailyLogService) ListEntries(userID uint, from *time.Time, to *time.Time, limit int, page int) ([]models.DailyLog, int64, error) {
	if limit < 1 {
		limit = 30
	}
	if page < 1 {
		page = 1
	}

	var fromStart *time.Time
	var toEnd *time.Time
	if from != nil {
		start, _ := DayRange(*from)
		fromStart = &start
	}
	if to != nil {
		_, end := DayRange(*to)
		toEnd = &end
	}

	entries, err := service.logs.ListByUserRange(userID, fromStart, toEnd, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := service.logs.CountByUserRange(userID, fromStart, toEnd)
	if err != nil {
		return nil, 0, err
	}

	history, err := service.logs.ListByUser(userID)
	if err != nil {
		return nil, 0, err
	}
	for index := range entries {
		PopulateDerived(&entries[index], history)
	}
	return entries, total, nil
}

func (service *DailyLogService) loadOwnedEntry(userID uint, entryID uint) (models.DailyLog, error) {
	entry, found, err := service.logs.FindByID(entryID)
	if err != nil {
		return models.DailyLog{}, err
	}
	if !found {
		return models.DailyLog{}, ErrDailyLogNotFound
	}
	if entry.UserID != userID {
		return models.DailyLog{}, ErrDailyLogForbidden
	}
	return entry, nil
}
