package db

import (
	"time"

	"github.com/akulinich/gaintrack/internal/models"
	"gorm.io/gorm"
)

type DailyLogRepository struct {
	database *gorm.DB
}

func NewDailyLogRepository(database *gorm.DB) *DailyLogRepository {
	return &DailyLogRepository{database: database}
}

func (repo *DailyLogRepository) ListByUser(userID uint) ([]models.DailyLog, error) {
	logs := make([]models.DailyLog, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("date ASC, id ASC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// ListByUserRange returns entries newest first; zero limit disables
// pagination and flips the order to ascending for window aggregation.
func (repo *DailyLogRepository) ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time, limit int, offset int) ([]models.DailyLog, error) {
	query := repo.rangeQuery(userID, fromStart, toEnd)
	if limit > 0 {
		query = query.Order("date DESC, id DESC").Limit(limit).Offset(offset)
	} else {
		query = query.Order("date ASC, id ASC")
	}

	logs := make([]models.DailyLog, 0)
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *DailyLogRepository) CountByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time) (int64, error) {
	var total int64
	if err := repo.rangeQuery(userID, fromStart, toEnd).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (repo *DailyLogRepository) FindByID(id uint) (models.DailyLog, bool, error) {
	entry := models.DailyLog{}
	result := repo.database.Limit(1).Find(&entry, id)
	if result.Error != nil {
		return models.DailyLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyLog{}, false, nil
	}
	return entry, true, nil
}

func (repo *DailyLogRepository) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.DailyLog, bool, error) {
	entry := models.DailyLog{}
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.DailyLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyLog{}, false, nil
	}
	return entry, true, nil
}

func (repo *DailyLogRepository) Create(entry *models.DailyLog) error {
	return repo.database.Create(entry).Error
}

func (repo *DailyLogRepository) Save(entry *models.DailyLog) error {
	return repo.database.Save(entry).Error
}

func (repo *DailyLogRepository) Delete(entry *models.DailyLog) error {
	return repo.database.Delete(entry).Error
}

func (repo *DailyLogRepository) rangeQuery(userID uint, fromStart *time.Time, toEnd *time.Time) *gorm.DB {
	query := repo.database.Model(&models.DailyLog{}).Where("user_id = ?", userID)
	if fromStart != nil {
		query = query.Where("date >= ?", *fromStart)
	}
	if toEnd != nil {
		query = query.Where("date < ?", *toEnd)
	}
	return query
}
