package db

import (
	"time"

	"github.com/akulinich/gaintrack/internal/models"
	"gorm.io/gorm"
)

type WorkoutLogRepository struct {
	database *gorm.DB
}

func NewWorkoutLogRepository(database *gorm.DB) *WorkoutLogRepository {
	return &WorkoutLogRepository{database: database}
}

func (repo *WorkoutLogRepository) ListByUser(userID uint) ([]models.WorkoutLog, error) {
	logs := make([]models.WorkoutLog, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("date ASC, id ASC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// ListByUserRange mirrors the daily log repository: paginated calls come
// back newest first, unpaginated calls ascending for stats scans.
func (repo *WorkoutLogRepository) ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time, limit int, offset int) ([]models.WorkoutLog, error) {
	query := repo.rangeQuery(userID, fromStart, toEnd)
	if limit > 0 {
		query = query.Order("date DESC, id DESC").Limit(limit).Offset(offset)
	} else {
		query = query.Order("date ASC, id ASC")
	}

	logs := make([]models.WorkoutLog, 0)
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *WorkoutLogRepository) CountByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time) (int64, error) {
	var total int64
	if err := repo.rangeQuery(userID, fromStart, toEnd).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (repo *WorkoutLogRepository) FindByID(id uint) (models.WorkoutLog, bool, error) {
	entry := models.WorkoutLog{}
	result := repo.database.Limit(1).Find(&entry, id)
	if result.Error != nil {
		return models.WorkoutLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.WorkoutLog{}, false, nil
	}
	return entry, true, nil
}

func (repo *WorkoutLogRepository) Create(entry *models.WorkoutLog) error {
	return repo.database.Create(entry).Error
}

func (repo *WorkoutLogRepository) Save(entry *models.WorkoutLog) error {
	return repo.database.Save(entry).Error
}

func (repo *WorkoutLogRepository) Delete(entry *models.WorkoutLog) error {
	return repo.database.Delete(entry).Error
}

func (repo *WorkoutLogRepository) rangeQuery(userID uint, fromStart *time.Time, toEnd *time.Time) *gorm.DB {
	query := repo.database.Model(&models.WorkoutLog{}).Where("user_id = ?", userID)
	if fromStart != nil {
		query = query.Where("date >= ?", *fromStart)
	}
	if toEnd != nil {
		query = query.Where("date < ?", *toEnd)
	}
	return query
}
