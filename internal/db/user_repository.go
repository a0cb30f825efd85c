package db

import (
	"github.com/akulinich/gaintrack/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByEmail(email string) (models.User, bool, error) {
	user := models.User{}
	result := repo.database.Where("email = ?", email).Limit(1).Find(&user)
	if result.Error != nil {
		return models.User{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.User{}, false, nil
	}
	return user, true, nil
}

func (repo *UserRepository) FindByID(id uint) (models.User, bool, error) {
	user := models.User{}
	result := repo.database.Limit(1).Find(&user, id)
	if result.Error != nil {
		return models.User{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.User{}, false, nil
	}
	return user, true, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}
