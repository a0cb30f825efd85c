package db

import "gorm.io/gorm"

type Repositories struct {
	Users       *UserRepository
	DailyLogs   *DailyLogRepository
	WorkoutLogs *WorkoutLogRepository
	Settings    *SettingsRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(database),
		DailyLogs:   NewDailyLogRepository(database),
		WorkoutLogs: NewWorkoutLogRepository(database),
		Settings:    NewSettingsRepository(database),
	}
}
