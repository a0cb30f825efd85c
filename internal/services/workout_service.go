package services

import (
	"errors"
	"time"

	"github.com/akulinich/gaintrack/internal/models"
)

var (
	ErrWorkoutNotFound      = errors.New("workout log not found")
	ErrWorkoutForbidden     = errors.New("workout log belongs to another user")
	ErrWorkoutNoExercises   = errors.New("workout log needs at least one exercise")
	ErrExerciseIndexInvalid = errors.New("exercise index out of range")
)

type WorkoutLogRepository interface {
	ListByUser(userID uint) ([]models.WorkoutLog, error)
	ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time, limit int, offset int) ([]models.WorkoutLog, error)
	CountByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time) (int64, error)
	FindByID(id uint) (models.WorkoutLog, bool, error)
	Create(entry *models.WorkoutLog) error
	Save(entry *models.WorkoutLog) error
	Delete(entry *models.WorkoutLog) error
}

type WorkoutService struct {
	workouts WorkoutLogRepository
}

func NewWorkoutService(workouts WorkoutLogRepository) *WorkoutService {
	return &WorkoutService{workouts: workouts}
}

// CreateWorkout stores a new workout. The total volume cache is recomputed
// here, never accepted from the caller.
func (service *WorkoutService) CreateWorkout(userID uint, date time.Time, exercises []models.Exercise) (models.WorkoutLog, error) {
	if len(exercises) == 0 {
		return models.WorkoutLog{}, ErrWorkoutNoExercises
	}

	entry := models.WorkoutLog{
		UserID:    userID,
		Date:      DateUTC(date),
		Exercises: exercises,
	}
	entry.TotalVolume = WorkoutTotalVolume(entry)

	if err := service.workouts.Create(&entry); err != nil {
		return models.WorkoutLog{}, err
	}
	return entry, nil
}

// UpdateExercises replaces the whole exercises array of a workout and
// recomputes the volume cache.
func (service *WorkoutService) UpdateExercises(userID uint, workoutID uint, exercises []models.Exercise) (models.WorkoutLog, error) {
	if len(exercises) == 0 {
		return models.WorkoutLog{}, ErrWorkoutNoExercises
	}

	entry, err := service.loadOwnedWorkout(userID, workoutID)
	if err != nil {
		return models.WorkoutLog{}, err
	}

	entry.Exercises = exercises
	entry.TotalVolume = WorkoutTotalVolume(entry)
	if err := service.workouts.Save(&entry); err != nil {
		return models.WorkoutLog{}, err
	}
	return entry, nil
}

func (service *WorkoutService) AddExercise(userID uint, workoutID uint, exercise models.Exercise) (models.WorkoutLog, error) {
	entry, err := service.loadOwnedWorkout(userID, workoutID)
	if err != nil {
		return models.WorkoutLog{}, err
	}

	entry.Exercises = append(entry.Exercises, exercise)
	entry.TotalVolume = WorkoutTotalVolume(entry)
	if err := service.workouts.Save(&entry); err != nil {
		return models.WorkoutLog{}, err
	}
	return entry, nil
}

// RemoveExercise drops one exercise by position. Removing the last exercise
// deletes the whole workout entry; the returned flag reports that case.
func (service *WorkoutService) RemoveExercise(userID uint, workoutID uint, index int) (models.WorkoutLog, bool, error) {
	entry, err := service.loadOwnedWorkout(userID, workoutID)
	if err != nil {
		return models.WorkoutLog{}, false, err
	}
	if index < 0 || index >= len(entry.Exercises) {
		return models.WorkoutLog{}, false, ErrExerciseIndexInvalid
	}

	entry.Exercises = append(entry.Exercises[:index], entry.Exercises[index+1:]...)
	if len(entry.Exercises) == 0 {
		if err := service.workouts.Delete(&entry); err != nil {
			return models.WorkoutLog{}, false, err
		}
		return models.WorkoutLog{}, true, nil
	}

	entry.TotalVolume = WorkoutTotalVolume(entry)
	if err := service.workouts.Save(&entry); err != nil {
		return models.WorkoutLog{}, false, err
	}
	return entry, false, nil
}

func (service *WorkoutService) DeleteWorkout(userID uint, workoutID uint) error {
	entry, err := service.loadOwnedWorkout(userID, workoutID)
	if err != nil {
		return err
	}
	return service.workouts.Delete(&entry)
}

func (service *WorkoutService) GetWorkout(userID uint, workoutID uint) (models.WorkoutLog, error) {
	return service.loadOwnedWorkout(userID, workoutID)
}

func (service *WorkoutService) ListWorkouts(userID uint, from *time.Time, to *time.Time, limit int, page int) ([]models.WorkoutLog, int64, error) {
	if limit < 1 {
		limit = 20
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

	entries, err := service.workouts.ListByUserRange(userID, fromStart, toEnd, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := service.workouts.CountByUserRange(userID, fromStart, toEnd)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func (service *WorkoutService) loadOwnedWorkout(userID uint, workoutID uint) (models.WorkoutLog, error) {
	entry, found, err := service.workouts.FindByID(workoutID)
	if err != nil {
		return models.WorkoutLog{}, err
	}
	if !found {
		return models.WorkoutLog{}, ErrWorkoutNotFound
	}
	if entry.UserID != userID {
		return models.WorkoutLog{}, ErrWorkoutForbidden
	}
	return entry, nil
}
