package services

import (
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/akulinich/gaintrack/internal/models"
)

type fakeDailyLogRepo struct {
	entries []models.DailyLog
	nextID  uint
}

func newFakeDailyLogRepo() *fakeDailyLogRepo {
	return &fakeDailyLogRepo{nextID: 1}
}

func (repo *fakeDailyLogRepo) ListByUser(userID uint) ([]models.DailyLog, error) {
	matched := make([]models.DailyLog, 0)
	for _, entry := range repo.entries {
		if entry.UserID == userID {
			matched = append(matched, entry)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Date.Before(matched[j].Date) })
	return matched, nil
}

func (repo *fakeDailyLogRepo) ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time, limit int, offset int) ([]models.DailyLog, error) {
	matched := make([]models.DailyLog, 0)
	for _, entry := range repo.entries {
		if entry.UserID != userID {
			continue
		}
		if fromStart != nil && entry.Date.Before(*fromStart) {
			continue
		}
		if toEnd != nil && !entry.Date.Before(*toEnd) {
			continue
		}
		matched = append(matched, entry)
	}
	if limit > 0 {
		sort.Slice(matched, func(i, j int) bool { return matched[i].Date.After(matched[j].Date) })
		if offset >= len(matched) {
			return nil, nil
		}
		matched = matched[offset:]
		if len(matched) > limit {
			matched = matched[:limit]
		}
	} else {
		sort.Slice(matched, func(i, j int) bool { return matched[i].Date.Before(matched[j].Date) })
	}
	return matched, nil
}

func (repo *fakeDailyLogRepo) CountByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time) (int64, error) {
	matched, err := repo.ListByUserRange(userID, fromStart, toEnd, 0, 0)
	if err != nil {
		return 0, err
	}
	return int64(len(matched)), nil
}

func (repo *fakeDailyLogRepo) FindByID(id uint) (models.DailyLog, bool, error) {
	for _, entry := range repo.entries {
		if entry.ID == id {
			return entry, true, nil
		}
	}
	return models.DailyLog{}, false, nil
}

func (repo *fakeDailyLogRepo) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.DailyLog, bool, error) {
	for _, entry := range repo.entries {
		if entry.UserID != userID {
			continue
		}
		if !entry.Date.Before(dayStart) && entry.Date.Before(dayEnd) {
			return entry, true, nil
		}
	}
	return models.DailyLog{}, false, nil
}

func (repo *fakeDailyLogRepo) Create(entry *models.DailyLog) error {
	entry.ID = repo.nextID
	repo.nextID++
	repo.entries = append(repo.entries, *entry)
	return nil
}

func (repo *fakeDailyLogRepo) Save(entry *models.DailyLog) error {
	for index := range repo.entries {
		if repo.entries[index].ID == entry.ID {
			repo.entries[index] = *entry
			return nil
		}
	}
	return errors.New("entry not found")
}

func (repo *fakeDailyLogRepo) Delete(entry *models.DailyLog) error {
	for index := range repo.entries {
		if repo.entries[index].ID == entry.ID {
			repo.entries = append(repo.entries[:index], repo.entries[index+1:]...)
			return nil
		}
	}
	return errors.New("entry not found")
}

func dailyInput(t *testing.T, day string, weight float64) DailyLogInput {
	t.Helper()
	return DailyLogInput{Date: mustParseDay(t, day), Weight: weight}
}

func TestDailyLogService_CreateRejectsDuplicateDate(t *testing.T) {
	t.Parallel()

	service := NewDailyLogService(newFakeDailyLogRepo())
	if _, err := service.CreateEntry(1, dailyInput(t, "2026-03-15", 70.0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.CreateEntry(1, dailyInput(t, "2026-03-15", 71.0)); !errors.Is(err, ErrDailyLogExists) {
		t.Fatalf("expected ErrDailyLogExists, got %v", err)
	}
	// Another user may log the same date.
	if _, err := service.CreateEntry(2, dailyInput(t, "2026-03-15", 80.0)); err != nil {
		t.Fatalf("unexpected error for second user: %v", err)
	}
}

func TestDailyLogService_CreatePopulatesDerivedFields(t *testing.T) {
	t.Parallel()

	service := NewDailyLogService(newFakeDailyLogRepo())
	if _, err := service.CreateEntry(1, dailyInput(t, "2026-03-08", 70.0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entry, err := service.CreateEntry(1, dailyInput(t, "2026-03-15", 70.4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if entry.DailyChange == nil || !approxEqual(*entry.DailyChange, 0.4) {
		t.Fatalf("expected daily change 0.4, got %v", entry.DailyChange)
	}
	if entry.Status != WeightStatusGoingUp {
		t.Fatalf("expected status %q, got %q", WeightStatusGoingUp, entry.Status)
	}
}

func TestDailyLogService_CreateAndGetDeriveSameValues(t *testing.T) {
	t.Parallel()

	service := NewDailyLogService(newFakeDailyLogRepo())
	if _, err := service.CreateEntry(1, dailyInput(t, "2026-03-08", 70.0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	created, err := service.CreateEntry(1, dailyInput(t, "2026-03-15", 70.4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fetched, err := service.GetEntry(1, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetched.Status != created.Status {
		t.Fatalf("status drifted between create and read: %q vs %q", created.Status, fetched.Status)
	}
	if (fetched.DailyChange == nil) != (created.DailyChange == nil) {
		t.Fatalf("daily change drifted between create and read")
	}
	if fetched.DailyChange != nil && !approxEqual(*fetched.DailyChange, *created.DailyChange) {
		t.Fatalf("daily change drifted: %v vs %v", *created.DailyChange, *fetched.DailyChange)
	}
}

func TestDailyLogService_UpdateRejectsMoveOntoOccupiedDate(t *testing.T) {
	t.Parallel()

	service := NewDailyLogService(newFakeDailyLogRepo())
	if _, err := service.CreateEntry(1, dailyInput(t, "2026-03-14", 70.0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := service.CreateEntry(1, dailyInput(t, "2026-03-15", 70.2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.UpdateEntry(1, second.ID, dailyInput(t, "2026-03-14", 70.2)); !errors.Is(err, ErrDailyLogExists) {
		t.Fatalf("expected ErrDailyLogExists, got %v", err)
	}
	// Updating in place on the same date is fine.
	if _, err := service.UpdateEntry(1, second.ID, dailyInput(t, "2026-03-15", 70.3)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDailyLogService_OwnershipEnforced(t *testing.T) {
	t.Parallel()

	service := NewDailyLogService(newFakeDailyLogRepo())
	entry, err := service.CreateEntry(1, dailyInput(t, "2026-03-15", 70.0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.GetEntry(2, entry.ID); !errors.Is(err, ErrDailyLogForbidden) {
		t.Fatalf("expected ErrDailyLogForbidden, got %v", err)
	}
	if err := service.DeleteEntry(2, entry.ID); !errors.Is(err, ErrDailyLogForbidden) {
		t.Fatalf("expected ErrDailyLogForbidden, got %v", err)
	}
	if _, err := service.GetEntry(1, 999); !errors.Is(err, ErrDailyLogNotFound) {
		t.Fatalf("expected ErrDailyLogNotFound, got %v", err)
	}
}

func TestDailyLogService_ListPaginatesMostRecentFirst(t *testing.T) {
	t.Parallel()

	service := NewDailyLogService(newFakeDailyLogRepo())
	days := []string{"2026-03-11", "2026-03-12", "2026-03-13", "2026-03-14", "2026-03-15"}
	for index, day := range days {
		if _, err := service.CreateEntry(1, dailyInput(t, day, 70.0+float64(index)*0.1)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	page, total, err := service.ListEntries(1, nil, nil, 2, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 5 {
		t.Fatalf("expected total 5, got %d", total)
	}
	if len(page) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(page))
	}
	if !SameDay(page[0].Date, mustParseDay(t, "2026-03-15")) {
		t.Fatalf("expected most recent entry first, got %s", page[0].Date)
	}

	lastPage, _, err := service.ListEntries(1, nil, nil, 2, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lastPage) != 1 {
		t.Fatalf("expected 1 entry on the last page, got %d", len(lastPage))
	}
}
