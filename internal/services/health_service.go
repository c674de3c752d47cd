package services

import (
	"context"
	"errors"
	"time"

	"yodiet/internal/models"
)

var ErrGoalNotFound = errors.New("goal not found")

type HealthStore interface {
	ListGoals() ([]models.HealthGoal, error)
	ListGoalsByType(goalType string) ([]models.HealthGoal, error)
	FindGoalByID(goalID uint) (models.HealthGoal, bool, error)
	UpsertGoal(goal *models.HealthGoal) error
	DeleteGoal(goalID uint) error
	RecordProgress(goalID uint, value int, sampledAt time.Time, completed bool) error
	ListProgressForGoal(goalID uint) ([]models.HealthProgress, error)
	ListProgressInRange(start time.Time, end time.Time) ([]models.HealthProgress, error)
	ListProgressWithGoalInRange(start time.Time, end time.Time) ([]models.HealthProgressWithGoal, error)
	WatchGoalsByType(ctx context.Context, goalType string) (<-chan []models.HealthGoal, error)
	WatchProgressWithGoalInRange(ctx context.Context, start time.Time, end time.Time) (<-chan []models.HealthProgressWithGoal, error)
}

// HealthService drives the counter-style health goals and their progress
// history.
type HealthService struct {
	store HealthStore
	now   func() time.Time
}

func NewHealthService(store HealthStore) *HealthService {
	return &HealthService{store: store, now: time.Now}
}

// AddGoal persists goal, stamping the creation date when the caller left it
// zero. An existing identifier overwrites in place.
func (service *HealthService) AddGoal(goal *models.HealthGoal) error {
	if goal.CreatedDate.IsZero() {
		goal.CreatedDate = service.now()
	}
	return service.store.UpsertGoal(goal)
}

func (service *HealthService) DeleteGoal(goalID uint) error {
	return service.store.DeleteGoal(goalID)
}

func (service *HealthService) Goals() ([]models.HealthGoal, error) {
	return service.store.ListGoals()
}

func (service *HealthService) DailyGoals() ([]models.HealthGoal, error) {
	return service.store.ListGoalsByType(models.GoalTypeDaily)
}

func (service *HealthService) Goal(goalID uint) (models.HealthGoal, bool, error) {
	return service.store.FindGoalByID(goalID)
}

// IncrementProgress advances the goal's counter by one, capped at the target,
// recording a history sample for the new value. Once the target is reached
// further increments are no-ops, so the operation is idempotent at the cap.
func (service *HealthService) IncrementProgress(goalID uint) (int, error) {
	goal, found, err := service.store.FindGoalByID(goalID)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, ErrGoalNotFound
	}

	if goal.CurrentValue >= goal.TargetValue {
		return goal.CurrentValue, nil
	}

	next := goal.CurrentValue + 1
	if next > goal.TargetValue {
		next = goal.TargetValue
	}
	if err := service.recordProgress(goal, next); err != nil {
		return 0, err
	}
	return next, nil
}

// RecordProgress sets the goal's counter to value and appends the matching
// history sample; the store performs both writes in one transaction.
func (service *HealthService) RecordProgress(goalID uint, value int) error {
	goal, found, err := service.store.FindGoalByID(goalID)
	if err != nil {
		return err
	}
	if !found {
		return ErrGoalNotFound
	}
	return service.recordProgress(goal, value)
}

func (service *HealthService) recordProgress(goal models.HealthGoal, value int) error {
	completed := value >= goal.TargetValue
	return service.store.RecordProgress(goal.ID, value, service.now(), completed)
}

func (service *HealthService) ProgressHistory(goalID uint) ([]models.HealthProgress, error) {
	return service.store.ListProgressForGoal(goalID)
}

func (service *HealthService) ProgressInRange(start time.Time, end time.Time) ([]models.HealthProgressWithGoal, error) {
	return service.store.ListProgressWithGoalInRange(start, end)
}

// WeeklyProgress returns the joined samples for the week containing now.
func (service *HealthService) WeeklyProgress() ([]models.HealthProgressWithGoal, error) {
	start, end := weekRange(service.now())
	return service.store.ListProgressWithGoalInRange(start, end)
}

func (service *HealthService) WatchDailyGoals(ctx context.Context) (<-chan []models.HealthGoal, error) {
	return service.store.WatchGoalsByType(ctx, models.GoalTypeDaily)
}

func (service *HealthService) WatchWeeklyProgress(ctx context.Context) (<-chan []models.HealthProgressWithGoal, error) {
	start, end := weekRange(service.now())
	return service.store.WatchProgressWithGoalInRange(ctx, start, end)
}

// weekRange returns the inclusive bounds of the Monday-first week containing
// at, from Monday 00:00:00 to the last nanosecond of Sunday, in at's
// location.
func weekRange(at time.Time) (time.Time, time.Time) {
	daysSinceMonday := int(at.Weekday()) - int(time.Monday)
	if daysSinceMonday < 0 {
		daysSinceMonday += 7
	}

	year, month, day := at.AddDate(0, 0, -daysSinceMonday).Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, at.Location())
	end := start.AddDate(0, 0, 7).Add(-time.Nanosecond)
	return start, end
}
