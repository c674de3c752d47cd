package db

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"yodiet/internal/models"
)

var ErrNoSuchGoal = errors.New("no such goal")

// HealthRepository covers both health_goals and the health_progress history,
// because the progress-recording write spans the two tables.
type HealthRepository struct {
	database *gorm.DB
	broker   *ChangeBroker
}

func NewHealthRepository(database *gorm.DB, broker *ChangeBroker) *HealthRepository {
	return &HealthRepository{database: database, broker: broker}
}

func (repo *HealthRepository) ListGoals() ([]models.HealthGoal, error) {
	goals := make([]models.HealthGoal, 0)
	if err := repo.database.Order("created_date DESC").Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (repo *HealthRepository) ListGoalsByType(goalType string) ([]models.HealthGoal, error) {
	goals := make([]models.HealthGoal, 0)
	if err := repo.database.Where("goal_type = ?", goalType).Order("created_date DESC").Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (repo *HealthRepository) FindGoalByID(goalID uint) (models.HealthGoal, bool, error) {
	var goal models.HealthGoal
	result := repo.database.Where("id = ?", goalID).Limit(1).Find(&goal)
	if result.Error != nil {
		return models.HealthGoal{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.HealthGoal{}, false, nil
	}
	return goal, true, nil
}

// UpsertGoal inserts goal, or overwrites the existing row when the identifier
// is already taken.
func (repo *HealthRepository) UpsertGoal(goal *models.HealthGoal) error {
	if err := repo.database.Save(goal).Error; err != nil {
		return err
	}
	repo.broker.Notify(TableHealthGoals)
	return nil
}

func (repo *HealthRepository) DeleteGoal(goalID uint) error {
	if err := repo.database.Delete(&models.HealthGoal{}, goalID).Error; err != nil {
		return err
	}
	repo.broker.Notify(TableHealthGoals)
	return nil
}

// UpdateGoalValue mutates only current_value and is_completed. It does not
// append a history sample; RecordProgress does both.
func (repo *HealthRepository) UpdateGoalValue(goalID uint, value int, completed bool) error {
	result := repo.database.Model(&models.HealthGoal{}).Where("id = ?", goalID).Updates(map[string]any{
		"current_value": value,
		"is_completed":  completed,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNoSuchGoal
	}
	repo.broker.Notify(TableHealthGoals)
	return nil
}

// RecordProgress updates the goal's current value and appends the immutable
// history sample in one transaction, so a crash between the two writes cannot
// leave the counter and the history disagreeing.
func (repo *HealthRepository) RecordProgress(goalID uint, value int, sampledAt time.Time, completed bool) error {
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.HealthGoal{}).Where("id = ?", goalID).Updates(map[string]any{
			"current_value": value,
			"is_completed":  completed,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNoSuchGoal
		}

		entry := models.HealthProgress{
			GoalID:      goalID,
			Date:        sampledAt,
			Value:       value,
			IsCompleted: completed,
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return err
	}
	repo.broker.Notify(TableHealthGoals, TableHealthProgress)
	return nil
}

func (repo *HealthRepository) ListProgressForGoal(goalID uint) ([]models.HealthProgress, error) {
	entries := make([]models.HealthProgress, 0)
	if err := repo.database.Where("goal_id = ?", goalID).Order("date DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListProgressInRange returns samples with start <= date <= end.
func (repo *HealthRepository) ListProgressInRange(start time.Time, end time.Time) ([]models.HealthProgress, error) {
	entries := make([]models.HealthProgress, 0)
	if err := repo.database.
		Where("date >= ? AND date <= ?", start, end).
		Order("date DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListProgressWithGoalInRange joins each sample in the range with its parent
// goal's title and unit for display. Samples whose goal has been deleted are
// dropped by the join.
func (repo *HealthRepository) ListProgressWithGoalInRange(start time.Time, end time.Time) ([]models.HealthProgressWithGoal, error) {
	rows := make([]models.HealthProgressWithGoal, 0)
	err := repo.database.
		Table("health_progress").
		Select("health_progress.id, health_progress.goal_id, health_progress.date, health_progress.value, health_progress.is_completed, health_goals.title, health_goals.unit").
		Joins("JOIN health_goals ON health_goals.id = health_progress.goal_id").
		Where("health_progress.date >= ? AND health_progress.date <= ?", start, end).
		Order("health_progress.date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (repo *HealthRepository) DeleteProgress(entryID uint) error {
	if err := repo.database.Delete(&models.HealthProgress{}, entryID).Error; err != nil {
		return err
	}
	repo.broker.Notify(TableHealthProgress)
	return nil
}

func (repo *HealthRepository) WatchGoals(ctx context.Context) (<-chan []models.HealthGoal, error) {
	return watchQuery(ctx, repo.broker, []string{TableHealthGoals}, repo.ListGoals)
}

func (repo *HealthRepository) WatchGoalsByType(ctx context.Context, goalType string) (<-chan []models.HealthGoal, error) {
	return watchQuery(ctx, repo.broker, []string{TableHealthGoals}, func() ([]models.HealthGoal, error) {
		return repo.ListGoalsByType(goalType)
	})
}

func (repo *HealthRepository) WatchProgressForGoal(ctx context.Context, goalID uint) (<-chan []models.HealthProgress, error) {
	return watchQuery(ctx, repo.broker, []string{TableHealthProgress}, func() ([]models.HealthProgress, error) {
		return repo.ListProgressForGoal(goalID)
	})
}

// WatchProgressWithGoalInRange subscribes to both joined tables: a goal
// rename must re-emit even though no sample changed.
func (repo *HealthRepository) WatchProgressWithGoalInRange(ctx context.Context, start time.Time, end time.Time) (<-chan []models.HealthProgressWithGoal, error) {
	return watchQuery(ctx, repo.broker, []string{TableHealthProgress, TableHealthGoals}, func() ([]models.HealthProgressWithGoal, error) {
		return repo.ListProgressWithGoalInRange(start, end)
	})
}
