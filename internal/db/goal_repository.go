package db

import (
	"context"

	"gorm.io/gorm"

	"yodiet/internal/models"
)

type GoalRepository struct {
	database *gorm.DB
	broker   *ChangeBroker
}

func NewGoalRepository(database *gorm.DB, broker *ChangeBroker) *GoalRepository {
	return &GoalRepository{database: database, broker: broker}
}

// Upsert inserts goal, or overwrites the row with the same identifier.
func (repo *GoalRepository) Upsert(goal *models.Goal) error {
	if err := repo.database.Save(goal).Error; err != nil {
		return err
	}
	repo.broker.Notify(TableGoals)
	return nil
}

func (repo *GoalRepository) Update(goal *models.Goal) error {
	if err := repo.database.Save(goal).Error; err != nil {
		return err
	}
	repo.broker.Notify(TableGoals)
	return nil
}

func (repo *GoalRepository) DeleteByID(goalID uint) error {
	if err := repo.database.Delete(&models.Goal{}, goalID).Error; err != nil {
		return err
	}
	repo.broker.Notify(TableGoals)
	return nil
}

func (repo *GoalRepository) FindByID(goalID uint) (models.Goal, bool, error) {
	var goal models.Goal
	result := repo.database.Where("id = ?", goalID).Limit(1).Find(&goal)
	if result.Error != nil {
		return models.Goal{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Goal{}, false, nil
	}
	return goal, true, nil
}

func (repo *GoalRepository) ListByUser(userID uint) ([]models.Goal, error) {
	goals := make([]models.Goal, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("id DESC").Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (repo *GoalRepository) ListAll() ([]models.Goal, error) {
	goals := make([]models.Goal, 0)
	if err := repo.database.Order("id DESC").Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (repo *GoalRepository) WatchByUser(ctx context.Context, userID uint) (<-chan []models.Goal, error) {
	return watchQuery(ctx, repo.broker, []string{TableGoals}, func() ([]models.Goal, error) {
		return repo.ListByUser(userID)
	})
}

func (repo *GoalRepository) WatchAll(ctx context.Context) (<-chan []models.Goal, error) {
	return watchQuery(ctx, repo.broker, []string{TableGoals}, repo.ListAll)
}
