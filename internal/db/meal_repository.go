package db

import (
	"context"

	"gorm.io/gorm"

	"yodiet/internal/models"
)

type MealRepository struct {
	database *gorm.DB
	broker   *ChangeBroker
}

func NewMealRepository(database *gorm.DB, broker *ChangeBroker) *MealRepository {
	return &MealRepository{database: database, broker: broker}
}

func (repo *MealRepository) Upsert(meal *models.Meal) error {
	if err := repo.database.Save(meal).Error; err != nil {
		return err
	}
	repo.broker.Notify(TableMeals)
	return nil
}

func (repo *MealRepository) Update(meal *models.Meal) error {
	if err := repo.database.Save(meal).Error; err != nil {
		return err
	}
	repo.broker.Notify(TableMeals)
	return nil
}

func (repo *MealRepository) Delete(mealID uint) error {
	if err := repo.database.Delete(&models.Meal{}, mealID).Error; err != nil {
		return err
	}
	repo.broker.Notify(TableMeals)
	return nil
}

func (repo *MealRepository) FindByID(mealID uint) (models.Meal, bool, error) {
	var meal models.Meal
	result := repo.database.Where("id = ?", mealID).Limit(1).Find(&meal)
	if result.Error != nil {
		return models.Meal{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Meal{}, false, nil
	}
	return meal, true, nil
}

// ListAll returns meals most recently logged first.
func (repo *MealRepository) ListAll() ([]models.Meal, error) {
	meals := make([]models.Meal, 0)
	if err := repo.database.Order("id DESC").Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (repo *MealRepository) WatchAll(ctx context.Context) (<-chan []models.Meal, error) {
	return watchQuery(ctx, repo.broker, []string{TableMeals}, repo.ListAll)
}
