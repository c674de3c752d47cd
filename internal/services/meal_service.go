package services

import (
	"context"

	"yodiet/internal/models"
)

type MealStore interface {
	Upsert(meal *models.Meal) error
	Update(meal *models.Meal) error
	Delete(mealID uint) error
	FindByID(mealID uint) (models.Meal, bool, error)
	ListAll() ([]models.Meal, error)
	WatchAll(ctx context.Context) (<-chan []models.Meal, error)
}

type MealService struct {
	store MealStore
}

func NewMealService(store MealStore) *MealService {
	return &MealService{store: store}
}

func (service *MealService) AddMeal(meal *models.Meal) error {
	return service.store.Upsert(meal)
}

func (service *MealService) UpdateMeal(meal *models.Meal) error {
	return service.store.Update(meal)
}

func (service *MealService) DeleteMeal(mealID uint) error {
	return service.store.Delete(mealID)
}

func (service *MealService) Meal(mealID uint) (models.Meal, bool, error) {
	return service.store.FindByID(mealID)
}

func (service *MealService) Meals() ([]models.Meal, error) {
	return service.store.ListAll()
}

func (service *MealService) WatchMeals(ctx context.Context) (<-chan []models.Meal, error) {
	return service.store.WatchAll(ctx)
}
