package services

import (
	"context"

	"yodiet/internal/models"
)

type GoalStore interface {
	Upsert(goal *models.Goal) error
	Update(goal *models.Goal) error
	DeleteByID(goalID uint) error
	FindByID(goalID uint) (models.Goal, bool, error)
	ListByUser(userID uint) ([]models.Goal, error)
	ListAll() ([]models.Goal, error)
	WatchByUser(ctx context.Context, userID uint) (<-chan []models.Goal, error)
	WatchAll(ctx context.Context) (<-chan []models.Goal, error)
}

// GoalService drives the user-scoped fractional goals.
type GoalService struct {
	store GoalStore
}

func NewGoalService(store GoalStore) *GoalService {
	return &GoalService{store: store}
}

func (service *GoalService) AddGoal(goal *models.Goal) error {
	return service.store.Upsert(goal)
}

func (service *GoalService) UpdateGoal(goal *models.Goal) error {
	return service.store.Update(goal)
}

func (service *GoalService) DeleteGoal(goalID uint) error {
	return service.store.DeleteByID(goalID)
}

func (service *GoalService) Goal(goalID uint) (models.Goal, bool, error) {
	return service.store.FindByID(goalID)
}

func (service *GoalService) GoalsForUser(userID uint) ([]models.Goal, error) {
	return service.store.ListByUser(userID)
}

func (service *GoalService) AllGoals() ([]models.Goal, error) {
	return service.store.ListAll()
}

func (service *GoalService) WatchGoalsForUser(ctx context.Context, userID uint) (<-chan []models.Goal, error) {
	return service.store.WatchByUser(ctx, userID)
}

func (service *GoalService) WatchAllGoals(ctx context.Context) (<-chan []models.Goal, error) {
	return service.store.WatchAll(ctx)
}
