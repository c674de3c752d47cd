package services

import (
	"context"
	"testing"

	"yodiet/internal/models"
)

type stubGoalStore struct {
	goals  map[uint]models.Goal
	nextID uint
}

func newStubGoalStore() *stubGoalStore {
	return &stubGoalStore{goals: map[uint]models.Goal{}, nextID: 1}
}

func (store *stubGoalStore) Upsert(goal *models.Goal) error {
	if goal.ID == 0 {
		goal.ID = store.nextID
		store.nextID++
	}
	store.goals[goal.ID] = *goal
	return nil
}

func (store *stubGoalStore) Update(goal *models.Goal) error {
	store.goals[goal.ID] = *goal
	return nil
}

func (store *stubGoalStore) DeleteByID(goalID uint) error {
	delete(store.goals, goalID)
	return nil
}

func (store *stubGoalStore) FindByID(goalID uint) (models.Goal, bool, error) {
	goal, ok := store.goals[goalID]
	return goal, ok, nil
}

func (store *stubGoalStore) ListByUser(userID uint) ([]models.Goal, error) {
	var goals []models.Goal
	for _, goal := range store.goals {
		if goal.UserID == userID {
			goals = append(goals, goal)
		}
	}
	return goals, nil
}

func (store *stubGoalStore) ListAll() ([]models.Goal, error) {
	var goals []models.Goal
	for _, goal := range store.goals {
		goals = append(goals, goal)
	}
	return goals, nil
}

func (store *stubGoalStore) WatchByUser(ctx context.Context, userID uint) (<-chan []models.Goal, error) {
	return nil, nil
}

func (store *stubGoalStore) WatchAll(ctx context.Context) (<-chan []models.Goal, error) {
	return nil, nil
}

func TestGoalServiceScopesListToUser(t *testing.T) {
	store := newStubGoalStore()
	service := NewGoalService(store)

	if err := service.AddGoal(&models.Goal{UserID: 1, Name: "Lose weight", TargetValue: 5}); err != nil {
		t.Fatalf("add goal: %v", err)
	}
	if err := service.AddGoal(&models.Goal{UserID: 2, Name: "Run", TargetValue: 10}); err != nil {
		t.Fatalf("add goal: %v", err)
	}

	goals, err := service.GoalsForUser(1)
	if err != nil {
		t.Fatalf("goals for user: %v", err)
	}
	if len(goals) != 1 || goals[0].Name != "Lose weight" {
		t.Fatalf("unexpected goals %+v", goals)
	}
}

func TestGoalServiceUpdateAndDelete(t *testing.T) {
	store := newStubGoalStore()
	service := NewGoalService(store)

	goal := models.Goal{UserID: 1, Name: "Lose weight", TargetValue: 5}
	if err := service.AddGoal(&goal); err != nil {
		t.Fatalf("add goal: %v", err)
	}

	goal.CurrentValue = 2.5
	if err := service.UpdateGoal(&goal); err != nil {
		t.Fatalf("update goal: %v", err)
	}
	loaded, found, err := service.Goal(goal.ID)
	if err != nil || !found {
		t.Fatalf("load goal: found=%v err=%v", found, err)
	}
	if loaded.CurrentValue != 2.5 {
		t.Fatalf("update lost: %+v", loaded)
	}

	if err := service.DeleteGoal(goal.ID); err != nil {
		t.Fatalf("delete goal: %v", err)
	}
	if _, found, _ := service.Goal(goal.ID); found {
		t.Fatal("goal survived deletion")
	}
}
