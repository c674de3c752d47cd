package services

import (
	"context"
	"testing"

	"yodiet/internal/models"
)

type stubMealStore struct {
	meals  map[uint]models.Meal
	nextID uint
}

func newStubMealStore() *stubMealStore {
	return &stubMealStore{meals: map[uint]models.Meal{}, nextID: 1}
}

func (store *stubMealStore) Upsert(meal *models.Meal) error {
	if meal.ID == 0 {
		meal.ID = store.nextID
		store.nextID++
	}
	store.meals[meal.ID] = *meal
	return nil
}

func (store *stubMealStore) Update(meal *models.Meal) error {
	store.meals[meal.ID] = *meal
	return nil
}

func (store *stubMealStore) Delete(mealID uint) error {
	delete(store.meals, mealID)
	return nil
}

func (store *stubMealStore) FindByID(mealID uint) (models.Meal, bool, error) {
	meal, ok := store.meals[mealID]
	return meal, ok, nil
}

func (store *stubMealStore) ListAll() ([]models.Meal, error) {
	var meals []models.Meal
	for _, meal := range store.meals {
		meals = append(meals, meal)
	}
	return meals, nil
}

func (store *stubMealStore) WatchAll(ctx context.Context) (<-chan []models.Meal, error) {
	return nil, nil
}

func TestMealServiceRoundtrip(t *testing.T) {
	store := newStubMealStore()
	service := NewMealService(store)

	meal := models.Meal{Title: "Oatmeal", Kcal: 350, Carbs: 60, Protein: 12}
	if err := service.AddMeal(&meal); err != nil {
		t.Fatalf("add meal: %v", err)
	}
	if meal.ID == 0 {
		t.Fatal("expected an assigned ID")
	}

	loaded, found, err := service.Meal(meal.ID)
	if err != nil || !found {
		t.Fatalf("load meal: found=%v err=%v", found, err)
	}
	if loaded.Title != "Oatmeal" || loaded.Kcal != 350 {
		t.Fatalf("unexpected meal %+v", loaded)
	}

	loaded.Kcal = 400
	if err := service.UpdateMeal(&loaded); err != nil {
		t.Fatalf("update meal: %v", err)
	}
	updated, _, _ := service.Meal(meal.ID)
	if updated.Kcal != 400 {
		t.Fatalf("update lost: %+v", updated)
	}

	if err := service.DeleteMeal(meal.ID); err != nil {
		t.Fatalf("delete meal: %v", err)
	}
	if _, found, _ := service.Meal(meal.ID); found {
		t.Fatal("meal survived deletion")
	}
}
