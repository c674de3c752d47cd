package db

import "gorm.io/gorm"

// Repositories bundles every record-kind repository over one shared database
// handle and one change broker, so that a write through any repository wakes
// the live queries of every other.
type Repositories struct {
	Users  *UserRepository
	Health *HealthRepository
	Goals  *GoalRepository
	Meals  *MealRepository
	Broker *ChangeBroker
}

func NewRepositories(database *gorm.DB) *Repositories {
	broker := NewChangeBroker()
	return &Repositories{
		Users:  NewUserRepository(database, broker),
		Health: NewHealthRepository(database, broker),
		Goals:  NewGoalRepository(database, broker),
		Meals:  NewMealRepository(database, broker),
		Broker: broker,
	}
}
