package models

import "time"

const GoalTypeDaily = "daily"

// HealthGoal is a tracked metric with an integer counter, e.g. "8 glasses of
// water". CurrentValue only moves through the progress-recording operation,
// which also appends a HealthProgress sample.
type HealthGoal struct {
	ID           uint   `gorm:"primaryKey"`
	Title        string `gorm:"not null"`
	Description  string
	TargetValue  int       `gorm:"not null"`
	CurrentValue int       `gorm:"not null;default:0"`
	Unit         string
	GoalType     string    `gorm:"not null;index"`
	CreatedDate  time.Time `gorm:"not null"`
	IsCompleted  bool      `gorm:"not null;default:false"`
}

// HealthProgress is an immutable sample of a goal's value at a point in time.
type HealthProgress struct {
	ID          uint      `gorm:"primaryKey"`
	GoalID      uint      `gorm:"not null;index"`
	Date        time.Time `gorm:"not null;index"`
	Value       int       `gorm:"not null"`
	IsCompleted bool      `gorm:"not null;default:false"`
}

func (HealthProgress) TableName() string {
	return "health_progress"
}

// HealthProgressWithGoal is a read-only projection of a progress sample joined
// with its parent goal's display fields. It is never written back.
type HealthProgressWithGoal struct {
	ID          uint
	GoalID      uint
	Date        time.Time
	Value       int
	IsCompleted bool
	Title       string
	Unit        string
}
