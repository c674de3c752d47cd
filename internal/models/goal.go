package models

// Goal is a user-scoped target with fractional values, distinct from
// HealthGoal's integer counters with a completion history.
type Goal struct {
	ID           uint   `gorm:"primaryKey"`
	UserID       uint   `gorm:"not null;index"`
	Name         string `gorm:"not null"`
	Type         string
	Description  string
	CurrentValue float64 `gorm:"not null;default:0"`
	TargetValue  float64 `gorm:"not null;default:0"`
	Unit         string
}

// Progress reports how far along the goal is, clamped to [0, 1]. A zero
// target yields 0 rather than dividing by zero.
func (goal Goal) Progress() float64 {
	if goal.TargetValue == 0 {
		return 0
	}
	ratio := goal.CurrentValue / goal.TargetValue
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}
