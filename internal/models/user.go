package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey"`
	UserName     string    `gorm:"uniqueIndex;not null"`
	FirstName    string    `gorm:"not null"`
	LastName     string
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	IsCurrent    bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time `gorm:"not null"`
}
