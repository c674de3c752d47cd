package models

type Meal struct {
	ID       uint   `gorm:"primaryKey"`
	Title    string `gorm:"not null"`
	ImageRef string
	Kcal     int
	Fat      int
	Carbs    int
	Protein  int
}
