package models

type Song struct {
	ID    int    `gorm:"primaryKey"`
	Title string `gorm:"default:null"`
	// Seconds. Nullable, nothing is validated on the application side.
	Duration *int
}

func (Song) TableName() string {
	return "Songs"
}
