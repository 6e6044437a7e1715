package models

type User struct {
	ID       int    `gorm:"primaryKey"`
	Username string `gorm:"default:null"`
	Email    string `gorm:"default:null"`
}

func (User) TableName() string {
	return "Users"
}
