package models

import (
	"time"
)

// Personnel represents a laundry worker who accepts and processes orders
type Personnel struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	FullName        string    `gorm:"not null" json:"full_name"`
	EmployeeID      string    `gorm:"uniqueIndex;not null" json:"employee_id"`
	PhoneNumber     string    `gorm:"not null" json:"phone_number"`
	YearsExperience int       `gorm:"not null" json:"years_experience"`
	Rating          float64   `gorm:"not null;default:3" json:"rating"` // starting rating, recomputed from student ratings
	Email           string    `gorm:"uniqueIndex;not null" json:"email"`
	Password        string    `gorm:"not null" json:"-"`
	Role            string    `gorm:"not null;default:'PERSONNEL'" json:"role"`
	CreatedAt       time.Time `json:"created_at"`
}

// TableName specifies the table name for the Personnel model
func (Personnel) TableName() string {
	return "personnel"
}
