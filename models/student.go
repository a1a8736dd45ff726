package models

import (
	"time"
)

// Student represents a student account that places laundry orders
type Student struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FullName    string    `gorm:"not null" json:"full_name"`
	StudentID   string    `gorm:"uniqueIndex;not null" json:"student_id"` // campus registration number
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	Hostel      string    `gorm:"not null" json:"hostel"`
	RoomNumber  string    `gorm:"not null" json:"room_number"`
	PhoneNumber string    `gorm:"not null" json:"phone_number"`
	Password    string    `gorm:"not null" json:"-"`
	Role        string    `gorm:"not null;default:'STUDENT'" json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for the Student model
func (Student) TableName() string {
	return "students"
}
