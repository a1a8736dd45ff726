package models

import (
	"time"
)

// Admin represents an administrator account for the stats dashboard
type Admin struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AdminID   string    `gorm:"uniqueIndex;not null" json:"admin_id"`
	FullName  string    `gorm:"not null" json:"full_name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"not null;default:'ADMIN'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for the Admin model
func (Admin) TableName() string {
	return "admins"
}
