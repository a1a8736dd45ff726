package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/freshfold/freshfold-api/models"
	"gorm.io/gorm"
)

// SeedData creates the default admin account and the predefined personnel
// accounts if they do not exist yet. It runs on every startup and is a no-op
// once the rows are present.
func SeedData(db *gorm.DB) error {
	var adminCount int64
	if err := db.Model(&models.Admin{}).Where("admin_id = ?", "admin").Count(&adminCount).Error; err != nil {
		return fmt.Errorf("failed to check admin account: %w", err)
	}
	if adminCount == 0 {
		admin := models.Admin{
			AdminID:  "admin",
			FullName: "System Administrator",
			Email:    "admin@freshfold.com",
			Password: "admin123",
			Role:     "ADMIN",
		}
		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to seed admin account: %w", err)
		}
		log.Println("Seeded default admin account (ID: admin)")
	}

	var personnelCount int64
	if err := db.Model(&models.Personnel{}).Count(&personnelCount).Error; err != nil {
		return fmt.Errorf("failed to count personnel: %w", err)
	}
	if personnelCount == 0 {
		seedPersonnel := []struct {
			name       string
			employeeID string
			phone      string
			experience int
			rating     float64
		}{
			{"Rahul Kumar", "EMP001", "9876543210", 5, 4.0},
			{"Sanjeev Sharma", "EMP002", "9876543211", 3, 3.0},
			{"Arjun Patel", "EMP003", "9876543212", 4, 4.0},
			{"Rajkumar Sinha", "EMP004", "9876543213", 2, 3.0},
			{"Tejkumar", "EMP005", "9876543214", 6, 5.0},
		}

		for _, p := range seedPersonnel {
			// Email is derived from the first name, matching the bundled
			// frontend's login hints
			email := strings.ToLower(strings.Fields(p.name)[0]) + "@freshfold.com"
			personnel := models.Personnel{
				FullName:        p.name,
				EmployeeID:      p.employeeID,
				PhoneNumber:     p.phone,
				YearsExperience: p.experience,
				Rating:          p.rating,
				Email:           email,
				Password:        "password",
				Role:            "PERSONNEL",
			}
			if err := db.Create(&personnel).Error; err != nil {
				return fmt.Errorf("failed to seed personnel %s: %w", p.employeeID, err)
			}
		}
		log.Println("Seeded 5 personnel accounts")
	}

	return nil
}
