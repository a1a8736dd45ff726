package controllers

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/freshfold/freshfold-api/config"
	"github.com/freshfold/freshfold-api/models"
	"github.com/freshfold/freshfold-api/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupTestDB creates an isolated in-memory database, points the config
// singletons at it and wires fresh service instances
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Student{},
		&models.Personnel{},
		&models.Admin{},
		&models.LaundryOrder{},
		&models.OrderItem{},
	)
	require.NoError(t, err)

	config.SetDB(db)
	config.SetConfig(&config.Config{
		DatabaseURL: ":memory:",
		Port:        "8080",
		GoEnv:       "test",
		JWTSecret:   "test-secret",
	})

	store, err := services.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	InitServices(
		services.NewLifecycleService(db, nil),
		services.NewOrderService(db, nil),
		services.NewAdminService(db),
		services.NewPhotoService(store),
	)

	return db
}

// mockAuthMiddleware injects the identity normally set by RequireAuth
func mockAuthMiddleware(userID uint, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", role)
		c.Next()
	}
}

func createTestStudent(t *testing.T, db *gorm.DB) *models.Student {
	t.Helper()
	student := &models.Student{
		FullName:    "Ravi Kumar",
		StudentID:   "2021A7PS0001P",
		Email:       "ravi@pilani.bits-pilani.ac.in",
		Hostel:      "Krishna Bhawan",
		RoomNumber:  "101",
		PhoneNumber: "9876543210",
		Password:    "password",
		Role:        "STUDENT",
	}
	require.NoError(t, db.Create(student).Error)
	return student
}

func createTestPersonnel(t *testing.T, db *gorm.DB) *models.Personnel {
	t.Helper()
	personnel := &models.Personnel{
		FullName:        "Rajesh Kumar",
		EmployeeID:      "EMP001",
		PhoneNumber:     "9876500001",
		YearsExperience: 5,
		Rating:          3,
		Email:           "rajesh@freshfold.com",
		Password:        "password",
		Role:            "PERSONNEL",
	}
	require.NoError(t, db.Create(personnel).Error)
	return personnel
}

func createTestAdmin(t *testing.T, db *gorm.DB) *models.Admin {
	t.Helper()
	admin := &models.Admin{
		AdminID:  "admin",
		FullName: "System Administrator",
		Email:    "admin@freshfold.com",
		Password: "admin123",
		Role:     "ADMIN",
	}
	require.NoError(t, db.Create(admin).Error)
	return admin
}

func createTestOrder(t *testing.T, db *gorm.DB, studentID uint, status models.OrderStatus) *models.LaundryOrder {
	t.Helper()
	order := &models.LaundryOrder{
		StudentID:      studentID,
		Status:         status,
		ServiceType:    "WASH_AND_IRON",
		UrgencyDays:    3,
		TotalPrice:     55,
		PickupLocation: "Krishna Bhawan",
		Items: []models.OrderItem{
			{ItemType: "Shirt", Quantity: 2, PricePerItem: 15},
			{ItemType: "Jeans", Quantity: 1, PricePerItem: 25},
		},
	}
	require.NoError(t, db.Create(order).Error)
	return order
}
