package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/freshfold/freshfold-api/models"
)

func newSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Student{},
		&models.Personnel{},
		&models.Admin{},
		&models.LaundryOrder{},
		&models.OrderItem{},
	))

	return db
}

func TestSeedData(t *testing.T) {
	db := newSeedTestDB(t)

	require.NoError(t, SeedData(db))

	var admin models.Admin
	require.NoError(t, db.Where("admin_id = ?", "admin").First(&admin).Error)
	assert.Equal(t, "admin@freshfold.com", admin.Email)
	assert.Equal(t, "admin123", admin.Password)
	assert.Equal(t, "ADMIN", admin.Role)

	var personnel []models.Personnel
	require.NoError(t, db.Order("employee_id").Find(&personnel).Error)
	require.Len(t, personnel, 5)
	assert.Equal(t, "EMP001", personnel[0].EmployeeID)
	assert.Equal(t, "EMP005", personnel[4].EmployeeID)

	// Emails derive from the first name
	assert.Equal(t, "rahul@freshfold.com", personnel[0].Email)
	assert.Equal(t, "tejkumar@freshfold.com", personnel[4].Email)
	for _, p := range personnel {
		assert.Equal(t, "password", p.Password)
		assert.Equal(t, "PERSONNEL", p.Role)
	}
}

func TestSeedDataIdempotent(t *testing.T) {
	db := newSeedTestDB(t)

	require.NoError(t, SeedData(db))
	require.NoError(t, SeedData(db))

	var adminCount, personnelCount int64
	require.NoError(t, db.Model(&models.Admin{}).Count(&adminCount).Error)
	require.NoError(t, db.Model(&models.Personnel{}).Count(&personnelCount).Error)
	assert.Equal(t, int64(1), adminCount)
	assert.Equal(t, int64(5), personnelCount)
}

func TestSeedDataKeepsExistingPersonnel(t *testing.T) {
	db := newSeedTestDB(t)

	existing := models.Personnel{
		FullName:        "Custom Worker",
		EmployeeID:      "EMP100",
		PhoneNumber:     "9000000000",
		YearsExperience: 1,
		Rating:          3,
		Email:           "custom@freshfold.com",
		Password:        "password",
		Role:            "PERSONNEL",
	}
	require.NoError(t, db.Create(&existing).Error)

	require.NoError(t, SeedData(db))

	// Seeding only fills an empty personnel table
	var count int64
	require.NoError(t, db.Model(&models.Personnel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
