package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/freshfold/freshfold-api/models"
)

func createStudentInHostel(t *testing.T, db *gorm.DB, hostel, studentID string) *models.Student {
	t.Helper()
	student := &models.Student{
		FullName:    "Student " + studentID,
		StudentID:   studentID,
		Email:       studentID + "@pilani.bits-pilani.ac.in",
		Hostel:      hostel,
		RoomNumber:  "101",
		PhoneNumber: "9876543210",
		Password:    "password",
		Role:        "STUDENT",
	}
	require.NoError(t, db.Create(student).Error)
	return student
}

func createPricedOrder(t *testing.T, db *gorm.DB, studentID uint, personnelID *uint, status models.OrderStatus, price float64) {
	t.Helper()
	order := &models.LaundryOrder{
		StudentID:      studentID,
		PersonnelID:    personnelID,
		Status:         status,
		ServiceType:    "WASH_AND_IRON",
		UrgencyDays:    3,
		TotalPrice:     price,
		PickupLocation: "Hostel",
	}
	require.NoError(t, db.Create(order).Error)
}

func TestGetStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)

	krishna := createStudentInHostel(t, db, "Krishna Bhawan", "2021A7PS0001P")
	meera := createStudentInHostel(t, db, "Meera Bhawan", "2021A7PS0002P")
	personnel := createTestPersonnel(t, db)

	createPricedOrder(t, db, krishna.ID, &personnel.ID, models.StatusDone, 50)
	createPricedOrder(t, db, krishna.ID, nil, models.StatusPending, 30)
	createPricedOrder(t, db, meera.ID, &personnel.ID, models.StatusDone, 70)
	createPricedOrder(t, db, meera.ID, &personnel.ID, models.StatusWashing, 40)

	stats, err := svc.GetStats()
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.TotalOrders)
	assert.Equal(t, int64(2), stats.CompletedOrders)
	assert.Equal(t, int64(1), stats.PendingOrders)
	assert.Equal(t, 120.0, stats.TotalRevenue)

	require.Len(t, stats.HostelStats, 2)
	byHostel := make(map[string]HostelStats)
	for _, h := range stats.HostelStats {
		byHostel[h.Hostel] = h
	}
	assert.Equal(t, int64(2), byHostel["Krishna Bhawan"].OrderCount)
	assert.Equal(t, 50.0, byHostel["Krishna Bhawan"].Revenue)
	assert.Equal(t, int64(2), byHostel["Meera Bhawan"].OrderCount)
	assert.Equal(t, 70.0, byHostel["Meera Bhawan"].Revenue)

	require.Len(t, stats.PersonnelStats, 1)
	assert.Equal(t, personnel.FullName, stats.PersonnelStats[0].FullName)
	assert.Equal(t, int64(2), stats.PersonnelStats[0].CompletedOrders)
	assert.Equal(t, 120.0, stats.PersonnelStats[0].Earnings)
}

func TestGetStatsEmptyDatabase(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)

	stats, err := svc.GetStats()
	require.NoError(t, err)

	assert.Equal(t, int64(0), stats.TotalOrders)
	assert.Equal(t, int64(0), stats.CompletedOrders)
	assert.Equal(t, int64(0), stats.PendingOrders)
	assert.Equal(t, 0.0, stats.TotalRevenue)
	assert.Empty(t, stats.HostelStats)
	assert.Empty(t, stats.PersonnelStats)
}

func TestGetRecentOrdersLimit(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)

	student := createTestStudent(t, db)
	for i := 0; i < 12; i++ {
		createPricedOrder(t, db, student.ID, nil, models.StatusPending, 10)
	}

	orders, err := svc.GetRecentOrders()
	require.NoError(t, err)
	assert.Len(t, orders, 10)
}

func TestGetAllOrders(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)

	student := createTestStudent(t, db)
	createPricedOrder(t, db, student.ID, nil, models.StatusPending, 10)
	createPricedOrder(t, db, student.ID, nil, models.StatusRejected, 20)

	orders, err := svc.GetAllOrders()
	require.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, student.ID, orders[0].Student.ID)
}
