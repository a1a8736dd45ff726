package services

import (
	"fmt"

	"github.com/freshfold/freshfold-api/models"
	"gorm.io/gorm"
)

// HostelStats aggregates orders and revenue for one hostel
type HostelStats struct {
	Hostel     string  `json:"hostel"`
	OrderCount int64   `json:"order_count"`
	Revenue    float64 `json:"revenue"`
}

// PersonnelPerformance aggregates a personnel member's completed work for
// the admin dashboard
type PersonnelPerformance struct {
	FullName        string  `json:"full_name"`
	CompletedOrders int64   `json:"completed_orders"`
	Earnings        float64 `json:"earnings"`
	Rating          float64 `json:"rating"`
}

// AdminStats is the complete admin dashboard payload
type AdminStats struct {
	TotalOrders     int64                  `json:"total_orders"`
	CompletedOrders int64                  `json:"completed_orders"`
	PendingOrders   int64                  `json:"pending_orders"`
	TotalRevenue    float64                `json:"total_revenue"`
	HostelStats     []HostelStats          `json:"hostel_stats"`
	PersonnelStats  []PersonnelPerformance `json:"personnel_stats"`
}

// AdminService aggregates campus-wide statistics for the admin dashboard
type AdminService struct {
	db *gorm.DB
}

// NewAdminService creates an admin service
func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

// GetStats builds the full dashboard: order counts, revenue over DONE
// orders, hostel-wise breakdown and personnel performance
func (s *AdminService) GetStats() (*AdminStats, error) {
	stats := &AdminStats{}

	if err := s.db.Model(&models.LaundryOrder{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	if err := s.db.Model(&models.LaundryOrder{}).
		Where("status = ?", models.StatusDone).
		Count(&stats.CompletedOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to count completed orders: %w", err)
	}

	if err := s.db.Model(&models.LaundryOrder{}).
		Where("status = ?", models.StatusPending).
		Count(&stats.PendingOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to count pending orders: %w", err)
	}

	if err := s.db.Model(&models.LaundryOrder{}).
		Select("COALESCE(SUM(total_price), 0)").
		Where("status = ?", models.StatusDone).
		Scan(&stats.TotalRevenue).Error; err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}

	hostelStats, err := s.getHostelStats()
	if err != nil {
		return nil, err
	}
	stats.HostelStats = hostelStats

	personnelStats, err := s.getPersonnelPerformance()
	if err != nil {
		return nil, err
	}
	stats.PersonnelStats = personnelStats

	return stats, nil
}

// getHostelStats groups order count (all statuses) and revenue (DONE only)
// by the ordering student's hostel
func (s *AdminService) getHostelStats() ([]HostelStats, error) {
	var counts []HostelStats
	err := s.db.Model(&models.LaundryOrder{}).
		Select("students.hostel AS hostel, COUNT(*) AS order_count").
		Joins("JOIN students ON students.id = laundry_orders.student_id").
		Group("students.hostel").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate hostel order counts: %w", err)
	}

	var revenues []HostelStats
	err = s.db.Model(&models.LaundryOrder{}).
		Select("students.hostel AS hostel, COALESCE(SUM(laundry_orders.total_price), 0) AS revenue").
		Joins("JOIN students ON students.id = laundry_orders.student_id").
		Where("laundry_orders.status = ?", models.StatusDone).
		Group("students.hostel").
		Scan(&revenues).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate hostel revenue: %w", err)
	}

	revenueByHostel := make(map[string]float64, len(revenues))
	for _, r := range revenues {
		revenueByHostel[r.Hostel] = r.Revenue
	}
	for i := range counts {
		counts[i].Revenue = revenueByHostel[counts[i].Hostel]
	}

	return counts, nil
}

// getPersonnelPerformance groups completed orders and earnings by personnel
func (s *AdminService) getPersonnelPerformance() ([]PersonnelPerformance, error) {
	var performance []PersonnelPerformance
	err := s.db.Model(&models.LaundryOrder{}).
		Select("personnel.full_name AS full_name, COUNT(*) AS completed_orders, " +
			"COALESCE(SUM(laundry_orders.total_price), 0) AS earnings, personnel.rating AS rating").
		Joins("JOIN personnel ON personnel.id = laundry_orders.personnel_id").
		Where("laundry_orders.status = ?", models.StatusDone).
		Group("personnel.id, personnel.full_name, personnel.rating").
		Scan(&performance).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate personnel performance: %w", err)
	}
	return performance, nil
}

// GetRecentOrders returns the 10 most recently created orders
func (s *AdminService) GetRecentOrders() ([]models.LaundryOrder, error) {
	var orders []models.LaundryOrder
	err := s.db.
		Preload("Student").
		Preload("Personnel").
		Preload("Items").
		Order("created_at DESC").
		Limit(10).
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load recent orders: %w", err)
	}
	return orders, nil
}

// GetAllOrders returns every order for report generation
func (s *AdminService) GetAllOrders() ([]models.LaundryOrder, error) {
	var orders []models.LaundryOrder
	err := s.db.
		Preload("Student").
		Preload("Personnel").
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	return orders, nil
}
