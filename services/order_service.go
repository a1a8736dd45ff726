package services

import (
	"errors"
	"fmt"

	"github.com/freshfold/freshfold-api/models"
	"gorm.io/gorm"
)

var ErrStudentNotFound = errors.New("student not found")

// CreateOrderInput carries everything needed to place a new order. The total
// price is computed from the static price table plus the urgency surcharge
// and frozen; later mutations never recompute it.
type CreateOrderInput struct {
	StudentID      uint
	ServiceType    string
	UrgencyDays    int
	PhotoURL       string
	PickupLocation string
	Items          []OrderItemRequest
}

// OrderService handles order creation and the read-side queries used by the
// student, personnel and admin views
type OrderService struct {
	db     *gorm.DB
	events EventPublisher
}

// NewOrderService creates an order service. A nil publisher disables event
// emission.
func NewOrderService(db *gorm.DB, events EventPublisher) *OrderService {
	if events == nil {
		events = NopPublisher{}
	}
	return &OrderService{db: db, events: events}
}

// CreateOrder places a new PENDING order with frozen line-item prices and
// total. The handler stays unassigned until a personnel member accepts.
func (s *OrderService) CreateOrder(input CreateOrderInput) (*models.LaundryOrder, error) {
	var student models.Student
	if err := s.db.First(&student, input.StudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to load student: %w", err)
	}

	items, total := PriceItems(input.Items, input.UrgencyDays)

	order := models.LaundryOrder{
		StudentID:      student.ID,
		Status:         models.StatusPending,
		ServiceType:    input.ServiceType,
		UrgencyDays:    input.UrgencyDays,
		PhotoURL:       input.PhotoURL,
		TotalPrice:     total,
		PickupLocation: input.PickupLocation,
		Items:          items,
	}

	if err := s.db.Create(&order).Error; err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err := s.events.PublishOrderEvent(order.ID, "order.created"); err != nil {
		// Best effort; the order is already persisted
		_ = err
	}

	return s.GetOrder(order.ID)
}

// GetOrder loads an order with its student, personnel and items
func (s *OrderService) GetOrder(orderID uint) (*models.LaundryOrder, error) {
	var order models.LaundryOrder
	err := s.db.
		Preload("Student").
		Preload("Personnel").
		Preload("Items").
		First(&order, orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	return &order, nil
}

// GetStudentOrders returns a student's orders, newest first
func (s *OrderService) GetStudentOrders(studentID uint) ([]models.LaundryOrder, error) {
	var orders []models.LaundryOrder
	err := s.db.
		Preload("Student").
		Preload("Personnel").
		Preload("Items").
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load student orders: %w", err)
	}
	return orders, nil
}

// GetPendingOrders returns all orders awaiting acceptance, newest first
func (s *OrderService) GetPendingOrders() ([]models.LaundryOrder, error) {
	var orders []models.LaundryOrder
	err := s.db.
		Preload("Student").
		Preload("Items").
		Where("status = ?", models.StatusPending).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load pending orders: %w", err)
	}
	return orders, nil
}

// GetInProgressOrders returns the orders a personnel member is working on
func (s *OrderService) GetInProgressOrders(personnelID uint) ([]models.LaundryOrder, error) {
	var orders []models.LaundryOrder
	err := s.db.
		Preload("Student").
		Preload("Personnel").
		Preload("Items").
		Where("personnel_id = ? AND status IN ?", personnelID, models.InProgressStatuses).
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load in-progress orders: %w", err)
	}
	return orders, nil
}

// GetCompletedOrders returns a personnel member's DONE orders
func (s *OrderService) GetCompletedOrders(personnelID uint) ([]models.LaundryOrder, error) {
	var orders []models.LaundryOrder
	err := s.db.
		Preload("Student").
		Preload("Personnel").
		Preload("Items").
		Where("personnel_id = ? AND status = ?", personnelID, models.StatusDone).
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load completed orders: %w", err)
	}
	return orders, nil
}

// ListPersonnelByRating returns all personnel sorted by rating, best first
func (s *OrderService) ListPersonnelByRating() ([]models.Personnel, error) {
	var personnel []models.Personnel
	if err := s.db.Order("rating DESC").Find(&personnel).Error; err != nil {
		return nil, fmt.Errorf("failed to load personnel: %w", err)
	}
	return personnel, nil
}

// PersonnelStats summarizes a personnel member's completed work
type PersonnelStats struct {
	CompletedOrders int64   `json:"completed_orders"`
	TotalEarnings   float64 `json:"total_earnings"`
}

// GetPersonnelStats returns the completed-order count and earnings for one
// personnel member
func (s *OrderService) GetPersonnelStats(personnelID uint) (*PersonnelStats, error) {
	var stats PersonnelStats

	err := s.db.Model(&models.LaundryOrder{}).
		Where("personnel_id = ? AND status = ?", personnelID, models.StatusDone).
		Count(&stats.CompletedOrders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count completed orders: %w", err)
	}

	err = s.db.Model(&models.LaundryOrder{}).
		Select("COALESCE(SUM(total_price), 0)").
		Where("personnel_id = ? AND status = ?", personnelID, models.StatusDone).
		Scan(&stats.TotalEarnings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum earnings: %w", err)
	}

	return &stats, nil
}
