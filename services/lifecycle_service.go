package services

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/freshfold/freshfold-api/models"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrPersonnelNotFound = errors.New("personnel not found")
	ErrOrderNotPending   = errors.New("order is not in pending status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrRatingOutOfRange  = errors.New("rating must be between 1 and 5")
	ErrOrderNotCompleted = errors.New("you can only rate completed orders")
	ErrOrderAlreadyRated = errors.New("order already rated")
)

// orderLocks serializes mutations per order id. The source system relied on
// a single-writer assumption; a lost update between two concurrent status
// updates on the same order is possible without this.
type orderLocks struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func newOrderLocks() *orderLocks {
	return &orderLocks{locks: make(map[uint]*sync.Mutex)}
}

func (l *orderLocks) get(orderID uint) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	lock, ok := l.locks[orderID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[orderID] = lock
	}
	return lock
}

// LifecycleService owns the order status field and enforces the fixed
// workflow: PENDING -> ACCEPTED -> PENDING_COLLECTION -> WASHING -> IRONING
// -> DONE, with PENDING -> REJECTED as the only alternative exit.
type LifecycleService struct {
	db     *gorm.DB
	events EventPublisher
	locks  *orderLocks
	now    func() time.Time
}

// NewLifecycleService creates a lifecycle service. A nil publisher disables
// event emission.
func NewLifecycleService(db *gorm.DB, events EventPublisher) *LifecycleService {
	if events == nil {
		events = NopPublisher{}
	}
	return &LifecycleService{
		db:     db,
		events: events,
		locks:  newOrderLocks(),
		now:    time.Now,
	}
}

// SetClock overrides the time source (for testing)
func (s *LifecycleService) SetClock(now func() time.Time) {
	s.now = now
}

// Accept assigns the order to a personnel member and moves it to ACCEPTED.
// Only PENDING orders can be accepted.
func (s *LifecycleService) Accept(orderID, personnelID uint) error {
	lock := s.locks.get(orderID)
	lock.Lock()
	defer lock.Unlock()

	var order models.LaundryOrder
	if err := s.db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("failed to load order: %w", err)
	}

	if order.Status != models.StatusPending {
		return ErrOrderNotPending
	}

	var personnel models.Personnel
	if err := s.db.First(&personnel, personnelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPersonnelNotFound
		}
		return fmt.Errorf("failed to load personnel: %w", err)
	}

	now := s.now()
	order.Status = models.StatusAccepted
	order.PersonnelID = &personnel.ID
	order.AcceptedAt = &now

	if err := s.db.Save(&order).Error; err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	s.publish(orderID, "order.accepted")
	return nil
}

// Reject moves a PENDING order to REJECTED and stores the reason
func (s *LifecycleService) Reject(orderID uint, reason string) error {
	lock := s.locks.get(orderID)
	lock.Lock()
	defer lock.Unlock()

	var order models.LaundryOrder
	if err := s.db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("failed to load order: %w", err)
	}

	if order.Status != models.StatusPending {
		return ErrOrderNotPending
	}

	order.Status = models.StatusRejected
	order.RejectionReason = &reason

	if err := s.db.Save(&order).Error; err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	s.publish(orderID, "order.rejected")
	return nil
}

// Advance moves the order to target, stamping the transition with the
// current time
func (s *LifecycleService) Advance(orderID uint, target models.OrderStatus) error {
	return s.AdvanceAt(orderID, target, s.now())
}

// AdvanceAt moves the order to target, which must be the unique legal
// successor of its current status. The timestamp slot for the target is set
// only if not already populated, so a retried call never clobbers an earlier
// stamp. Illegal transitions leave the order untouched.
func (s *LifecycleService) AdvanceAt(orderID uint, target models.OrderStatus, at time.Time) error {
	lock := s.locks.get(orderID)
	lock.Lock()
	defer lock.Unlock()

	var order models.LaundryOrder
	if err := s.db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("failed to load order: %w", err)
	}

	if !order.Status.CanTransitionTo(target) {
		return ErrInvalidTransition
	}

	order.Status = target
	if slot := order.TimestampSlot(target); slot != nil && *slot == nil {
		stamp := at
		*slot = &stamp
	}

	if err := s.db.Save(&order).Error; err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	s.publish(orderID, "order.status."+string(target))
	return nil
}

// SubmitRating records a 1-5 student rating on a completed order and
// recomputes the assigned personnel's average rating over all their rated
// DONE orders. An order can be rated at most once.
func (s *LifecycleService) SubmitRating(orderID uint, rating int) error {
	if rating < 1 || rating > 5 {
		return ErrRatingOutOfRange
	}

	lock := s.locks.get(orderID)
	lock.Lock()
	defer lock.Unlock()

	var order models.LaundryOrder
	if err := s.db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("failed to load order: %w", err)
	}

	if order.Status != models.StatusDone {
		return ErrOrderNotCompleted
	}

	if order.StudentRating != nil {
		return ErrOrderAlreadyRated
	}

	order.StudentRating = &rating
	if err := s.db.Save(&order).Error; err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	if order.PersonnelID != nil {
		if err := s.recomputePersonnelRating(*order.PersonnelID); err != nil {
			return err
		}
	}

	s.publish(orderID, "order.rated")
	return nil
}

// recomputePersonnelRating sets the personnel's rating to the arithmetic
// mean of the student ratings on their completed orders. When no rated
// orders exist the stored rating stands.
func (s *LifecycleService) recomputePersonnelRating(personnelID uint) error {
	var orders []models.LaundryOrder
	if err := s.db.
		Where("personnel_id = ? AND status = ? AND student_rating IS NOT NULL", personnelID, models.StatusDone).
		Find(&orders).Error; err != nil {
		return fmt.Errorf("failed to load rated orders: %w", err)
	}

	if len(orders) == 0 {
		return nil
	}

	sum := 0
	for _, o := range orders {
		sum += *o.StudentRating
	}
	average := float64(sum) / float64(len(orders))

	if err := s.db.Model(&models.Personnel{}).
		Where("id = ?", personnelID).
		Update("rating", average).Error; err != nil {
		return fmt.Errorf("failed to update personnel rating: %w", err)
	}

	return nil
}

func (s *LifecycleService) publish(orderID uint, eventType string) {
	if err := s.events.PublishOrderEvent(orderID, eventType); err != nil {
		log.Printf("warning: failed to publish %s for order %d: %v", eventType, orderID, err)
	}
}
