package models

import (
	"time"
)

// LaundryOrder represents a single laundry request in the system
type LaundryOrder struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	StudentID       uint        `gorm:"not null;index" json:"student_id"` // foreign key to students table
	Student         Student     `gorm:"foreignKey:StudentID;references:ID" json:"student"`
	PersonnelID     *uint       `gorm:"index" json:"personnel_id"` // nullable, assigned when order is accepted
	Personnel       *Personnel  `gorm:"foreignKey:PersonnelID" json:"personnel,omitempty"`
	Items           []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	Status          OrderStatus `gorm:"not null;default:'PENDING'" json:"status"`
	ServiceType     string      `gorm:"not null" json:"service_type"`
	UrgencyDays     int         `gorm:"not null" json:"urgency_days"`
	PhotoURL        string      `json:"photo_url"`
	TotalPrice      float64     `gorm:"not null" json:"total_price"` // frozen at creation
	PickupLocation  string      `gorm:"not null" json:"pickup_location"`
	RejectionReason *string     `gorm:"size:500" json:"rejection_reason,omitempty"` // set only on rejection
	StudentRating   *int        `json:"student_rating,omitempty"`                   // 1-5, set at most once after completion
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`

	// One timestamp slot per non-initial status reached. A slot is populated
	// exactly when the order has reached that status and is never overwritten.
	AcceptedAt   *time.Time `json:"accepted_at,omitempty"`
	CollectionAt *time.Time `json:"collection_at,omitempty"`
	WashingAt    *time.Time `json:"washing_at,omitempty"`
	IroningAt    *time.Time `json:"ironing_at,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

// TableName specifies the table name for the LaundryOrder model
func (LaundryOrder) TableName() string {
	return "laundry_orders"
}

// TimestampSlot returns a pointer to the slot holding the time at which the
// order entered the given status, or nil for statuses without a slot
// (PENDING uses CreatedAt, REJECTED has none).
func (o *LaundryOrder) TimestampSlot(status OrderStatus) **time.Time {
	switch status {
	case StatusAccepted:
		return &o.AcceptedAt
	case StatusPendingCollection:
		return &o.CollectionAt
	case StatusWashing:
		return &o.WashingAt
	case StatusIroning:
		return &o.IroningAt
	case StatusDone:
		return &o.CompletedAt
	}
	return nil
}

// StatusHistoryEntry is one step of an order's reconstructed timeline
type StatusHistoryEntry struct {
	Status    OrderStatus `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
}

// StatusHistory reconstructs the chronological timeline from the populated
// timestamp slots. Creation counts as the PENDING entry; REJECTED never
// appears because it has no slot.
func (o *LaundryOrder) StatusHistory() []StatusHistoryEntry {
	history := []StatusHistoryEntry{
		{Status: StatusPending, Timestamp: o.CreatedAt},
	}
	for _, status := range statusOrder[1:] {
		if slot := o.TimestampSlot(status); slot != nil && *slot != nil {
			history = append(history, StatusHistoryEntry{Status: status, Timestamp: **slot})
		}
	}
	return history
}

// OrderItem is a single line item of a laundry order. The per-item price is
// resolved from the static price table at order creation and frozen.
type OrderItem struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	OrderID      uint    `gorm:"not null;index" json:"order_id"`
	ItemType     string  `gorm:"not null" json:"item_type"`
	Quantity     int     `gorm:"not null;check:quantity > 0" json:"quantity"`
	PricePerItem float64 `gorm:"not null" json:"price_per_item"`
}

// TableName specifies the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

// ItemTotal returns quantity x frozen unit price
func (i OrderItem) ItemTotal() float64 {
	return float64(i.Quantity) * i.PricePerItem
}
