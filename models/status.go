package models

import "fmt"

// OrderStatus represents the workflow state of a laundry order
type OrderStatus string

const (
	StatusPending           OrderStatus = "PENDING"
	StatusAccepted          OrderStatus = "ACCEPTED"
	StatusPendingCollection OrderStatus = "PENDING_COLLECTION"
	StatusWashing           OrderStatus = "WASHING"
	StatusIroning           OrderStatus = "IRONING"
	StatusDone              OrderStatus = "DONE"
	StatusRejected          OrderStatus = "REJECTED"
)

// statusOrder lists the success path in chronological order. It drives both
// transition legality and timeline assembly.
var statusOrder = []OrderStatus{
	StatusPending,
	StatusAccepted,
	StatusPendingCollection,
	StatusWashing,
	StatusIroning,
	StatusDone,
}

// transitions maps each status to its unique legal successor on the
// personnel-driven part of the workflow. PENDING is handled separately
// (accept/reject), DONE and REJECTED are terminal.
var transitions = map[OrderStatus]OrderStatus{
	StatusAccepted:          StatusPendingCollection,
	StatusPendingCollection: StatusWashing,
	StatusWashing:           StatusIroning,
	StatusIroning:           StatusDone,
}

// InProgressStatuses are the statuses of orders a personnel member is
// currently working on.
var InProgressStatuses = []OrderStatus{
	StatusAccepted,
	StatusPendingCollection,
	StatusWashing,
	StatusIroning,
}

// ParseOrderStatus converts a string into a known OrderStatus
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusPending, StatusAccepted, StatusPendingCollection,
		StatusWashing, StatusIroning, StatusDone, StatusRejected:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

// CanTransitionTo reports whether target is the legal successor of s
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	next, ok := transitions[s]
	return ok && next == target
}

// Successor returns the unique legal next status, if any
func (s OrderStatus) Successor() (OrderStatus, bool) {
	next, ok := transitions[s]
	return next, ok
}

// IsTerminal reports whether no further transitions are possible
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDone || s == StatusRejected
}

// SuccessPath returns the linear PENDING..DONE progression
func SuccessPath() []OrderStatus {
	path := make([]OrderStatus, len(statusOrder))
	copy(path, statusOrder)
	return path
}
