package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
//	pending ──> confirmed ──> shipped ──> delivered
//	   │
//	   └──> cancelled
//
// Sellers drive the forward path; buyers may only cancel while the order is
// pending. Status is stored and exchanged by its lower-case name.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the status of a freshly placed order awaiting the seller.
	Pending

	// Confirmed means the seller accepted the order.
	Confirmed

	// Shipped means the goods left the seller.
	Shipped

	// Delivered means the goods reached the buyer.
	Delivered

	// Cancelled means the order will not be fulfilled.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Confirmed: "confirmed",
		Shipped:   "shipped",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// AllStatuses lists every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Confirmed, Shipped, Delivered, Cancelled}
}

// ParseStatus converts the wire name of a status. Only the exact lower-case
// names match; anything else is an invalid value.
func ParseStatus(s string) (Status, error) {
	for _, status := range AllStatuses() {
		if status.String() == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not one of pending, confirmed, shipped, delivered, cancelled", s),
	)
}

// Validate checks if the Status value is one of the five lifecycle states.
func (s Status) Validate() error {
	if s < Pending || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsSellerTarget reports whether a seller may move an order into s.
func (s Status) IsSellerTarget() bool {
	return s == Confirmed || s == Shipped || s == Cancelled
}

// IsBuyerTarget reports whether a buyer may move an order into s.
func (s Status) IsBuyerTarget() bool {
	return s == Cancelled
}

// IsCancellableByBuyer reports whether a buyer may cancel an order currently in s.
func (s Status) IsCancellableByBuyer() bool {
	return s == Pending
}
