// Package ports defines repository interfaces for the marketplace domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ErrObjectNotFound when no order has the identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatus persists the order's status, updatedAt and actualDeliveryDate,
	// but only if the stored status still equals expected.
	//
	// Returns errs.ErrConcurrentModification when another request changed the
	// status since the order was read, and errs.ErrObjectNotFound when the
	// order no longer exists.
	//
	// Example:
	//   previous := o.Status()
	//   _ = o.ChangeStatus(order.Shipped, now)
	//   err := repo.UpdateStatus(ctx, o, previous)
	UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error
}
