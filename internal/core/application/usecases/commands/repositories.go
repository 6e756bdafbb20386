// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"
	"log/slog"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/traceability"
	"marketplace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// AggregateTracker exposes the aggregates a committed unit of work wrote.
	AggregateTracker interface {
		TrackedAggregates() []any
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductRepoFactory provides access to product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// TraceabilityRepoFactory provides access to the ledger within a transaction.
	TraceabilityRepoFactory interface {
		TraceabilityRepository() ports.TraceabilityRepository
	}

	// TraceabilityUoW manages transactions for ledger-only operations.
	TraceabilityUoW interface {
		TxManager
		AggregateTracker
		TraceabilityRepoFactory
	}

	// TraceabilityUoWFactory creates new ledger unit of work instances.
	TraceabilityUoWFactory interface {
		Create() TraceabilityUoW
	}

	// TransitionUoW spans the order, its product stock and the ledger, so a
	// status change, its restock and its provenance record commit together.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   productRepo := uow.ProductRepository()
	//   ledger := uow.TraceabilityRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	//   changed := uow.TrackedAggregates()
	TransitionUoW interface {
		TxManager
		AggregateTracker
		OrderRepoFactory
		ProductRepoFactory
		TraceabilityRepoFactory
	}

	// TransitionUoWFactory creates new unit of work instances for order transitions.
	TransitionUoWFactory interface {
		Create() TransitionUoW
	}

	// JourneyInvalidator drops a product's cached journey after its ledger changed.
	JourneyInvalidator interface {
		Invalidate(ctx context.Context, productID kernel.UUID) error
	}
)

// changedJourneys lists, once each and in write order, the products whose
// ledger gained a record among the tracked aggregates.
func changedJourneys(tracked []any) []kernel.UUID {
	var productIDs []kernel.UUID
	seen := make(map[kernel.UUID]struct{})
	for _, aggregate := range tracked {
		record, ok := aggregate.(*traceability.Record)
		if !ok {
			continue
		}
		if _, dup := seen[record.ProductID()]; dup {
			continue
		}
		seen[record.ProductID()] = struct{}{}
		productIDs = append(productIDs, record.ProductID())
	}
	return productIDs
}

// invalidateJourneys drops the cached journeys of the given products. Failures
// are logged; the ledger is already committed and the entries expire anyway.
func invalidateJourneys(ctx context.Context, journeys JourneyInvalidator, logger *slog.Logger, productIDs []kernel.UUID) {
	for _, productID := range productIDs {
		if err := journeys.Invalidate(ctx, productID); err != nil {
			logger.WarnContext(ctx, "Failed to invalidate product journey",
				"product_id", productID.String(), "error", err)
		}
	}
}

// NoopJourneyInvalidator is used when no journey cache is configured.
type NoopJourneyInvalidator struct{}

func (NoopJourneyInvalidator) Invalidate(context.Context, kernel.UUID) error {
	return nil
}
