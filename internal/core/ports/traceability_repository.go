package ports

import (
	"context"

	"marketplace/internal/core/domain/model/traceability"
)

// TraceabilityRepository is the append-only store of provenance records.
// Records are never updated or deleted; journeys are read through
// queries.GetProductJourneyQueryHandler.
type TraceabilityRepository interface {
	// Append persists a new record.
	Append(ctx context.Context, record *traceability.Record) error
}
