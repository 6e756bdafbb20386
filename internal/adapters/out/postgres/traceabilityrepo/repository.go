package traceabilityrepo

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/traceability"

	"gorm.io/gorm"
)

// GormTraceabilityRepository implements TraceabilityRepository using GORM.
type GormTraceabilityRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormTraceabilityRepository(db *gorm.DB, tracker aggregateTracker) *GormTraceabilityRepository {
	return &GormTraceabilityRepository{
		db:      db,
		tracker: tracker,
	}
}

// Append inserts the record. A duplicate identifier fails with the driver's
// unique violation.
func (r *GormTraceabilityRepository) Append(ctx context.Context, record *traceability.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}
