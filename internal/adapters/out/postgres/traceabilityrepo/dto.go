// Package traceabilityrepo persists provenance records. The table is only
// ever inserted into.
package traceabilityrepo

import (
	"time"

	"marketplace/internal/core/domain/model/traceability"

	"github.com/google/uuid"
)

// RecordDTO is a traceability_records row. Journeys are read by product and
// newest first, which the composite index serves.
type RecordDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ProductID          uuid.UUID  `gorm:"type:uuid;not null;index:idx_traceability_journey,priority:1"`
	OrderID            *uuid.UUID `gorm:"type:uuid;index"`
	Stage              string     `gorm:"type:varchar(16);not null"`
	ActorID            uuid.UUID  `gorm:"type:uuid;not null"`
	ActorName          string     `gorm:"not null"`
	ActorRole          string     `gorm:"not null"`
	LocationName       string     `gorm:"not null"`
	LocationAddress    string     `gorm:"not null"`
	Action             string     `gorm:"type:varchar(32);not null"`
	Description        string     `gorm:"not null"`
	VerificationStatus string     `gorm:"type:varchar(16);not null;default:pending"`
	Timestamp          time.Time  `gorm:"column:recorded_at;not null;index:idx_traceability_journey,priority:2,sort:desc"`
	CreatedAt          time.Time  `gorm:"not null;autoCreateTime:false"`
}

func (RecordDTO) TableName() string {
	return "traceability_records"
}

func fromDomain(r *traceability.Record) RecordDTO {
	var orderID *uuid.UUID
	if id := r.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	return RecordDTO{
		ID:                 r.ID().Bytes(),
		ProductID:          r.ProductID().Bytes(),
		OrderID:            orderID,
		Stage:              r.Stage().String(),
		ActorID:            r.ActorID().Bytes(),
		ActorName:          r.ActorName(),
		ActorRole:          r.ActorRole(),
		LocationName:       r.Location().Name(),
		LocationAddress:    r.Location().Address(),
		Action:             r.Action(),
		Description:        r.Description(),
		VerificationStatus: r.VerificationStatus().String(),
		Timestamp:          r.Timestamp(),
		CreatedAt:          r.CreatedAt(),
	}
}
