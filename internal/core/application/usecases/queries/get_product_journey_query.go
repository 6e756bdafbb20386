// Package queries contains read-only operations of the CQRS architecture.
// Query handlers read straight from the database with raw SQL and never
// load aggregates.
package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/traceability"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetProductJourneyQueryIsNotConstructed = errors.New(
		"GetProductJourneyQuery must be created via NewGetProductJourneyQuery constructor",
	)
)

// GetProductJourneyQuery replays the provenance records of one product.
//
// Example:
//
//	query, err := NewGetProductJourneyQuery(c.Param("id"))
//	if err != nil {
//	    return err // errs.ErrValueIsInvalid
//	}
//	journey, err := handler.Handle(ctx, query)
type GetProductJourneyQuery struct {
	productID kernel.UUID
	guard     guard.ConstructorGuard
}

// NewGetProductJourneyQuery parses the product identifier.
func NewGetProductJourneyQuery(productID string) (GetProductJourneyQuery, error) {
	id, err := kernel.UUIDFromString(productID)
	if err != nil {
		return GetProductJourneyQuery{}, err
	}

	return GetProductJourneyQuery{
		productID: id,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductJourneyQuery) Validate() error {
	return q.guard.Validate(ErrGetProductJourneyQueryIsNotConstructed)
}

func (q GetProductJourneyQuery) ProductID() kernel.UUID {
	return q.productID
}

// GetProductJourneyQueryResponse is one provenance record of a journey.
// OrderID is nil for records that do not stem from an order transition.
type GetProductJourneyQueryResponse struct {
	ID                 kernel.UUID
	ProductID          kernel.UUID
	OrderID            *kernel.UUID
	Stage              traceability.Stage
	ActorID            kernel.UUID
	ActorName          string
	ActorRole          string
	LocationName       string
	LocationAddress    string
	Action             string
	Description        string
	VerificationStatus traceability.VerificationStatus
	Timestamp          time.Time
	CreatedAt          time.Time
}

// NewGetProductJourneyQueryResponse flattens a stored record.
func NewGetProductJourneyQueryResponse(r *traceability.Record) GetProductJourneyQueryResponse {
	return GetProductJourneyQueryResponse{
		ID:                 r.ID(),
		ProductID:          r.ProductID(),
		OrderID:            r.OrderID(),
		Stage:              r.Stage(),
		ActorID:            r.ActorID(),
		ActorName:          r.ActorName(),
		ActorRole:          r.ActorRole(),
		LocationName:       r.Location().Name(),
		LocationAddress:    r.Location().Address(),
		Action:             r.Action(),
		Description:        r.Description(),
		VerificationStatus: r.VerificationStatus(),
		Timestamp:          r.Timestamp(),
		CreatedAt:          r.CreatedAt(),
	}
}
