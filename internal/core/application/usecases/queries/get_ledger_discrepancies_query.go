package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetLedgerDiscrepanciesQueryIsNotConstructed = errors.New(
		"GetLedgerDiscrepanciesQuery must be created via NewGetLedgerDiscrepanciesQuery constructor",
	)
)

// GetLedgerDiscrepanciesQuery finds orders whose current status has no
// matching provenance record.
type GetLedgerDiscrepanciesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetLedgerDiscrepanciesQuery() GetLedgerDiscrepanciesQuery {
	return GetLedgerDiscrepanciesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetLedgerDiscrepanciesQuery) Validate() error {
	return q.guard.Validate(ErrGetLedgerDiscrepanciesQueryIsNotConstructed)
}

// GetLedgerDiscrepanciesQueryResponse names an order missing its record.
type GetLedgerDiscrepanciesQueryResponse struct {
	OrderID   kernel.UUID
	ProductID kernel.UUID
	Status    order.Status
}
