package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLedgerDiscrepanciesQueryHandler reports every non-pending order for which
// no traceability record with action equal to the order's status exists.
// Pending orders are never reported since placing an order writes no record.
//
// Example:
//
//	handler := NewGetLedgerDiscrepanciesQueryHandler(db)
//	missing, err := handler.Handle(ctx, NewGetLedgerDiscrepanciesQuery())
//	for _, m := range missing {
//	    logger.Warn("order without record", "order_id", m.OrderID.String())
//	}
type GetLedgerDiscrepanciesQueryHandler struct {
	db *gorm.DB
}

func NewGetLedgerDiscrepanciesQueryHandler(db *gorm.DB) GetLedgerDiscrepanciesQueryHandler {
	return GetLedgerDiscrepanciesQueryHandler{db: db}
}

// Handle returns discrepancies ordered by the order's last update.
func (h GetLedgerDiscrepanciesQueryHandler) Handle(
	ctx context.Context,
	query GetLedgerDiscrepanciesQuery,
) ([]GetLedgerDiscrepanciesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "GetLedgerDiscrepancies")
	defer span.End()

	discrepancies := make([]GetLedgerDiscrepanciesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.product_id,
			o.status
		FROM orders o
		WHERE o.status <> ?
		  AND NOT EXISTS (
			SELECT 1
			FROM traceability_records r
			WHERE r.order_id = o.id
			  AND r.action = o.status
		  )
		ORDER BY o.updated_at, o.id
	`, order.Pending.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, productID uuid.UUID
		var status string

		if err = rows.Scan(&id, &productID, &status); err != nil {
			return nil, err
		}

		var resp GetLedgerDiscrepanciesQueryResponse
		if resp.OrderID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		if resp.Status, err = order.ParseStatus(status); err != nil {
			return nil, err
		}

		discrepancies = append(discrepancies, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return discrepancies, nil
}
