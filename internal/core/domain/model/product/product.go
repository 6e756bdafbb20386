package product

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")

// Product is the stock-keeping view of a listed product.
//
// Invariants:
//   - quantity is never negative
//   - status is Available or SoldOut
type Product struct {
	id        kernel.UUID
	name      string
	quantity  int
	status    Status
	updatedAt time.Time
	guard     guard.ConstructorGuard
}

// NewProduct lists a product. A product with no stock starts SoldOut.
func NewProduct(id kernel.UUID, name string, quantity int, now time.Time) (*Product, error) {
	status := Available
	if quantity == 0 {
		status = SoldOut
	}
	return RestoreProduct(id, name, quantity, status, now)
}

// RestoreProduct rebuilds a product from persistence.
func RestoreProduct(id kernel.UUID, name string, quantity int, status Status, updatedAt time.Time) (*Product, error) {
	var quantityErr error
	if quantity < 0 {
		quantityErr = errs.NewValueIsOutOfRangeError("quantity", quantity, 0, "unbounded")
	}

	if err := errors.Join(id.Validate(), quantityErr, status.Validate()); err != nil {
		return nil, fmt.Errorf("restore product: %w", err)
	}

	return &Product{
		id:        id,
		name:      strings.TrimSpace(name),
		quantity:  quantity,
		status:    status,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Quantity() int {
	return p.quantity
}

func (p *Product) Status() Status {
	return p.status
}

func (p *Product) UpdatedAt() time.Time {
	return p.updatedAt
}
