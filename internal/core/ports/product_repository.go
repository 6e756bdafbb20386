package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for the product stock view.
type ProductRepository interface {
	// Add persists a new product.
	Add(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// Restock atomically increments the product's quantity by quantity, marks it
	// available and stamps updatedAt with now. The increment happens in storage
	// so concurrent restocks of one product never lose an update.
	//
	// Returns the product as stored after the increment, or errs.ErrObjectNotFound.
	Restock(ctx context.Context, id kernel.UUID, quantity int, now time.Time) (*product.Product, error)
}
