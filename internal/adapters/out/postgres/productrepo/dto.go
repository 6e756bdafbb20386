// Package productrepo persists the stock view of products.
package productrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO is the products row. The check constraint keeps stock from
// going negative even for writes outside this service.
type ProductDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null;default:''"`
	Quantity  int       `gorm:"not null;check:chk_products_quantity,quantity >= 0"`
	Status    string    `gorm:"type:varchar(16);not null"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:        p.ID().Bytes(),
		Name:      p.Name(),
		Quantity:  p.Quantity(),
		Status:    p.Status().String(),
		UpdatedAt: p.UpdatedAt(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := product.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, dto.Quantity, status, dto.UpdatedAt.UTC())
}
