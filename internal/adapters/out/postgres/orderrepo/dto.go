// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored by its name so raw SQL and the ledger's action column can
// be compared directly.
type OrderDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ProductID          uuid.UUID  `gorm:"type:uuid;index;not null"`
	SellerID           uuid.UUID  `gorm:"type:uuid;index;not null"`
	BuyerID            uuid.UUID  `gorm:"type:uuid;index;not null"`
	Quantity           int        `gorm:"not null;check:chk_orders_quantity,quantity > 0"`
	Status             string     `gorm:"type:varchar(16);index;not null"`
	ShippingAddress    AddressDTO `gorm:"embedded;embeddedPrefix:shipping_"`
	CreatedAt          time.Time  `gorm:"not null;autoCreateTime:false"`
	UpdatedAt          time.Time  `gorm:"not null;autoUpdateTime:false"`
	ActualDeliveryDate *time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO holds the optional shipping address. A NULL city means the
// order has no address; an empty city is a valid, partial address.
type AddressDTO struct {
	Street  *string
	City    *string
	State   *string
	Country *string
}

func fromDomain(o *order.Order) OrderDTO {
	var address AddressDTO
	if a := o.ShippingAddress(); a != nil {
		street, city, state, country := a.Street(), a.City(), a.State(), a.Country()
		address = AddressDTO{Street: &street, City: &city, State: &state, Country: &country}
	}

	return OrderDTO{
		ID:                 o.ID().Bytes(),
		ProductID:          o.ProductID().Bytes(),
		SellerID:           o.SellerID().Bytes(),
		BuyerID:            o.BuyerID().Bytes(),
		Quantity:           o.Quantity(),
		Status:             o.Status().String(),
		ShippingAddress:    address,
		CreatedAt:          o.CreatedAt(),
		UpdatedAt:          o.UpdatedAt(),
		ActualDeliveryDate: o.ActualDeliveryDate(),
	}
}

// toDomain reconstructs the aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}
	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}
	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	address, err := dto.ShippingAddress.toDomain()
	if err != nil {
		return nil, err
	}

	var deliveredAt *time.Time
	if dto.ActualDeliveryDate != nil {
		d := dto.ActualDeliveryDate.UTC()
		deliveredAt = &d
	}

	return order.RestoreOrder(id, productID, sellerID, buyerID, dto.Quantity, status, address,
		dto.CreatedAt.UTC(), dto.UpdatedAt.UTC(), deliveredAt)
}

// toDomain returns nil for a NULL city and for a row whose components are
// all blank.
func (a AddressDTO) toDomain() (*kernel.Address, error) {
	if a.City == nil {
		return nil, nil
	}

	street, city, state, country := deref(a.Street), *a.City, deref(a.State), deref(a.Country)
	if strings.TrimSpace(street+city+state+country) == "" {
		return nil, nil
	}

	address, err := kernel.NewAddress(street, city, state, country)
	if err != nil {
		return nil, err
	}
	return &address, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
