package order

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a single purchase of one product between a seller and a buyer.
//
// Order follows these invariants:
//   - Identifier, product, seller and buyer are valid UUIDs
//   - Quantity is positive
//   - Status is one of the lifecycle states
//   - actualDeliveryDate is only set once the order was delivered
type Order struct {
	id        kernel.UUID
	productID kernel.UUID
	sellerID  kernel.UUID
	buyerID   kernel.UUID

	// quantity is the number of product units bought
	quantity int

	status Status

	// shippingAddress is nil when the buyer gave none
	shippingAddress *kernel.Address

	createdAt          time.Time
	updatedAt          time.Time
	actualDeliveryDate *time.Time

	isConstructed bool
}

// NewOrder creates a pending order. Order placement is not exposed by this
// service; NewOrder is used by seeding and tests.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), productID, sellerID, buyerID, 5, nil, time.Now())
func NewOrder(
	id, productID, sellerID, buyerID kernel.UUID,
	quantity int,
	shippingAddress *kernel.Address,
	now time.Time,
) (*Order, error) {
	return RestoreOrder(id, productID, sellerID, buyerID, quantity, Pending, shippingAddress, now, now, nil)
}

// RestoreOrder rebuilds an order from persistence with full validation.
func RestoreOrder(
	id, productID, sellerID, buyerID kernel.UUID,
	quantity int,
	status Status,
	shippingAddress *kernel.Address,
	createdAt, updatedAt time.Time,
	actualDeliveryDate *time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setParties(productID, sellerID, buyerID),
		o.setQuantity(quantity),
		o.setStatus(status, actualDeliveryDate),
		o.setShippingAddress(shippingAddress),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) ProductID() kernel.UUID {
	return o.productID
}

func (o *Order) SellerID() kernel.UUID {
	return o.sellerID
}

func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

func (o *Order) Quantity() int {
	return o.quantity
}

func (o *Order) Status() Status {
	return o.status
}

// ShippingAddress returns nil when the order has no shipping address.
func (o *Order) ShippingAddress() *kernel.Address {
	return o.shippingAddress
}

// ShippingAddressOrUnknown returns the shipping address, or kernel.UnknownAddress
// when there is none. The order itself is not changed.
func (o *Order) ShippingAddressOrUnknown() kernel.Address {
	if o.shippingAddress == nil {
		return kernel.UnknownAddress()
	}
	return *o.shippingAddress
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ActualDeliveryDate returns nil until the order is delivered.
func (o *Order) ActualDeliveryDate() *time.Time {
	return o.actualDeliveryDate
}

// IsSeller reports whether the actor sells this order's product.
func (o *Order) IsSeller(actor kernel.Actor) bool {
	return actor.Is(o.sellerID)
}

// IsBuyer reports whether the actor bought this order.
func (o *Order) IsBuyer(actor kernel.Actor) bool {
	return actor.Is(o.buyerID)
}

// ChangeStatus moves the order into status and stamps updatedAt with now.
// Moving into Delivered also records now as the actual delivery date.
// Authorization is the caller's concern; see services.TransitionAuthority.
func (o *Order) ChangeStatus(status Status, now time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	o.updatedAt = now
	if status == Delivered {
		deliveredAt := now
		o.actualDeliveryDate = &deliveredAt
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setParties(productID, sellerID, buyerID kernel.UUID) error {
	if err := errors.Join(productID.Validate(), sellerID.Validate(), buyerID.Validate()); err != nil {
		return err
	}
	o.productID = productID
	o.sellerID = sellerID
	o.buyerID = buyerID
	return nil
}

// setQuantity requires at least one unit.
func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setStatus(status Status, actualDeliveryDate *time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	o.actualDeliveryDate = actualDeliveryDate
	return nil
}

func (o *Order) setShippingAddress(address *kernel.Address) error {
	if address == nil {
		return nil
	}
	if err := address.Validate(); err != nil {
		return err
	}
	o.shippingAddress = address
	return nil
}
