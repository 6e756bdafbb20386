package services

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/traceability"
	"marketplace/internal/pkg/errs"
)

// Transition describes an authorized status change and its consequences.
type Transition struct {
	// From is the status the order had when it was read.
	From order.Status
	// To is the requested status.
	To order.Status
	// Restock is true when a pending order is cancelled and its quantity
	// goes back to the product's stock.
	Restock bool
	// Stage and Description are derived from To for the provenance record.
	Stage       traceability.Stage
	Description string
}

// TransitionAuthority enforces who may move an order into which status.
//
// Business rules:
//   - The actor must be the order's seller or its buyer
//   - Sellers may request confirmed, shipped or cancelled; a request equal to
//     the current status is tolerated as an idle re-confirmation
//   - Buyers may only request cancelled, and only while the order is pending
//   - An actor who is both seller and buyer must satisfy both rule sets
//
// Example usage:
//
//	authority := services.NewTransitionAuthority()
//	transition, err := authority.Apply(o, actor, order.Confirmed, time.Now())
//	if errors.Is(err, errs.ErrForbidden) {
//	    // actor may not request this status
//	}
type TransitionAuthority struct{}

func NewTransitionAuthority() TransitionAuthority {
	return TransitionAuthority{}
}

// Authorize checks the request without changing the order.
func (a TransitionAuthority) Authorize(o *order.Order, actor kernel.Actor, requested order.Status) (Transition, error) {
	if err := o.Validate(); err != nil {
		return Transition{}, err
	}
	if err := actor.Validate(); err != nil {
		return Transition{}, err
	}
	if err := requested.Validate(); err != nil {
		return Transition{}, err
	}

	current := o.Status()
	isSeller := o.IsSeller(actor)
	isBuyer := o.IsBuyer(actor)

	if !isSeller && !isBuyer {
		return Transition{}, errs.NewForbiddenError("not authorized to update this order")
	}

	if isSeller && !requested.IsSellerTarget() && requested != current {
		return Transition{}, errs.NewForbiddenError("sellers may only confirm, ship, or cancel orders")
	}

	if isBuyer {
		if !requested.IsBuyerTarget() {
			return Transition{}, errs.NewForbiddenError("buyers may only cancel orders")
		}
		if !current.IsCancellableByBuyer() {
			return Transition{}, errs.NewInvalidStateError("cannot cancel an order that is not pending")
		}
	}

	stage, description := DeriveProvenance(requested)
	return Transition{
		From:        current,
		To:          requested,
		Restock:     requested == order.Cancelled && current == order.Pending,
		Stage:       stage,
		Description: description,
	}, nil
}

// Apply authorizes the request and, on success, changes the order's status.
func (a TransitionAuthority) Apply(
	o *order.Order,
	actor kernel.Actor,
	requested order.Status,
	now time.Time,
) (Transition, error) {
	transition, err := a.Authorize(o, actor, requested)
	if err != nil {
		return Transition{}, err
	}

	if err = o.ChangeStatus(requested, now); err != nil {
		return Transition{}, err
	}

	return transition, nil
}

// Provenance builds the ledger entry for an applied transition. The location
// is the order's shipping address, or the unknown address when it has none.
func (a TransitionAuthority) Provenance(o *order.Order, actor kernel.Actor, transition Transition) traceability.Entry {
	orderID := o.ID()
	return traceability.Entry{
		ProductID:          o.ProductID(),
		OrderID:            &orderID,
		Stage:              transition.Stage,
		Actor:              actor,
		Location:           traceability.LocationFromAddress(o.ShippingAddressOrUnknown()),
		Action:             transition.To.String(),
		Description:        transition.Description,
		VerificationStatus: traceability.VerificationPending,
	}
}

// DeriveProvenance maps an order status to the stage and description of the
// record its transition produces.
//
//	confirmed -> processing,   "Order confirmed by seller"
//	shipped   -> distribution, "Order shipped from seller"
//	delivered -> retail,       "Order delivered to buyer"
//	cancelled -> farm,         "Order cancelled"
//	otherwise -> farm,         ""
func DeriveProvenance(status order.Status) (traceability.Stage, string) {
	switch status {
	case order.Confirmed:
		return traceability.Processing, "Order confirmed by seller"
	case order.Shipped:
		return traceability.Distribution, "Order shipped from seller"
	case order.Delivered:
		return traceability.Retail, "Order delivered to buyer"
	case order.Cancelled:
		return traceability.Farm, "Order cancelled"
	default:
		return traceability.Farm, ""
	}
}
