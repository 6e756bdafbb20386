package traceability

import (
	"errors"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord or RestoreRecord constructor")

// Entry carries the caller supplied part of a record. The ledger adds the
// identifier and timestamps. A zero VerificationStatus means pending.
type Entry struct {
	ProductID          kernel.UUID
	OrderID            *kernel.UUID
	Stage              Stage
	Actor              kernel.Actor
	Location           Location
	Action             string
	Description        string
	VerificationStatus VerificationStatus
}

// Record is an immutable provenance event. It exposes getters only.
type Record struct {
	id                 kernel.UUID
	productID          kernel.UUID
	orderID            *kernel.UUID
	stage              Stage
	actorID            kernel.UUID
	actorName          string
	actorRole          string
	location           Location
	action             string
	description        string
	verificationStatus VerificationStatus
	timestamp          time.Time
	createdAt          time.Time
	guard              guard.ConstructorGuard
}

// NewRecord builds a record for appending: a fresh identifier, timestamp and
// createdAt set to now, and pending verification unless the entry says otherwise.
//
// Example:
//
//	record, err := traceability.NewRecord(traceability.Entry{
//	    ProductID: o.ProductID(),
//	    OrderID:   &orderID,
//	    Stage:     traceability.Processing,
//	    Actor:     actor,
//	    Location:  traceability.LocationFromAddress(o.ShippingAddressOrUnknown()),
//	    Action:    "confirmed",
//	}, time.Now())
func NewRecord(entry Entry, now time.Time) (*Record, error) {
	if entry.VerificationStatus == UnknownVerification {
		entry.VerificationStatus = VerificationPending
	}
	return RestoreRecord(kernel.NewUUID(), entry, now, now)
}

// RestoreRecord rebuilds a stored record. The actor is taken from entry.Actor.
func RestoreRecord(id kernel.UUID, entry Entry, timestamp, createdAt time.Time) (*Record, error) {
	var orderErr error
	if entry.OrderID != nil {
		orderErr = entry.OrderID.Validate()
	}

	var actionErr error
	action := strings.TrimSpace(entry.Action)
	if action == "" {
		actionErr = errs.NewValueIsRequiredError("action")
	}

	if err := errors.Join(
		id.Validate(),
		entry.ProductID.Validate(),
		orderErr,
		entry.Stage.Validate(),
		entry.Actor.Validate(),
		actionErr,
		entry.VerificationStatus.Validate(),
	); err != nil {
		return nil, err
	}

	return &Record{
		id:                 id,
		productID:          entry.ProductID,
		orderID:            entry.OrderID,
		stage:              entry.Stage,
		actorID:            entry.Actor.ID(),
		actorName:          entry.Actor.Name(),
		actorRole:          entry.Actor.Role(),
		location:           entry.Location,
		action:             action,
		description:        entry.Description,
		verificationStatus: entry.VerificationStatus,
		timestamp:          timestamp,
		createdAt:          createdAt,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

func (r *Record) Validate() error {
	if r == nil {
		return ErrRecordIsNotConstructed
	}
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

func (r *Record) ID() kernel.UUID {
	return r.id
}

func (r *Record) ProductID() kernel.UUID {
	return r.productID
}

// OrderID is nil for records not produced by an order transition.
func (r *Record) OrderID() *kernel.UUID {
	return r.orderID
}

func (r *Record) Stage() Stage {
	return r.stage
}

func (r *Record) ActorID() kernel.UUID {
	return r.actorID
}

func (r *Record) ActorName() string {
	return r.actorName
}

func (r *Record) ActorRole() string {
	return r.actorRole
}

func (r *Record) Location() Location {
	return r.location
}

func (r *Record) Action() string {
	return r.action
}

func (r *Record) Description() string {
	return r.description
}

func (r *Record) VerificationStatus() VerificationStatus {
	return r.verificationStatus
}

func (r *Record) Timestamp() time.Time {
	return r.timestamp
}

func (r *Record) CreatedAt() time.Time {
	return r.createdAt
}
