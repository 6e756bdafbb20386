package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/traceability"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrAppendTraceabilityRecordCommandIsNotConstructed = errors.New(
	"AppendTraceabilityRecordCommand must be created via NewAppendTraceabilityRecordCommand constructor",
)

// AppendTraceabilityRecordParams is the raw input of a ledger append.
// OrderID and VerificationStatus may be empty.
type AppendTraceabilityRecordParams struct {
	ProductID          string
	OrderID            string
	Stage              string
	LocationName       string
	LocationAddress    string
	Action             string
	Description        string
	VerificationStatus string
}

// AppendTraceabilityRecordCommand records a provenance event that is not an
// order transition, such as a harvest at the farm. The actor fields of the
// record come from the authenticated actor.
//
// Example:
//
//	cmd, err := NewAppendTraceabilityRecordCommand(AppendTraceabilityRecordParams{
//	    ProductID:    productID,
//	    Stage:        "farm",
//	    LocationName: "North field",
//	    Action:       "harvested",
//	}, actor)
type AppendTraceabilityRecordCommand struct { //nolint:recvcheck //using for validation
	entry traceability.Entry

	guard guard.ConstructorGuard
}

// NewAppendTraceabilityRecordCommand parses and validates every field and
// reports all problems at once.
func NewAppendTraceabilityRecordCommand(
	params AppendTraceabilityRecordParams,
	actor kernel.Actor,
) (AppendTraceabilityRecordCommand, error) {
	productID, productErr := kernel.UUIDFromString(params.ProductID)

	var orderID *kernel.UUID
	var orderErr error
	if raw := strings.TrimSpace(params.OrderID); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		orderID, orderErr = &id, err
	}

	stage, stageErr := traceability.ParseStage(params.Stage)
	location, locationErr := traceability.NewLocation(params.LocationName, params.LocationAddress)
	verification, verificationErr := traceability.ParseVerificationStatus(params.VerificationStatus)

	var actionErr error
	if strings.TrimSpace(params.Action) == "" {
		actionErr = errs.NewValueIsRequiredError("action")
	}

	if err := errors.Join(
		productErr,
		orderErr,
		stageErr,
		actor.Validate(),
		locationErr,
		actionErr,
		verificationErr,
	); err != nil {
		return AppendTraceabilityRecordCommand{}, err
	}

	return AppendTraceabilityRecordCommand{
		entry: traceability.Entry{
			ProductID:          productID,
			OrderID:            orderID,
			Stage:              stage,
			Actor:              actor,
			Location:           location,
			Action:             strings.TrimSpace(params.Action),
			Description:        params.Description,
			VerificationStatus: verification,
		},
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AppendTraceabilityRecordCommand) Validate() error {
	return c.guard.Validate(ErrAppendTraceabilityRecordCommandIsNotConstructed)
}

// Entry returns the validated record content.
func (c AppendTraceabilityRecordCommand) Entry() traceability.Entry {
	return c.entry
}
