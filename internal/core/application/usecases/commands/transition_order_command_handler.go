package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/traceability"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("marketplace/commands")

// TransitionOrderCommandHandler applies an order status change together with
// its consequences: the restock of a cancelled pending order and the
// provenance record of the transition. All three commit in one transaction.
//
// The order row is updated only if its status is still the one that was read.
// When another request got there first the transition is re-read and
// re-decided once; a second conflict is returned as errs.ErrConcurrentModification.
//
// Example:
//
//	handler := NewTransitionOrderCommandHandler(uowFactory, journeyCache, logger)
//	cmd, _ := NewTransitionOrderCommand(orderID, "shipped", actor)
//	switch err := handler.Handle(ctx, cmd); {
//	case errors.Is(err, errs.ErrForbidden):
//	    // actor may not request this status
//	case errors.Is(err, errs.ErrInvalidState):
//	    // buyer tried to cancel an order that is no longer pending
//	}
type TransitionOrderCommandHandler struct {
	uowFactory TransitionUoWFactory
	journeys   JourneyInvalidator
	authority  services.TransitionAuthority
	logger     *slog.Logger
}

func NewTransitionOrderCommandHandler(
	uowFactory TransitionUoWFactory,
	journeys JourneyInvalidator,
	logger *slog.Logger,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		journeys:   journeys,
		authority:  services.NewTransitionAuthority(),
		logger:     logger.With("component", "transition_order_handler"),
	}
}

// Handle processes the transition. Errors from the authority and the
// repositories are returned unchanged.
func (h TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	ctx, span := tracer.Start(ctx, "TransitionOrder", trace.WithAttributes(
		attribute.String("order.id", cmd.OrderID().String()),
		attribute.String("order.requested_status", cmd.Status().String()),
		attribute.String("actor.id", cmd.Actor().ID().String()),
	))
	defer span.End()

	changed, err := h.transition(ctx, cmd)
	if errors.Is(err, errs.ErrConcurrentModification) {
		h.logger.WarnContext(ctx, "Order changed concurrently, retrying transition",
			"order_id", cmd.OrderID().String())
		changed, err = h.transition(ctx, cmd)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	invalidateJourneys(ctx, h.journeys, h.logger, changed)
	return nil
}

// transition runs one read-decide-write attempt and returns the products whose
// journey the committed unit of work changed.
func (h TransitionOrderCommandHandler) transition(ctx context.Context, cmd TransitionOrderCommand) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	productRepo := uow.ProductRepository()
	ledger := uow.TraceabilityRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	transition, err := h.authority.Apply(o, cmd.Actor(), cmd.Status(), now)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateStatus(ctx, o, transition.From); err != nil {
		return nil, err
	}

	if transition.Restock {
		if _, err = productRepo.Restock(ctx, o.ProductID(), o.Quantity(), now); err != nil {
			return nil, err
		}
	}

	record, err := traceability.NewRecord(h.authority.Provenance(o, cmd.Actor(), transition), now)
	if err != nil {
		return nil, err
	}

	if err = ledger.Append(ctx, record); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "Order status changed",
		"order_id", o.ID().String(),
		"from", transition.From.String(),
		"to", transition.To.String(),
		"restocked", transition.Restock,
	)

	return changedJourneys(uow.TrackedAggregates()), nil
}
