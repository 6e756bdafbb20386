package commands

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/traceability"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// AppendTraceabilityRecordCommandHandler stores a new provenance record and
// returns it with its server assigned identifier and timestamps.
type AppendTraceabilityRecordCommandHandler struct {
	uowFactory TraceabilityUoWFactory
	journeys   JourneyInvalidator
	logger     *slog.Logger
}

func NewAppendTraceabilityRecordCommandHandler(
	uowFactory TraceabilityUoWFactory,
	journeys JourneyInvalidator,
	logger *slog.Logger,
) AppendTraceabilityRecordCommandHandler {
	return AppendTraceabilityRecordCommandHandler{
		uowFactory: uowFactory,
		journeys:   journeys,
		logger:     logger.With("component", "append_traceability_record_handler"),
	}
}

func (h AppendTraceabilityRecordCommandHandler) Handle(
	ctx context.Context,
	cmd AppendTraceabilityRecordCommand,
) (*traceability.Record, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	entry := cmd.Entry()
	ctx, span := tracer.Start(ctx, "AppendTraceabilityRecord", trace.WithAttributes(
		attribute.String("product.id", entry.ProductID.String()),
		attribute.String("traceability.stage", entry.Stage.String()),
	))
	defer span.End()

	record, changed, err := h.append(ctx, entry)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	invalidateJourneys(ctx, h.journeys, h.logger, changed)
	return record, nil
}

func (h AppendTraceabilityRecordCommandHandler) append(
	ctx context.Context,
	entry traceability.Entry,
) (*traceability.Record, []kernel.UUID, error) {
	record, err := traceability.NewRecord(entry, time.Now().UTC())
	if err != nil {
		return nil, nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TraceabilityRepository().Append(ctx, record); err != nil {
		return nil, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	return record, changedJourneys(uow.TrackedAggregates()), nil
}
