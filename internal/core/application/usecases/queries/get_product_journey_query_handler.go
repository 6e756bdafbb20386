package queries

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/traceability"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

var tracer = otel.Tracer("marketplace/queries")

// JourneyCache keeps computed journeys between reads. A miss is reported as
// found == false with a nil error.
//
// Every invalidation bumps the product's version. Version must be read before
// the journey is loaded; Set stores the journey only while the version is
// unchanged, so a slow fill cannot overwrite a newer invalidation.
type JourneyCache interface {
	Get(ctx context.Context, productID kernel.UUID) (journey []GetProductJourneyQueryResponse, found bool, err error)
	Version(ctx context.Context, productID kernel.UUID) (int64, error)
	Set(ctx context.Context, productID kernel.UUID, version int64, journey []GetProductJourneyQueryResponse) error
}

// NoopJourneyCache never hits. It is used when no cache is configured.
type NoopJourneyCache struct{}

func (NoopJourneyCache) Get(context.Context, kernel.UUID) ([]GetProductJourneyQueryResponse, bool, error) {
	return nil, false, nil
}

func (NoopJourneyCache) Version(context.Context, kernel.UUID) (int64, error) {
	return 0, nil
}

func (NoopJourneyCache) Set(context.Context, kernel.UUID, int64, []GetProductJourneyQueryResponse) error {
	return nil
}

// GetProductJourneyQueryHandler returns the provenance records of a product,
// newest first. Ties on timestamp are broken by createdAt, then id, both
// descending, so the order is stable across reads.
//
// The cache is read through: a failing cache is logged and the database is
// used instead. The cache version is read before the database so the fill is
// dropped when the ledger changed in between.
//
// Example:
//
//	handler := NewGetProductJourneyQueryHandler(db, journeyCache, logger)
//	journey, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d records\n", len(journey)) // 0 for an unknown product
type GetProductJourneyQueryHandler struct {
	db     *gorm.DB
	cache  JourneyCache
	logger *slog.Logger
}

func NewGetProductJourneyQueryHandler(db *gorm.DB, cache JourneyCache, logger *slog.Logger) GetProductJourneyQueryHandler {
	return GetProductJourneyQueryHandler{
		db:     db,
		cache:  cache,
		logger: logger.With("component", "product_journey_query"),
	}
}

// Handle never returns a nil slice on success.
func (h GetProductJourneyQueryHandler) Handle(
	ctx context.Context,
	query GetProductJourneyQuery,
) ([]GetProductJourneyQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "GetProductJourney", trace.WithAttributes(
		attribute.String("product.id", query.ProductID().String()),
	))
	defer span.End()

	journey, found, err := h.cache.Get(ctx, query.ProductID())
	if err != nil {
		h.logger.WarnContext(ctx, "Journey cache read failed", "product_id", query.ProductID().String(), "error", err)
	}
	if found {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return journey, nil
	}

	version, versionErr := h.cache.Version(ctx, query.ProductID())
	if versionErr != nil {
		h.logger.WarnContext(ctx, "Journey cache version read failed",
			"product_id", query.ProductID().String(), "error", versionErr)
	}

	journey, err = h.load(ctx, query.ProductID())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	// without a version the fill could race an invalidation, so skip it
	if versionErr != nil {
		return journey, nil
	}
	if err = h.cache.Set(ctx, query.ProductID(), version, journey); err != nil {
		h.logger.WarnContext(ctx, "Journey cache write failed", "product_id", query.ProductID().String(), "error", err)
	}

	return journey, nil
}

func (h GetProductJourneyQueryHandler) load(ctx context.Context, productID kernel.UUID) ([]GetProductJourneyQueryResponse, error) {
	journey := make([]GetProductJourneyQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			order_id,
			stage,
			actor_id,
			actor_name,
			actor_role,
			location_name,
			location_address,
			action,
			description,
			verification_status,
			recorded_at,
			created_at
		FROM traceability_records
		WHERE product_id = ?
		ORDER BY recorded_at DESC, created_at DESC, id DESC
	`, productID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, product, actor  uuid.UUID
			orderID             *uuid.UUID
			stage, verification string
			resp                GetProductJourneyQueryResponse
			timestamp, created  time.Time
		)

		err = rows.Scan(
			&id,
			&product,
			&orderID,
			&stage,
			&actor,
			&resp.ActorName,
			&resp.ActorRole,
			&resp.LocationName,
			&resp.LocationAddress,
			&resp.Action,
			&resp.Description,
			&verification,
			&timestamp,
			&created,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.ProductID, err = kernel.UUIDFromBytes(product[:]); err != nil {
			return nil, err
		}
		if resp.ActorID, err = kernel.UUIDFromBytes(actor[:]); err != nil {
			return nil, err
		}
		if orderID != nil {
			oid, oidErr := kernel.UUIDFromBytes(orderID[:])
			if oidErr != nil {
				return nil, oidErr
			}
			resp.OrderID = &oid
		}
		if resp.Stage, err = traceability.ParseStage(stage); err != nil {
			return nil, err
		}
		if resp.VerificationStatus, err = traceability.ParseVerificationStatus(verification); err != nil {
			return nil, err
		}
		resp.Timestamp = timestamp.UTC()
		resp.CreatedAt = created.UTC()

		journey = append(journey, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return journey, nil
}
