package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/traceability"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const orderUpdatedMessage = "Order status updated & traceability recorded"

type TransitionOrderHandler interface {
	Handle(ctx context.Context, cmd commands.TransitionOrderCommand) error
}

type AppendTraceabilityRecordHandler interface {
	Handle(ctx context.Context, cmd commands.AppendTraceabilityRecordCommand) (*traceability.Record, error)
}

type GetProductJourneyHandler interface {
	Handle(ctx context.Context, query queries.GetProductJourneyQuery) ([]queries.GetProductJourneyQueryResponse, error)
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	transitionOrderHandler TransitionOrderHandler
	appendRecordHandler    AppendTraceabilityRecordHandler

	// Query handlers
	productJourneyHandler GetProductJourneyHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	transitionOrderHandler TransitionOrderHandler,
	appendRecordHandler AppendTraceabilityRecordHandler,
	productJourneyHandler GetProductJourneyHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		transitionOrderHandler: transitionOrderHandler,
		appendRecordHandler:    appendRecordHandler,
		productJourneyHandler:  productJourneyHandler,
		logger:                 logger.With("component", "http_server"),
	}
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{id} - moves an order to a new status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, id openapi_types.UUID) error {
	actor, err := ActorFromContext(ctx)
	if err != nil {
		return err
	}

	var body UpdateOrderStatusRequest
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewTransitionOrderCommand(id.String(), body.Status, actor)
	if err != nil {
		return err
	}

	if err := s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, Message{Message: orderUpdatedMessage})
}

// GetProductJourney handles GET /api/v1/products/{productId}/journey - lists provenance records.
func (s *Server) GetProductJourney(ctx echo.Context, productID openapi_types.UUID) error {
	query, err := queries.NewGetProductJourneyQuery(productID.String())
	if err != nil {
		return err
	}

	journey, err := s.productJourneyHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]TraceabilityRecord, len(journey))
	for i, r := range journey {
		var orderID *openapi_types.UUID
		if r.OrderID != nil {
			id := r.OrderID.Bytes()
			orderID = &id
		}

		response[i] = TraceabilityRecord{
			ID:                 r.ID.Bytes(),
			ProductID:          r.ProductID.Bytes(),
			OrderID:            orderID,
			Stage:              r.Stage.String(),
			ActorID:            r.ActorID.Bytes(),
			ActorName:          r.ActorName,
			ActorRole:          r.ActorRole,
			Location:           Location{Name: r.LocationName, Address: r.LocationAddress},
			Action:             r.Action,
			Description:        r.Description,
			VerificationStatus: r.VerificationStatus.String(),
			Timestamp:          r.Timestamp,
			CreatedAt:          r.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AppendTraceabilityRecord handles POST /api/v1/products/{productId}/traceability - records a provenance event.
func (s *Server) AppendTraceabilityRecord(ctx echo.Context, productID openapi_types.UUID) error {
	actor, err := ActorFromContext(ctx)
	if err != nil {
		return err
	}

	var body AppendTraceabilityRecordRequest
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	params := commands.AppendTraceabilityRecordParams{
		ProductID:          productID.String(),
		Stage:              body.Stage,
		LocationName:       body.Location.Name,
		LocationAddress:    body.Location.Address,
		Action:             body.Action,
		Description:        body.Description,
		VerificationStatus: body.VerificationStatus,
	}
	if body.OrderID != nil {
		params.OrderID = body.OrderID.String()
	}

	cmd, err := commands.NewAppendTraceabilityRecordCommand(params, actor)
	if err != nil {
		return err
	}

	record, err := s.appendRecordHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, toTraceabilityRecord(record))
}

func toTraceabilityRecord(r *traceability.Record) TraceabilityRecord {
	var orderID *openapi_types.UUID
	if r.OrderID() != nil {
		id := r.OrderID().Bytes()
		orderID = &id
	}

	return TraceabilityRecord{
		ID:                 r.ID().Bytes(),
		ProductID:          r.ProductID().Bytes(),
		OrderID:            orderID,
		Stage:              r.Stage().String(),
		ActorID:            r.ActorID().Bytes(),
		ActorName:          r.ActorName(),
		ActorRole:          r.ActorRole(),
		Location:           Location{Name: r.Location().Name(), Address: r.Location().Address()},
		Action:             r.Action(),
		Description:        r.Description(),
		VerificationStatus: r.VerificationStatus().String(),
		Timestamp:          r.Timestamp(),
		CreatedAt:          r.CreatedAt(),
	}
}

// Register installs the error handler, the service endpoints and the API
// documentation routes on e. Requests are validated against doc.
func (s *Server) Register(e *echo.Echo, auth *Authenticator, doc *openapi3.T) error {
	validate, err := RequestValidator(doc)
	if err != nil {
		return err
	}

	docJSON, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal openapi document: %w", err)
	}

	e.HTTPErrorHandler = ErrorHandler(s.logger)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/api/v1/openapi.json", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, docJSON)
	})

	registerSwagger(docJSON)
	e.GET("/swagger/*", swaggerHandler())

	RegisterHandlers(e, s, auth.Middleware(), validate)
	return nil
}
