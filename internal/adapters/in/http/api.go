package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const BearerAuthScopes = "bearerAuth.Scopes"

// UpdateOrderStatusRequest is the body of PATCH /api/v1/orders/{id}.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// AppendTraceabilityRecordRequest is the body of POST /api/v1/products/{productId}/traceability.
type AppendTraceabilityRecordRequest struct {
	OrderID            *openapi_types.UUID `json:"orderId,omitempty"`
	Stage              string              `json:"stage"`
	Location           Location            `json:"location"`
	Action             string              `json:"action"`
	Description        string              `json:"description,omitempty"`
	VerificationStatus string              `json:"verificationStatus,omitempty"`
}

type Location struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// TraceabilityRecord is one journey entry as returned to clients.
type TraceabilityRecord struct {
	ID                 openapi_types.UUID  `json:"id"`
	ProductID          openapi_types.UUID  `json:"productId"`
	OrderID            *openapi_types.UUID `json:"orderId"`
	Stage              string              `json:"stage"`
	ActorID            openapi_types.UUID  `json:"actorId"`
	ActorName          string              `json:"actorName"`
	ActorRole          string              `json:"actorRole"`
	Location           Location            `json:"location"`
	Action             string              `json:"action"`
	Description        string              `json:"description"`
	VerificationStatus string              `json:"verificationStatus"`
	Timestamp          time.Time           `json:"timestamp"`
	CreatedAt          time.Time           `json:"createdAt"`
}

type Message struct {
	Message string `json:"message"`
}

type Error struct {
	Error string `json:"error"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (PATCH /api/v1/orders/{id})
	UpdateOrderStatus(ctx echo.Context, id openapi_types.UUID) error
	// (GET /api/v1/products/{productId}/journey)
	GetProductJourney(ctx echo.Context, productID openapi_types.UUID) error
	// (POST /api/v1/products/{productId}/traceability)
	AppendTraceabilityRecord(ctx echo.Context, productID openapi_types.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// UpdateOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrderStatus(ctx echo.Context) error {
	id, err := bindUUIDPathParam(ctx, "id")
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.UpdateOrderStatus(ctx, id)
}

// GetProductJourney converts echo context to params.
func (w *ServerInterfaceWrapper) GetProductJourney(ctx echo.Context) error {
	productID, err := bindUUIDPathParam(ctx, "productId")
	if err != nil {
		return err
	}

	return w.Handler.GetProductJourney(ctx, productID)
}

// AppendTraceabilityRecord converts echo context to params.
func (w *ServerInterfaceWrapper) AppendTraceabilityRecord(ctx echo.Context) error {
	productID, err := bindUUIDPathParam(ctx, "productId")
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.AppendTraceabilityRecord(ctx, productID)
}

func bindUUIDPathParam(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var value openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &value,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return value, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}

	return value, nil
}

// EchoRouter is the subset of echo routing the handlers are registered on.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter. authenticate runs
// before validate on routes with a bearerAuth requirement.
func RegisterHandlers(router EchoRouter, si ServerInterface, authenticate, validate echo.MiddlewareFunc) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.PATCH("/api/v1/orders/:id", wrapper.UpdateOrderStatus, authenticate, validate)
	router.GET("/api/v1/products/:productId/journey", wrapper.GetProductJourney, validate)
	router.POST("/api/v1/products/:productId/traceability", wrapper.AppendTraceabilityRecord, authenticate, validate)
}
