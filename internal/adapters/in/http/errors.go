package http

import (
	"errors"
	"log/slog"
	"net/http"

	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "Internal server error"

// statusFor maps an error returned by a handler or middleware to its HTTP
// status and client message. Unknown errors become 500 with a fixed message.
func statusFor(err error) (int, string) {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		msg, ok := httpErr.Message.(string)
		if !ok {
			msg = http.StatusText(httpErr.Code)
		}
		return httpErr.Code, msg
	}

	var (
		unauthenticated *errs.UnauthenticatedError
		forbidden       *errs.ForbiddenError
		invalidState    *errs.InvalidStateError
	)

	switch {
	case errors.As(err, &unauthenticated):
		return http.StatusUnauthorized, "Unauthorized: " + unauthenticated.Reason
	case errors.Is(err, errs.ErrUnauthenticated):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.As(err, &forbidden):
		return http.StatusForbidden, forbidden.Reason
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, "Forbidden"
	case errors.As(err, &invalidState):
		return http.StatusBadRequest, invalidState.Reason
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrConcurrentModification):
		return http.StatusConflict, err.Error()
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrInvalidState):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, internalErrorMessage
	}
}

// ErrorHandler renders every error as {"error": message}. Server errors are logged.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := statusFor(err)
		if code >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "Request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err,
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, Error{Error: msg})
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "Failed to write error response", "error", writeErr)
		}
	}
}
