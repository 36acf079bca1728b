package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// StatusOf maps a kind to the HTTP status reported for it. Expression errors are
// well-formed requests the engine rejects, hence 422.
func StatusOf(kind Kind) int {
	switch kind {
	case Validation:
		return http.StatusBadRequest
	case Unknown:
		return http.StatusInternalServerError
	default:
		return http.StatusUnprocessableEntity
	}
}

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ae *Error
		if errors.As(err, &ae) && ae.Kind != Unknown {
			_ = c.JSON(StatusOf(ae.Kind), map[string]string{"error": ae.Error(), "kind": ae.Kind.String()})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, map[string]string{"error": msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
