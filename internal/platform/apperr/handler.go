package apperr

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Response is the JSON error body returned to API clients.
type Response struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
}

// HTTPErrorHandler maps domain errors to transport status codes:
// NotFound → 404, Conflict → 409, BadRequest → 400. echo.HTTPError values
// pass through with their own status; everything else is a 500 with a
// generic body so internal details never leak.
func HTTPErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		resp := Response{ErrorCode: "INTERNAL_ERROR", Message: "internal server error"}

		var ae *Error
		var he *echo.HTTPError
		switch {
		case errors.As(err, &ae):
			switch ae.Kind {
			case KindNotFound:
				status = http.StatusNotFound
			case KindConflict:
				status = http.StatusConflict
			case KindBadRequest:
				status = http.StatusBadRequest
			}
			resp = Response{ErrorCode: ae.Code, Message: ae.Message}
		case errors.As(err, &he):
			status = he.Code
			resp = Response{ErrorCode: CodeBadRequest, Message: http.StatusText(he.Code)}
			if msg, ok := he.Message.(string); ok {
				resp.Message = msg
			}
		default:
			logger.Error().Err(err).Str("path", c.Request().URL.Path).Msg("unhandled error")
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, resp)
	}
}
