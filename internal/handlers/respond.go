package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/roomly-app/backend/internal/apperrors"
)

// statusOf maps the error taxonomy onto the transport status codes.
// Integrity violations and backend failures both surface as 500; the
// distinction lives in the logs, not in the response.
func statusOf(err error) int {
	switch apperrors.KindOf(err) {
	case apperrors.KindInvalid:
		return http.StatusBadRequest
	case apperrors.KindForbidden:
		return http.StatusForbidden
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail renders err as the standard {message} body with its mapped status.
func fail(c echo.Context, err error) error {
	return c.JSON(statusOf(err), echo.Map{"message": apperrors.MessageOf(err)})
}

// sanitizeID applies the id normalization every endpoint uses: trim and
// lowercase.
func sanitizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
