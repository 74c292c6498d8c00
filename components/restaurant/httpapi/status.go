package httpapi

import (
	"errors"
	"net/http"

	"github.com/goliatone/go-fastfood-admin/components/restaurant"
	"github.com/goliatone/go-fastfood-admin/pkg/reports"
)

// StatusFor maps domain errors onto HTTP status codes.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrBadQuery):
		return http.StatusBadRequest
	case errors.Is(err, restaurant.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, restaurant.ErrNotFound),
		errors.Is(err, restaurant.ErrUnknownScreen),
		errors.Is(err, reports.ErrUnknownReport):
		return http.StatusNotFound
	case errors.Is(err, restaurant.ErrOrderCompleted):
		return http.StatusConflict
	case errors.Is(err, reports.ErrUnsupportedCompression):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
