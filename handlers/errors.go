package handlers

import (
	"net/http"

	"tunecheck/models"
)

// errStatus maps an error from the taxonomy to its HTTP status code.
func errStatus(err error) int {
	switch err.(type) {
	case models.ErrorNotFound:
		return http.StatusNotFound
	case models.ErrorConflict:
		return http.StatusConflict
	case models.ErrorForbidden:
		return http.StatusForbidden
	case models.ErrorUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
