package server

import (
	"errors"
	"net/http"

	"github.com/aqqnoor/aunichance/internal/advisor"
	"github.com/aqqnoor/aunichance/internal/extraction"
	"github.com/aqqnoor/aunichance/internal/fetch"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	if errors.Is(err, advisor.ErrProgramNotFound) {
		return http.StatusNotFound
	}

	var profileErr *advisor.InvalidProfileError
	if errors.As(err, &profileErr) {
		return http.StatusBadRequest
	}

	var fetchErr *fetch.FetchError
	if errors.As(err, &fetchErr) {
		return http.StatusBadGateway
	}
	var extractErr *fetch.ExtractError
	if errors.As(err, &extractErr) {
		return http.StatusUnprocessableEntity
	}
	var emptyErr *extraction.EmptyInputError
	if errors.As(err, &emptyErr) {
		return http.StatusUnprocessableEntity
	}
	var schemaErr *extraction.SchemaError
	if errors.As(err, &schemaErr) {
		return http.StatusBadGateway
	}
	var transportErr *extraction.TransportError
	if errors.As(err, &transportErr) {
		return http.StatusServiceUnavailable
	}

	return http.StatusInternalServerError
}
