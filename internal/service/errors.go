package service

import (
	"errors"
	"log/slog"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/karaokebattle/internal/models"
)

var errInternal = errors.New("internal error")

// connectError maps a store or calculator error to a Connect error.
// Storage failures are logged and hidden behind a generic message.
func connectError(op string, err error) *connect.Error {
	switch {
	case models.IsValidation(err):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case models.IsNotFound(err):
		return connect.NewError(connect.CodeNotFound, err)
	case models.IsState(err):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	}
	slog.Error(op+" failed", "error", err)
	return connect.NewError(connect.CodeInternal, errInternal)
}

// httpStatus maps a store or calculator error to an HTTP status code.
func httpStatus(err error) int {
	switch {
	case models.IsValidation(err):
		return http.StatusBadRequest
	case models.IsNotFound(err):
		return http.StatusNotFound
	case models.IsState(err):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
