package service

import (
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/kirat/internal/calculator"
	"github.com/mmynk/kirat/internal/models"
	"github.com/mmynk/kirat/internal/storage"
)

// toConnectError maps domain errors onto Connect codes. Integrity failures
// surface as internal errors and are logged since they point at bad data.
func toConnectError(op string, err error) *connect.Error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, calculator.ErrInvalidRange), errors.Is(err, models.ErrInvalidOwnership):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, calculator.ErrInconsistentInput):
		slog.Error("Inconsistent ledger data", "op", op, "error", err)
		return connect.NewError(connect.CodeInternal, err)
	default:
		slog.Error(op+" failed", "error", err)
		return connect.NewError(connect.CodeInternal, err)
	}
}
