package usecases

import (
	"errors"
	"fmt"

	"github.com/cotracker/cotracker/internal/domain/checkout"
	apperrors "github.com/cotracker/cotracker/internal/shared/errors"
)

var (
	notFoundErrors = []error{
		checkout.ErrPilotNotFound,
		checkout.ErrAirstripNotFound,
		checkout.ErrBaseNotFound,
		checkout.ErrAircraftTypeNotFound,
		checkout.ErrCheckoutNotFound,
	}
	conflictErrors = []error{
		checkout.ErrPilotExists,
		checkout.ErrAirstripExists,
		checkout.ErrAircraftTypeExists,
		checkout.ErrCheckoutExists,
	}
	validationErrors = []error{
		checkout.ErrInvalidUsername,
		checkout.ErrInvalidIdent,
		checkout.ErrEmptyName,
		checkout.ErrNotABase,
	}
)

func matchesAny(err error, targets []error) error {
	for _, target := range targets {
		if errors.Is(err, target) {
			return target
		}
	}
	return nil
}

// toAppError maps domain sentinel errors onto AppErrors. Unrecognized errors
// are wrapped with op and left for the HTTP layer to report as internal.
func toAppError(err error, op string) error {
	if apperrors.IsAppError(err) {
		return err
	}
	if target := matchesAny(err, notFoundErrors); target != nil {
		return apperrors.NewNotFoundError(target.Error())
	}
	if target := matchesAny(err, conflictErrors); target != nil {
		return apperrors.NewConflictError(target.Error())
	}
	if target := matchesAny(err, validationErrors); target != nil {
		return apperrors.NewValidationError(err.Error())
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
