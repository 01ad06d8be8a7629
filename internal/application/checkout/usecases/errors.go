package usecases

import (
	"errors"
	"fmt"

	"github.com/cotracker/cotracker/internal/domain/checkout"
	apperrors "github.com/cotracker/cotracker/internal/shared/errors"
)

// lookupError turns a repository lookup failure into an AppError. Missing
// entities become not_found; everything else stays internal.
func lookupError(err error, entity, key string) error {
	switch {
	case errors.Is(err, checkout.ErrPilotNotFound),
		errors.Is(err, checkout.ErrAirstripNotFound),
		errors.Is(err, checkout.ErrBaseNotFound),
		errors.Is(err, checkout.ErrAircraftTypeNotFound):
		return apperrors.NewNotFoundError(fmt.Sprintf("%s not found", entity), key)
	default:
		return fmt.Errorf("failed to get %s %s: %w", entity, key, err)
	}
}

