package usecases

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/cotracker/cotracker/internal/application/checkout/dto"
	"github.com/cotracker/cotracker/internal/application/checkout/form"
	"github.com/cotracker/cotracker/internal/domain/checkout"
	apperrors "github.com/cotracker/cotracker/internal/shared/errors"
	"github.com/cotracker/cotracker/internal/shared/logger"
)

type FilterCheckoutsQuery struct {
	Params url.Values
}

// FilterCheckoutsUseCase backs the checkout filter view. Without any filter
// parameter it returns the blank form; otherwise it cleans the form and runs
// either the existing (sudah) or missing (belum) checkout query.
type FilterCheckoutsUseCase struct {
	pilotRepo        checkout.PilotRepository
	airstripRepo     checkout.AirstripRepository
	aircraftTypeRepo checkout.AircraftTypeRepository
	checkoutRepo     checkout.CheckoutRepository
	logger           logger.Interface
}

func NewFilterCheckoutsUseCase(
	pilotRepo checkout.PilotRepository,
	airstripRepo checkout.AirstripRepository,
	aircraftTypeRepo checkout.AircraftTypeRepository,
	checkoutRepo checkout.CheckoutRepository,
	logger logger.Interface,
) *FilterCheckoutsUseCase {
	return &FilterCheckoutsUseCase{
		pilotRepo:        pilotRepo,
		airstripRepo:     airstripRepo,
		aircraftTypeRepo: aircraftTypeRepo,
		checkoutRepo:     checkoutRepo,
		logger:           logger,
	}
}

func (uc *FilterCheckoutsUseCase) Execute(ctx context.Context, query FilterCheckoutsQuery) (*dto.CheckoutFilterDTO, error) {
	choices, err := uc.loadChoices(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load filter choices", "error", err)
		return nil, err
	}

	f := form.New(choices)
	f.Bind(query.Params)
	if !f.IsBound {
		return &dto.CheckoutFilterDTO{Form: f}, nil
	}

	criteria, err := f.Clean()
	if err != nil {
		var verr form.ValidationError
		if errors.As(err, &verr) {
			return nil, apperrors.NewValidationError("invalid filter", verr.Details()...)
		}
		return nil, err
	}

	var results []*checkout.Checkout
	switch criteria.Status {
	case checkout.StatusNotCheckedOut:
		results, err = uc.checkoutRepo.FindMissing(ctx, criteria.Filter())
	default:
		results, err = uc.checkoutRepo.Find(ctx, criteria.Filter())
	}
	if err != nil {
		uc.logger.Errorw("failed to filter checkouts", "status", criteria.Status, "error", err)
		return nil, fmt.Errorf("failed to filter checkouts: %w", err)
	}

	uc.logger.Debugw("filtered checkouts", "status", criteria.Status, "count", len(results))

	return &dto.CheckoutFilterDTO{
		Form:    f,
		Status:  criteria.Status,
		Results: dto.ToCheckoutDTOList(results),
	}, nil
}

func (uc *FilterCheckoutsUseCase) loadChoices(ctx context.Context) (form.Choices, error) {
	pilots, err := uc.pilotRepo.List(ctx)
	if err != nil {
		return form.Choices{}, fmt.Errorf("failed to list pilots: %w", err)
	}
	airstrips, err := uc.airstripRepo.List(ctx)
	if err != nil {
		return form.Choices{}, fmt.Errorf("failed to list airstrips: %w", err)
	}
	bases, err := uc.airstripRepo.ListBases(ctx)
	if err != nil {
		return form.Choices{}, fmt.Errorf("failed to list bases: %w", err)
	}
	types, err := uc.aircraftTypeRepo.List(ctx)
	if err != nil {
		return form.Choices{}, fmt.Errorf("failed to list aircraft types: %w", err)
	}

	return form.Choices{
		Pilots:        pilots,
		Airstrips:     airstrips,
		Bases:         bases,
		AircraftTypes: types,
	}, nil
}
