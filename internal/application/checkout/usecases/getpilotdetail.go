package usecases

import (
	"context"
	"fmt"

	"github.com/cotracker/cotracker/internal/application/checkout/dto"
	"github.com/cotracker/cotracker/internal/domain/checkout"
	"github.com/cotracker/cotracker/internal/shared/logger"
)

type GetPilotDetailQuery struct {
	Username string
}

// GetPilotDetailUseCase builds the pilot page: every aircraft type as column
// headings and one row per airstrip the pilot is checked out at.
type GetPilotDetailUseCase struct {
	pilotRepo        checkout.PilotRepository
	aircraftTypeRepo checkout.AircraftTypeRepository
	checkoutRepo     checkout.CheckoutRepository
	logger           logger.Interface
}

func NewGetPilotDetailUseCase(
	pilotRepo checkout.PilotRepository,
	aircraftTypeRepo checkout.AircraftTypeRepository,
	checkoutRepo checkout.CheckoutRepository,
	logger logger.Interface,
) *GetPilotDetailUseCase {
	return &GetPilotDetailUseCase{
		pilotRepo:        pilotRepo,
		aircraftTypeRepo: aircraftTypeRepo,
		checkoutRepo:     checkoutRepo,
		logger:           logger,
	}
}

func (uc *GetPilotDetailUseCase) Execute(ctx context.Context, query GetPilotDetailQuery) (*dto.PilotDetailDTO, error) {
	pilot, err := uc.pilotRepo.GetByUsername(ctx, query.Username)
	if err != nil {
		return nil, lookupError(err, "pilot", query.Username)
	}

	types, err := uc.aircraftTypeRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list aircraft types", "error", err)
		return nil, fmt.Errorf("failed to list aircraft types: %w", err)
	}

	checkouts, err := uc.checkoutRepo.Find(ctx, checkout.CheckoutFilter{PilotID: pilot.ID()})
	if err != nil {
		uc.logger.Errorw("failed to load pilot checkouts", "username", query.Username, "error", err)
		return nil, fmt.Errorf("failed to load checkouts: %w", err)
	}

	names := checkout.AircraftTypeNames(types)
	rows, err := checkout.GroupByAirstrip(names, checkouts)
	if err != nil {
		uc.logger.Errorw("inconsistent checkout data", "username", query.Username, "error", err)
		return nil, fmt.Errorf("failed to group checkouts for %s: %w", query.Username, err)
	}

	return &dto.PilotDetailDTO{
		Pilot:         dto.ToPilotDTO(pilot),
		AircraftTypes: names,
		ByAirstrip:    rows,
	}, nil
}
