package usecases

import (
	"context"
	"fmt"

	"github.com/cotracker/cotracker/internal/application/checkout/dto"
	"github.com/cotracker/cotracker/internal/domain/checkout"
	"github.com/cotracker/cotracker/internal/shared/logger"
)

type GetAirstripDetailQuery struct {
	Ident string
}

type GetAirstripDetailUseCase struct {
	airstripRepo     checkout.AirstripRepository
	aircraftTypeRepo checkout.AircraftTypeRepository
	checkoutRepo     checkout.CheckoutRepository
	logger           logger.Interface
}

func NewGetAirstripDetailUseCase(
	airstripRepo checkout.AirstripRepository,
	aircraftTypeRepo checkout.AircraftTypeRepository,
	checkoutRepo checkout.CheckoutRepository,
	logger logger.Interface,
) *GetAirstripDetailUseCase {
	return &GetAirstripDetailUseCase{
		airstripRepo:     airstripRepo,
		aircraftTypeRepo: aircraftTypeRepo,
		checkoutRepo:     checkoutRepo,
		logger:           logger,
	}
}

func (uc *GetAirstripDetailUseCase) Execute(ctx context.Context, query GetAirstripDetailQuery) (*dto.AirstripDetailDTO, error) {
	ident := checkout.NormalizeIdent(query.Ident)

	airstrip, err := uc.airstripRepo.GetByIdent(ctx, ident)
	if err != nil {
		return nil, lookupError(err, "airstrip", ident)
	}

	types, err := uc.aircraftTypeRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list aircraft types", "error", err)
		return nil, fmt.Errorf("failed to list aircraft types: %w", err)
	}

	checkouts, err := uc.checkoutRepo.Find(ctx, checkout.CheckoutFilter{AirstripID: airstrip.ID()})
	if err != nil {
		uc.logger.Errorw("failed to load airstrip checkouts", "ident", ident, "error", err)
		return nil, fmt.Errorf("failed to load checkouts: %w", err)
	}

	names := checkout.AircraftTypeNames(types)
	rows, err := checkout.GroupByPilot(names, checkouts)
	if err != nil {
		uc.logger.Errorw("inconsistent checkout data", "ident", ident, "error", err)
		return nil, fmt.Errorf("failed to group checkouts for %s: %w", ident, err)
	}

	return &dto.AirstripDetailDTO{
		Airstrip:      dto.ToAirstripDTO(airstrip),
		AircraftTypes: names,
		ByPilot:       rows,
	}, nil
}
