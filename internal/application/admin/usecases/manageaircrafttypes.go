package usecases

import (
	"context"

	checkoutdto "github.com/cotracker/cotracker/internal/application/checkout/dto"
	"github.com/cotracker/cotracker/internal/domain/checkout"
	"github.com/cotracker/cotracker/internal/shared/logger"
)

type ManageAircraftTypesUseCase struct {
	aircraftTypeRepo checkout.AircraftTypeRepository
	logger           logger.Interface
}

func NewManageAircraftTypesUseCase(aircraftTypeRepo checkout.AircraftTypeRepository, logger logger.Interface) *ManageAircraftTypesUseCase {
	return &ManageAircraftTypesUseCase{aircraftTypeRepo: aircraftTypeRepo, logger: logger}
}

func (uc *ManageAircraftTypesUseCase) List(ctx context.Context) ([]checkoutdto.AircraftTypeDTO, error) {
	types, err := uc.aircraftTypeRepo.List(ctx)
	if err != nil {
		return nil, toAppError(err, "list aircraft types")
	}
	return checkoutdto.ToAircraftTypeDTOList(types), nil
}

func (uc *ManageAircraftTypesUseCase) Create(ctx context.Context, name string) (*checkoutdto.AircraftTypeDTO, error) {
	aircraftType, err := checkout.NewAircraftType(name)
	if err != nil {
		return nil, toAppError(err, "create aircraft type")
	}

	if err := uc.aircraftTypeRepo.Create(ctx, aircraftType); err != nil {
		uc.logger.Warnw("failed to create aircraft type", "name", name, "error", err)
		return nil, toAppError(err, "create aircraft type")
	}

	uc.logger.Infow("aircraft type created", "id", aircraftType.ID(), "name", aircraftType.Name())
	result := checkoutdto.ToAircraftTypeDTO(aircraftType)
	return &result, nil
}

func (uc *ManageAircraftTypesUseCase) Delete(ctx context.Context, id uint) error {
	if err := uc.aircraftTypeRepo.Delete(ctx, id); err != nil {
		return toAppError(err, "delete aircraft type")
	}
	uc.logger.Infow("aircraft type deleted", "id", id)
	return nil
}
