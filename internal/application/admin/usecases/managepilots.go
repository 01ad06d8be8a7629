package usecases

import (
	"context"

	checkoutdto "github.com/cotracker/cotracker/internal/application/checkout/dto"
	"github.com/cotracker/cotracker/internal/domain/checkout"
	"github.com/cotracker/cotracker/internal/shared/logger"
)

type CreatePilotCommand struct {
	Username  string
	FirstName string
	LastName  string
}

type ManagePilotsUseCase struct {
	pilotRepo checkout.PilotRepository
	logger    logger.Interface
}

func NewManagePilotsUseCase(pilotRepo checkout.PilotRepository, logger logger.Interface) *ManagePilotsUseCase {
	return &ManagePilotsUseCase{pilotRepo: pilotRepo, logger: logger}
}

func (uc *ManagePilotsUseCase) List(ctx context.Context) ([]checkoutdto.PilotDTO, error) {
	pilots, err := uc.pilotRepo.List(ctx)
	if err != nil {
		return nil, toAppError(err, "list pilots")
	}
	return checkoutdto.ToPilotDTOList(pilots), nil
}

func (uc *ManagePilotsUseCase) Create(ctx context.Context, cmd CreatePilotCommand) (*checkoutdto.PilotDTO, error) {
	pilot, err := checkout.NewPilot(cmd.Username, cmd.FirstName, cmd.LastName)
	if err != nil {
		return nil, toAppError(err, "create pilot")
	}

	if err := uc.pilotRepo.Create(ctx, pilot); err != nil {
		uc.logger.Warnw("failed to create pilot", "username", cmd.Username, "error", err)
		return nil, toAppError(err, "create pilot")
	}

	uc.logger.Infow("pilot created", "id", pilot.ID(), "username", pilot.Username())
	result := checkoutdto.ToPilotDTO(pilot)
	return &result, nil
}

func (uc *ManagePilotsUseCase) Delete(ctx context.Context, id uint) error {
	if err := uc.pilotRepo.Delete(ctx, id); err != nil {
		return toAppError(err, "delete pilot")
	}
	uc.logger.Infow("pilot deleted", "id", id)
	return nil
}
