package usecases

import (
	"context"
	"fmt"

	"github.com/cotracker/cotracker/internal/application/checkout/dto"
	"github.com/cotracker/cotracker/internal/domain/checkout"
	"github.com/cotracker/cotracker/internal/shared/logger"
)

type ListPilotsUseCase struct {
	pilotRepo checkout.PilotRepository
	logger    logger.Interface
}

func NewListPilotsUseCase(pilotRepo checkout.PilotRepository, logger logger.Interface) *ListPilotsUseCase {
	return &ListPilotsUseCase{pilotRepo: pilotRepo, logger: logger}
}

func (uc *ListPilotsUseCase) Execute(ctx context.Context) ([]dto.PilotDTO, error) {
	pilots, err := uc.pilotRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list pilots", "error", err)
		return nil, fmt.Errorf("failed to list pilots: %w", err)
	}
	return dto.ToPilotDTOList(pilots), nil
}
