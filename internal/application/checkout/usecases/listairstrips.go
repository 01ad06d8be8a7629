package usecases

import (
	"context"
	"fmt"

	"github.com/cotracker/cotracker/internal/application/checkout/dto"
	"github.com/cotracker/cotracker/internal/domain/checkout"
	"github.com/cotracker/cotracker/internal/shared/logger"
)

type ListAirstripsUseCase struct {
	airstripRepo checkout.AirstripRepository
	logger       logger.Interface
}

func NewListAirstripsUseCase(airstripRepo checkout.AirstripRepository, logger logger.Interface) *ListAirstripsUseCase {
	return &ListAirstripsUseCase{airstripRepo: airstripRepo, logger: logger}
}

func (uc *ListAirstripsUseCase) Execute(ctx context.Context) ([]dto.AirstripDTO, error) {
	airstrips, err := uc.airstripRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list airstrips", "error", err)
		return nil, fmt.Errorf("failed to list airstrips: %w", err)
	}
	return dto.ToAirstripDTOList(airstrips), nil
}

type ListBasesUseCase struct {
	airstripRepo checkout.AirstripRepository
	logger       logger.Interface
}

func NewListBasesUseCase(airstripRepo checkout.AirstripRepository, logger logger.Interface) *ListBasesUseCase {
	return &ListBasesUseCase{airstripRepo: airstripRepo, logger: logger}
}

func (uc *ListBasesUseCase) Execute(ctx context.Context) ([]dto.AirstripDTO, error) {
	bases, err := uc.airstripRepo.ListBases(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list bases", "error", err)
		return nil, fmt.Errorf("failed to list bases: %w", err)
	}
	return dto.ToAirstripDTOList(bases), nil
}
