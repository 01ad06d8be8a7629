package usecases

import (
	"context"
	"fmt"

	"github.com/cotracker/cotracker/internal/application/checkout/dto"
	"github.com/cotracker/cotracker/internal/domain/checkout"
	"github.com/cotracker/cotracker/internal/shared/logger"
)

// GetBaseDetailQuery selects a base and which side of it to show: the
// airstrips attached to it, or the non-base airstrips that are not.
type GetBaseDetailQuery struct {
	Ident    string
	Attached bool
}

type GetBaseDetailUseCase struct {
	airstripRepo checkout.AirstripRepository
	checkoutRepo checkout.CheckoutRepository
	logger       logger.Interface
}

func NewGetBaseDetailUseCase(
	airstripRepo checkout.AirstripRepository,
	checkoutRepo checkout.CheckoutRepository,
	logger logger.Interface,
) *GetBaseDetailUseCase {
	return &GetBaseDetailUseCase{
		airstripRepo: airstripRepo,
		checkoutRepo: checkoutRepo,
		logger:       logger,
	}
}

func (uc *GetBaseDetailUseCase) Execute(ctx context.Context, query GetBaseDetailQuery) (*dto.BaseDetailDTO, error) {
	ident := checkout.NormalizeIdent(query.Ident)

	base, err := uc.airstripRepo.GetByIdent(ctx, ident)
	if err != nil {
		return nil, lookupError(err, "base", ident)
	}
	if !base.IsBase() {
		return nil, lookupError(checkout.ErrBaseNotFound, "base", ident)
	}

	var airstrips []*checkout.Airstrip
	if query.Attached {
		airstrips, err = uc.airstripRepo.ListAttached(ctx, base.ID())
	} else {
		airstrips, err = uc.airstripRepo.ListUnattached(ctx, base.ID())
	}
	if err != nil {
		uc.logger.Errorw("failed to list base airstrips", "base", ident, "attached", query.Attached, "error", err)
		return nil, fmt.Errorf("failed to list airstrips for base %s: %w", ident, err)
	}

	ids := make([]uint, 0, len(airstrips))
	for _, a := range airstrips {
		ids = append(ids, a.ID())
	}

	checkouts, err := uc.checkoutRepo.Find(ctx, checkout.CheckoutFilter{AirstripIDs: ids})
	if err != nil {
		uc.logger.Errorw("failed to load base checkouts", "base", ident, "error", err)
		return nil, fmt.Errorf("failed to load checkouts: %w", err)
	}

	return &dto.BaseDetailDTO{
		Base:      dto.ToAirstripDTO(base),
		Attached:  query.Attached,
		Airstrips: dto.ToAirstripDTOList(airstrips),
		Checkouts: dto.ToCheckoutDTOList(checkouts),
	}, nil
}
