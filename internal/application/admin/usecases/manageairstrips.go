package usecases

import (
	"context"

	checkoutdto "github.com/cotracker/cotracker/internal/application/checkout/dto"
	"github.com/cotracker/cotracker/internal/domain/checkout"
	"github.com/cotracker/cotracker/internal/shared/db"
	"github.com/cotracker/cotracker/internal/shared/logger"
)

type CreateAirstripCommand struct {
	Ident  string
	Name   string
	IsBase bool
}

type BaseAttachmentCommand struct {
	AirstripID uint
	BaseID     uint
}

type ManageAirstripsUseCase struct {
	airstripRepo checkout.AirstripRepository
	txMgr        *db.TransactionManager
	logger       logger.Interface
}

func NewManageAirstripsUseCase(
	airstripRepo checkout.AirstripRepository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *ManageAirstripsUseCase {
	return &ManageAirstripsUseCase{airstripRepo: airstripRepo, txMgr: txMgr, logger: logger}
}

func (uc *ManageAirstripsUseCase) List(ctx context.Context) ([]checkoutdto.AirstripDTO, error) {
	airstrips, err := uc.airstripRepo.List(ctx)
	if err != nil {
		return nil, toAppError(err, "list airstrips")
	}
	return checkoutdto.ToAirstripDTOList(airstrips), nil
}

func (uc *ManageAirstripsUseCase) Create(ctx context.Context, cmd CreateAirstripCommand) (*checkoutdto.AirstripDTO, error) {
	airstrip, err := checkout.NewAirstrip(cmd.Ident, cmd.Name, cmd.IsBase)
	if err != nil {
		return nil, toAppError(err, "create airstrip")
	}

	if err := uc.airstripRepo.Create(ctx, airstrip); err != nil {
		uc.logger.Warnw("failed to create airstrip", "ident", airstrip.Ident(), "error", err)
		return nil, toAppError(err, "create airstrip")
	}

	uc.logger.Infow("airstrip created", "id", airstrip.ID(), "ident", airstrip.Ident(), "is_base", airstrip.IsBase())
	result := checkoutdto.ToAirstripDTO(airstrip)
	return &result, nil
}

func (uc *ManageAirstripsUseCase) Delete(ctx context.Context, id uint) error {
	if err := uc.airstripRepo.Delete(ctx, id); err != nil {
		return toAppError(err, "delete airstrip")
	}
	uc.logger.Infow("airstrip deleted", "id", id)
	return nil
}

// AttachToBase links an airstrip to a base. The base must be flagged as one
// and an airstrip cannot be attached to itself.
func (uc *ManageAirstripsUseCase) AttachToBase(ctx context.Context, cmd BaseAttachmentCommand) error {
	if cmd.AirstripID == cmd.BaseID {
		return toAppError(checkout.ErrNotABase, "attach airstrip")
	}

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.airstripRepo.GetByID(txCtx, cmd.AirstripID); err != nil {
			return err
		}
		base, err := uc.airstripRepo.GetByID(txCtx, cmd.BaseID)
		if err != nil {
			return err
		}
		if !base.IsBase() {
			return checkout.ErrNotABase
		}
		return uc.airstripRepo.AttachToBase(txCtx, cmd.AirstripID, cmd.BaseID)
	})
	if err != nil {
		return toAppError(err, "attach airstrip")
	}

	uc.logger.Infow("airstrip attached to base", "airstrip_id", cmd.AirstripID, "base_id", cmd.BaseID)
	return nil
}

func (uc *ManageAirstripsUseCase) DetachFromBase(ctx context.Context, cmd BaseAttachmentCommand) error {
	if err := uc.airstripRepo.DetachFromBase(ctx, cmd.AirstripID, cmd.BaseID); err != nil {
		return toAppError(err, "detach airstrip")
	}
	uc.logger.Infow("airstrip detached from base", "airstrip_id", cmd.AirstripID, "base_id", cmd.BaseID)
	return nil
}
