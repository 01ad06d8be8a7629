package usecases

import (
	"context"

	checkoutdto "github.com/cotracker/cotracker/internal/application/checkout/dto"
	"github.com/cotracker/cotracker/internal/domain/checkout"
	"github.com/cotracker/cotracker/internal/shared/db"
	"github.com/cotracker/cotracker/internal/shared/logger"
)

type CreateCheckoutCommand struct {
	PilotID        uint
	AirstripID     uint
	AircraftTypeID uint
	CreatedBy      string
}

type ManageCheckoutsUseCase struct {
	pilotRepo        checkout.PilotRepository
	airstripRepo     checkout.AirstripRepository
	aircraftTypeRepo checkout.AircraftTypeRepository
	checkoutRepo     checkout.CheckoutRepository
	txMgr            *db.TransactionManager
	logger           logger.Interface
}

func NewManageCheckoutsUseCase(
	pilotRepo checkout.PilotRepository,
	airstripRepo checkout.AirstripRepository,
	aircraftTypeRepo checkout.AircraftTypeRepository,
	checkoutRepo checkout.CheckoutRepository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *ManageCheckoutsUseCase {
	return &ManageCheckoutsUseCase{
		pilotRepo:        pilotRepo,
		airstripRepo:     airstripRepo,
		aircraftTypeRepo: aircraftTypeRepo,
		checkoutRepo:     checkoutRepo,
		txMgr:            txMgr,
		logger:           logger,
	}
}

func (uc *ManageCheckoutsUseCase) List(ctx context.Context) ([]checkoutdto.CheckoutDTO, error) {
	checkouts, err := uc.checkoutRepo.Find(ctx, checkout.CheckoutFilter{})
	if err != nil {
		return nil, toAppError(err, "list checkouts")
	}
	return checkoutdto.ToCheckoutDTOList(checkouts), nil
}

func (uc *ManageCheckoutsUseCase) Create(ctx context.Context, cmd CreateCheckoutCommand) (*checkoutdto.CheckoutDTO, error) {
	var created *checkout.Checkout

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		pilot, err := uc.pilotRepo.GetByID(txCtx, cmd.PilotID)
		if err != nil {
			return err
		}
		airstrip, err := uc.airstripRepo.GetByID(txCtx, cmd.AirstripID)
		if err != nil {
			return err
		}
		aircraftType, err := uc.aircraftTypeRepo.GetByID(txCtx, cmd.AircraftTypeID)
		if err != nil {
			return err
		}

		c, err := checkout.NewCheckout(pilot, airstrip, aircraftType)
		if err != nil {
			return err
		}
		if err := uc.checkoutRepo.Create(txCtx, c); err != nil {
			return err
		}
		created = c
		return nil
	})
	if err != nil {
		uc.logger.Warnw("failed to create checkout",
			"pilot_id", cmd.PilotID,
			"airstrip_id", cmd.AirstripID,
			"aircraft_type_id", cmd.AircraftTypeID,
			"error", err,
		)
		return nil, toAppError(err, "create checkout")
	}

	uc.logger.Infow("checkout created", "checkout", created.String(), "by", cmd.CreatedBy)
	result := checkoutdto.ToCheckoutDTO(created)
	return &result, nil
}

func (uc *ManageCheckoutsUseCase) Delete(ctx context.Context, id uint) error {
	if err := uc.checkoutRepo.Delete(ctx, id); err != nil {
		return toAppError(err, "delete checkout")
	}
	uc.logger.Infow("checkout deleted", "id", id)
	return nil
}
