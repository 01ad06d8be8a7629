package admin

import (
	"context"

	"github.com/cotracker/cotracker/internal/application/admin/dto"
	"github.com/cotracker/cotracker/internal/application/admin/usecases"
	checkoutdto "github.com/cotracker/cotracker/internal/application/checkout/dto"
)

type LoginExecutor interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*dto.LoginResponse, error)
}

type IndexExecutor interface {
	Execute(ctx context.Context, query usecases.AdminIndexQuery) (*dto.AdminIndexDTO, error)
}

type PilotManager interface {
	List(ctx context.Context) ([]checkoutdto.PilotDTO, error)
	Create(ctx context.Context, cmd usecases.CreatePilotCommand) (*checkoutdto.PilotDTO, error)
	Delete(ctx context.Context, id uint) error
}

type AirstripManager interface {
	List(ctx context.Context) ([]checkoutdto.AirstripDTO, error)
	Create(ctx context.Context, cmd usecases.CreateAirstripCommand) (*checkoutdto.AirstripDTO, error)
	Delete(ctx context.Context, id uint) error
	AttachToBase(ctx context.Context, cmd usecases.BaseAttachmentCommand) error
	DetachFromBase(ctx context.Context, cmd usecases.BaseAttachmentCommand) error
}

type AircraftTypeManager interface {
	List(ctx context.Context) ([]checkoutdto.AircraftTypeDTO, error)
	Create(ctx context.Context, name string) (*checkoutdto.AircraftTypeDTO, error)
	Delete(ctx context.Context, id uint) error
}

type CheckoutManager interface {
	List(ctx context.Context) ([]checkoutdto.CheckoutDTO, error)
	Create(ctx context.Context, cmd usecases.CreateCheckoutCommand) (*checkoutdto.CheckoutDTO, error)
	Delete(ctx context.Context, id uint) error
}
