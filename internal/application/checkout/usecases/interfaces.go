package usecases

import (
	"context"

	"github.com/cotracker/cotracker/internal/application/checkout/dto"
)

type ListPilotsExecutor interface {
	Execute(ctx context.Context) ([]dto.PilotDTO, error)
}

type GetPilotDetailExecutor interface {
	Execute(ctx context.Context, query GetPilotDetailQuery) (*dto.PilotDetailDTO, error)
}

type ListAirstripsExecutor interface {
	Execute(ctx context.Context) ([]dto.AirstripDTO, error)
}

type GetAirstripDetailExecutor interface {
	Execute(ctx context.Context, query GetAirstripDetailQuery) (*dto.AirstripDetailDTO, error)
}

type ListBasesExecutor interface {
	Execute(ctx context.Context) ([]dto.AirstripDTO, error)
}

type GetBaseDetailExecutor interface {
	Execute(ctx context.Context, query GetBaseDetailQuery) (*dto.BaseDetailDTO, error)
}

type FilterCheckoutsExecutor interface {
	Execute(ctx context.Context, query FilterCheckoutsQuery) (*dto.CheckoutFilterDTO, error)
}
