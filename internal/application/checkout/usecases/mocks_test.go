package usecases

import (
	"context"

	"github.com/cotracker/cotracker/internal/domain/checkout"
)

type mockPilotRepository struct {
	CreateFunc        func(ctx context.Context, pilot *checkout.Pilot) error
	GetByIDFunc       func(ctx context.Context, id uint) (*checkout.Pilot, error)
	GetByUsernameFunc func(ctx context.Context, username string) (*checkout.Pilot, error)
	ListFunc          func(ctx context.Context) ([]*checkout.Pilot, error)
	DeleteFunc        func(ctx context.Context, id uint) error
}

func (m *mockPilotRepository) Create(ctx context.Context, pilot *checkout.Pilot) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, pilot)
	}
	return nil
}

func (m *mockPilotRepository) GetByID(ctx context.Context, id uint) (*checkout.Pilot, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, checkout.ErrPilotNotFound
}

func (m *mockPilotRepository) GetByUsername(ctx context.Context, username string) (*checkout.Pilot, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, checkout.ErrPilotNotFound
}

func (m *mockPilotRepository) List(ctx context.Context) ([]*checkout.Pilot, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockPilotRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockAirstripRepository struct {
	GetByIdentFunc     func(ctx context.Context, ident string) (*checkout.Airstrip, error)
	ListFunc           func(ctx context.Context) ([]*checkout.Airstrip, error)
	ListBasesFunc      func(ctx context.Context) ([]*checkout.Airstrip, error)
	ListAttachedFunc   func(ctx context.Context, baseID uint) ([]*checkout.Airstrip, error)
	ListUnattachedFunc func(ctx context.Context, baseID uint) ([]*checkout.Airstrip, error)
}

func (m *mockAirstripRepository) Create(ctx context.Context, airstrip *checkout.Airstrip) error {
	return nil
}

func (m *mockAirstripRepository) Update(ctx context.Context, airstrip *checkout.Airstrip) error {
	return nil
}

func (m *mockAirstripRepository) GetByID(ctx context.Context, id uint) (*checkout.Airstrip, error) {
	return nil, checkout.ErrAirstripNotFound
}

func (m *mockAirstripRepository) GetByIdent(ctx context.Context, ident string) (*checkout.Airstrip, error) {
	if m.GetByIdentFunc != nil {
		return m.GetByIdentFunc(ctx, ident)
	}
	return nil, checkout.ErrAirstripNotFound
}

func (m *mockAirstripRepository) List(ctx context.Context) ([]*checkout.Airstrip, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockAirstripRepository) ListBases(ctx context.Context) ([]*checkout.Airstrip, error) {
	if m.ListBasesFunc != nil {
		return m.ListBasesFunc(ctx)
	}
	return nil, nil
}

func (m *mockAirstripRepository) ListAttached(ctx context.Context, baseID uint) ([]*checkout.Airstrip, error) {
	if m.ListAttachedFunc != nil {
		return m.ListAttachedFunc(ctx, baseID)
	}
	return nil, nil
}

func (m *mockAirstripRepository) ListUnattached(ctx context.Context, baseID uint) ([]*checkout.Airstrip, error) {
	if m.ListUnattachedFunc != nil {
		return m.ListUnattachedFunc(ctx, baseID)
	}
	return nil, nil
}

func (m *mockAirstripRepository) AttachToBase(ctx context.Context, airstripID, baseID uint) error {
	return nil
}

func (m *mockAirstripRepository) DetachFromBase(ctx context.Context, airstripID, baseID uint) error {
	return nil
}

func (m *mockAirstripRepository) Delete(ctx context.Context, id uint) error {
	return nil
}

type mockAircraftTypeRepository struct {
	ListFunc func(ctx context.Context) ([]*checkout.AircraftType, error)
}

func (m *mockAircraftTypeRepository) Create(ctx context.Context, aircraftType *checkout.AircraftType) error {
	return nil
}

func (m *mockAircraftTypeRepository) GetByID(ctx context.Context, id uint) (*checkout.AircraftType, error) {
	return nil, checkout.ErrAircraftTypeNotFound
}

func (m *mockAircraftTypeRepository) GetByName(ctx context.Context, name string) (*checkout.AircraftType, error) {
	return nil, checkout.ErrAircraftTypeNotFound
}

func (m *mockAircraftTypeRepository) List(ctx context.Context) ([]*checkout.AircraftType, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockAircraftTypeRepository) Delete(ctx context.Context, id uint) error {
	return nil
}

type mockCheckoutRepository struct {
	FindFunc        func(ctx context.Context, filter checkout.CheckoutFilter) ([]*checkout.Checkout, error)
	FindMissingFunc func(ctx context.Context, filter checkout.CheckoutFilter) ([]*checkout.Checkout, error)
}

func (m *mockCheckoutRepository) Create(ctx context.Context, c *checkout.Checkout) error {
	return nil
}

func (m *mockCheckoutRepository) GetByID(ctx context.Context, id uint) (*checkout.Checkout, error) {
	return nil, checkout.ErrCheckoutNotFound
}

func (m *mockCheckoutRepository) Delete(ctx context.Context, id uint) error {
	return nil
}

func (m *mockCheckoutRepository) Find(ctx context.Context, filter checkout.CheckoutFilter) ([]*checkout.Checkout, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockCheckoutRepository) FindMissing(ctx context.Context, filter checkout.CheckoutFilter) ([]*checkout.Checkout, error) {
	if m.FindMissingFunc != nil {
		return m.FindMissingFunc(ctx, filter)
	}
	return nil, nil
}
