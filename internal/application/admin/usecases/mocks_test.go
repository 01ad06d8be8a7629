package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/cotracker/cotracker/internal/domain/adminuser"
	"github.com/cotracker/cotracker/internal/domain/checkout"
	"github.com/cotracker/cotracker/internal/shared/db"
)

type mockAdminUserRepository struct {
	CreateFunc        func(ctx context.Context, user *adminuser.AdminUser) error
	GetByUsernameFunc func(ctx context.Context, username string) (*adminuser.AdminUser, error)
}

func (m *mockAdminUserRepository) Create(ctx context.Context, user *adminuser.AdminUser) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	user.SetID(1)
	return nil
}

func (m *mockAdminUserRepository) GetByUsername(ctx context.Context, username string) (*adminuser.AdminUser, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, adminuser.ErrAdminUserNotFound
}

func (m *mockAdminUserRepository) GetByID(ctx context.Context, id uint) (*adminuser.AdminUser, error) {
	return nil, adminuser.ErrAdminUserNotFound
}

// plainHasher stores passwords with a prefix so tests can reason about hashes.
type plainHasher struct {
	hashErr error
}

func (h plainHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return "hashed:" + password, nil
}

func (h plainHasher) Verify(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type mockTokenIssuer struct {
	GenerateFunc func(userID uint, username, role string) (string, int64, error)
}

func (m *mockTokenIssuer) Generate(userID uint, username, role string) (string, int64, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, username, role)
	}
	return "token-" + username, 3600, nil
}

// mapPermissions grants role:resource:action keys present in the map.
type mapPermissions map[string]bool

func (m mapPermissions) Enforce(role, resource, action string) (bool, error) {
	return m[role+":"+resource+":"+action], nil
}

type mockPilotRepository struct {
	checkout.PilotRepository
	pilots  map[uint]*checkout.Pilot
	created []*checkout.Pilot
}

func (m *mockPilotRepository) Create(ctx context.Context, pilot *checkout.Pilot) error {
	for _, p := range m.created {
		if p.Username() == pilot.Username() {
			return checkout.ErrPilotExists
		}
	}
	pilot.SetID(uint(len(m.created) + 1))
	m.created = append(m.created, pilot)
	return nil
}

func (m *mockPilotRepository) GetByID(ctx context.Context, id uint) (*checkout.Pilot, error) {
	if p, ok := m.pilots[id]; ok {
		return p, nil
	}
	return nil, checkout.ErrPilotNotFound
}

func (m *mockPilotRepository) Delete(ctx context.Context, id uint) error {
	if _, ok := m.pilots[id]; !ok {
		return checkout.ErrPilotNotFound
	}
	return nil
}

type mockAirstripRepository struct {
	checkout.AirstripRepository
	airstrips map[uint]*checkout.Airstrip
	attached  [][2]uint
}

func (m *mockAirstripRepository) GetByID(ctx context.Context, id uint) (*checkout.Airstrip, error) {
	if a, ok := m.airstrips[id]; ok {
		return a, nil
	}
	return nil, checkout.ErrAirstripNotFound
}

func (m *mockAirstripRepository) AttachToBase(ctx context.Context, airstripID, baseID uint) error {
	m.attached = append(m.attached, [2]uint{airstripID, baseID})
	return nil
}

type mockAircraftTypeRepository struct {
	checkout.AircraftTypeRepository
	types map[uint]*checkout.AircraftType
}

func (m *mockAircraftTypeRepository) GetByID(ctx context.Context, id uint) (*checkout.AircraftType, error) {
	if t, ok := m.types[id]; ok {
		return t, nil
	}
	return nil, checkout.ErrAircraftTypeNotFound
}

type mockCheckoutRepository struct {
	checkout.CheckoutRepository
	CreateFunc func(ctx context.Context, c *checkout.Checkout) error
}

func (m *mockCheckoutRepository) Create(ctx context.Context, c *checkout.Checkout) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	c.SetID(10)
	return nil
}

func newTestTxManager(t *testing.T) *db.TransactionManager {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db.NewTransactionManager(gdb)
}
