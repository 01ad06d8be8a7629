package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cotracker/cotracker/internal/domain/checkout"
	"github.com/cotracker/cotracker/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// every pooled connection to :memory: would be a separate database
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(models.All()...))
	t.Cleanup(func() { _ = sqlDB.Close() })

	return gdb
}

type fixture struct {
	db *gorm.DB

	pilots    *PilotRepository
	airstrips *AirstripRepository
	types     *AircraftTypeRepository
	checkouts *CheckoutRepository

	amy, bob, zed              *checkout.Pilot
	sentani, biak, wamena, kbg *checkout.Airstrip
	c206, pc6                  *checkout.AircraftType
}

// seedFixture creates three pilots, two bases with one attached airstrip
// each, two aircraft types and three checkouts.
func seedFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	gdb := setupTestDB(t)

	fx := &fixture{
		db:        gdb,
		pilots:    NewPilotRepository(gdb),
		airstrips: NewAirstripRepository(gdb),
		types:     NewAircraftTypeRepository(gdb),
		checkouts: NewCheckoutRepository(gdb),
	}

	newPilot := func(username, first, last string) *checkout.Pilot {
		p, err := checkout.NewPilot(username, first, last)
		require.NoError(t, err)
		require.NoError(t, fx.pilots.Create(ctx, p))
		return p
	}
	newAirstrip := func(ident, name string, isBase bool) *checkout.Airstrip {
		a, err := checkout.NewAirstrip(ident, name, isBase)
		require.NoError(t, err)
		require.NoError(t, fx.airstrips.Create(ctx, a))
		return a
	}
	newType := func(name string) *checkout.AircraftType {
		at, err := checkout.NewAircraftType(name)
		require.NoError(t, err)
		require.NoError(t, fx.types.Create(ctx, at))
		return at
	}
	newCheckout := func(p *checkout.Pilot, a *checkout.Airstrip, at *checkout.AircraftType) {
		c, err := checkout.NewCheckout(p, a, at)
		require.NoError(t, err)
		require.NoError(t, fx.checkouts.Create(ctx, c))
	}

	fx.zed = newPilot("zed", "Zed", "Young")
	fx.bob = newPilot("bob", "Bob", "Baker")
	fx.amy = newPilot("amy", "Amy", "Baker")

	fx.sentani = newAirstrip("WAJJ", "Sentani", true)
	fx.biak = newAirstrip("WABB", "Biak", true)
	fx.wamena = newAirstrip("WAJW", "Wamena", false)
	fx.kbg = newAirstrip("WABK", "Karubaga", false)

	fx.pc6 = newType("PC6")
	fx.c206 = newType("C206")

	require.NoError(t, fx.airstrips.AttachToBase(ctx, fx.wamena.ID(), fx.sentani.ID()))
	require.NoError(t, fx.airstrips.AttachToBase(ctx, fx.kbg.ID(), fx.biak.ID()))

	newCheckout(fx.amy, fx.wamena, fx.pc6)
	newCheckout(fx.zed, fx.wamena, fx.c206)
	newCheckout(fx.amy, fx.sentani, fx.c206)

	return fx
}
