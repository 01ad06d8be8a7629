package seeds

import (
	"context"
	"errors"
	"fmt"

	"github.com/cotracker/cotracker/internal/domain/checkout"
	"github.com/cotracker/cotracker/internal/shared/db"
	"github.com/cotracker/cotracker/internal/shared/logger"
)

// Result counts the rows a Seed call inserted. Rows that already existed
// are not counted.
type Result struct {
	Pilots        int
	Airstrips     int
	Attachments   int
	AircraftTypes int
	Checkouts     int
}

type Seeder struct {
	pilots        checkout.PilotRepository
	airstrips     checkout.AirstripRepository
	aircraftTypes checkout.AircraftTypeRepository
	checkouts     checkout.CheckoutRepository
	txMgr         *db.TransactionManager
	logger        logger.Interface
}

func NewSeeder(
	pilots checkout.PilotRepository,
	airstrips checkout.AirstripRepository,
	aircraftTypes checkout.AircraftTypeRepository,
	checkouts checkout.CheckoutRepository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *Seeder {
	return &Seeder{
		pilots:        pilots,
		airstrips:     airstrips,
		aircraftTypes: aircraftTypes,
		checkouts:     checkouts,
		txMgr:         txMgr,
		logger:        logger,
	}
}

// Seed inserts f in one transaction. Running it twice with the same file
// inserts nothing the second time.
func (s *Seeder) Seed(ctx context.Context, f *Fixtures) (*Result, error) {
	var res Result
	err := s.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		res = Result{}
		if err := s.seedPilots(ctx, f.Pilots, &res); err != nil {
			return err
		}
		if err := s.seedAirstrips(ctx, f.Airstrips, &res); err != nil {
			return err
		}
		if err := s.seedAircraftTypes(ctx, f.AircraftTypes, &res); err != nil {
			return err
		}
		return s.seedCheckouts(ctx, f.Checkouts, &res)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("fixtures loaded",
		"pilots", res.Pilots,
		"airstrips", res.Airstrips,
		"attachments", res.Attachments,
		"aircraft_types", res.AircraftTypes,
		"checkouts", res.Checkouts)
	return &res, nil
}

func (s *Seeder) seedPilots(ctx context.Context, fixtures []PilotFixture, res *Result) error {
	for _, pf := range fixtures {
		pilot, err := checkout.NewPilot(pf.Username, pf.FirstName, pf.LastName)
		if err != nil {
			return fmt.Errorf("pilot %q: %w", pf.Username, err)
		}
		err = s.pilots.Create(ctx, pilot)
		switch {
		case err == nil:
			res.Pilots++
		case errors.Is(err, checkout.ErrPilotExists):
		default:
			return fmt.Errorf("pilot %q: %w", pf.Username, err)
		}
	}
	return nil
}

// seedAirstrips creates every airstrip before attaching any, so a fixture may
// list an airstrip ahead of its base.
func (s *Seeder) seedAirstrips(ctx context.Context, fixtures []AirstripFixture, res *Result) error {
	for _, af := range fixtures {
		airstrip, err := checkout.NewAirstrip(af.Ident, af.Name, af.IsBase)
		if err != nil {
			return fmt.Errorf("airstrip %q: %w", af.Ident, err)
		}
		err = s.airstrips.Create(ctx, airstrip)
		switch {
		case err == nil:
			res.Airstrips++
		case errors.Is(err, checkout.ErrAirstripExists):
		default:
			return fmt.Errorf("airstrip %q: %w", af.Ident, err)
		}
	}

	for _, af := range fixtures {
		if len(af.Bases) == 0 {
			continue
		}
		airstrip, err := s.airstrips.GetByIdent(ctx, af.Ident)
		if err != nil {
			return fmt.Errorf("airstrip %q: %w", af.Ident, err)
		}
		for _, ident := range af.Bases {
			base, err := s.airstrips.GetByIdent(ctx, ident)
			if err != nil {
				return fmt.Errorf("base %q of %s: %w", ident, airstrip.Ident(), err)
			}
			if !base.IsBase() {
				return fmt.Errorf("base %q of %s: %w", ident, airstrip.Ident(), checkout.ErrNotABase)
			}
			attached, err := s.isAttached(ctx, airstrip.ID(), base.ID())
			if err != nil {
				return err
			}
			if attached {
				continue
			}
			if err := s.airstrips.AttachToBase(ctx, airstrip.ID(), base.ID()); err != nil {
				return fmt.Errorf("attach %s to %s: %w", airstrip.Ident(), base.Ident(), err)
			}
			res.Attachments++
		}
	}
	return nil
}

func (s *Seeder) isAttached(ctx context.Context, airstripID, baseID uint) (bool, error) {
	attached, err := s.airstrips.ListAttached(ctx, baseID)
	if err != nil {
		return false, fmt.Errorf("failed to list airstrips of base %d: %w", baseID, err)
	}
	for _, a := range attached {
		if a.ID() == airstripID {
			return true, nil
		}
	}
	return false, nil
}

func (s *Seeder) seedAircraftTypes(ctx context.Context, names []string, res *Result) error {
	for _, name := range names {
		aircraftType, err := checkout.NewAircraftType(name)
		if err != nil {
			return fmt.Errorf("aircraft type %q: %w", name, err)
		}
		err = s.aircraftTypes.Create(ctx, aircraftType)
		switch {
		case err == nil:
			res.AircraftTypes++
		case errors.Is(err, checkout.ErrAircraftTypeExists):
		default:
			return fmt.Errorf("aircraft type %q: %w", name, err)
		}
	}
	return nil
}

func (s *Seeder) seedCheckouts(ctx context.Context, fixtures []CheckoutFixture, res *Result) error {
	for _, cf := range fixtures {
		pilot, err := s.pilots.GetByUsername(ctx, cf.Pilot)
		if err != nil {
			return fmt.Errorf("checkout pilot %q: %w", cf.Pilot, err)
		}
		airstrip, err := s.airstrips.GetByIdent(ctx, cf.Airstrip)
		if err != nil {
			return fmt.Errorf("checkout airstrip %q: %w", cf.Airstrip, err)
		}
		aircraftType, err := s.aircraftTypes.GetByName(ctx, cf.AircraftType)
		if err != nil {
			return fmt.Errorf("checkout aircraft type %q: %w", cf.AircraftType, err)
		}

		c, err := checkout.NewCheckout(pilot, airstrip, aircraftType)
		if err != nil {
			return err
		}
		err = s.checkouts.Create(ctx, c)
		switch {
		case err == nil:
			res.Checkouts++
		case errors.Is(err, checkout.ErrCheckoutExists):
		default:
			return fmt.Errorf("checkout %s: %w", c, err)
		}
	}
	return nil
}
