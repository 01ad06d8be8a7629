package checkout

import (
	"cmp"
	"fmt"
	"slices"
)

// AirstripCheckoutRow is one airstrip of a pilot's checkout matrix. Aircraft
// is aligned index-for-index with the aircraft type reference list.
type AirstripCheckoutRow struct {
	Ident    string `json:"ident"`
	Name     string `json:"name"`
	Aircraft []bool `json:"aircraft"`
}

// PilotCheckoutRow is one pilot of an airstrip's checkout matrix.
type PilotCheckoutRow struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Aircraft []bool `json:"aircraft"`
}

// GroupByAirstrip folds a pilot's checkouts into one row per airstrip.
//
// aircraftTypes is the reference list of every aircraft type name, sorted by
// name. Rows come out ordered by airstrip ident. The input slice is not
// modified. A checkout whose type is missing from aircraftTypes fails the
// whole call with ErrUnknownAircraftType.
func GroupByAirstrip(aircraftTypes []string, checkouts []*Checkout) ([]AirstripCheckoutRow, error) {
	sorted := slices.Clone(checkouts)
	slices.SortStableFunc(sorted, func(a, b *Checkout) int {
		return cmp.Or(
			cmp.Compare(a.airstrip.ident, b.airstrip.ident),
			cmp.Compare(a.aircraftType.name, b.aircraftType.name),
		)
	})

	index := typeIndex(aircraftTypes)
	rows := make([]AirstripCheckoutRow, 0)

	var open *AirstripCheckoutRow
	for _, c := range sorted {
		if open == nil || open.Ident != c.airstrip.ident {
			if open != nil {
				rows = append(rows, *open)
			}
			open = &AirstripCheckoutRow{
				Ident:    c.airstrip.ident,
				Name:     c.airstrip.name,
				Aircraft: make([]bool, len(aircraftTypes)),
			}
		}

		i, err := index.lookup(c.aircraftType.name)
		if err != nil {
			return nil, err
		}
		open.Aircraft[i] = true
	}
	if open != nil {
		rows = append(rows, *open)
	}

	return rows, nil
}

// GroupByPilot folds an airstrip's checkouts into one row per pilot, ordered
// by last name, first name and username.
func GroupByPilot(aircraftTypes []string, checkouts []*Checkout) ([]PilotCheckoutRow, error) {
	sorted := slices.Clone(checkouts)
	slices.SortStableFunc(sorted, func(a, b *Checkout) int {
		return cmp.Or(
			ComparePilots(a.pilot, b.pilot),
			cmp.Compare(a.aircraftType.name, b.aircraftType.name),
		)
	})

	index := typeIndex(aircraftTypes)
	rows := make([]PilotCheckoutRow, 0)

	var open *PilotCheckoutRow
	for _, c := range sorted {
		if open == nil || open.Username != c.pilot.username {
			if open != nil {
				rows = append(rows, *open)
			}
			open = &PilotCheckoutRow{
				Username: c.pilot.username,
				Name:     c.pilot.FullName(),
				Aircraft: make([]bool, len(aircraftTypes)),
			}
		}

		i, err := index.lookup(c.aircraftType.name)
		if err != nil {
			return nil, err
		}
		open.Aircraft[i] = true
	}
	if open != nil {
		rows = append(rows, *open)
	}

	return rows, nil
}

type typeIndex []string

func (t typeIndex) lookup(name string) (int, error) {
	i := slices.Index(t, name)
	if i < 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownAircraftType, name)
	}
	return i, nil
}
