package repository

import (
	"gorm.io/gorm"

	"github.com/cotracker/cotracker/internal/domain/checkout"
)

// orderPilots orders by last name, first name, username. alias prefixes the
// columns when the pilots table is joined under another name.
func orderPilots(alias string) func(*gorm.DB) *gorm.DB {
	prefix := ""
	if alias != "" {
		prefix = alias + "."
	}
	return func(q *gorm.DB) *gorm.DB {
		return q.Order(prefix + "last_name").Order(prefix + "first_name").Order(prefix + "username")
	}
}

// checkoutOrder is the listing order of checkout rows: pilot, airstrip
// ident, aircraft type name.
func checkoutOrder(q *gorm.DB) *gorm.DB {
	return orderPilots("p")(q).Order("a.ident").Order("t.name")
}

// checkoutFilter applies a CheckoutFilter to a query that exposes the
// aliases p (pilots), a (airstrips) and t (aircraft_types).
func checkoutFilter(filter checkout.CheckoutFilter) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		if filter.PilotID != 0 {
			q = q.Where("p.id = ?", filter.PilotID)
		}
		if filter.AirstripID != 0 {
			q = q.Where("a.id = ?", filter.AirstripID)
		}
		if filter.AircraftTypeID != 0 {
			q = q.Where("t.id = ?", filter.AircraftTypeID)
		}
		if filter.BaseID != 0 {
			q = q.Where("a.id IN (SELECT airstrip_id FROM airstrip_bases WHERE base_id = ?)", filter.BaseID)
		}
		if filter.AirstripIDs != nil {
			q = q.Where("a.id IN ?", filter.AirstripIDs)
		}
		return q
	}
}

const checkoutRowColumns = "p.id AS pilot_id, p.username, p.first_name, p.last_name, " +
	"a.id AS airstrip_id, a.ident, a.name AS airstrip_name, a.is_base, " +
	"t.id AS aircraft_type_id, t.name AS aircraft_type"
