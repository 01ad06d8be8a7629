package models

// All returns every model managed by AutoMigrate, in dependency order.
func All() []interface{} {
	return []interface{}{
		&PilotModel{},
		&AirstripModel{},
		&AirstripBaseModel{},
		&AircraftTypeModel{},
		&CheckoutModel{},
		&AdminUserModel{},
	}
}
