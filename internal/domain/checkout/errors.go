package checkout

import "errors"

var (
	ErrPilotNotFound        = errors.New("pilot not found")
	ErrAirstripNotFound     = errors.New("airstrip not found")
	ErrBaseNotFound         = errors.New("base not found")
	ErrAircraftTypeNotFound = errors.New("aircraft type not found")
	ErrCheckoutNotFound     = errors.New("checkout not found")
	ErrPilotExists          = errors.New("pilot already exists")
	ErrAirstripExists       = errors.New("airstrip already exists")
	ErrAircraftTypeExists   = errors.New("aircraft type already exists")
	ErrCheckoutExists       = errors.New("checkout already exists")

	// ErrUnknownAircraftType means a checkout names an aircraft type that is
	// missing from the grouping reference list.
	ErrUnknownAircraftType = errors.New("aircraft type not in reference list")

	ErrInvalidUsername = errors.New("username must be 1-30 letters, digits or underscores")
	ErrInvalidIdent    = errors.New("airstrip ident must be 1-10 letters, digits or underscores")
	ErrEmptyName       = errors.New("name is required")
	ErrNotABase        = errors.New("airstrip is not a base")
)
