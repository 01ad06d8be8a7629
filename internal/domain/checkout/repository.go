package checkout

import "context"

type PilotRepository interface {
	Create(ctx context.Context, pilot *Pilot) error
	GetByID(ctx context.Context, id uint) (*Pilot, error)
	GetByUsername(ctx context.Context, username string) (*Pilot, error)
	// List returns every pilot ordered by last name, first name.
	List(ctx context.Context) ([]*Pilot, error)
	Delete(ctx context.Context, id uint) error
}

type AirstripRepository interface {
	Create(ctx context.Context, airstrip *Airstrip) error
	Update(ctx context.Context, airstrip *Airstrip) error
	GetByID(ctx context.Context, id uint) (*Airstrip, error)
	GetByIdent(ctx context.Context, ident string) (*Airstrip, error)
	// List returns every airstrip ordered by ident.
	List(ctx context.Context) ([]*Airstrip, error)
	// ListBases returns airstrips flagged as bases, ordered by name.
	ListBases(ctx context.Context) ([]*Airstrip, error)
	// ListAttached returns the airstrips attached to baseID, ordered by ident.
	ListAttached(ctx context.Context, baseID uint) ([]*Airstrip, error)
	// ListUnattached returns non-base airstrips not attached to baseID.
	ListUnattached(ctx context.Context, baseID uint) ([]*Airstrip, error)
	AttachToBase(ctx context.Context, airstripID, baseID uint) error
	DetachFromBase(ctx context.Context, airstripID, baseID uint) error
	Delete(ctx context.Context, id uint) error
}

type AircraftTypeRepository interface {
	Create(ctx context.Context, aircraftType *AircraftType) error
	GetByID(ctx context.Context, id uint) (*AircraftType, error)
	GetByName(ctx context.Context, name string) (*AircraftType, error)
	// List returns every aircraft type ordered by name.
	List(ctx context.Context) ([]*AircraftType, error)
	Delete(ctx context.Context, id uint) error
}

// CheckoutFilter narrows checkout queries. Zero IDs mean "any". AirstripIDs,
// when non-nil, restricts results to that set; an empty non-nil slice
// matches nothing.
type CheckoutFilter struct {
	PilotID        uint
	AirstripID     uint
	BaseID         uint
	AircraftTypeID uint
	AirstripIDs    []uint
}

type CheckoutRepository interface {
	Create(ctx context.Context, checkout *Checkout) error
	GetByID(ctx context.Context, id uint) (*Checkout, error)
	Delete(ctx context.Context, id uint) error
	// Find returns checkouts matching filter ordered by pilot (last, first),
	// airstrip ident and aircraft type name.
	Find(ctx context.Context, filter CheckoutFilter) ([]*Checkout, error)
	// FindMissing returns every pilot, airstrip and aircraft type combination
	// matching filter that has no checkout, in the same order as Find. The
	// returned values carry no ID.
	FindMissing(ctx context.Context, filter CheckoutFilter) ([]*Checkout, error)
}
