package checkout

import "fmt"

// Checkout records that a pilot is qualified to fly an aircraft type at an
// airstrip. The record carries denormalized references so that grouping and
// reporting need no further lookups.
type Checkout struct {
	id           uint
	pilot        *Pilot
	airstrip     *Airstrip
	aircraftType *AircraftType
}

func NewCheckout(pilot *Pilot, airstrip *Airstrip, aircraftType *AircraftType) (*Checkout, error) {
	if pilot == nil || airstrip == nil || aircraftType == nil {
		return nil, fmt.Errorf("checkout requires pilot, airstrip and aircraft type")
	}
	return &Checkout{pilot: pilot, airstrip: airstrip, aircraftType: aircraftType}, nil
}

func ReconstructCheckout(id uint, pilot *Pilot, airstrip *Airstrip, aircraftType *AircraftType) *Checkout {
	return &Checkout{id: id, pilot: pilot, airstrip: airstrip, aircraftType: aircraftType}
}

func (c *Checkout) ID() uint                    { return c.id }
func (c *Checkout) Pilot() *Pilot               { return c.pilot }
func (c *Checkout) Airstrip() *Airstrip         { return c.airstrip }
func (c *Checkout) AircraftType() *AircraftType { return c.aircraftType }
func (c *Checkout) SetID(id uint)               { c.id = id }

func (c *Checkout) String() string {
	return fmt.Sprintf("%s @ %s in %s", c.pilot.Username(), c.airstrip.Ident(), c.aircraftType.Name())
}
