package usecases

import "github.com/cotracker/cotracker/internal/domain/checkout"

var (
	pilotAmy = checkout.ReconstructPilot(1, "amy", "Amy", "Baker")
	pilotZed = checkout.ReconstructPilot(2, "zed", "Zed", "Young")

	stripSentani  = checkout.ReconstructAirstrip(1, "WAJJ", "Sentani", true)
	stripWamena   = checkout.ReconstructAirstrip(2, "WAJW", "Wamena", false)
	stripKarubaga = checkout.ReconstructAirstrip(3, "WABK", "Karubaga", false)

	typeC206 = checkout.ReconstructAircraftType(1, "C206")
	typePC6  = checkout.ReconstructAircraftType(2, "PC6")
)

func allTypes() []*checkout.AircraftType {
	return []*checkout.AircraftType{typeC206, typePC6}
}
