package dto

import (
	"github.com/cotracker/cotracker/internal/application/checkout/form"
	"github.com/cotracker/cotracker/internal/domain/checkout"
	"github.com/cotracker/cotracker/internal/shared/mapper"
)

type PilotDTO struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Label     string `json:"label"`
}

type AirstripDTO struct {
	ID     uint   `json:"id"`
	Ident  string `json:"ident"`
	Name   string `json:"name"`
	IsBase bool   `json:"is_base"`
	Label  string `json:"label"`
}

type AircraftTypeDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type CheckoutDTO struct {
	ID           uint            `json:"id,omitempty"`
	Pilot        PilotDTO        `json:"pilot"`
	Airstrip     AirstripDTO     `json:"airstrip"`
	AircraftType AircraftTypeDTO `json:"aircraft_type"`
}

type PilotDetailDTO struct {
	Pilot         PilotDTO                       `json:"pilot"`
	AircraftTypes []string                       `json:"aircraft_types"`
	ByAirstrip    []checkout.AirstripCheckoutRow `json:"by_airstrip"`
}

type AirstripDetailDTO struct {
	Airstrip      AirstripDTO                 `json:"airstrip"`
	AircraftTypes []string                    `json:"aircraft_types"`
	ByPilot       []checkout.PilotCheckoutRow `json:"by_pilot"`
}

type BaseDetailDTO struct {
	Base      AirstripDTO   `json:"base"`
	Attached  bool          `json:"attached"`
	Airstrips []AirstripDTO `json:"airstrips"`
	Checkouts []CheckoutDTO `json:"checkouts"`
}

// CheckoutFilterDTO is the filter view. Results is nil until the form is
// bound and valid.
type CheckoutFilterDTO struct {
	Form    *form.FilterForm `json:"form"`
	Status  checkout.Status  `json:"checkout_status,omitempty"`
	Results []CheckoutDTO    `json:"results"`
}

func ToPilotDTO(p *checkout.Pilot) PilotDTO {
	return PilotDTO{
		ID:        p.ID(),
		Username:  p.Username(),
		FirstName: p.FirstName(),
		LastName:  p.LastName(),
		Label:     form.PilotLabel(p),
	}
}

func ToAirstripDTO(a *checkout.Airstrip) AirstripDTO {
	return AirstripDTO{
		ID:     a.ID(),
		Ident:  a.Ident(),
		Name:   a.Name(),
		IsBase: a.IsBase(),
		Label:  a.String(),
	}
}

func ToAircraftTypeDTO(t *checkout.AircraftType) AircraftTypeDTO {
	return AircraftTypeDTO{ID: t.ID(), Name: t.Name()}
}

func ToCheckoutDTO(c *checkout.Checkout) CheckoutDTO {
	return CheckoutDTO{
		ID:           c.ID(),
		Pilot:        ToPilotDTO(c.Pilot()),
		Airstrip:     ToAirstripDTO(c.Airstrip()),
		AircraftType: ToAircraftTypeDTO(c.AircraftType()),
	}
}

func ToPilotDTOList(pilots []*checkout.Pilot) []PilotDTO {
	return mapper.MapSlice(pilots, ToPilotDTO)
}

func ToAirstripDTOList(airstrips []*checkout.Airstrip) []AirstripDTO {
	return mapper.MapSlice(airstrips, ToAirstripDTO)
}

func ToAircraftTypeDTOList(types []*checkout.AircraftType) []AircraftTypeDTO {
	return mapper.MapSlice(types, ToAircraftTypeDTO)
}

func ToCheckoutDTOList(checkouts []*checkout.Checkout) []CheckoutDTO {
	return mapper.MapSlice(checkouts, ToCheckoutDTO)
}
