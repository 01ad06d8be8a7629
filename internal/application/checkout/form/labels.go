package form

import (
	"fmt"
	"strconv"

	"github.com/cotracker/cotracker/internal/domain/checkout"
)

// LabelFunc renders the option label for one entity.
type LabelFunc[T any] func(T) string

// PilotLabel is "Last, First".
func PilotLabel(p *checkout.Pilot) string {
	return fmt.Sprintf("%s, %s", p.LastName(), p.FirstName())
}

// AirstripLabel is the canonical "IDENT (Name)".
func AirstripLabel(a *checkout.Airstrip) string {
	return a.String()
}

// BaseLabel shows the name only.
func BaseLabel(a *checkout.Airstrip) string {
	return a.Name()
}

func AircraftTypeLabel(t *checkout.AircraftType) string {
	return t.Name()
}

// modelOptions turns entities into options keyed by entity ID, preserving
// input order.
func modelOptions[T any](items []T, id func(T) uint, label LabelFunc[T]) []Option {
	options := make([]Option, 0, len(items))
	for _, item := range items {
		options = append(options, Option{
			Value: strconv.FormatUint(uint64(id(item)), 10),
			Label: label(item),
		})
	}
	return options
}
