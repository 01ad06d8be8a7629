// Package form declares the checkout filter form: which criteria can be
// picked, how their options are labelled and how submitted values are
// cleaned into a query.
package form

import (
	"cmp"
	"fmt"
	"net/url"
	"slices"
	"strconv"

	"github.com/cotracker/cotracker/internal/domain/checkout"
)

const (
	FieldPilot          = "pilot"
	FieldAirstrip       = "airstrip"
	FieldBase           = "base"
	FieldAircraftType   = "aircraft_type"
	FieldCheckoutStatus = "checkout_status"

	EmptyLabel = "All"

	msgRequired      = "This field is required."
	msgInvalidChoice = "Select a valid choice. That choice is not one of the available choices."
)

type Widget string

const (
	WidgetSelect Widget = "select"
	WidgetRadio  Widget = "radio"
)

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field is one form input. Value holds the submitted value once bound.
type Field struct {
	Name       string   `json:"name"`
	Widget     Widget   `json:"widget"`
	Required   bool     `json:"required"`
	EmptyLabel string   `json:"empty_label,omitempty"`
	Initial    string   `json:"initial,omitempty"`
	Options    []Option `json:"options"`
	Value      string   `json:"value"`
	Errors     []string `json:"errors,omitempty"`
}

func (f *Field) hasOption(value string) bool {
	return slices.ContainsFunc(f.Options, func(o Option) bool { return o.Value == value })
}

// Choices are the entities offered by the model-backed fields.
type Choices struct {
	Pilots        []*checkout.Pilot
	Airstrips     []*checkout.Airstrip
	Bases         []*checkout.Airstrip
	AircraftTypes []*checkout.AircraftType
}

type FilterForm struct {
	Pilot          *Field `json:"pilot"`
	Airstrip       *Field `json:"airstrip"`
	Base           *Field `json:"base"`
	AircraftType   *Field `json:"aircraft_type"`
	CheckoutStatus *Field `json:"checkout_status"`

	IsBound bool `json:"is_bound"`
}

// Criteria is a cleaned form. Zero IDs mean "All".
type Criteria struct {
	PilotID        uint
	AirstripID     uint
	BaseID         uint
	AircraftTypeID uint
	Status         checkout.Status
}

// Filter converts the criteria to a repository filter.
func (c Criteria) Filter() checkout.CheckoutFilter {
	return checkout.CheckoutFilter{
		PilotID:        c.PilotID,
		AirstripID:     c.AirstripID,
		BaseID:         c.BaseID,
		AircraftTypeID: c.AircraftTypeID,
	}
}

// New builds an unbound form. Options are sorted the way each field lists
// them regardless of the order choices arrive in.
func New(choices Choices) *FilterForm {
	pilots := slices.Clone(choices.Pilots)
	slices.SortStableFunc(pilots, checkout.ComparePilots)

	airstrips := slices.Clone(choices.Airstrips)
	slices.SortStableFunc(airstrips, func(a, b *checkout.Airstrip) int {
		return cmp.Compare(a.Ident(), b.Ident())
	})

	bases := slices.Clone(choices.Bases)
	slices.SortStableFunc(bases, func(a, b *checkout.Airstrip) int {
		return cmp.Compare(a.Name(), b.Name())
	})

	types := slices.Clone(choices.AircraftTypes)
	slices.SortStableFunc(types, func(a, b *checkout.AircraftType) int {
		return cmp.Compare(a.Name(), b.Name())
	})

	statusOptions := make([]Option, 0, 2)
	for _, s := range checkout.StatusChoices() {
		statusOptions = append(statusOptions, Option{Value: string(s.Value), Label: s.Label})
	}

	return &FilterForm{
		Pilot: &Field{
			Name:       FieldPilot,
			Widget:     WidgetSelect,
			EmptyLabel: EmptyLabel,
			Options:    modelOptions(pilots, (*checkout.Pilot).ID, PilotLabel),
		},
		Airstrip: &Field{
			Name:       FieldAirstrip,
			Widget:     WidgetSelect,
			EmptyLabel: EmptyLabel,
			Options:    modelOptions(airstrips, (*checkout.Airstrip).ID, AirstripLabel),
		},
		Base: &Field{
			Name:       FieldBase,
			Widget:     WidgetSelect,
			EmptyLabel: EmptyLabel,
			Options:    modelOptions(bases, (*checkout.Airstrip).ID, BaseLabel),
		},
		AircraftType: &Field{
			Name:       FieldAircraftType,
			Widget:     WidgetRadio,
			EmptyLabel: EmptyLabel,
			Options:    modelOptions(types, (*checkout.AircraftType).ID, AircraftTypeLabel),
		},
		CheckoutStatus: &Field{
			Name:     FieldCheckoutStatus,
			Widget:   WidgetRadio,
			Required: true,
			Initial:  string(checkout.DefaultStatus),
			Options:  statusOptions,
		},
	}
}

// Fields returns the fields in declaration order.
func (f *FilterForm) Fields() []*Field {
	return []*Field{f.Pilot, f.Airstrip, f.Base, f.AircraftType, f.CheckoutStatus}
}

// Bind copies submitted values into the form. The form counts as bound when
// at least one of its field names is present in params, even with an empty
// value.
func (f *FilterForm) Bind(params url.Values) {
	for _, field := range f.Fields() {
		if _, ok := params[field.Name]; ok {
			f.IsBound = true
		}
		field.Value = params.Get(field.Name)
	}
}

// ValidationError maps field names to their messages.
type ValidationError map[string][]string

func (e ValidationError) Error() string {
	return fmt.Sprintf("filter form has %d invalid field(s)", len(e))
}

// Details flattens the messages as "field: message", in field order.
func (e ValidationError) Details() []string {
	var out []string
	for _, name := range []string{FieldPilot, FieldAirstrip, FieldBase, FieldAircraftType, FieldCheckoutStatus} {
		for _, msg := range e[name] {
			out = append(out, name+": "+msg)
		}
	}
	return out
}

// Clean validates a bound form. Field errors are recorded on the fields and
// returned together as a ValidationError.
func (f *FilterForm) Clean() (*Criteria, error) {
	if !f.IsBound {
		return nil, fmt.Errorf("cannot clean an unbound form")
	}

	errs := ValidationError{}
	criteria := &Criteria{}

	for _, target := range []struct {
		field *Field
		dest  *uint
	}{
		{f.Pilot, &criteria.PilotID},
		{f.Airstrip, &criteria.AirstripID},
		{f.Base, &criteria.BaseID},
		{f.AircraftType, &criteria.AircraftTypeID},
	} {
		id, msg := cleanModelChoice(target.field)
		if msg != "" {
			target.field.Errors = append(target.field.Errors, msg)
			errs[target.field.Name] = target.field.Errors
			continue
		}
		*target.dest = id
	}

	status := f.CheckoutStatus
	switch {
	case status.Value == "":
		status.Errors = append(status.Errors, msgRequired)
		errs[status.Name] = status.Errors
	case !status.hasOption(status.Value):
		status.Errors = append(status.Errors, msgInvalidChoice)
		errs[status.Name] = status.Errors
	default:
		criteria.Status = checkout.Status(status.Value)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return criteria, nil
}

func cleanModelChoice(field *Field) (uint, string) {
	if field.Value == "" {
		return 0, ""
	}
	if !field.hasOption(field.Value) {
		return 0, msgInvalidChoice
	}
	id, err := strconv.ParseUint(field.Value, 10, 64)
	if err != nil {
		return 0, msgInvalidChoice
	}
	return uint(id), ""
}
