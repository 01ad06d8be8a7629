package checkout

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var identPattern = regexp.MustCompile(`^\w{1,10}$`)

var upper = cases.Upper(language.Und)

// Airstrip is a landing location. Airstrips flagged as bases can have other
// airstrips attached to them.
type Airstrip struct {
	id     uint
	ident  string
	name   string
	isBase bool
}

// NewAirstrip validates ident and name. The ident is stored upper-case.
func NewAirstrip(ident, name string, isBase bool) (*Airstrip, error) {
	ident = upper.String(strings.TrimSpace(ident))
	if !identPattern.MatchString(ident) {
		return nil, ErrInvalidIdent
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("airstrip %s: %w", ident, ErrEmptyName)
	}

	return &Airstrip{ident: ident, name: name, isBase: isBase}, nil
}

func ReconstructAirstrip(id uint, ident, name string, isBase bool) *Airstrip {
	return &Airstrip{id: id, ident: ident, name: name, isBase: isBase}
}

func (a *Airstrip) ID() uint        { return a.id }
func (a *Airstrip) Ident() string   { return a.ident }
func (a *Airstrip) Name() string    { return a.name }
func (a *Airstrip) IsBase() bool    { return a.isBase }
func (a *Airstrip) SetID(id uint)   { a.id = id }
func (a *Airstrip) MarkBase(b bool) { a.isBase = b }

// String is the "IDENT (Name)" form used everywhere except the base picker.
func (a *Airstrip) String() string {
	return fmt.Sprintf("%s (%s)", a.ident, a.name)
}

// NormalizeIdent applies the same normalization as NewAirstrip, for lookups.
func NormalizeIdent(ident string) string {
	return upper.String(strings.TrimSpace(ident))
}
