package checkout

import "strings"

type AircraftType struct {
	id   uint
	name string
}

func NewAircraftType(name string) (*AircraftType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &AircraftType{name: name}, nil
}

func ReconstructAircraftType(id uint, name string) *AircraftType {
	return &AircraftType{id: id, name: name}
}

func (t *AircraftType) ID() uint       { return t.id }
func (t *AircraftType) Name() string   { return t.name }
func (t *AircraftType) SetID(id uint)  { t.id = id }
func (t *AircraftType) String() string { return t.name }

// AircraftTypeNames returns the names in input order. Callers pass the list
// sorted by name to obtain the grouping reference list.
func AircraftTypeNames(types []*AircraftType) []string {
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, t.name)
	}
	return names
}
