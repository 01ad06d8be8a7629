// Package seeds loads reference data (pilots, airstrips, aircraft types and
// checkouts) from a YAML fixture file.
package seeds

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Fixtures is the YAML document read by the seed command.
//
//	pilots:
//	  - {username: amy, first_name: Amy, last_name: Baker}
//	airstrips:
//	  - {ident: WAJJ, name: Sentani, is_base: true}
//	  - {ident: WAJW, name: Wamena, bases: [WAJJ]}
//	aircraft_types: [PC6, C206]
//	checkouts:
//	  - {pilot: amy, airstrip: WAJW, aircraft_type: PC6}
type Fixtures struct {
	Pilots        []PilotFixture    `yaml:"pilots"`
	Airstrips     []AirstripFixture `yaml:"airstrips"`
	AircraftTypes []string          `yaml:"aircraft_types"`
	Checkouts     []CheckoutFixture `yaml:"checkouts"`
}

type PilotFixture struct {
	Username  string `yaml:"username"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
}

type AirstripFixture struct {
	Ident  string   `yaml:"ident"`
	Name   string   `yaml:"name"`
	IsBase bool     `yaml:"is_base"`
	Bases  []string `yaml:"bases"`
}

type CheckoutFixture struct {
	Pilot        string `yaml:"pilot"`
	Airstrip     string `yaml:"airstrip"`
	AircraftType string `yaml:"aircraft_type"`
}

// LoadFile reads fixtures from path.
func LoadFile(path string) (*Fixtures, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures: %w", err)
	}
	return Parse(bytes.NewReader(raw))
}

// Parse decodes a fixture document. Unknown keys are rejected so typos in
// hand-edited files do not silently drop data.
func Parse(r io.Reader) (*Fixtures, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f Fixtures
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	return &f, nil
}
