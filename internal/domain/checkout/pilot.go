package checkout

import (
	"fmt"
	"regexp"
	"strings"
)

// usernamePattern matches the \w+ segment used in pilot URLs.
var usernamePattern = regexp.MustCompile(`^\w{1,30}$`)

// Pilot is a club member who can hold checkouts.
type Pilot struct {
	id        uint
	username  string
	firstName string
	lastName  string
}

func NewPilot(username, firstName, lastName string) (*Pilot, error) {
	username = strings.TrimSpace(username)
	if !usernamePattern.MatchString(username) {
		return nil, ErrInvalidUsername
	}

	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" && lastName == "" {
		return nil, fmt.Errorf("pilot %s: %w", username, ErrEmptyName)
	}

	return &Pilot{
		username:  username,
		firstName: firstName,
		lastName:  lastName,
	}, nil
}

// ReconstructPilot rebuilds a Pilot from persistence without validation.
func ReconstructPilot(id uint, username, firstName, lastName string) *Pilot {
	return &Pilot{
		id:        id,
		username:  username,
		firstName: firstName,
		lastName:  lastName,
	}
}

func (p *Pilot) ID() uint          { return p.id }
func (p *Pilot) Username() string  { return p.username }
func (p *Pilot) FirstName() string { return p.firstName }
func (p *Pilot) LastName() string  { return p.lastName }

// SetID is for the persistence layer only.
func (p *Pilot) SetID(id uint) { p.id = id }

// FullName is "First Last", falling back to the username.
func (p *Pilot) FullName() string {
	name := strings.TrimSpace(p.firstName + " " + p.lastName)
	if name == "" {
		return p.username
	}
	return name
}

// SortName is "Last, First", the order pilots are listed in.
func (p *Pilot) SortName() string {
	switch {
	case p.lastName == "":
		return p.firstName
	case p.firstName == "":
		return p.lastName
	default:
		return p.lastName + ", " + p.firstName
	}
}

func (p *Pilot) String() string { return p.FullName() }

// ComparePilots orders by last name, first name, then username.
func ComparePilots(a, b *Pilot) int {
	if c := strings.Compare(a.lastName, b.lastName); c != 0 {
		return c
	}
	if c := strings.Compare(a.firstName, b.firstName); c != 0 {
		return c
	}
	return strings.Compare(a.username, b.username)
}
