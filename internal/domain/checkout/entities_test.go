package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPilot(t *testing.T) {
	tests := []struct {
		name      string
		username  string
		first     string
		last      string
		wantError error
	}{
		{"valid", "jdoe", "John", "Doe", nil},
		{"underscore and digits", "j_doe2", "John", "Doe", nil},
		{"last name only", "doe", "", "Doe", nil},
		{"empty username", "", "John", "Doe", ErrInvalidUsername},
		{"username with dash", "j-doe", "John", "Doe", ErrInvalidUsername},
		{"username too long", "abcdefghijklmnopqrstuvwxyz12345", "A", "B", ErrInvalidUsername},
		{"no name", "jdoe", " ", "", ErrEmptyName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPilot(tt.username, tt.first, tt.last)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.username, p.Username())
		})
	}
}

func TestPilot_Names(t *testing.T) {
	p := ReconstructPilot(1, "jdoe", "John", "Doe")
	assert.Equal(t, "John Doe", p.FullName())
	assert.Equal(t, "Doe, John", p.SortName())

	noName := ReconstructPilot(2, "ghost", "", "")
	assert.Equal(t, "ghost", noName.FullName())
	assert.Equal(t, "Doe", ReconstructPilot(3, "d", "", "Doe").SortName())
}

func TestComparePilots(t *testing.T) {
	a := ReconstructPilot(1, "a", "Zed", "Able")
	b := ReconstructPilot(2, "b", "Amy", "Baker")
	c := ReconstructPilot(3, "c", "Bob", "Baker")

	assert.Negative(t, ComparePilots(a, b))
	assert.Negative(t, ComparePilots(b, c))
	assert.Zero(t, ComparePilots(c, c))
	assert.Positive(t, ComparePilots(c, a))
}

func TestNewAirstrip(t *testing.T) {
	a, err := NewAirstrip(" wabb ", " Biak ", true)
	require.NoError(t, err)
	assert.Equal(t, "WABB", a.Ident())
	assert.Equal(t, "Biak", a.Name())
	assert.True(t, a.IsBase())
	assert.Equal(t, "WABB (Biak)", a.String())

	_, err = NewAirstrip("WA BB", "Biak", false)
	assert.ErrorIs(t, err, ErrInvalidIdent)

	_, err = NewAirstrip("WABB", "", false)
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestNormalizeIdent(t *testing.T) {
	assert.Equal(t, "WAJJ", NormalizeIdent(" wajj"))
}

func TestNewAircraftType(t *testing.T) {
	at, err := NewAircraftType(" C206 ")
	require.NoError(t, err)
	assert.Equal(t, "C206", at.Name())

	_, err = NewAircraftType("")
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestAircraftTypeNames(t *testing.T) {
	names := AircraftTypeNames([]*AircraftType{
		ReconstructAircraftType(1, "C172"),
		ReconstructAircraftType(2, "PC6"),
	})
	assert.Equal(t, []string{"C172", "PC6"}, names)
	assert.Empty(t, AircraftTypeNames(nil))
}

func TestNewCheckout(t *testing.T) {
	p := ReconstructPilot(1, "jdoe", "John", "Doe")
	a := ReconstructAirstrip(1, "WAAA", "Alpha", false)
	at := ReconstructAircraftType(1, "C172")

	c, err := NewCheckout(p, a, at)
	require.NoError(t, err)
	assert.Equal(t, "jdoe @ WAAA in C172", c.String())

	_, err = NewCheckout(p, nil, at)
	assert.Error(t, err)
}

func TestStatus(t *testing.T) {
	assert.True(t, StatusCheckedOut.IsValid())
	assert.True(t, StatusNotCheckedOut.IsValid())
	assert.False(t, Status("maybe").IsValid())
	assert.Equal(t, StatusCheckedOut, DefaultStatus)

	choices := StatusChoices()
	require.Len(t, choices, 2)
	assert.Equal(t, StatusCheckedOut, choices[0].Value)
	assert.Equal(t, "Checked out", choices[0].Label)
	assert.Equal(t, StatusNotCheckedOut, choices[1].Value)
}
