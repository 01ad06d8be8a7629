package form

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cotracker/cotracker/internal/domain/checkout"
)

func testChoices() Choices {
	wabb := checkout.ReconstructAirstrip(3, "WABB", "Biak", true)
	waji := checkout.ReconstructAirstrip(1, "WAJJ", "Sentani", true)
	wajw := checkout.ReconstructAirstrip(2, "WAJW", "Wamena", false)

	return Choices{
		Pilots: []*checkout.Pilot{
			checkout.ReconstructPilot(2, "zed", "Zed", "Young"),
			checkout.ReconstructPilot(1, "amy", "Amy", "Baker"),
		},
		Airstrips: []*checkout.Airstrip{wajw, wabb, waji},
		Bases:     []*checkout.Airstrip{waji, wabb},
		AircraftTypes: []*checkout.AircraftType{
			checkout.ReconstructAircraftType(2, "PC6"),
			checkout.ReconstructAircraftType(1, "C206"),
		},
	}
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Baker, Amy", PilotLabel(checkout.ReconstructPilot(1, "amy", "Amy", "Baker")))
	assert.Equal(t, ", Amy", PilotLabel(checkout.ReconstructPilot(1, "amy", "Amy", "")))

	strip := checkout.ReconstructAirstrip(1, "WAJJ", "Sentani", true)
	assert.Equal(t, "WAJJ (Sentani)", AirstripLabel(strip))
	assert.Equal(t, "Sentani", BaseLabel(strip))
	assert.Equal(t, "C206", AircraftTypeLabel(checkout.ReconstructAircraftType(1, "C206")))
}

func TestNew_FieldDeclarations(t *testing.T) {
	f := New(testChoices())

	tests := []struct {
		field    *Field
		name     string
		widget   Widget
		required bool
		empty    string
		initial  string
	}{
		{f.Pilot, FieldPilot, WidgetSelect, false, "All", ""},
		{f.Airstrip, FieldAirstrip, WidgetSelect, false, "All", ""},
		{f.Base, FieldBase, WidgetSelect, false, "All", ""},
		{f.AircraftType, FieldAircraftType, WidgetRadio, false, "All", ""},
		{f.CheckoutStatus, FieldCheckoutStatus, WidgetRadio, true, "", "sudah"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.field.Name)
			assert.Equal(t, tt.widget, tt.field.Widget)
			assert.Equal(t, tt.required, tt.field.Required)
			assert.Equal(t, tt.empty, tt.field.EmptyLabel)
			assert.Equal(t, tt.initial, tt.field.Initial)
		})
	}

	assert.False(t, f.IsBound)
	assert.Len(t, f.Fields(), 5)
}

func TestNew_OptionOrderAndLabels(t *testing.T) {
	f := New(testChoices())

	assert.Equal(t, []Option{
		{Value: "1", Label: "Baker, Amy"},
		{Value: "2", Label: "Young, Zed"},
	}, f.Pilot.Options)

	assert.Equal(t, []Option{
		{Value: "3", Label: "WABB (Biak)"},
		{Value: "1", Label: "WAJJ (Sentani)"},
		{Value: "2", Label: "WAJW (Wamena)"},
	}, f.Airstrip.Options)

	assert.Equal(t, []Option{
		{Value: "3", Label: "Biak"},
		{Value: "1", Label: "Sentani"},
	}, f.Base.Options)

	assert.Equal(t, []Option{
		{Value: "1", Label: "C206"},
		{Value: "2", Label: "PC6"},
	}, f.AircraftType.Options)

	assert.Equal(t, []Option{
		{Value: "sudah", Label: "Checked out"},
		{Value: "belum", Label: "Not checked out"},
	}, f.CheckoutStatus.Options)
}

func TestBind(t *testing.T) {
	tests := []struct {
		name      string
		params    url.Values
		wantBound bool
	}{
		{"no params", url.Values{}, false},
		{"unrelated param", url.Values{"page": {"2"}}, false},
		{"empty filter param", url.Values{"pilot": {""}}, true},
		{"status only", url.Values{"checkout_status": {"belum"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New(testChoices())
			f.Bind(tt.params)
			assert.Equal(t, tt.wantBound, f.IsBound)
		})
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		name        string
		params      url.Values
		expected    *Criteria
		wantErrorOn []string
	}{
		{
			name:     "status only",
			params:   url.Values{"checkout_status": {"sudah"}},
			expected: &Criteria{Status: checkout.StatusCheckedOut},
		},
		{
			name: "every filter",
			params: url.Values{
				"pilot":           {"2"},
				"airstrip":        {"3"},
				"base":            {"1"},
				"aircraft_type":   {"1"},
				"checkout_status": {"belum"},
			},
			expected: &Criteria{
				PilotID:        2,
				AirstripID:     3,
				BaseID:         1,
				AircraftTypeID: 1,
				Status:         checkout.StatusNotCheckedOut,
			},
		},
		{
			name: "empty optional values mean all",
			params: url.Values{
				"pilot":           {""},
				"aircraft_type":   {""},
				"checkout_status": {"sudah"},
			},
			expected: &Criteria{Status: checkout.StatusCheckedOut},
		},
		{
			name:        "missing status",
			params:      url.Values{"pilot": {"1"}},
			wantErrorOn: []string{FieldCheckoutStatus},
		},
		{
			name:        "unknown status",
			params:      url.Values{"checkout_status": {"maybe"}},
			wantErrorOn: []string{FieldCheckoutStatus},
		},
		{
			name: "base id that is not a base",
			params: url.Values{
				"base":            {"2"},
				"checkout_status": {"sudah"},
			},
			wantErrorOn: []string{FieldBase},
		},
		{
			name: "non numeric ids",
			params: url.Values{
				"pilot":           {"amy"},
				"airstrip":        {"WAJJ"},
				"checkout_status": {"sudah"},
			},
			wantErrorOn: []string{FieldPilot, FieldAirstrip},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New(testChoices())
			f.Bind(tt.params)

			criteria, err := f.Clean()
			if len(tt.wantErrorOn) > 0 {
				require.Error(t, err)
				assert.Nil(t, criteria)

				var verr ValidationError
				require.True(t, errors.As(err, &verr))
				assert.Len(t, verr, len(tt.wantErrorOn))
				for _, name := range tt.wantErrorOn {
					assert.Contains(t, verr, name)
				}
				assert.Len(t, verr.Details(), len(tt.wantErrorOn))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, criteria)
		})
	}
}

func TestClean_RecordsErrorsOnFields(t *testing.T) {
	f := New(testChoices())
	f.Bind(url.Values{"checkout_status": {""}})

	_, err := f.Clean()
	require.Error(t, err)
	assert.Equal(t, []string{msgRequired}, f.CheckoutStatus.Errors)
	assert.Empty(t, f.Pilot.Errors)
}

func TestClean_Unbound(t *testing.T) {
	_, err := New(testChoices()).Clean()
	assert.Error(t, err)
}

func TestCriteria_Filter(t *testing.T) {
	c := Criteria{PilotID: 1, BaseID: 4, Status: checkout.StatusNotCheckedOut}
	assert.Equal(t, checkout.CheckoutFilter{PilotID: 1, BaseID: 4}, c.Filter())
}
