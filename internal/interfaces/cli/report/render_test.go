package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cotracker/cotracker/internal/application/checkout/dto"
	"github.com/cotracker/cotracker/internal/domain/checkout"
)

func TestRenderPilot(t *testing.T) {
	var buf bytes.Buffer
	err := RenderPilot(&buf, &dto.PilotDetailDTO{
		Pilot:         dto.PilotDTO{Username: "amy", Label: "Baker, Amy"},
		AircraftTypes: []string{"C206", "PC6"},
		ByAirstrip: []checkout.AirstripCheckoutRow{
			{Ident: "WAJJ", Name: "Sentani", Aircraft: []bool{true, false}},
			{Ident: "WAJW", Name: "Wamena", Aircraft: []bool{true, true}},
		},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Baker, Amy", lines[0])
	assert.Equal(t, []string{"IDENT", "AIRSTRIP", "C206", "PC6"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"WAJJ", "Sentani", "x", "-"}, strings.Fields(lines[3]))
	assert.Equal(t, []string{"WAJW", "Wamena", "x", "x"}, strings.Fields(lines[4]))
}

func TestRenderPilot_NoCheckouts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPilot(&buf, &dto.PilotDetailDTO{
		Pilot:      dto.PilotDTO{Label: "Young, Zed"},
		ByAirstrip: []checkout.AirstripCheckoutRow{},
	}))

	assert.Equal(t, "Young, Zed\n\nNo checkouts.\n", buf.String())
}

func TestRenderAirstrip(t *testing.T) {
	var buf bytes.Buffer
	err := RenderAirstrip(&buf, &dto.AirstripDetailDTO{
		Airstrip:      dto.AirstripDTO{Ident: "WAJW", Label: "WAJW Wamena"},
		AircraftTypes: []string{"PC6"},
		ByPilot: []checkout.PilotCheckoutRow{
			{Username: "amy", Name: "Amy Baker", Aircraft: []bool{false}},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "USERNAME")
	assert.Regexp(t, `amy\s+Amy Baker\s+-`, buf.String())
}
