package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/cotracker/cotracker/internal/application/checkout/dto"
)

const (
	checkedMark   = "x"
	uncheckedMark = "-"
)

// RenderPilot writes the pilot's checkout matrix: one row per airstrip,
// one column per aircraft type.
func RenderPilot(w io.Writer, detail *dto.PilotDetailDTO) error {
	if _, err := fmt.Fprintf(w, "%s\n\n", detail.Pilot.Label); err != nil {
		return err
	}
	if len(detail.ByAirstrip) == 0 {
		_, err := fmt.Fprintln(w, "No checkouts.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := append([]string{"IDENT", "AIRSTRIP"}, detail.AircraftTypes...)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range detail.ByAirstrip {
		cells := append([]string{row.Ident, row.Name}, marks(row.Aircraft)...)
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

// RenderAirstrip writes the airstrip's matrix: one row per pilot.
func RenderAirstrip(w io.Writer, detail *dto.AirstripDetailDTO) error {
	if _, err := fmt.Fprintf(w, "%s\n\n", detail.Airstrip.Label); err != nil {
		return err
	}
	if len(detail.ByPilot) == 0 {
		_, err := fmt.Fprintln(w, "No checkouts.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := append([]string{"USERNAME", "PILOT"}, detail.AircraftTypes...)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range detail.ByPilot {
		cells := append([]string{row.Username, row.Name}, marks(row.Aircraft)...)
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func marks(aircraft []bool) []string {
	out := make([]string, len(aircraft))
	for i, ok := range aircraft {
		if ok {
			out[i] = checkedMark
		} else {
			out[i] = uncheckedMark
		}
	}
	return out
}
