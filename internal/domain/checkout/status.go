package checkout

// Status selects which side of the checkout matrix a filter query returns.
type Status string

const (
	// StatusCheckedOut ("sudah", already) returns existing checkouts.
	StatusCheckedOut Status = "sudah"
	// StatusNotCheckedOut ("belum", not yet) returns the missing ones.
	StatusNotCheckedOut Status = "belum"

	DefaultStatus = StatusCheckedOut
)

type StatusChoice struct {
	Value Status
	Label string
}

// StatusChoices lists the statuses in display order.
func StatusChoices() []StatusChoice {
	return []StatusChoice{
		{Value: StatusCheckedOut, Label: "Checked out"},
		{Value: StatusNotCheckedOut, Label: "Not checked out"},
	}
}

func (s Status) IsValid() bool {
	return s == StatusCheckedOut || s == StatusNotCheckedOut
}
