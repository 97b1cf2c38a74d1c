package types

// SponsorshipStatus says whether a paid placement slot is open.
type SponsorshipStatus string

const (
	StatusAvailable SponsorshipStatus = "available"
	StatusReserved  SponsorshipStatus = "reserved"
	StatusSold      SponsorshipStatus = "sold"
)

// SponsorshipStatuses lists every accepted status value.
var SponsorshipStatuses = []SponsorshipStatus{StatusAvailable, StatusReserved, StatusSold}

// String returns the string form of the status.
func (s SponsorshipStatus) String() string { return string(s) }

// Valid reports whether s is one of the enumerated statuses.
func (s SponsorshipStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusSold:
		return true
	}
	return false
}

// Label returns the display form of the status; an empty status renders as a dash.
func (s SponsorshipStatus) Label() string {
	switch s {
	case StatusAvailable:
		return "Available"
	case StatusReserved:
		return "Reserved"
	case StatusSold:
		return "Sold"
	case "":
		return "—"
	}
	return string(s)
}

// Sponsorship is a cluster's sponsorship slot for one practice.
type Sponsorship struct {
	Status        SponsorshipStatus `json:"status"`
	SponsorID     *string           `json:"sponsor_id,omitempty"`
	EffectiveDate *string           `json:"effective_date,omitempty"`
}

// SponsorshipView is the availability and price of one practice in a cluster.
type SponsorshipView struct {
	Status     SponsorshipStatus // empty when the cluster has no sponsorship entry
	MonthlyUSD *float64          // nil when the cluster has no pricing entry
	SetupUSD   float64
}
