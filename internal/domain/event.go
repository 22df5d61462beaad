package domain

import "time"

// Defaults applied when an event is created without the full set of
// optional fields.
const (
	DefaultEligibility = "NA"
	DefaultMode        = "NA"
)

// Event represents a listed exam/admission event. A zero
// RegistrationDate or TestDate means the date was never supplied.
type Event struct {
	ID               string
	Name             string
	Eligibility      string
	Mode             string
	RegistrationDate time.Time
	TestDate         time.Time
}
