package domain

import "strings"

// Status is the completion state of a requirement, either as declared in a
// challenge post or as recorded on the remote list.
type Status string

const (
	StatusComplete   Status = "complete"
	StatusOngoing    Status = "ongoing"
	StatusIncomplete Status = "incomplete"
)

// ParseStatus resolves a stored status string. Anything unrecognised,
// including the empty string, resolves to StatusIncomplete.
func ParseStatus(s string) Status {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusComplete:
		return StatusComplete
	case StatusOngoing:
		return StatusOngoing
	default:
		return StatusIncomplete
	}
}

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	return s == StatusComplete || s == StatusOngoing || s == StatusIncomplete
}

// Rank orders statuses for sorting: complete < ongoing < incomplete < unknown.
func (s Status) Rank() int {
	switch s {
	case StatusComplete:
		return 0
	case StatusOngoing:
		return 1
	case StatusIncomplete:
		return 2
	default:
		return 3
	}
}

func (s *Status) UnmarshalText(b []byte) error {
	*s = ParseStatus(string(b))
	return nil
}
