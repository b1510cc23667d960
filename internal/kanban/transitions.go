// Package kanban defines the applicant board for employers.
//
// Valid status graph:
//
//	pending ──► reviewing ──► interviewed ──► hired
//	   │            │              │
//	   └────────────┴──────────────┴──► rejected
//
// hired and rejected are terminal states.
package kanban

import "fmt"

// Status values mirror the application_status column.
type Status string

const (
	StatusPending     Status = "pending"
	StatusReviewing   Status = "reviewing"
	StatusInterviewed Status = "interviewed"
	StatusHired       Status = "hired"
	StatusRejected    Status = "rejected"
)

// AllStatuses lists every status in board order.
var AllStatuses = []Status{
	StatusPending,
	StatusReviewing,
	StatusInterviewed,
	StatusHired,
	StatusRejected,
}

// validTransitions lists every allowed (from → to) pair.
var validTransitions = map[Status][]Status{
	StatusPending:     {StatusReviewing, StatusRejected},
	StatusReviewing:   {StatusInterviewed, StatusRejected},
	StatusInterviewed: {StatusHired, StatusRejected},
}

// ParseStatus converts a raw string to a Status, returning an error for
// unknown values. Matching is case-sensitive.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusPending, StatusReviewing, StatusInterviewed, StatusHired, StatusRejected:
		return st, nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// IsTransitionAllowed returns true when moving from → to is permitted.
func IsTransitionAllowed(from, to Status) bool {
	allowed, ok := validTransitions[from]
	if !ok {
		return false // terminal
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal returns true for hired and rejected.
func IsTerminal(s Status) bool { return s == StatusHired || s == StatusRejected }
