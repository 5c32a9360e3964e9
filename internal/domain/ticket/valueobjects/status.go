package valueobjects

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state of a ticket. States are totally ordered
// and advance monotonically; CLOSED is terminal.
type Status string

const (
	StatusOpen       Status = "OPEN"
	StatusInProgress Status = "IN_PROGRESS"
	StatusResolved   Status = "RESOLVED"
	StatusClosed     Status = "CLOSED"
)

var validStatuses = map[Status]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
}

// statusTransitions is the full transition table. Each state has exactly
// one allowed successor; CLOSED has none.
var statusTransitions = map[Status][]Status{
	StatusOpen:       {StatusInProgress},
	StatusInProgress: {StatusResolved},
	StatusResolved:   {StatusClosed},
	StatusClosed:     {},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// AllowedNext returns the statuses reachable from s in a single
// transition. The result is empty for CLOSED.
func (s Status) AllowedNext() []Status {
	allowed := statusTransitions[s]
	out := make([]Status, len(allowed))
	copy(out, allowed)
	return out
}

// AllowedNextString renders the reachable statuses for error messages,
// stating explicitly that none remain for a terminal status.
func (s Status) AllowedNextString() string {
	allowed := statusTransitions[s]
	if len(allowed) == 0 {
		return fmt.Sprintf("none (ticket is %s)", s)
	}
	names := make([]string, len(allowed))
	for i, st := range allowed {
		names[i] = st.String()
	}
	return strings.Join(names, ", ")
}

func (s Status) IsOpen() bool {
	return s == StatusOpen
}

func (s Status) IsInProgress() bool {
	return s == StatusInProgress
}

func (s Status) IsResolved() bool {
	return s == StatusResolved
}

func (s Status) IsClosed() bool {
	return s == StatusClosed
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return st, nil
}
