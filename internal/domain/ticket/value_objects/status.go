package value_objects

import "fmt"

// TicketStatus moves monotonically through created → in_progress → completed.
// Self-transitions on the two non-terminal states are accepted as no-ops;
// completed is terminal and admits nothing, not even itself.
type TicketStatus string

const (
	StatusCreated    TicketStatus = "created"
	StatusInProgress TicketStatus = "in_progress"
	StatusCompleted  TicketStatus = "completed"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusCreated:    true,
	StatusInProgress: true,
	StatusCompleted:  true,
}

var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusCreated: {
		StatusCreated,
		StatusInProgress,
	},
	StatusInProgress: {
		StatusInProgress,
		StatusCompleted,
	},
	StatusCompleted: {},
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	allowedTransitions, ok := ticketStatusTransitions[ts]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (ts TicketStatus) IsCreated() bool {
	return ts == StatusCreated
}

func (ts TicketStatus) IsInProgress() bool {
	return ts == StatusInProgress
}

func (ts TicketStatus) IsCompleted() bool {
	return ts == StatusCompleted
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
