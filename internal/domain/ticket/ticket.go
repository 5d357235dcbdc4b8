package ticket

import (
	"fmt"
	"time"

	vo "helpdesk/internal/domain/ticket/value_objects"
)

// Ticket is a support request bound to a topic. The topic name is copied
// into topicNameSnapshot at creation and never recomputed: if the topic is
// later renamed or deleted, ticket history keeps the original name.
type Ticket struct {
	id                uint
	requesterID       uint
	requesterName     *string
	assigneeID        *uint
	topicID           *uint
	topicNameSnapshot string
	priority          vo.Priority
	status            vo.TicketStatus
	description       string
	createdAt         time.Time
	updatedAt         time.Time
}

// NewTicket creates a ticket in the initial "created" status. The caller is
// responsible for having resolved an existing, active topic; its current
// name is captured here as the immutable snapshot.
func NewTicket(
	requesterID uint,
	requesterName *string,
	assigneeID *uint,
	topicID uint,
	topicName string,
	priority vo.Priority,
	description string,
) (*Ticket, error) {
	if requesterID == 0 {
		return nil, fmt.Errorf("requester ID is required")
	}
	if topicID == 0 {
		return nil, fmt.Errorf("topic ID is required")
	}
	if len(topicName) == 0 {
		return nil, fmt.Errorf("topic name is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}

	now := time.Now()
	return &Ticket{
		requesterID:       requesterID,
		requesterName:     requesterName,
		assigneeID:        assigneeID,
		topicID:           &topicID,
		topicNameSnapshot: topicName,
		priority:          priority,
		status:            vo.StatusCreated,
		description:       description,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

func ReconstructTicket(
	id uint,
	requesterID uint,
	requesterName *string,
	assigneeID *uint,
	topicID *uint,
	topicNameSnapshot string,
	priority vo.Priority,
	status vo.TicketStatus,
	description string,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if requesterID == 0 {
		return nil, fmt.Errorf("requester ID is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Ticket{
		id:                id,
		requesterID:       requesterID,
		requesterName:     requesterName,
		assigneeID:        assigneeID,
		topicID:           topicID,
		topicNameSnapshot: topicNameSnapshot,
		priority:          priority,
		status:            status,
		description:       description,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) RequesterID() uint {
	return t.requesterID
}

func (t *Ticket) RequesterName() *string {
	return t.requesterName
}

func (t *Ticket) AssigneeID() *uint {
	return t.assigneeID
}

func (t *Ticket) TopicID() *uint {
	return t.topicID
}

func (t *Ticket) TopicNameSnapshot() string {
	return t.topicNameSnapshot
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// Assign sets the assignee. There is no validation beyond a non-zero ID;
// the boundary layer checks the value is a positive identifier.
func (t *Ticket) Assign(assigneeID uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}

	t.assigneeID = &assigneeID
	t.updatedAt = time.Now()
	return nil
}

// ChangeStatus applies the transition table. The assignee guard is evaluated
// against the ticket's current assignee, so callers that also assign in the
// same update must call Assign first.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status.IsCompleted() {
		return fmt.Errorf("cannot change status of a completed ticket")
	}

	if !t.status.CanTransitionTo(newStatus) {
		if t.status.IsCreated() && newStatus.IsCompleted() {
			return fmt.Errorf(`cannot transition from "created" to "completed": ticket must be "in_progress" first`)
		}
		return fmt.Errorf("invalid status transition from %q to %q", t.status, newStatus)
	}

	if t.status.IsCreated() && newStatus.IsInProgress() && t.assigneeID == nil {
		return fmt.Errorf(`assignee ID must be provided to move ticket to "in_progress" status`)
	}

	if t.status == newStatus {
		// no-op transition, accepted
		return nil
	}

	t.status = newStatus
	t.updatedAt = time.Now()
	return nil
}

// Finalize is the convenience path to "completed".
func (t *Ticket) Finalize() error {
	if t.status.IsCompleted() {
		return fmt.Errorf("ticket is already completed")
	}
	if !t.status.IsInProgress() {
		return fmt.Errorf("cannot finalize ticket with status %q: ticket must be \"in_progress\" to be finalized", t.status)
	}

	t.status = vo.StatusCompleted
	t.updatedAt = time.Now()
	return nil
}
