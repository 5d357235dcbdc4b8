package ticket

import (
	"context"

	vo "helpdesk/internal/domain/ticket/value_objects"
)

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	// FindByID returns (nil, nil) when the ticket does not exist.
	FindByID(ctx context.Context, id uint) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, error)
	// DetachTopic nulls the topic reference of every ticket bound to the
	// given topic. Snapshots are left untouched; this is what makes physical
	// topic deletion safe for ticket history.
	DetachTopic(ctx context.Context, topicID uint) error
}

// TicketFilter holds optional equality filters combined with logical AND.
type TicketFilter struct {
	Status        *vo.TicketStatus
	RequesterID   *uint
	RequesterName *string
	AssigneeID    *uint
}
