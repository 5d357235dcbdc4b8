package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
)

// TxManager runs a function inside a database transaction. The transaction
// travels in the context so that repositories participate transparently.
type TxManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error)
}

type FinalizeTicketExecutor interface {
	Execute(ctx context.Context, cmd FinalizeTicketCommand) (*dto.TicketDTO, error)
}
