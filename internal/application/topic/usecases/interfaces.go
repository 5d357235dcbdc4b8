package usecases

import (
	"context"

	"helpdesk/internal/application/topic/dto"
)

// TxManager runs a function inside a database transaction. The transaction
// travels in the context so that repositories participate transparently.
type TxManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ListActiveTopicsExecutor interface {
	Execute(ctx context.Context) (*ListActiveTopicsResult, error)
}

type CreateTopicExecutor interface {
	Execute(ctx context.Context, cmd CreateTopicCommand) (*dto.TopicDTO, error)
}

type UpdateTopicExecutor interface {
	Execute(ctx context.Context, cmd UpdateTopicCommand) (*dto.TopicDTO, error)
}

type DeleteTopicExecutor interface {
	Execute(ctx context.Context, cmd DeleteTopicCommand) error
}
