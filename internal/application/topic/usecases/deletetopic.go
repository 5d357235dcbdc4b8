package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/topic"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteTopicCommand struct {
	TopicID uint
}

type DeleteTopicUseCase struct {
	topicRepo  topic.TopicRepository
	ticketRepo ticket.TicketRepository
	txManager  TxManager
	logger     logger.Interface
}

func NewDeleteTopicUseCase(
	topicRepo topic.TopicRepository,
	ticketRepo ticket.TicketRepository,
	txManager TxManager,
	logger logger.Interface,
) *DeleteTopicUseCase {
	return &DeleteTopicUseCase{
		topicRepo:  topicRepo,
		ticketRepo: ticketRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// Execute removes the topic row for good. Tickets keep their name snapshot;
// only the live reference is cleared, and both writes commit together.
func (uc *DeleteTopicUseCase) Execute(ctx context.Context, cmd DeleteTopicCommand) error {
	if cmd.TopicID == 0 {
		return errors.NewValidationError("topic ID is required")
	}

	existing, err := uc.topicRepo.FindByID(ctx, cmd.TopicID)
	if err != nil {
		uc.logger.Errorw("failed to find topic", "topic_id", cmd.TopicID, "error", err)
		return errors.NewInternalError("failed to delete topic")
	}
	if existing == nil {
		return errors.NewNotFoundError("topic not found")
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.DetachTopic(txCtx, cmd.TopicID); err != nil {
			return err
		}
		return uc.topicRepo.Delete(txCtx, cmd.TopicID)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete topic", "topic_id", cmd.TopicID, "error", err)
		return errors.NewInternalError("failed to delete topic")
	}

	uc.logger.Infow("topic deleted", "topic_id", cmd.TopicID, "name", existing.Name())
	return nil
}
