package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/topic"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type FinalizeTicketCommand struct {
	TicketID uint
}

type FinalizeTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	topicRepo  topic.TopicRepository
	txManager  TxManager
	logger     logger.Interface
}

func NewFinalizeTicketUseCase(
	ticketRepo ticket.TicketRepository,
	topicRepo topic.TopicRepository,
	txManager TxManager,
	logger logger.Interface,
) *FinalizeTicketUseCase {
	return &FinalizeTicketUseCase{
		ticketRepo: ticketRepo,
		topicRepo:  topicRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *FinalizeTicketUseCase) Execute(ctx context.Context, cmd FinalizeTicketCommand) (*dto.TicketDTO, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	var existing *ticket.Ticket
	// Same transactional read-write as update; two racing finalize calls must
	// not both observe in_progress.
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		found, err := uc.ticketRepo.FindByID(txCtx, cmd.TicketID)
		if err != nil {
			uc.logger.Errorw("failed to find ticket", "ticket_id", cmd.TicketID, "error", err)
			return errors.NewInternalError("failed to finalize ticket")
		}
		if found == nil {
			return errors.NewNotFoundError("ticket not found")
		}

		if err := found.Finalize(); err != nil {
			return errors.NewInvalidTransitionError(err.Error())
		}

		if err := uc.ticketRepo.Update(txCtx, found); err != nil {
			uc.logger.Errorw("failed to finalize ticket", "ticket_id", cmd.TicketID, "error", err)
			return errors.NewInternalError("failed to finalize ticket")
		}
		existing = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("ticket finalized", "ticket_id", existing.ID())

	var liveTopic *topic.Topic
	if existing.TopicID() != nil {
		liveTopic, err = uc.topicRepo.FindByID(ctx, *existing.TopicID())
		if err != nil {
			uc.logger.Errorw("failed to resolve topic", "topic_id", *existing.TopicID(), "error", err)
			return nil, errors.NewInternalError("failed to finalize ticket")
		}
	}
	return dto.ToTicketDTO(existing, liveTopic), nil
}
