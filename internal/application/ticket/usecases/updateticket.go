package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/value_objects"
	"helpdesk/internal/domain/topic"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UpdateTicketCommand struct {
	TicketID   uint
	AssigneeID *uint
	Status     *string
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	topicRepo  topic.TopicRepository
	txManager  TxManager
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	topicRepo topic.TopicRepository,
	txManager TxManager,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		topicRepo:  topicRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// Execute applies assignment before the status change so an assignee supplied
// in the same request satisfies the in_progress guard. Nothing is persisted
// unless every change is accepted.
func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	var newStatus *vo.TicketStatus
	if cmd.Status != nil {
		s, err := vo.NewTicketStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		newStatus = &s
	}

	var existing *ticket.Ticket
	// Read and write share one transaction so concurrent transitions on the
	// same ticket serialize instead of overwriting each other.
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		found, err := uc.ticketRepo.FindByID(txCtx, cmd.TicketID)
		if err != nil {
			uc.logger.Errorw("failed to find ticket", "ticket_id", cmd.TicketID, "error", err)
			return errors.NewInternalError("failed to update ticket")
		}
		if found == nil {
			return errors.NewNotFoundError("ticket not found")
		}

		if cmd.AssigneeID != nil {
			if err := found.Assign(*cmd.AssigneeID); err != nil {
				return errors.NewValidationError(err.Error())
			}
		}

		if newStatus != nil {
			if err := found.ChangeStatus(*newStatus); err != nil {
				return errors.NewInvalidTransitionError(err.Error())
			}
		}

		if err := uc.ticketRepo.Update(txCtx, found); err != nil {
			uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
			return errors.NewInternalError("failed to update ticket")
		}
		existing = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("ticket updated",
		"ticket_id", existing.ID(),
		"status", existing.Status().String(),
	)

	var liveTopic *topic.Topic
	if existing.TopicID() != nil {
		liveTopic, err = uc.topicRepo.FindByID(ctx, *existing.TopicID())
		if err != nil {
			uc.logger.Errorw("failed to resolve topic", "topic_id", *existing.TopicID(), "error", err)
			return nil, errors.NewInternalError("failed to update ticket")
		}
	}
	return dto.ToTicketDTO(existing, liveTopic), nil
}
