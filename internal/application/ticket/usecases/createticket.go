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

type CreateTicketCommand struct {
	RequesterID   uint
	RequesterName *string
	AssigneeID    *uint
	TopicID       uint
	Priority      string
	Description   string
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	topicRepo  topic.TopicRepository
	txManager  TxManager
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	topicRepo topic.TopicRepository,
	txManager TxManager,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		topicRepo:  topicRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var newTicket *ticket.Ticket
	var liveTopic *topic.Topic
	// The topic check and the insert share one transaction; a topic deleted
	// between the two would otherwise leave a ticket referencing it.
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		// Only active topics accept new tickets. Inactive and missing topics
		// are indistinguishable to the caller on purpose.
		found, err := uc.topicRepo.FindActiveByID(txCtx, cmd.TopicID)
		if err != nil {
			uc.logger.Errorw("failed to resolve topic", "topic_id", cmd.TopicID, "error", err)
			return errors.NewInternalError("failed to create ticket")
		}
		if found == nil {
			return errors.NewValidationError("topic not found or inactive")
		}

		t, err := ticket.NewTicket(
			cmd.RequesterID,
			cmd.RequesterName,
			cmd.AssigneeID,
			found.ID(),
			found.Name(),
			priority,
			cmd.Description,
		)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.ticketRepo.Save(txCtx, t); err != nil {
			uc.logger.Errorw("failed to save ticket", "error", err)
			return errors.NewInternalError("failed to create ticket")
		}
		newTicket = t
		liveTopic = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("ticket created",
		"ticket_id", newTicket.ID(),
		"requester_id", newTicket.RequesterID(),
		"topic_id", liveTopic.ID(),
		"priority", priority.String(),
	)
	return dto.ToTicketDTO(newTicket, liveTopic), nil
}
