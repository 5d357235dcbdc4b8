package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/topic"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/markdown"
)

type GetTicketQuery struct {
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	topicRepo  topic.TopicRepository
	markdown   markdown.MarkdownService
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	topicRepo topic.TopicRepository,
	markdownSvc markdown.MarkdownService,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		topicRepo:  topicRepo,
		markdown:   markdownSvc,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	found, err := uc.ticketRepo.FindByID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to find ticket", "ticket_id", query.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to get ticket")
	}
	if found == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	var liveTopic *topic.Topic
	if found.TopicID() != nil {
		liveTopic, err = uc.topicRepo.FindByID(ctx, *found.TopicID())
		if err != nil {
			uc.logger.Errorw("failed to resolve topic", "topic_id", *found.TopicID(), "error", err)
			return nil, errors.NewInternalError("failed to get ticket")
		}
	}

	result := dto.ToTicketDTO(found, liveTopic)

	// Rendering is best effort; a malformed description never blocks reads.
	if rendered, err := uc.markdown.ToHTMLSanitized(found.Description()); err == nil {
		result.DescriptionHTML = rendered
	} else {
		uc.logger.Warnw("failed to render ticket description", "ticket_id", found.ID(), "error", err)
	}

	return result, nil
}
