package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/shared/errors"
)

type CreateTicketRequest struct {
	RequesterID   uint    `json:"requester_id" binding:"required,gt=0"`
	RequesterName *string `json:"requester_name" binding:"omitempty,max=255"`
	AssigneeID    *uint   `json:"assignee_id" binding:"omitempty,gt=0"`
	TopicID       uint    `json:"topic_id" binding:"required,gt=0"`
	Priority      string  `json:"priority" binding:"required,oneof=low medium high"`
	Description   string  `json:"description" binding:"required"`
}

func (r *CreateTicketRequest) ToCommand() usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		RequesterID:   r.RequesterID,
		RequesterName: r.RequesterName,
		AssigneeID:    r.AssigneeID,
		TopicID:       r.TopicID,
		Priority:      r.Priority,
		Description:   r.Description,
	}
}

type UpdateTicketRequest struct {
	AssigneeID *uint   `json:"assignee_id" binding:"omitempty,gt=0"`
	Status     *string `json:"status" binding:"omitempty,oneof=created in_progress completed"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID uint) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:   ticketID,
		AssigneeID: r.AssigneeID,
		Status:     r.Status,
	}
}

type ListTicketsRequest struct {
	Status        *string
	RequesterID   *uint
	RequesterName *string
	AssigneeID    *uint
}

func (r *ListTicketsRequest) ToQuery() usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		Status:        r.Status,
		RequesterID:   r.RequesterID,
		RequesterName: r.RequesterName,
		AssigneeID:    r.AssigneeID,
	}
}

func parseListTicketsRequest(c *gin.Context) (*ListTicketsRequest, error) {
	req := &ListTicketsRequest{}

	if v := c.Query("status"); v != "" {
		req.Status = &v
	}
	if v := c.Query("requester_name"); v != "" {
		req.RequesterName = &v
	}
	if v := c.Query("requester_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("invalid requester_id filter")
		}
		requesterID := uint(id)
		req.RequesterID = &requesterID
	}
	if v := c.Query("assignee_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("invalid assignee_id filter")
		}
		assigneeID := uint(id)
		req.AssigneeID = &assigneeID
	}

	return req, nil
}
