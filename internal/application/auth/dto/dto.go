package dto

import (
	"time"

	"helpdesk/internal/domain/account"
)

type AccountDTO struct {
	ID        uint      `json:"id"`
	SID       string    `json:"sid"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func ToAccountDTO(a *account.Account) *AccountDTO {
	if a == nil {
		return nil
	}
	return &AccountDTO{
		ID:        a.ID(),
		SID:       a.SID(),
		Name:      a.Name(),
		CreatedAt: a.CreatedAt(),
	}
}
