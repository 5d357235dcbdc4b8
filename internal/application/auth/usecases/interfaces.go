package usecases

import (
	"context"

	"helpdesk/internal/application/auth/dto"
)

type AuthenticateExecutor interface {
	Execute(ctx context.Context, cmd AuthenticateCommand) (*dto.AccountDTO, error)
}
