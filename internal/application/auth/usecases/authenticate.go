package usecases

import (
	"context"

	"helpdesk/internal/application/auth/dto"
	"helpdesk/internal/domain/account"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type AuthenticateCommand struct {
	AccountSID string
	APIKey     string
}

// KeyVerifier compares a presented secret against a stored one-way hash.
type KeyVerifier interface {
	Verify(secret, hash string) error
}

type AuthenticateUseCase struct {
	accountRepo account.AccountRepository
	apiKeyRepo  account.APIKeyRepository
	verifier    KeyVerifier
	logger      logger.Interface
}

func NewAuthenticateUseCase(
	accountRepo account.AccountRepository,
	apiKeyRepo account.APIKeyRepository,
	verifier KeyVerifier,
	logger logger.Interface,
) *AuthenticateUseCase {
	return &AuthenticateUseCase{
		accountRepo: accountRepo,
		apiKeyRepo:  apiKeyRepo,
		verifier:    verifier,
		logger:      logger,
	}
}

func (uc *AuthenticateUseCase) Execute(ctx context.Context, cmd AuthenticateCommand) (*dto.AccountDTO, error) {
	if cmd.AccountSID == "" || cmd.APIKey == "" {
		return nil, errors.NewUnauthorizedError("missing credentials")
	}

	acc, err := uc.accountRepo.FindBySID(ctx, cmd.AccountSID)
	if err != nil {
		uc.logger.Errorw("failed to look up account", "error", err)
		return nil, errors.NewInternalError("failed to look up account")
	}
	if acc == nil {
		uc.logger.Warnw("authentication failed: unknown account sid")
		return nil, errors.NewUnauthorizedError("invalid account sid")
	}

	keys, err := uc.apiKeyRepo.FindActiveByAccountID(ctx, acc.ID())
	if err != nil {
		uc.logger.Errorw("failed to load api keys", "account_id", acc.ID(), "error", err)
		return nil, errors.NewInternalError("failed to load api keys")
	}
	if len(keys) == 0 {
		uc.logger.Warnw("authentication failed: no active api keys", "account_id", acc.ID())
		return nil, errors.NewUnauthorizedError("no active api key found for this account")
	}

	// Any active key matching the presented secret authenticates the
	// request; this is what makes key rotation seamless.
	for _, key := range keys {
		if uc.verifier.Verify(cmd.APIKey, key.KeyHash()) == nil {
			return dto.ToAccountDTO(acc), nil
		}
	}

	uc.logger.Warnw("authentication failed: no matching api key", "account_id", acc.ID())
	return nil, errors.NewUnauthorizedError("invalid api key")
}
