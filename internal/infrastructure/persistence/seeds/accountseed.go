// Package seeds bootstraps initial data. There is no sign-up flow; accounts
// and their first API key are provisioned from the command line.
package seeds

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/account"
	"helpdesk/internal/shared/logger"
)

type KeyHasher interface {
	Hash(secret string) (string, error)
}

type KeyGenerator func() (string, error)

type AccountSeeder struct {
	accountRepo account.AccountRepository
	apiKeyRepo  account.APIKeyRepository
	hasher      KeyHasher
	generate    KeyGenerator
	logger      logger.Interface
}

func NewAccountSeeder(
	accountRepo account.AccountRepository,
	apiKeyRepo account.APIKeyRepository,
	hasher KeyHasher,
	generate KeyGenerator,
	logger logger.Interface,
) *AccountSeeder {
	return &AccountSeeder{
		accountRepo: accountRepo,
		apiKeyRepo:  apiKeyRepo,
		hasher:      hasher,
		generate:    generate,
		logger:      logger,
	}
}

// Seed provisions the account and one active API key. Re-running with an
// existing sid keeps the account and issues an additional key, so credentials
// rotate without revoking the old key first. The plain key is returned
// exactly once; only its hash is persisted.
func (s *AccountSeeder) Seed(ctx context.Context, sid, name string) (string, error) {
	existing, err := s.accountRepo.FindBySID(ctx, sid)
	if err != nil {
		return "", fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		plainKey, err := s.issueKey(ctx, existing.ID())
		if err != nil {
			return "", err
		}
		s.logger.Infow("api key rotated", "account_id", existing.ID(), "sid", existing.SID())
		return plainKey, nil
	}

	acc, err := account.NewAccount(sid, name)
	if err != nil {
		return "", fmt.Errorf("invalid account: %w", err)
	}
	if err := s.accountRepo.Save(ctx, acc); err != nil {
		return "", fmt.Errorf("failed to save account: %w", err)
	}

	plainKey, err := s.issueKey(ctx, acc.ID())
	if err != nil {
		return "", err
	}

	s.logger.Infow("account seeded", "account_id", acc.ID(), "sid", acc.SID())
	return plainKey, nil
}

func (s *AccountSeeder) issueKey(ctx context.Context, accountID uint) (string, error) {
	plainKey, err := s.generate()
	if err != nil {
		return "", err
	}
	hash, err := s.hasher.Hash(plainKey)
	if err != nil {
		return "", fmt.Errorf("failed to hash api key: %w", err)
	}

	key, err := account.NewAPIKey(accountID, hash)
	if err != nil {
		return "", fmt.Errorf("invalid api key: %w", err)
	}
	if err := s.apiKeyRepo.Save(ctx, key); err != nil {
		return "", fmt.Errorf("failed to save api key: %w", err)
	}
	return plainKey, nil
}
