package mappers

import (
	"fmt"
	"time"

	"helpdesk/internal/domain/account"
	"helpdesk/internal/infrastructure/persistence/models"
)

func AccountToModel(a *account.Account) *models.AccountModel {
	return &models.AccountModel{
		ID:        a.ID(),
		SID:       a.SID(),
		Name:      a.Name(),
		CreatedAt: a.CreatedAt().UnixMilli(),
	}
}

func AccountToDomain(m *models.AccountModel) (*account.Account, error) {
	acc, err := account.ReconstructAccount(
		m.ID,
		m.SID,
		m.Name,
		time.UnixMilli(m.CreatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct account %d: %w", m.ID, err)
	}
	return acc, nil
}

func APIKeyToModel(k *account.APIKey) *models.APIKeyModel {
	return &models.APIKeyModel{
		ID:        k.ID(),
		AccountID: k.AccountID(),
		KeyHash:   k.KeyHash(),
		Active:    k.IsActive(),
		CreatedAt: k.CreatedAt().UnixMilli(),
	}
}

func APIKeyToDomain(m *models.APIKeyModel) (*account.APIKey, error) {
	key, err := account.ReconstructAPIKey(
		m.ID,
		m.AccountID,
		m.KeyHash,
		m.Active,
		time.UnixMilli(m.CreatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct api key %d: %w", m.ID, err)
	}
	return key, nil
}
