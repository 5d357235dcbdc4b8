package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/account"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
)

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(gormDB *gorm.DB) account.AccountRepository {
	return &accountRepository{db: gormDB}
}

func (r *accountRepository) Save(ctx context.Context, acc *account.Account) error {
	model := mappers.AccountToModel(acc)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}

	if acc.ID() == 0 {
		if err := acc.SetID(model.ID); err != nil {
			return fmt.Errorf("failed to set account ID: %w", err)
		}
	}
	return nil
}

func (r *accountRepository) FindBySID(ctx context.Context, sid string) (*account.Account, error) {
	var model models.AccountModel
	err := db.GetTxFromContext(ctx, r.db).Where("sid = ?", sid).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find account by sid: %w", err)
	}
	return mappers.AccountToDomain(&model)
}

func (r *accountRepository) FindByID(ctx context.Context, id uint) (*account.Account, error) {
	var model models.AccountModel
	err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find account by id: %w", err)
	}
	return mappers.AccountToDomain(&model)
}

type apiKeyRepository struct {
	db *gorm.DB
}

func NewAPIKeyRepository(gormDB *gorm.DB) account.APIKeyRepository {
	return &apiKeyRepository{db: gormDB}
}

func (r *apiKeyRepository) Save(ctx context.Context, key *account.APIKey) error {
	model := mappers.APIKeyToModel(key)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save api key: %w", err)
	}

	if key.ID() == 0 {
		if err := key.SetID(model.ID); err != nil {
			return fmt.Errorf("failed to set api key ID: %w", err)
		}
	}
	return nil
}

func (r *apiKeyRepository) Update(ctx context.Context, key *account.APIKey) error {
	model := mappers.APIKeyToModel(key)

	result := db.GetTxFromContext(ctx, r.db).Model(&models.APIKeyModel{}).
		Where("id = ?", key.ID()).
		Updates(map[string]interface{}{
			"active": model.Active,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update api key: %w", result.Error)
	}
	return nil
}

func (r *apiKeyRepository) FindActiveByAccountID(ctx context.Context, accountID uint) ([]*account.APIKey, error) {
	var keyModels []models.APIKeyModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("account_id = ? AND active = ?", accountID, true).
		Find(&keyModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find active api keys: %w", err)
	}

	keys := make([]*account.APIKey, 0, len(keyModels))
	for i := range keyModels {
		key, err := mappers.APIKeyToDomain(&keyModels[i])
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}
