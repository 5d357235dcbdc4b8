package account

import "context"

type AccountRepository interface {
	Save(ctx context.Context, account *Account) error
	FindBySID(ctx context.Context, sid string) (*Account, error)
	FindByID(ctx context.Context, id uint) (*Account, error)
}

type APIKeyRepository interface {
	Save(ctx context.Context, key *APIKey) error
	Update(ctx context.Context, key *APIKey) error
	FindActiveByAccountID(ctx context.Context, accountID uint) ([]*APIKey, error)
}
