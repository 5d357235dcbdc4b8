package usecases

import (
	"context"

	"helpdesk/internal/domain/account"
)

type mockAccountRepository struct {
	SaveFunc      func(ctx context.Context, acc *account.Account) error
	FindBySIDFunc func(ctx context.Context, sid string) (*account.Account, error)
	FindByIDFunc  func(ctx context.Context, id uint) (*account.Account, error)
}

func (m *mockAccountRepository) Save(ctx context.Context, acc *account.Account) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, acc)
	}
	return nil
}

func (m *mockAccountRepository) FindBySID(ctx context.Context, sid string) (*account.Account, error) {
	if m.FindBySIDFunc != nil {
		return m.FindBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockAccountRepository) FindByID(ctx context.Context, id uint) (*account.Account, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

type mockAPIKeyRepository struct {
	SaveFunc                  func(ctx context.Context, key *account.APIKey) error
	UpdateFunc                func(ctx context.Context, key *account.APIKey) error
	FindActiveByAccountIDFunc func(ctx context.Context, accountID uint) ([]*account.APIKey, error)
}

func (m *mockAPIKeyRepository) Save(ctx context.Context, key *account.APIKey) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, key)
	}
	return nil
}

func (m *mockAPIKeyRepository) Update(ctx context.Context, key *account.APIKey) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, key)
	}
	return nil
}

func (m *mockAPIKeyRepository) FindActiveByAccountID(ctx context.Context, accountID uint) ([]*account.APIKey, error) {
	if m.FindActiveByAccountIDFunc != nil {
		return m.FindActiveByAccountIDFunc(ctx, accountID)
	}
	return nil, nil
}

type mockKeyVerifier struct {
	VerifyFunc func(secret, hash string) error
}

func (m *mockKeyVerifier) Verify(secret, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(secret, hash)
	}
	return nil
}
