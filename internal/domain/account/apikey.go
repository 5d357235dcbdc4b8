package account

import (
	"fmt"
	"time"
)

// APIKey stores a one-way hash of an account secret. An account may hold
// several active keys at once (current plus rotated); revocation flips the
// active flag rather than deleting the row.
type APIKey struct {
	id        uint
	accountID uint
	keyHash   string
	active    bool
	createdAt time.Time
}

func NewAPIKey(accountID uint, keyHash string) (*APIKey, error) {
	if accountID == 0 {
		return nil, fmt.Errorf("account ID is required")
	}
	if len(keyHash) == 0 {
		return nil, fmt.Errorf("key hash is required")
	}

	return &APIKey{
		accountID: accountID,
		keyHash:   keyHash,
		active:    true,
		createdAt: time.Now(),
	}, nil
}

func ReconstructAPIKey(id, accountID uint, keyHash string, active bool, createdAt time.Time) (*APIKey, error) {
	if id == 0 {
		return nil, fmt.Errorf("api key ID cannot be zero")
	}
	if accountID == 0 {
		return nil, fmt.Errorf("account ID is required")
	}
	if len(keyHash) == 0 {
		return nil, fmt.Errorf("key hash is required")
	}

	return &APIKey{
		id:        id,
		accountID: accountID,
		keyHash:   keyHash,
		active:    active,
		createdAt: createdAt,
	}, nil
}

func (k *APIKey) ID() uint {
	return k.id
}

func (k *APIKey) AccountID() uint {
	return k.accountID
}

func (k *APIKey) KeyHash() string {
	return k.keyHash
}

func (k *APIKey) IsActive() bool {
	return k.active
}

func (k *APIKey) CreatedAt() time.Time {
	return k.createdAt
}

// Deactivate revokes the key. Deactivated keys stay in storage so that the
// audit trail of rotations is preserved.
func (k *APIKey) Deactivate() {
	k.active = false
}

func (k *APIKey) SetID(id uint) error {
	if k.id != 0 {
		return fmt.Errorf("api key ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("api key ID cannot be zero")
	}
	k.id = id
	return nil
}
