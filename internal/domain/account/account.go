package account

import (
	"fmt"
	"strings"
	"time"
)

// Account is a tenant identity that authenticates with an account SID plus
// an API key. Accounts are created by seeding and are immutable afterwards;
// only their API keys change over time.
type Account struct {
	id        uint
	sid       string
	name      string
	createdAt time.Time
}

func NewAccount(sid, name string) (*Account, error) {
	sid = strings.TrimSpace(sid)
	if len(sid) == 0 {
		return nil, fmt.Errorf("account sid is required")
	}
	if len(sid) > 255 {
		return nil, fmt.Errorf("account sid exceeds maximum length of 255 characters")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("account name is required")
	}
	if len(name) > 255 {
		return nil, fmt.Errorf("account name exceeds maximum length of 255 characters")
	}

	return &Account{
		sid:       sid,
		name:      name,
		createdAt: time.Now(),
	}, nil
}

func ReconstructAccount(id uint, sid, name string, createdAt time.Time) (*Account, error) {
	if id == 0 {
		return nil, fmt.Errorf("account ID cannot be zero")
	}
	if len(sid) == 0 {
		return nil, fmt.Errorf("account sid is required")
	}

	return &Account{
		id:        id,
		sid:       sid,
		name:      name,
		createdAt: createdAt,
	}, nil
}

func (a *Account) ID() uint {
	return a.id
}

func (a *Account) SID() string {
	return a.sid
}

func (a *Account) Name() string {
	return a.name
}

func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Account) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("account ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("account ID cannot be zero")
	}
	a.id = id
	return nil
}
