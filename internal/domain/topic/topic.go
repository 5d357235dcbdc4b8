package topic

import (
	"fmt"
	"strings"
	"time"
)

// Topic is a named ticket category. Names are unique across all topics,
// active or not; the uniqueness itself is enforced by the storage layer.
type Topic struct {
	id        uint
	name      string
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

func NewTopic(name string) (*Topic, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Topic{
		name:      name,
		active:    true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructTopic(id uint, name string, active bool, createdAt, updatedAt time.Time) (*Topic, error) {
	if id == 0 {
		return nil, fmt.Errorf("topic ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("topic name is required")
	}

	return &Topic{
		id:        id,
		name:      name,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (t *Topic) ID() uint {
	return t.id
}

func (t *Topic) Name() string {
	return t.name
}

func (t *Topic) IsActive() bool {
	return t.active
}

func (t *Topic) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Topic) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Topic) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("topic ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("topic ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Topic) Rename(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	t.name = name
	t.updatedAt = time.Now()
	return nil
}

func (t *Topic) SetActive(active bool) {
	t.active = active
	t.updatedAt = time.Now()
}

func validateName(name string) error {
	if len(strings.TrimSpace(name)) == 0 {
		return fmt.Errorf("topic name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("topic name exceeds maximum length of 100 characters")
	}
	return nil
}
