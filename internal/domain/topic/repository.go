package topic

import "context"

type TopicRepository interface {
	Save(ctx context.Context, topic *Topic) error
	Update(ctx context.Context, topic *Topic) error
	// Delete physically removes the topic row. Detaching referencing tickets
	// is the caller's responsibility and must happen in the same transaction.
	Delete(ctx context.Context, id uint) error
	// FindByID returns (nil, nil) when the topic does not exist.
	FindByID(ctx context.Context, id uint) (*Topic, error)
	// FindActiveByID returns (nil, nil) unless the topic exists and is active.
	FindActiveByID(ctx context.Context, id uint) (*Topic, error)
	// FindByName matches the exact name regardless of the active flag.
	FindByName(ctx context.Context, name string) (*Topic, error)
	FindByIDs(ctx context.Context, ids []uint) ([]*Topic, error)
	ListActive(ctx context.Context) ([]*Topic, error)
}
