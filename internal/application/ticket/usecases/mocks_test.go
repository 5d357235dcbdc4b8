package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/topic"
)

type mockTxManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type txStamp struct{}

// stampingTxManager marks the context it hands to fn so tests can assert a
// repository call ran inside the transaction.
func stampingTxManager() *mockTxManager {
	return &mockTxManager{
		RunInTransactionFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(context.WithValue(ctx, txStamp{}, true))
		},
	}
}

func inTx(ctx context.Context) bool {
	stamped, _ := ctx.Value(txStamp{}).(bool)
	return stamped
}

type mockTicketRepository struct {
	SaveFunc        func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc      func(ctx context.Context, t *ticket.Ticket) error
	FindByIDFunc    func(ctx context.Context, id uint) (*ticket.Ticket, error)
	ListFunc        func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error)
	DetachTopicFunc func(ctx context.Context, topicID uint) error
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockTicketRepository) DetachTopic(ctx context.Context, topicID uint) error {
	if m.DetachTopicFunc != nil {
		return m.DetachTopicFunc(ctx, topicID)
	}
	return nil
}

type mockTopicRepository struct {
	SaveFunc           func(ctx context.Context, t *topic.Topic) error
	UpdateFunc         func(ctx context.Context, t *topic.Topic) error
	DeleteFunc         func(ctx context.Context, id uint) error
	FindByIDFunc       func(ctx context.Context, id uint) (*topic.Topic, error)
	FindActiveByIDFunc func(ctx context.Context, id uint) (*topic.Topic, error)
	FindByNameFunc     func(ctx context.Context, name string) (*topic.Topic, error)
	FindByIDsFunc      func(ctx context.Context, ids []uint) ([]*topic.Topic, error)
	ListActiveFunc     func(ctx context.Context) ([]*topic.Topic, error)
}

func (m *mockTopicRepository) Save(ctx context.Context, t *topic.Topic) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTopicRepository) Update(ctx context.Context, t *topic.Topic) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTopicRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTopicRepository) FindByID(ctx context.Context, id uint) (*topic.Topic, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTopicRepository) FindActiveByID(ctx context.Context, id uint) (*topic.Topic, error) {
	if m.FindActiveByIDFunc != nil {
		return m.FindActiveByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTopicRepository) FindByName(ctx context.Context, name string) (*topic.Topic, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockTopicRepository) FindByIDs(ctx context.Context, ids []uint) ([]*topic.Topic, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockTopicRepository) ListActive(ctx context.Context) ([]*topic.Topic, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}
