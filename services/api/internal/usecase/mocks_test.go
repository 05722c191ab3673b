package usecase

import (
	"context"
	"sync"
	"time"

	"portfolio/pkg/queue"
	"portfolio/services/api/internal/entity"
	"portfolio/services/api/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

type MockCollectionRepository[D entity.Document] struct {
	mock.Mock
}

func (m *MockCollectionRepository[D]) Create(ctx context.Context, doc D) (D, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		var zero D
		return zero, args.Error(1)
	}
	return args.Get(0).(D), args.Error(1)
}

func (m *MockCollectionRepository[D]) GetByID(ctx context.Context, id string) (D, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		var zero D
		return zero, args.Error(1)
	}
	return args.Get(0).(D), args.Error(1)
}

func (m *MockCollectionRepository[D]) List(ctx context.Context, limit, offset int) ([]D, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]D), args.Error(1)
}

func (m *MockCollectionRepository[D]) Update(ctx context.Context, doc D) (D, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		var zero D
		return zero, args.Error(1)
	}
	return args.Get(0).(D), args.Error(1)
}

func (m *MockCollectionRepository[D]) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCollectionRepository[D]) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockPostRepository struct {
	MockCollectionRepository[*entity.Post]
}

func (m *MockPostRepository) GetBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

var _ persistent.PostRepository = (*MockPostRepository)(nil)
var _ persistent.CollectionRepository[*entity.Project] = (*MockCollectionRepository[*entity.Project])(nil)

type MockVoteRepository struct {
	mock.Mock
}

func (m *MockVoteRepository) GetOrCreate(ctx context.Context, targetID string) (*entity.VoteCounter, error) {
	args := m.Called(ctx, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VoteCounter), args.Error(1)
}

func (m *MockVoteRepository) Increment(ctx context.Context, targetID string, likes, dislikes int64) (*entity.VoteCounter, error) {
	args := m.Called(ctx, targetID, likes, dislikes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VoteCounter), args.Error(1)
}

var _ persistent.VoteRepository = (*MockVoteRepository)(nil)

type change struct {
	collection string
	action     string
	id         string
}

type recordingNotifier struct {
	mu      sync.Mutex
	changes []change
}

func (n *recordingNotifier) ContentChanged(_ context.Context, collection, action, id string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.changes = append(n.changes, change{collection, action, id})
}

type fakeRevoker struct {
	revoked map[string]time.Duration
	err     error
}

func (f *fakeRevoker) Revoke(_ context.Context, id string, ttl time.Duration) error {
	if f.err != nil {
		return f.err
	}
	if f.revoked == nil {
		f.revoked = map[string]time.Duration{}
	}
	f.revoked[id] = ttl
	return nil
}

type fakePublisher struct {
	events []queue.ContentChanged
	err    error
}

func (f *fakePublisher) PublishContentChanged(_ context.Context, event queue.ContentChanged) error {
	f.events = append(f.events, event)
	return f.err
}

type fakeRevalidator struct {
	calls chan string
	err   error
}

func (f *fakeRevalidator) Trigger(_ context.Context, collection string) error {
	f.calls <- collection
	return f.err
}
