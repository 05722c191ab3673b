package http

import (
	"context"
	"mime/multipart"

	"portfolio/services/api/internal/entity"
	"portfolio/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// MockCollectionUseCase is a mock implementation of CollectionUseCase
type MockCollectionUseCase[D entity.Document] struct {
	mock.Mock
}

func (m *MockCollectionUseCase[D]) List(ctx context.Context, page usecase.Page) ([]D, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]D), args.Error(1)
}

func (m *MockCollectionUseCase[D]) Get(ctx context.Context, id string) (D, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		var zero D
		return zero, args.Error(1)
	}
	return args.Get(0).(D), args.Error(1)
}

func (m *MockCollectionUseCase[D]) Create(ctx context.Context, doc D) (D, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		var zero D
		return zero, args.Error(1)
	}
	return args.Get(0).(D), args.Error(1)
}

func (m *MockCollectionUseCase[D]) Update(ctx context.Context, doc D) (D, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		var zero D
		return zero, args.Error(1)
	}
	return args.Get(0).(D), args.Error(1)
}

func (m *MockCollectionUseCase[D]) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCollectionUseCase[D]) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

var _ usecase.ProjectUseCase = (*MockCollectionUseCase[*entity.Project])(nil)

type MockPostUseCase struct {
	MockCollectionUseCase[*entity.Post]
}

func (m *MockPostUseCase) GetBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

var _ usecase.PostUseCase = (*MockPostUseCase)(nil)

type MockVoteUseCase struct {
	mock.Mock
}

func (m *MockVoteUseCase) Get(ctx context.Context, targetID string) (*entity.VoteCounter, error) {
	args := m.Called(ctx, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VoteCounter), args.Error(1)
}

func (m *MockVoteUseCase) Vote(ctx context.Context, targetID string, action entity.VoteAction) (*entity.VoteCounter, error) {
	args := m.Called(ctx, targetID, action)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VoteCounter), args.Error(1)
}

var _ usecase.VoteUseCase = (*MockVoteUseCase)(nil)

type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Login(ctx context.Context, password string) (*entity.AdminSession, error) {
	args := m.Called(ctx, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AdminSession), args.Error(1)
}

func (m *MockAuthUseCase) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

var _ usecase.AuthUseCase = (*MockAuthUseCase)(nil)

type MockDashboardUseCase struct {
	mock.Mock
}

func (m *MockDashboardUseCase) Stats(ctx context.Context) (*entity.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DashboardStats), args.Error(1)
}

var _ usecase.DashboardUseCase = (*MockDashboardUseCase)(nil)

type MockUploadUseCase struct {
	mock.Mock
}

func (m *MockUploadUseCase) Upload(ctx context.Context, file *multipart.FileHeader) (string, error) {
	args := m.Called(ctx, file)
	return args.String(0), args.Error(1)
}

var _ usecase.UploadUseCase = (*MockUploadUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
