package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"portfolio/pkg/cache"
	"portfolio/pkg/logger"
	"portfolio/services/api/internal/entity"
	"portfolio/services/api/internal/repo/persistent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCollection_ListIsCachedUntilWrite(t *testing.T) {
	repo := new(MockCollectionRepository[*entity.Project])
	notifier := &recordingNotifier{}
	uc := NewProjectUseCase(repo, cache.NewMemory(time.Minute), notifier, logger.New())
	ctx := context.Background()

	projects := []*entity.Project{{ID: "p1", Title: "Demo"}}
	repo.On("List", ctx, 10, 0).Return(projects, nil).Twice()

	first, err := uc.List(ctx, Page{Limit: 10})
	require.NoError(t, err)
	second, err := uc.List(ctx, Page{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, first, second)
	repo.AssertNumberOfCalls(t, "List", 1)

	repo.On("Delete", ctx, "p1").Return(nil).Once()
	require.NoError(t, uc.Delete(ctx, "p1"))

	_, err = uc.List(ctx, Page{Limit: 10})
	require.NoError(t, err)
	repo.AssertNumberOfCalls(t, "List", 2)

	require.Len(t, notifier.changes, 1)
	assert.Equal(t, change{entity.CollectionProjects, ActionDeleted, "p1"}, notifier.changes[0])
}

func TestCollection_ListWithoutCache(t *testing.T) {
	repo := new(MockCollectionRepository[*entity.Review])
	uc := NewReviewUseCase(repo, nil, nil, logger.New())
	ctx := context.Background()

	repo.On("List", ctx, 0, 0).Return([]*entity.Review{}, nil).Twice()

	_, err := uc.List(ctx, Page{})
	require.NoError(t, err)
	_, err = uc.List(ctx, Page{})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCollection_ListErrorIsNotCached(t *testing.T) {
	repo := new(MockCollectionRepository[*entity.Review])
	uc := NewReviewUseCase(repo, cache.NewMemory(time.Minute), nil, logger.New())
	ctx := context.Background()

	repo.On("List", ctx, 0, 0).Return(nil, errors.New("db down")).Once()
	repo.On("List", ctx, 0, 0).Return([]*entity.Review{{ID: "r1"}}, nil).Once()

	_, err := uc.List(ctx, Page{})
	assert.Error(t, err)

	reviews, err := uc.List(ctx, Page{})
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
}

func TestCollection_CreateAppliesDefaults(t *testing.T) {
	repo := new(MockCollectionRepository[*entity.Project])
	notifier := &recordingNotifier{}
	uc := NewProjectUseCase(repo, cache.NewMemory(time.Minute), notifier, logger.New())
	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(p *entity.Project) bool {
		return p.Category == entity.CategoryWebsite && p.Status == entity.StatusPlanned && !p.Date.IsZero()
	})).Return(&entity.Project{ID: "p1", Title: "Demo"}, nil)

	created, err := uc.Create(ctx, &entity.Project{Title: "Demo", Description: "d", URL: "https://x"})
	require.NoError(t, err)
	assert.Equal(t, "p1", created.ID)
	assert.Equal(t, []change{{entity.CollectionProjects, ActionCreated, "p1"}}, notifier.changes)
	repo.AssertExpectations(t)
}

func TestCollection_ErrorMapping(t *testing.T) {
	repo := new(MockCollectionRepository[*entity.Project])
	notifier := &recordingNotifier{}
	uc := NewProjectUseCase(repo, nil, notifier, logger.New())
	ctx := context.Background()

	repo.On("GetByID", ctx, "missing").Return(nil, persistent.ErrNotFound)
	_, err := uc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	ghost := &entity.Project{ID: "ghost"}
	repo.On("Update", ctx, ghost).Return(nil, persistent.ErrNotFound)
	_, err = uc.Update(ctx, ghost)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Empty(t, notifier.changes)
}

func TestPost_ConflictAndSlug(t *testing.T) {
	repo := new(MockPostRepository)
	uc := NewPostUseCase(repo, nil, nil, logger.New())
	ctx := context.Background()

	repo.On("Create", ctx, mock.Anything).Return(nil, persistent.ErrDuplicate)
	_, err := uc.Create(ctx, &entity.Post{Slug: "hello"})
	assert.ErrorIs(t, err, ErrConflict)

	repo.On("GetBySlug", ctx, "hello").Return(&entity.Post{ID: "b1", Slug: "hello"}, nil)
	post, err := uc.GetBySlug(ctx, "hello")
	require.NoError(t, err)
	assert.Equal(t, "b1", post.ID)

	repo.On("GetBySlug", ctx, "nope").Return(nil, persistent.ErrNotFound)
	_, err = uc.GetBySlug(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollection_UpdateNotifies(t *testing.T) {
	repo := new(MockCollectionRepository[*entity.Education])
	notifier := &recordingNotifier{}
	uc := NewEducationUseCase(repo, nil, notifier, logger.New())
	ctx := context.Background()

	doc := &entity.Education{ID: "e1", Degree: "BSc"}
	repo.On("Update", ctx, doc).Return(doc, nil)

	updated, err := uc.Update(ctx, doc)
	require.NoError(t, err)
	assert.Equal(t, "BSc", updated.Degree)
	assert.Equal(t, []change{{entity.CollectionEducation, ActionUpdated, "e1"}}, notifier.changes)
}

func TestCollection_UpdateAppliesDefaults(t *testing.T) {
	repo := new(MockCollectionRepository[*entity.Project])
	uc := NewProjectUseCase(repo, nil, nil, logger.New())
	ctx := context.Background()

	date := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	repo.On("Update", ctx, mock.MatchedBy(func(p *entity.Project) bool {
		return p.Category == entity.CategoryWebsite && p.Status == entity.StatusPlanned && p.Date.Equal(date)
	})).Return(&entity.Project{ID: "p1", Category: entity.CategoryWebsite, Status: entity.StatusPlanned}, nil)

	updated, err := uc.Update(ctx, &entity.Project{ID: "p1", Title: "Demo", Date: date})
	require.NoError(t, err)
	assert.Equal(t, entity.CategoryWebsite, updated.Category)
	repo.AssertExpectations(t)
}

func TestCollection_ListOverlappingWriteIsNotCached(t *testing.T) {
	repo := new(MockCollectionRepository[*entity.Project])
	uc := NewProjectUseCase(repo, cache.NewMemory(time.Minute), nil, logger.New())
	ctx := context.Background()

	loading := make(chan struct{})
	release := make(chan struct{})
	repo.On("List", ctx, 0, 0).Run(func(mock.Arguments) {
		close(loading)
		<-release
	}).Return([]*entity.Project{{ID: "p1"}}, nil).Once()
	repo.On("List", ctx, 0, 0).Return([]*entity.Project{}, nil).Once()
	repo.On("Delete", ctx, "p1").Return(nil).Once()

	done := make(chan []*entity.Project)
	go func() {
		docs, _ := uc.List(ctx, Page{})
		done <- docs
	}()

	<-loading
	require.NoError(t, uc.Delete(ctx, "p1"))
	close(release)
	assert.Len(t, <-done, 1)

	docs, err := uc.List(ctx, Page{})
	require.NoError(t, err)
	assert.Empty(t, docs)
	repo.AssertExpectations(t)
}
