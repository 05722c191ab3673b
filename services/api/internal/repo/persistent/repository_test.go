package persistent

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"portfolio/pkg/database"
	"portfolio/services/api/internal/entity"
	"portfolio/services/api/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewSQLiteDB(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String()))
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newProject(title string) *entity.Project {
	return &entity.Project{
		Title:       title,
		Description: "A project",
		URL:         "https://example.com/" + title,
		Category:    entity.CategoryWebsite,
		Status:      entity.StatusPlanned,
		Date:        time.Now(),
	}
}

func TestCollectionRepository_CreateAndGet(t *testing.T) {
	repo := NewProjectRepository(setupTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, newProject("Demo"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Demo", got.Title)
	assert.Equal(t, entity.CategoryWebsite, got.Category)
}

func TestCollectionRepository_GetByID_NotFound(t *testing.T) {
	repo := NewProjectRepository(setupTestDB(t))
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New().String())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollectionRepository_ListOrderAndPaging(t *testing.T) {
	repo := NewProjectRepository(setupTestDB(t))
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		_, err := repo.Create(ctx, newProject(title))
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	all, err := repo.List(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "third", all[0].Title)
	assert.Equal(t, "first", all[2].Title)

	page, err := repo.List(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "second", page[0].Title)

	tail, err := repo.List(ctx, 0, 2)
	require.NoError(t, err)
	require.Len(t, tail, 1)
	assert.Equal(t, "first", tail[0].Title)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestCollectionRepository_UpdateReplacesFields(t *testing.T) {
	repo := NewProjectRepository(setupTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, newProject("Demo"))
	require.NoError(t, err)
	created.Featured = true

	created.Title = "Demo2"
	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "Demo2", updated.Title)
	assert.True(t, updated.Featured)
	assert.WithinDuration(t, created.CreatedAt, updated.CreatedAt, time.Millisecond)

	updated.Featured = false
	again, err := repo.Update(ctx, updated)
	require.NoError(t, err)
	assert.False(t, again.Featured)
}

func TestCollectionRepository_UpdateMissing(t *testing.T) {
	repo := NewProjectRepository(setupTestDB(t))
	ctx := context.Background()

	p := newProject("ghost")
	p.ID = uuid.New().String()
	_, err := repo.Update(ctx, p)
	assert.ErrorIs(t, err, ErrNotFound)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCollectionRepository_DeleteIsIdempotent(t *testing.T) {
	repo := NewReviewRepository(setupTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, &entity.Review{Name: "Ana", Role: "CTO", Company: "Acme", Text: "Great"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))
	require.NoError(t, repo.Delete(ctx, created.ID))
	require.NoError(t, repo.Delete(ctx, "garbage"))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostRepository_SlugIsUnique(t *testing.T) {
	repo := NewPostRepository(setupTestDB(t))
	ctx := context.Background()

	post := &entity.Post{Title: "Hello", Slug: "hello", Excerpt: "e", Content: "c", Date: time.Now(), Tags: []string{"go", "gin"}}
	created, err := repo.Create(ctx, post)
	require.NoError(t, err)

	dup := &entity.Post{Title: "Again", Slug: "hello", Excerpt: "e", Content: "c", Date: time.Now()}
	_, err = repo.Create(ctx, dup)
	assert.ErrorIs(t, err, ErrDuplicate)

	bySlug, err := repo.GetBySlug(ctx, "hello")
	require.NoError(t, err)
	assert.Equal(t, created.ID, bySlug.ID)
	assert.Equal(t, []string{"go", "gin"}, bySlug.Tags)

	_, err = repo.GetBySlug(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostRepository_OrderedByDate(t *testing.T) {
	repo := NewPostRepository(setupTestDB(t))
	ctx := context.Background()

	older := &entity.Post{Title: "Old", Slug: "old", Excerpt: "e", Content: "c", Date: time.Now().AddDate(0, -1, 0)}
	newer := &entity.Post{Title: "New", Slug: "new", Excerpt: "e", Content: "c", Date: time.Now()}
	_, err := repo.Create(ctx, newer)
	require.NoError(t, err)
	_, err = repo.Create(ctx, older)
	require.NoError(t, err)

	posts, err := repo.List(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "new", posts[0].Slug)
	assert.Equal(t, "old", posts[1].Slug)
}

func TestListFieldsDefaultToEmpty(t *testing.T) {
	repo := NewExperienceRepository(setupTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, &entity.Experience{
		Title: "Engineer", Company: "Acme", Location: "Remote", Period: "2020-2024", Type: entity.ExperienceFullTime,
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.Achievements)
	assert.NotNil(t, got.Technologies)
	assert.Empty(t, got.Achievements)
}

func TestVoteRepository_GetOrCreate(t *testing.T) {
	repo := NewVoteRepository(setupTestDB(t))
	ctx := context.Background()

	counter, err := repo.GetOrCreate(ctx, "post-1")
	require.NoError(t, err)
	assert.Equal(t, "post-1", counter.TargetID)
	assert.Zero(t, counter.Likes)
	assert.Zero(t, counter.Dislikes)

	again, err := repo.GetOrCreate(ctx, "post-1")
	require.NoError(t, err)
	assert.Equal(t, counter.TargetID, again.TargetID)
}

func TestVoteRepository_Increment(t *testing.T) {
	repo := NewVoteRepository(setupTestDB(t))
	ctx := context.Background()

	counter, err := repo.Increment(ctx, "post-1", 1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counter.Likes)
	assert.Equal(t, int64(0), counter.Dislikes)

	counter, err = repo.Increment(ctx, "post-1", 0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counter.Likes)
	assert.Equal(t, int64(1), counter.Dislikes)

	other, err := repo.GetOrCreate(ctx, "post-2")
	require.NoError(t, err)
	assert.Zero(t, other.Likes)
}

func TestVoteRepository_ConcurrentIncrements(t *testing.T) {
	repo := NewVoteRepository(setupTestDB(t))
	ctx := context.Background()

	_, err := repo.GetOrCreate(ctx, entity.SiteTarget)
	require.NoError(t, err)

	const voters = 25
	var wg sync.WaitGroup
	errs := make(chan error, voters)
	for i := 0; i < voters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.Increment(ctx, entity.SiteTarget, 1, 0); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	counter, err := repo.GetOrCreate(ctx, entity.SiteTarget)
	require.NoError(t, err)
	assert.Equal(t, int64(voters), counter.Likes)
	assert.Zero(t, counter.Dislikes)
}
