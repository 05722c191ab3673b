package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"portfolio/pkg/cache"
	"portfolio/pkg/logger"
	"portfolio/services/api/internal/entity"
	"portfolio/services/api/internal/repo/persistent"
)

// Page selects a window of a collection. Zero values mean no bound.
type Page struct {
	Limit  int
	Offset int
}

type CollectionUseCase[D entity.Document] interface {
	List(ctx context.Context, page Page) ([]D, error)
	Get(ctx context.Context, id string) (D, error)
	Create(ctx context.Context, doc D) (D, error)
	Update(ctx context.Context, doc D) (D, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type (
	CertificateUseCase = CollectionUseCase[*entity.Certificate]
	EducationUseCase   = CollectionUseCase[*entity.Education]
	ExperienceUseCase  = CollectionUseCase[*entity.Experience]
	ProjectUseCase     = CollectionUseCase[*entity.Project]
	ReviewUseCase      = CollectionUseCase[*entity.Review]
)

type PostUseCase interface {
	CollectionUseCase[*entity.Post]
	GetBySlug(ctx context.Context, slug string) (*entity.Post, error)
}

type collectionUseCase[D entity.Document] struct {
	name     string
	repo     persistent.CollectionRepository[D]
	cache    *cache.Memory
	notifier ChangeNotifier
	logger   *logger.Logger
	now      func() time.Time
}

func newCollectionUseCase[D entity.Document](
	name string,
	repo persistent.CollectionRepository[D],
	listCache *cache.Memory,
	notifier ChangeNotifier,
	logger *logger.Logger,
) *collectionUseCase[D] {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &collectionUseCase[D]{
		name:     name,
		repo:     repo,
		cache:    listCache,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

func NewCertificateUseCase(repo persistent.CollectionRepository[*entity.Certificate], listCache *cache.Memory, notifier ChangeNotifier, logger *logger.Logger) CertificateUseCase {
	return newCollectionUseCase(entity.CollectionCertificates, repo, listCache, notifier, logger)
}

func NewEducationUseCase(repo persistent.CollectionRepository[*entity.Education], listCache *cache.Memory, notifier ChangeNotifier, logger *logger.Logger) EducationUseCase {
	return newCollectionUseCase(entity.CollectionEducation, repo, listCache, notifier, logger)
}

func NewExperienceUseCase(repo persistent.CollectionRepository[*entity.Experience], listCache *cache.Memory, notifier ChangeNotifier, logger *logger.Logger) ExperienceUseCase {
	return newCollectionUseCase(entity.CollectionExperience, repo, listCache, notifier, logger)
}

func NewProjectUseCase(repo persistent.CollectionRepository[*entity.Project], listCache *cache.Memory, notifier ChangeNotifier, logger *logger.Logger) ProjectUseCase {
	return newCollectionUseCase(entity.CollectionProjects, repo, listCache, notifier, logger)
}

func NewReviewUseCase(repo persistent.CollectionRepository[*entity.Review], listCache *cache.Memory, notifier ChangeNotifier, logger *logger.Logger) ReviewUseCase {
	return newCollectionUseCase(entity.CollectionReviews, repo, listCache, notifier, logger)
}

func mapRepoError(err error) error {
	switch {
	case errors.Is(err, persistent.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, persistent.ErrDuplicate):
		return ErrConflict
	}
	return err
}

func (uc *collectionUseCase[D]) cacheKey(page Page) string {
	return fmt.Sprintf("%s:%d:%d", uc.name, page.Limit, page.Offset)
}

func (uc *collectionUseCase[D]) List(ctx context.Context, page Page) ([]D, error) {
	if uc.cache == nil {
		docs, err := uc.repo.List(ctx, page.Limit, page.Offset)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", uc.name, err)
		}
		return docs, nil
	}

	data, err := uc.cache.GetOrLoad(uc.cacheKey(page), func() (interface{}, error) {
		return uc.repo.List(ctx, page.Limit, page.Offset)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", uc.name, err)
	}
	return data.([]D), nil
}

func (uc *collectionUseCase[D]) Get(ctx context.Context, id string) (D, error) {
	doc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return doc, mapRepoError(err)
	}
	return doc, nil
}

func (uc *collectionUseCase[D]) Create(ctx context.Context, doc D) (D, error) {
	if d, ok := any(doc).(entity.Defaulter); ok {
		d.ApplyDefaults(uc.now())
	}

	created, err := uc.repo.Create(ctx, doc)
	if err != nil {
		return created, mapRepoError(err)
	}

	uc.changed(ctx, ActionCreated, created.GetID())
	return created, nil
}

func (uc *collectionUseCase[D]) Update(ctx context.Context, doc D) (D, error) {
	if d, ok := any(doc).(entity.Defaulter); ok {
		d.ApplyDefaults(uc.now())
	}

	updated, err := uc.repo.Update(ctx, doc)
	if err != nil {
		return updated, mapRepoError(err)
	}

	uc.changed(ctx, ActionUpdated, updated.GetID())
	return updated, nil
}

func (uc *collectionUseCase[D]) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete from %s: %w", uc.name, err)
	}

	uc.changed(ctx, ActionDeleted, id)
	return nil
}

func (uc *collectionUseCase[D]) Count(ctx context.Context) (int64, error) {
	return uc.repo.Count(ctx)
}

func (uc *collectionUseCase[D]) changed(ctx context.Context, action, id string) {
	if uc.cache != nil {
		uc.cache.DeletePrefix(uc.name + ":")
	}
	uc.notifier.ContentChanged(ctx, uc.name, action, id)
}

type postUseCase struct {
	*collectionUseCase[*entity.Post]
	posts persistent.PostRepository
}

func NewPostUseCase(repo persistent.PostRepository, listCache *cache.Memory, notifier ChangeNotifier, logger *logger.Logger) PostUseCase {
	return &postUseCase{
		collectionUseCase: newCollectionUseCase[*entity.Post](entity.CollectionBlog, repo, listCache, notifier, logger),
		posts:             repo,
	}
}

func (uc *postUseCase) GetBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	post, err := uc.posts.GetBySlug(ctx, slug)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return post, nil
}
