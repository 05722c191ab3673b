package persistent

import (
	"context"

	"portfolio/services/api/internal/entity"
	"portfolio/services/api/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepository interface {
	CollectionRepository[*entity.Post]
	GetBySlug(ctx context.Context, slug string) (*entity.Post, error)
}

type postRepository struct {
	*crudRepository[*entity.Post, model.PostModel]
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{&crudRepository[*entity.Post, model.PostModel]{
		db:       db,
		order:    []clause.OrderByColumn{desc("date"), desc("created_at")},
		toEntity: ToPostEntity,
		toModel:  ToPostModel,
	}}
}

func (r *postRepository) GetBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	var m model.PostModel
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&m).Error; err != nil {
		return nil, translate(err)
	}
	return ToPostEntity(&m), nil
}

func NewCertificateRepository(db *gorm.DB) CollectionRepository[*entity.Certificate] {
	return &crudRepository[*entity.Certificate, model.CertificateModel]{
		db:       db,
		order:    []clause.OrderByColumn{desc("issue_date"), desc("created_at")},
		toEntity: ToCertificateEntity,
		toModel:  ToCertificateModel,
	}
}

func NewEducationRepository(db *gorm.DB) CollectionRepository[*entity.Education] {
	return &crudRepository[*entity.Education, model.EducationModel]{
		db:       db,
		order:    []clause.OrderByColumn{desc("created_at")},
		toEntity: ToEducationEntity,
		toModel:  ToEducationModel,
	}
}

func NewExperienceRepository(db *gorm.DB) CollectionRepository[*entity.Experience] {
	return &crudRepository[*entity.Experience, model.ExperienceModel]{
		db:       db,
		order:    []clause.OrderByColumn{desc("created_at")},
		toEntity: ToExperienceEntity,
		toModel:  ToExperienceModel,
	}
}

func NewProjectRepository(db *gorm.DB) CollectionRepository[*entity.Project] {
	return &crudRepository[*entity.Project, model.ProjectModel]{
		db:       db,
		order:    []clause.OrderByColumn{desc("created_at")},
		toEntity: ToProjectEntity,
		toModel:  ToProjectModel,
	}
}

func NewReviewRepository(db *gorm.DB) CollectionRepository[*entity.Review] {
	return &crudRepository[*entity.Review, model.ReviewModel]{
		db:       db,
		order:    []clause.OrderByColumn{desc("created_at")},
		toEntity: ToReviewEntity,
		toModel:  ToReviewModel,
	}
}
