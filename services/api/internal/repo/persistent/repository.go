package persistent

import (
	"context"
	"errors"
	"fmt"

	"portfolio/services/api/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// CollectionRepository stores one content collection.
type CollectionRepository[D entity.Document] interface {
	Create(ctx context.Context, doc D) (D, error)
	GetByID(ctx context.Context, id string) (D, error)
	List(ctx context.Context, limit, offset int) ([]D, error)
	Update(ctx context.Context, doc D) (D, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type crudRepository[D entity.Document, M any] struct {
	db       *gorm.DB
	order    []clause.OrderByColumn
	toEntity func(*M) D
	toModel  func(D) *M
}

func desc(column string) clause.OrderByColumn {
	return clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: true}
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}
	return err
}

// validID reports whether id can match a row. Postgres rejects non-uuid literals
// against uuid columns, so they are filtered before the query.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func (r *crudRepository[D, M]) Create(ctx context.Context, doc D) (D, error) {
	m := r.toModel(doc)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		var zero D
		return zero, translate(err)
	}
	return r.toEntity(m), nil
}

func (r *crudRepository[D, M]) GetByID(ctx context.Context, id string) (D, error) {
	var zero D
	if !validID(id) {
		return zero, ErrNotFound
	}

	var m M
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return zero, translate(err)
	}
	return r.toEntity(&m), nil
}

func (r *crudRepository[D, M]) List(ctx context.Context, limit, offset int) ([]D, error) {
	query := r.db.WithContext(ctx).Clauses(clause.OrderBy{Columns: r.order})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var models []M
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	docs := make([]D, len(models))
	for i := range models {
		docs[i] = r.toEntity(&models[i])
	}
	return docs, nil
}

// Update replaces every column except id and created_at.
func (r *crudRepository[D, M]) Update(ctx context.Context, doc D) (D, error) {
	var zero D
	id := doc.GetID()
	if !validID(id) {
		return zero, ErrNotFound
	}

	m := r.toModel(doc)
	result := r.db.WithContext(ctx).Model(m).Select("*").Omit("id", "created_at").Updates(m)
	if result.Error != nil {
		return zero, translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return zero, ErrNotFound
	}

	return r.GetByID(ctx, id)
}

// Delete is a no-op for unknown ids.
func (r *crudRepository[D, M]) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return nil
	}
	var m M
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&m).Error
}

func (r *crudRepository[D, M]) Count(ctx context.Context) (int64, error) {
	var m M
	var count int64
	err := r.db.WithContext(ctx).Model(&m).Count(&count).Error
	return count, err
}
