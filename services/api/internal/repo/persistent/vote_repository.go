package persistent

import (
	"context"
	"time"

	"portfolio/services/api/internal/entity"
	"portfolio/services/api/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VoteRepository interface {
	GetOrCreate(ctx context.Context, targetID string) (*entity.VoteCounter, error)
	Increment(ctx context.Context, targetID string, likes, dislikes int64) (*entity.VoteCounter, error)
}

type voteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

// GetOrCreate inserts a zero counter when none exists, then reads it back.
func (r *voteRepository) GetOrCreate(ctx context.Context, targetID string) (*entity.VoteCounter, error) {
	db := r.db.WithContext(ctx)

	counter := &model.VoteCounterModel{TargetID: targetID}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "target_id"}},
		DoNothing: true,
	}).Create(counter).Error; err != nil {
		return nil, err
	}

	var stored model.VoteCounterModel
	if err := db.Where("target_id = ?", targetID).First(&stored).Error; err != nil {
		return nil, translate(err)
	}
	return ToVoteCounterEntity(&stored), nil
}

// Increment adds the deltas in a single upsert so concurrent votes never
// overwrite each other.
func (r *voteRepository) Increment(ctx context.Context, targetID string, likes, dislikes int64) (*entity.VoteCounter, error) {
	var stored model.VoteCounterModel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		counter := &model.VoteCounterModel{TargetID: targetID, Likes: likes, Dislikes: dislikes}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "target_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"likes":      gorm.Expr("vote_counters.likes + ?", likes),
				"dislikes":   gorm.Expr("vote_counters.dislikes + ?", dislikes),
				"updated_at": time.Now(),
			}),
		}).Create(counter).Error; err != nil {
			return err
		}

		return tx.Where("target_id = ?", targetID).First(&stored).Error
	})
	if err != nil {
		return nil, translate(err)
	}

	return ToVoteCounterEntity(&stored), nil
}
