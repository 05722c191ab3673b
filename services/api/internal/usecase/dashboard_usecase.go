package usecase

import (
	"context"
	"fmt"

	"portfolio/services/api/internal/entity"
)

type Counter interface {
	Count(ctx context.Context) (int64, error)
}

type DashboardUseCase interface {
	Stats(ctx context.Context) (*entity.DashboardStats, error)
}

type dashboardUseCase struct {
	collections map[string]Counter
	votes       VoteUseCase
}

func NewDashboardUseCase(collections map[string]Counter, votes VoteUseCase) DashboardUseCase {
	return &dashboardUseCase{collections: collections, votes: votes}
}

func (uc *dashboardUseCase) Stats(ctx context.Context) (*entity.DashboardStats, error) {
	stats := &entity.DashboardStats{Collections: make(map[string]int64, len(uc.collections))}
	for name, counter := range uc.collections {
		n, err := counter.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", name, err)
		}
		stats.Collections[name] = n
	}

	ratings, err := uc.votes.Get(ctx, entity.SiteTarget)
	if err != nil {
		return nil, err
	}
	stats.Ratings = *ratings
	return stats, nil
}
