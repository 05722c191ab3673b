package usecase

import (
	"context"
	"fmt"
	"strings"

	"portfolio/pkg/logger"
	"portfolio/services/api/internal/entity"
	"portfolio/services/api/internal/repo/persistent"
)

type VoteUseCase interface {
	Get(ctx context.Context, targetID string) (*entity.VoteCounter, error)
	Vote(ctx context.Context, targetID string, action entity.VoteAction) (*entity.VoteCounter, error)
}

type voteUseCase struct {
	voteRepo persistent.VoteRepository
	logger   *logger.Logger
}

func NewVoteUseCase(voteRepo persistent.VoteRepository, logger *logger.Logger) VoteUseCase {
	return &voteUseCase{
		voteRepo: voteRepo,
		logger:   logger,
	}
}

func normalizeTarget(targetID string) (string, error) {
	targetID = strings.TrimSpace(targetID)
	if targetID == "" || len(targetID) > entity.MaxTargetIDLength {
		return "", ErrInvalidTarget
	}
	return targetID, nil
}

// Get returns the counter for targetID, creating it at zero on first read.
func (uc *voteUseCase) Get(ctx context.Context, targetID string) (*entity.VoteCounter, error) {
	targetID, err := normalizeTarget(targetID)
	if err != nil {
		return nil, err
	}

	counter, err := uc.voteRepo.GetOrCreate(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("failed to load votes for %s: %w", targetID, err)
	}
	return counter, nil
}

func (uc *voteUseCase) Vote(ctx context.Context, targetID string, action entity.VoteAction) (*entity.VoteCounter, error) {
	targetID, err := normalizeTarget(targetID)
	if err != nil {
		return nil, err
	}
	if !action.Valid() {
		return nil, ErrInvalidAction
	}

	likes, dislikes := action.Delta()
	counter, err := uc.voteRepo.Increment(ctx, targetID, likes, dislikes)
	if err != nil {
		return nil, fmt.Errorf("failed to record %s for %s: %w", action, targetID, err)
	}

	uc.logger.Info("Vote %s recorded for %s (likes=%d dislikes=%d)", action, targetID, counter.Likes, counter.Dislikes)
	return counter, nil
}
