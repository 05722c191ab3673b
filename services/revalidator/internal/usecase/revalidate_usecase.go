package usecase

import (
	"context"

	"portfolio/pkg/logger"
	"portfolio/pkg/queue"
)

type Revalidator interface {
	Trigger(ctx context.Context, collection string) error
}

type RevalidateUseCase interface {
	HandleContentChanged(ctx context.Context, event queue.ContentChanged) error
}

type revalidateUseCase struct {
	revalidator Revalidator
	logger      *logger.Logger
}

func NewRevalidateUseCase(revalidator Revalidator, logger *logger.Logger) RevalidateUseCase {
	return &revalidateUseCase{
		revalidator: revalidator,
		logger:      logger,
	}
}

// HandleContentChanged calls the frontend hook once per event. Hook failures are
// logged and the event is still acknowledged.
func (uc *revalidateUseCase) HandleContentChanged(ctx context.Context, event queue.ContentChanged) error {
	uc.logger.Info("[REVALIDATOR] %s %s %s", event.Collection, event.Action, event.ID)

	if err := uc.revalidator.Trigger(ctx, event.Collection); err != nil {
		uc.logger.Error("[REVALIDATOR] Revalidation of %s failed: %v", event.Collection, err)
		return nil
	}

	uc.logger.Info("[REVALIDATOR] Revalidated %s", event.Collection)
	return nil
}
