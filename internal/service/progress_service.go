package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	errorvalues "github.com/limbo/engagement/internal/error_values"
	"github.com/limbo/engagement/internal/repository"
	"github.com/limbo/engagement/internal/streak"
	"github.com/limbo/engagement/pkg/entity"
)

type ProgressService struct {
	repo  repository.ProgressRepositoryI
	keys  map[string]struct{}
	locks *streamLocks
	now   func() time.Time
}

func NewProgressService(repo repository.ProgressRepositoryI, configs []entity.ProgressConfiguration) (*ProgressService, error) {
	if repo == nil {
		log.Fatal("on progress service provided nil repo")
	}
	keys := make(map[string]struct{}, len(configs))
	for _, cfg := range configs {
		if err := ValidateProgressConfiguration(cfg); err != nil {
			return nil, fmt.Errorf("progress %q: %w", cfg.ProgressKey, err)
		}
		if _, dup := keys[cfg.ProgressKey]; dup {
			return nil, fmt.Errorf("%w: duplicate progress key %q", errorvalues.ErrInvalidConfiguration, cfg.ProgressKey)
		}
		keys[cfg.ProgressKey] = struct{}{}
	}
	return &ProgressService{
		repo:  repo,
		keys:  keys,
		locks: newStreamLocks(),
		now:   time.Now,
	}, nil
}

func (ps *ProgressService) WithClock(now func() time.Time) *ProgressService {
	ps.now = now
	return ps
}

func (ps *ProgressService) check(userID, progressKey string) error {
	if userID == "" {
		return errorvalues.ErrEmptyUserID
	}
	if _, ok := ps.keys[progressKey]; !ok {
		return fmt.Errorf("%w: %q", errorvalues.ErrUnknownStream, progressKey)
	}
	return nil
}

func (ps *ProgressService) SetProgress(ctx context.Context, userID, progressKey string, req *SetProgressRequest) (*entity.ProgressItem, error) {
	if err := ps.check(userID, progressKey); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, fmt.Errorf("%w: empty progress request", errorvalues.ErrValidation)
	}
	if err := validateStruct(req, errorvalues.ErrValidation); err != nil {
		return nil, err
	}
	value, err := entity.ClampProgress(req.Value)
	if err != nil {
		return nil, err
	}
	metadata, err := req.Metadata.Normalize()
	if err != nil {
		return nil, err
	}

	lock, release := ps.locks.acquire(userID, progressKey)
	defer release()
	lock.Lock()
	defer lock.Unlock()
	now := ps.now()
	item := entity.ProgressItem{
		ID:           req.ID,
		ProgressKey:  progressKey,
		UserID:       userID,
		Value:        value,
		Metadata:     metadata,
		DateCreated:  now,
		DateModified: now,
	}
	existing, err := ps.repo.GetByID(ctx, userID, progressKey, req.ID)
	switch {
	case err == nil:
		item.DateCreated = existing.DateCreated
	case !errors.Is(err, errorvalues.ErrProgressNotFound):
		return nil, err
	}
	if err = ps.repo.Upsert(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (ps *ProgressService) GetProgress(ctx context.Context, userID, progressKey, id string) (*entity.ProgressItem, error) {
	if err := ps.check(userID, progressKey); err != nil {
		return nil, err
	}
	lock, release := ps.locks.acquire(userID, progressKey)
	defer release()
	lock.RLock()
	defer lock.RUnlock()
	return ps.repo.GetByID(ctx, userID, progressKey, id)
}

func (ps *ProgressService) ListProgress(ctx context.Context, userID, progressKey string) ([]entity.ProgressItem, error) {
	if err := ps.check(userID, progressKey); err != nil {
		return nil, err
	}
	lock, release := ps.locks.acquire(userID, progressKey)
	defer release()
	lock.RLock()
	defer lock.RUnlock()
	return ps.repo.ListByKey(ctx, userID, progressKey)
}

func (ps *ProgressService) MaxProgress(ctx context.Context, userID, progressKey, field string, equals any) (float64, error) {
	items, err := ps.ListProgress(ctx, userID, progressKey)
	if err != nil {
		return 0, err
	}
	best, _ := streak.MaxProgress(items, field, equals)
	return best, nil
}

func (ps *ProgressService) DeleteProgress(ctx context.Context, userID, progressKey, id string) error {
	if err := ps.check(userID, progressKey); err != nil {
		return err
	}
	lock, release := ps.locks.acquire(userID, progressKey)
	defer release()
	lock.Lock()
	defer lock.Unlock()
	return ps.repo.Delete(ctx, userID, progressKey, id)
}

func (ps *ProgressService) DeleteAllProgress(ctx context.Context, userID, progressKey string) (int64, error) {
	if err := ps.check(userID, progressKey); err != nil {
		return 0, err
	}
	lock, release := ps.locks.acquire(userID, progressKey)
	defer release()
	lock.Lock()
	defer lock.Unlock()
	return ps.repo.DeleteByKey(ctx, userID, progressKey)
}
