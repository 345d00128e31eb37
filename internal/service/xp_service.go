package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/engagement/internal/error_values"
	"github.com/limbo/engagement/internal/metrics"
	"github.com/limbo/engagement/internal/repository"
	"github.com/limbo/engagement/internal/streak"
	"github.com/limbo/engagement/pkg/entity"
)

type XPService struct {
	repo   repository.XPRepositoryI
	clocks map[string]streak.Clock
	locks  *streamLocks
	now    func() time.Time
}

func NewXPService(repo repository.XPRepositoryI, configs []entity.ExperienceConfiguration) (*XPService, error) {
	if repo == nil {
		log.Fatal("on xp service provided nil repo")
	}
	clocks := make(map[string]streak.Clock, len(configs))
	for _, cfg := range configs {
		if err := ValidateExperienceConfiguration(cfg); err != nil {
			return nil, fmt.Errorf("experience %q: %w", cfg.ExperienceKey, err)
		}
		if _, dup := clocks[cfg.ExperienceKey]; dup {
			return nil, fmt.Errorf("%w: duplicate experience key %q", errorvalues.ErrInvalidConfiguration, cfg.ExperienceKey)
		}
		loc, _ := cfg.Location()
		clocks[cfg.ExperienceKey] = streak.NewClock(loc, cfg.LeewayHours)
	}
	return &XPService{
		repo:   repo,
		clocks: clocks,
		locks:  newStreamLocks(),
		now:    time.Now,
	}, nil
}

func (xs *XPService) WithClock(now func() time.Time) *XPService {
	xs.now = now
	return xs
}

func (xs *XPService) clock(experienceKey string) (streak.Clock, error) {
	clock, ok := xs.clocks[experienceKey]
	if !ok {
		return streak.Clock{}, fmt.Errorf("%w: %q", errorvalues.ErrUnknownStream, experienceKey)
	}
	return clock, nil
}

func (xs *XPService) AddXP(ctx context.Context, userID, experienceKey string, req *AddXPRequest) (*entity.XPEvent, error) {
	if userID == "" {
		return nil, errorvalues.ErrEmptyUserID
	}
	if _, err := xs.clock(experienceKey); err != nil {
		return nil, err
	}
	if req == nil {
		req = &AddXPRequest{}
	}
	if err := validateStruct(req, errorvalues.ErrValidation); err != nil {
		return nil, err
	}
	metadata, err := req.Metadata.Normalize()
	if err != nil {
		return nil, err
	}
	now := xs.now()
	event := entity.XPEvent{
		ID:            req.ID,
		ExperienceKey: experienceKey,
		UserID:        userID,
		Points:        req.Points,
		OccurredAt:    now,
		Metadata:      metadata,
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if req.OccurredAt != nil {
		if req.OccurredAt.After(now) {
			return nil, errorvalues.ErrEventDateNotAllowed
		}
		event.OccurredAt = *req.OccurredAt
	}

	lock, release := xs.locks.acquire(userID, experienceKey)
	defer release()
	lock.Lock()
	defer lock.Unlock()
	if err = xs.repo.Create(ctx, &event); err != nil {
		return nil, err
	}
	metrics.IncEvent("xp")
	return &event, nil
}

func (xs *XPService) Recalculate(ctx context.Context, userID, experienceKey string) (*entity.XPSnapshot, error) {
	if userID == "" {
		return nil, errorvalues.ErrEmptyUserID
	}
	clock, err := xs.clock(experienceKey)
	if err != nil {
		return nil, err
	}
	lock, release := xs.locks.acquire(userID, experienceKey)
	defer release()
	lock.RLock()
	events, err := xs.repo.ListByKey(ctx, userID, experienceKey)
	lock.RUnlock()
	if err != nil {
		return nil, err
	}
	now := xs.now()
	totals := streak.SummarizeXP(events, clock, now)
	snapshot := &entity.XPSnapshot{
		ExperienceKey:    experienceKey,
		UserID:           userID,
		PointsAllTime:    totals.PointsAllTime,
		PointsToday:      totals.PointsToday,
		EventsTodayCount: totals.EventsTodayCount,
		DateLastEvent:    totals.DateLastEvent,
		DateCreated:      totals.DateFirstEvent,
	}
	oldestRecent := clock.Day(now) - RecentWindowDays + 1
	for _, e := range events {
		if clock.Day(e.OccurredAt) >= oldestRecent {
			snapshot.RecentEvents = append(snapshot.RecentEvents, e)
		}
	}
	return snapshot, nil
}

func (xs *XPService) GetEvents(ctx context.Context, userID, experienceKey, field string, equals any) ([]entity.XPEvent, error) {
	if userID == "" {
		return nil, errorvalues.ErrEmptyUserID
	}
	if _, err := xs.clock(experienceKey); err != nil {
		return nil, err
	}
	lock, release := xs.locks.acquire(userID, experienceKey)
	defer release()
	lock.RLock()
	events, err := xs.repo.ListByKey(ctx, userID, experienceKey)
	lock.RUnlock()
	if err != nil {
		return nil, err
	}
	if field == "" {
		return events, nil
	}
	filtered := make([]entity.XPEvent, 0, len(events))
	for _, e := range events {
		if e.Metadata.Matches(field, equals) {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

func (xs *XPService) DeleteAllEvents(ctx context.Context, userID, experienceKey string) (int64, error) {
	if userID == "" {
		return 0, errorvalues.ErrEmptyUserID
	}
	if _, err := xs.clock(experienceKey); err != nil {
		return 0, err
	}
	lock, release := xs.locks.acquire(userID, experienceKey)
	defer release()
	lock.Lock()
	defer lock.Unlock()
	return xs.repo.DeleteByKey(ctx, userID, experienceKey)
}
