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

// RecentWindowDays is how far back snapshot RecentEvents reach, today included.
const RecentWindowDays = 60

// MaxCalendarDays bounds calendar requests.
const MaxCalendarDays = 366

type streamConfig struct {
	cfg    entity.StreakConfiguration
	clock  streak.Clock
	policy streak.FreezePolicy
}

type StreakService struct {
	events  repository.EventsRepositoryI
	freezes repository.FreezesRepositoryI
	streams map[string]streamConfig
	locks   *streamLocks
	now     func() time.Time
}

// NewStreakService validates every configuration up front; a bad one is
// never discovered at calculation time.
func NewStreakService(events repository.EventsRepositoryI, freezes repository.FreezesRepositoryI, configs []entity.StreakConfiguration) (*StreakService, error) {
	if events == nil || freezes == nil {
		log.Fatal("on streak service provided nil repos")
	}
	streams := make(map[string]streamConfig, len(configs))
	for _, cfg := range configs {
		if err := ValidateStreakConfiguration(cfg); err != nil {
			return nil, fmt.Errorf("streak %q: %w", cfg.StreakKey, err)
		}
		if _, dup := streams[cfg.StreakKey]; dup {
			return nil, fmt.Errorf("%w: duplicate streak key %q", errorvalues.ErrInvalidConfiguration, cfg.StreakKey)
		}
		loc, _ := cfg.Location()
		streams[cfg.StreakKey] = streamConfig{
			cfg:    cfg,
			clock:  streak.NewClock(loc, cfg.LeewayHours),
			policy: streak.PolicyFor(cfg.FreezeBehavior),
		}
	}
	return &StreakService{
		events:  events,
		freezes: freezes,
		streams: streams,
		locks:   newStreamLocks(),
		now:     time.Now,
	}, nil
}

// WithClock replaces the reference instant source.
func (ss *StreakService) WithClock(now func() time.Time) *StreakService {
	ss.now = now
	return ss
}

func (ss *StreakService) Configuration(streamKey string) (entity.StreakConfiguration, error) {
	sc, err := ss.stream(streamKey)
	if err != nil {
		return entity.StreakConfiguration{}, err
	}
	return sc.cfg, nil
}

func (ss *StreakService) stream(streamKey string) (streamConfig, error) {
	sc, ok := ss.streams[streamKey]
	if !ok {
		return streamConfig{}, fmt.Errorf("%w: %q", errorvalues.ErrUnknownStream, streamKey)
	}
	return sc, nil
}

func (ss *StreakService) AddEvent(ctx context.Context, userID, streamKey string, req *AddEventRequest) (*entity.EngagementEvent, error) {
	if userID == "" {
		return nil, errorvalues.ErrEmptyUserID
	}
	if _, err := ss.stream(streamKey); err != nil {
		return nil, err
	}
	if req == nil {
		req = &AddEventRequest{}
	}
	if err := validateStruct(req, errorvalues.ErrValidation); err != nil {
		return nil, err
	}
	metadata, err := req.Metadata.Normalize()
	if err != nil {
		return nil, err
	}
	now := ss.now()
	event := entity.EngagementEvent{
		ID:         req.ID,
		StreamKey:  streamKey,
		UserID:     userID,
		OccurredAt: now,
		Metadata:   metadata,
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

	lock, release := ss.locks.acquire(userID, streamKey)
	defer release()
	lock.Lock()
	defer lock.Unlock()
	if err = ss.events.Create(ctx, &event); err != nil {
		return nil, err
	}
	metrics.IncEvent("streak")
	return &event, nil
}

func (ss *StreakService) AddFreeze(ctx context.Context, userID, streamKey string, req *AddFreezeRequest) (*entity.FreezeToken, error) {
	if userID == "" {
		return nil, errorvalues.ErrEmptyUserID
	}
	if _, err := ss.stream(streamKey); err != nil {
		return nil, err
	}
	if req == nil {
		req = &AddFreezeRequest{}
	}
	if err := validateStruct(req, errorvalues.ErrValidation); err != nil {
		return nil, err
	}
	freeze := entity.FreezeToken{
		ID:          req.ID,
		StreamKey:   streamKey,
		UserID:      userID,
		DateCreated: ss.now(),
		DateExpires: req.DateExpires,
	}
	if freeze.ID == "" {
		freeze.ID = uuid.NewString()
	}

	lock, release := ss.locks.acquire(userID, streamKey)
	defer release()
	lock.Lock()
	defer lock.Unlock()
	if err := ss.freezes.Create(ctx, &freeze); err != nil {
		return nil, err
	}
	return &freeze, nil
}

func (ss *StreakService) ListFreezes(ctx context.Context, userID, streamKey string) ([]entity.FreezeToken, error) {
	if userID == "" {
		return nil, errorvalues.ErrEmptyUserID
	}
	if _, err := ss.stream(streamKey); err != nil {
		return nil, err
	}
	lock, release := ss.locks.acquire(userID, streamKey)
	defer release()
	lock.RLock()
	defer lock.RUnlock()
	return ss.freezes.ListByStream(ctx, userID, streamKey)
}

func (ss *StreakService) Recalculate(ctx context.Context, userID, streamKey string) (*entity.StreakSnapshot, error) {
	if userID == "" {
		return nil, errorvalues.ErrEmptyUserID
	}
	sc, err := ss.stream(streamKey)
	if err != nil {
		return nil, err
	}
	lock, release := ss.locks.acquire(userID, streamKey)
	defer release()
	if sc.cfg.FreezeBehavior == entity.AutoConsumeFreezes {
		lock.Lock()
		defer lock.Unlock()
	} else {
		lock.RLock()
		defer lock.RUnlock()
	}
	return ss.recalculate(ctx, userID, sc, ss.now())
}

// recalculate must be called with the stream lock held. Auto bridges are
// persisted before the snapshot is built from the log again, so a second call
// consumes nothing more.
func (ss *StreakService) recalculate(ctx context.Context, userID string, sc streamConfig, now time.Time) (*entity.StreakSnapshot, error) {
	start := time.Now()
	state, err := ss.load(ctx, userID, sc, now)
	if err != nil {
		return nil, err
	}
	res := state.calculate(sc.policy)
	if len(res.Bridges) > 0 {
		if err = ss.applyBridges(ctx, userID, sc, now, res.Bridges); err != nil {
			return nil, err
		}
		metrics.AddFreezesConsumed("auto", len(res.Bridges))
		if state, err = ss.load(ctx, userID, sc, now); err != nil {
			return nil, err
		}
		res = state.calculate(sc.policy)
	}
	snapshot := state.snapshot(userID, sc, res)
	metrics.ObserveRecalculation(start, string(snapshot.Status))
	return snapshot, nil
}

func (ss *StreakService) UseFreezes(ctx context.Context, userID, streamKey string) (*entity.StreakSnapshot, error) {
	if userID == "" {
		return nil, errorvalues.ErrEmptyUserID
	}
	sc, err := ss.stream(streamKey)
	if err != nil {
		return nil, err
	}
	lock, release := ss.locks.acquire(userID, streamKey)
	defer release()
	lock.Lock()
	defer lock.Unlock()

	now := ss.now()
	state, err := ss.load(ctx, userID, sc, now)
	if err != nil {
		return nil, err
	}
	res := state.calculate(streak.ManualApplyPolicy{})
	if res.BreakGap == nil {
		return nil, errorvalues.ErrNothingToBridge
	}
	bridges, ok := streak.BridgeGap(*res.BreakGap, state.available)
	if !ok {
		return nil, &errorvalues.InsufficientFreezesError{
			Needed:    res.BreakGap.Length,
			Available: len(state.available),
		}
	}
	if err = ss.applyBridges(ctx, userID, sc, now, bridges); err != nil {
		return nil, err
	}
	metrics.AddFreezesConsumed("manual", len(bridges))
	return ss.recalculate(ctx, userID, sc, now)
}

func (ss *StreakService) applyBridges(ctx context.Context, userID string, sc streamConfig, now time.Time, bridges []streak.Bridge) error {
	apps := make([]entity.FreezeApplication, 0, len(bridges))
	for _, b := range bridges {
		apps = append(apps, entity.FreezeApplication{
			TokenID: b.Token.ID,
			Coverage: entity.EngagementEvent{
				ID:                  uuid.NewString(),
				StreamKey:           sc.cfg.StreakKey,
				UserID:              userID,
				OccurredAt:          sc.clock.Instant(b.Day),
				IsFreezeConsumption: true,
				FreezeID:            b.Token.ID,
			},
		})
	}
	return ss.freezes.ApplyFreezes(ctx, userID, sc.cfg.StreakKey, now, apps)
}

func (ss *StreakService) GetEvents(ctx context.Context, userID, streamKey, field string, equals any) ([]entity.EngagementEvent, error) {
	if userID == "" {
		return nil, errorvalues.ErrEmptyUserID
	}
	if _, err := ss.stream(streamKey); err != nil {
		return nil, err
	}
	lock, release := ss.locks.acquire(userID, streamKey)
	defer release()
	lock.RLock()
	events, err := ss.events.ListByStream(ctx, userID, streamKey)
	lock.RUnlock()
	if err != nil {
		return nil, err
	}
	if field == "" {
		return events, nil
	}
	filtered := make([]entity.EngagementEvent, 0, len(events))
	for _, e := range events {
		if e.Metadata.Matches(field, equals) {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// DeleteAllEvents wipes the event log only; the freeze inventory is kept.
func (ss *StreakService) DeleteAllEvents(ctx context.Context, userID, streamKey string) (int64, error) {
	if userID == "" {
		return 0, errorvalues.ErrEmptyUserID
	}
	if _, err := ss.stream(streamKey); err != nil {
		return 0, err
	}
	lock, release := ss.locks.acquire(userID, streamKey)
	defer release()
	lock.Lock()
	defer lock.Unlock()
	return ss.events.DeleteByStream(ctx, userID, streamKey)
}

func (ss *StreakService) Calendar(ctx context.Context, userID, streamKey string, days int) ([]streak.DayBucket, error) {
	if userID == "" {
		return nil, errorvalues.ErrEmptyUserID
	}
	if days < 1 || days > MaxCalendarDays {
		return nil, fmt.Errorf("%w: calendar days must be within 1..%d", errorvalues.ErrValidation, MaxCalendarDays)
	}
	sc, err := ss.stream(streamKey)
	if err != nil {
		return nil, err
	}
	lock, release := ss.locks.acquire(userID, streamKey)
	defer release()
	lock.RLock()
	events, err := ss.events.ListByStream(ctx, userID, streamKey)
	lock.RUnlock()
	if err != nil {
		return nil, err
	}
	today := sc.clock.Day(ss.now())
	return streak.Calendar(events, sc.clock, sc.cfg.EventsRequiredPerDay, today-streak.DayKey(days-1), today), nil
}

// streamState is one consistent read of a stream.
type streamState struct {
	events    []entity.EngagementEvent
	available []entity.FreezeToken
	days      []streak.DayKey
	today     streak.DayKey
	clock     streak.Clock
}

func (ss *StreakService) load(ctx context.Context, userID string, sc streamConfig, now time.Time) (*streamState, error) {
	events, err := ss.events.ListByStream(ctx, userID, sc.cfg.StreakKey)
	if err != nil {
		return nil, err
	}
	tokens, err := ss.freezes.ListByStream(ctx, userID, sc.cfg.StreakKey)
	if err != nil {
		return nil, err
	}
	return &streamState{
		events:    events,
		available: streak.AvailableFreezes(tokens, now),
		days:      streak.GroupByDay(events, sc.clock, sc.cfg.EventsRequiredPerDay),
		today:     sc.clock.Day(now),
		clock:     sc.clock,
	}, nil
}

func (st *streamState) calculate(policy streak.FreezePolicy) streak.Result {
	return streak.Calculate(streak.Input{
		Days:    st.days,
		Today:   st.today,
		Freezes: st.available,
		Policy:  policy,
	})
}

func (st *streamState) snapshot(userID string, sc streamConfig, res streak.Result) *entity.StreakSnapshot {
	snapshot := &entity.StreakSnapshot{
		StreakKey:                     sc.cfg.StreakKey,
		UserID:                        userID,
		CurrentStreak:                 res.CurrentStreak,
		LongestStreak:                 res.LongestStreak,
		FreezesAvailableCount:         len(res.FreezesRemaining),
		FreezesNeeded:                 res.FreezesNeeded(),
		EventsRequiredPerDay:          sc.cfg.EventsRequiredPerDay,
		Status:                        res.Status,
		ApplyManualStreakFreezeStatus: res.ManualStatus,
	}
	oldestRecent := st.today - RecentWindowDays + 1
	for _, e := range st.events {
		day := st.clock.Day(e.OccurredAt)
		if day >= oldestRecent {
			snapshot.RecentEvents = append(snapshot.RecentEvents, e)
		}
		if e.IsFreezeConsumption {
			continue
		}
		snapshot.TotalEvents++
		if day == st.today {
			snapshot.TodayEventCount++
		}
		if snapshot.DateLastEvent == nil || e.OccurredAt.After(*snapshot.DateLastEvent) {
			last := e.OccurredAt
			snapshot.DateLastEvent = &last
		}
	}
	return snapshot
}
