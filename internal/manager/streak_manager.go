// Package manager keeps the per-session view of one stream: who is logged
// in and the last derived snapshot. All state changes go through the
// services, the managers only scope them to the current user.
package manager

import (
	"context"
	"log/slog"
	"sync"
	"time"

	errorvalues "github.com/limbo/engagement/internal/error_values"
	"github.com/limbo/engagement/internal/service"
	"github.com/limbo/engagement/internal/streak"
	"github.com/limbo/engagement/pkg/entity"
)

// session is the logged in user. Empty userID means logged out.
type session struct {
	mu     sync.RWMutex
	userID string
}

func (s *session) user() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.userID == "" {
		return "", errorvalues.ErrNotLoggedIn
	}
	return s.userID, nil
}

type StreakManager struct {
	session
	svc       service.StreakServiceI
	streamKey string
	logger    *slog.Logger
	current   *entity.StreakSnapshot
}

func NewStreakManager(svc service.StreakServiceI, streamKey string, logger *slog.Logger) *StreakManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &StreakManager{
		svc:       svc,
		streamKey: streamKey,
		logger:    logger.With(slog.String("streak_key", streamKey)),
	}
}

// LogIn scopes the manager to userID and loads its snapshot.
func (m *StreakManager) LogIn(ctx context.Context, userID string) (*entity.StreakSnapshot, error) {
	if userID == "" {
		return nil, errorvalues.ErrEmptyUserID
	}
	m.mu.Lock()
	if m.userID != userID {
		m.current = nil
	}
	m.userID = userID
	m.mu.Unlock()
	return m.Recalculate(ctx)
}

func (m *StreakManager) LogOut() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.userID = ""
	m.current = nil
}

// CurrentStreakData returns the cached snapshot, nil before the first calculation.
func (m *StreakManager) CurrentStreakData() *entity.StreakSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

func (m *StreakManager) cache(userID string, snapshot *entity.StreakSnapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	// The user may have switched while the calculation ran.
	if m.userID == userID {
		m.current = snapshot
	}
}

func (m *StreakManager) Recalculate(ctx context.Context) (*entity.StreakSnapshot, error) {
	userID, err := m.user()
	if err != nil {
		return nil, err
	}
	snapshot, err := m.svc.Recalculate(ctx, userID, m.streamKey)
	if err != nil {
		m.logger.Error("recalculating streak", slog.String("user_id", userID), slog.String("error", err.Error()))
		return nil, err
	}
	m.cache(userID, snapshot)
	return snapshot, nil
}

// AddEvent appends an event happening now and refreshes the cached snapshot.
// When only the refresh fails the created event is returned with the error.
func (m *StreakManager) AddEvent(ctx context.Context, metadata entity.Metadata) (*entity.EngagementEvent, error) {
	userID, err := m.user()
	if err != nil {
		return nil, err
	}
	event, err := m.svc.AddEvent(ctx, userID, m.streamKey, &service.AddEventRequest{Metadata: metadata})
	if err != nil {
		m.logger.Error("adding streak event", slog.String("user_id", userID), slog.String("error", err.Error()))
		return nil, err
	}
	if _, err = m.Recalculate(ctx); err != nil {
		return event, err
	}
	return event, nil
}

// AddFreeze adds a token to the inventory. An empty id is generated.
func (m *StreakManager) AddFreeze(ctx context.Context, id string, dateExpires *time.Time) (*entity.FreezeToken, error) {
	userID, err := m.user()
	if err != nil {
		return nil, err
	}
	freeze, err := m.svc.AddFreeze(ctx, userID, m.streamKey, &service.AddFreezeRequest{ID: id, DateExpires: dateExpires})
	if err != nil {
		m.logger.Error("adding freeze", slog.String("user_id", userID), slog.String("error", err.Error()))
		return nil, err
	}
	if _, err = m.Recalculate(ctx); err != nil {
		return freeze, err
	}
	return freeze, nil
}

func (m *StreakManager) UseFreezes(ctx context.Context) (*entity.StreakSnapshot, error) {
	userID, err := m.user()
	if err != nil {
		return nil, err
	}
	snapshot, err := m.svc.UseFreezes(ctx, userID, m.streamKey)
	if err != nil {
		m.logger.Warn("using freezes", slog.String("user_id", userID), slog.String("error", err.Error()))
		return nil, err
	}
	m.cache(userID, snapshot)
	return snapshot, nil
}

func (m *StreakManager) GetAllEvents(ctx context.Context, field string, equals any) ([]entity.EngagementEvent, error) {
	userID, err := m.user()
	if err != nil {
		return nil, err
	}
	return m.svc.GetEvents(ctx, userID, m.streamKey, field, equals)
}

// DeleteAllEvents removes the event log of the stream. Freeze tokens stay.
func (m *StreakManager) DeleteAllEvents(ctx context.Context) (int64, error) {
	userID, err := m.user()
	if err != nil {
		return 0, err
	}
	n, err := m.svc.DeleteAllEvents(ctx, userID, m.streamKey)
	if err != nil {
		m.logger.Error("deleting streak events", slog.String("user_id", userID), slog.String("error", err.Error()))
		return 0, err
	}
	m.logger.Info("streak events deleted", slog.String("user_id", userID), slog.Int64("count", n))
	if _, err = m.Recalculate(ctx); err != nil {
		return n, err
	}
	return n, nil
}

func (m *StreakManager) Calendar(ctx context.Context, days int) ([]streak.DayBucket, error) {
	userID, err := m.user()
	if err != nil {
		return nil, err
	}
	return m.svc.Calendar(ctx, userID, m.streamKey, days)
}
