package manager

import (
	"context"
	"log/slog"

	errorvalues "github.com/limbo/engagement/internal/error_values"
	"github.com/limbo/engagement/internal/service"
	"github.com/limbo/engagement/pkg/entity"
)

type XPManager struct {
	session
	svc           service.XPServiceI
	experienceKey string
	logger        *slog.Logger
	current       *entity.XPSnapshot
}

func NewXPManager(svc service.XPServiceI, experienceKey string, logger *slog.Logger) *XPManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &XPManager{
		svc:           svc,
		experienceKey: experienceKey,
		logger:        logger.With(slog.String("experience_key", experienceKey)),
	}
}

func (m *XPManager) LogIn(ctx context.Context, userID string) (*entity.XPSnapshot, error) {
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

func (m *XPManager) LogOut() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.userID = ""
	m.current = nil
}

func (m *XPManager) CurrentExperiencePointsData() *entity.XPSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

func (m *XPManager) Recalculate(ctx context.Context) (*entity.XPSnapshot, error) {
	userID, err := m.user()
	if err != nil {
		return nil, err
	}
	snapshot, err := m.svc.Recalculate(ctx, userID, m.experienceKey)
	if err != nil {
		m.logger.Error("recalculating xp", slog.String("user_id", userID), slog.String("error", err.Error()))
		return nil, err
	}
	m.mu.Lock()
	if m.userID == userID {
		m.current = snapshot
	}
	m.mu.Unlock()
	return snapshot, nil
}

// AddExperiencePoints appends an XP event happening now and refreshes the
// cached snapshot.
func (m *XPManager) AddExperiencePoints(ctx context.Context, points int, metadata entity.Metadata) (*entity.XPEvent, error) {
	userID, err := m.user()
	if err != nil {
		return nil, err
	}
	event, err := m.svc.AddXP(ctx, userID, m.experienceKey, &service.AddXPRequest{Points: points, Metadata: metadata})
	if err != nil {
		m.logger.Error("adding xp", slog.String("user_id", userID), slog.String("error", err.Error()))
		return nil, err
	}
	if _, err = m.Recalculate(ctx); err != nil {
		return event, err
	}
	return event, nil
}

func (m *XPManager) GetAllEvents(ctx context.Context, field string, equals any) ([]entity.XPEvent, error) {
	userID, err := m.user()
	if err != nil {
		return nil, err
	}
	return m.svc.GetEvents(ctx, userID, m.experienceKey, field, equals)
}

func (m *XPManager) DeleteAllEvents(ctx context.Context) (int64, error) {
	userID, err := m.user()
	if err != nil {
		return 0, err
	}
	n, err := m.svc.DeleteAllEvents(ctx, userID, m.experienceKey)
	if err != nil {
		m.logger.Error("deleting xp events", slog.String("user_id", userID), slog.String("error", err.Error()))
		return 0, err
	}
	if _, err = m.Recalculate(ctx); err != nil {
		return n, err
	}
	return n, nil
}
