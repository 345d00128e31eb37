package manager

import (
	"context"
	"log/slog"

	errorvalues "github.com/limbo/engagement/internal/error_values"
	"github.com/limbo/engagement/internal/service"
	"github.com/limbo/engagement/pkg/entity"
)

// ProgressManager has no derived snapshot, every read goes to the store.
type ProgressManager struct {
	session
	svc         service.ProgressServiceI
	progressKey string
	logger      *slog.Logger
}

func NewProgressManager(svc service.ProgressServiceI, progressKey string, logger *slog.Logger) *ProgressManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProgressManager{
		svc:         svc,
		progressKey: progressKey,
		logger:      logger.With(slog.String("progress_key", progressKey)),
	}
}

func (m *ProgressManager) LogIn(userID string) error {
	if userID == "" {
		return errorvalues.ErrEmptyUserID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.userID = userID
	return nil
}

func (m *ProgressManager) LogOut() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.userID = ""
}

func (m *ProgressManager) AddProgress(ctx context.Context, id string, value float64, metadata entity.Metadata) (*entity.ProgressItem, error) {
	userID, err := m.user()
	if err != nil {
		return nil, err
	}
	item, err := m.svc.SetProgress(ctx, userID, m.progressKey, &service.SetProgressRequest{
		ID:       id,
		Value:    value,
		Metadata: metadata,
	})
	if err != nil {
		m.logger.Error("setting progress", slog.String("user_id", userID), slog.String("id", id), slog.String("error", err.Error()))
		return nil, err
	}
	return item, nil
}

func (m *ProgressManager) GetProgress(ctx context.Context, id string) (float64, error) {
	item, err := m.GetProgressItem(ctx, id)
	if err != nil {
		return 0, err
	}
	return item.Value, nil
}

func (m *ProgressManager) GetProgressItem(ctx context.Context, id string) (*entity.ProgressItem, error) {
	userID, err := m.user()
	if err != nil {
		return nil, err
	}
	return m.svc.GetProgress(ctx, userID, m.progressKey, id)
}

// GetAllProgress maps item id to its value.
func (m *ProgressManager) GetAllProgress(ctx context.Context) (map[string]float64, error) {
	items, err := m.GetAllProgressItems(ctx)
	if err != nil {
		return nil, err
	}
	values := make(map[string]float64, len(items))
	for _, item := range items {
		values[item.ID] = item.Value
	}
	return values, nil
}

func (m *ProgressManager) GetAllProgressItems(ctx context.Context) ([]entity.ProgressItem, error) {
	userID, err := m.user()
	if err != nil {
		return nil, err
	}
	return m.svc.ListProgress(ctx, userID, m.progressKey)
}

func (m *ProgressManager) GetMaxProgress(ctx context.Context, field string, equals any) (float64, error) {
	userID, err := m.user()
	if err != nil {
		return 0, err
	}
	return m.svc.MaxProgress(ctx, userID, m.progressKey, field, equals)
}

func (m *ProgressManager) DeleteProgress(ctx context.Context, id string) error {
	userID, err := m.user()
	if err != nil {
		return err
	}
	if err = m.svc.DeleteProgress(ctx, userID, m.progressKey, id); err != nil {
		m.logger.Error("deleting progress", slog.String("user_id", userID), slog.String("id", id), slog.String("error", err.Error()))
		return err
	}
	return nil
}

func (m *ProgressManager) DeleteAllProgress(ctx context.Context) (int64, error) {
	userID, err := m.user()
	if err != nil {
		return 0, err
	}
	n, err := m.svc.DeleteAllProgress(ctx, userID, m.progressKey)
	if err != nil {
		m.logger.Error("deleting all progress", slog.String("user_id", userID), slog.String("error", err.Error()))
		return 0, err
	}
	return n, nil
}
