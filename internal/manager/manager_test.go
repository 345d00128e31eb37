package manager_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/golang/mock/gomock"
	errorvalues "github.com/limbo/engagement/internal/error_values"
	"github.com/limbo/engagement/internal/manager"
	"github.com/limbo/engagement/internal/service"
	"github.com/limbo/engagement/internal/service/mocks"
	"github.com/limbo/engagement/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestStreakManagerRequiresLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := manager.NewStreakManager(mocks.NewMockStreakServiceI(ctrl), entity.DefaultStreakKey, discard)
	ctx := context.Background()

	calls := map[string]func() error{
		"recalculate": func() error { _, err := m.Recalculate(ctx); return err },
		"add event":   func() error { _, err := m.AddEvent(ctx, nil); return err },
		"add freeze":  func() error { _, err := m.AddFreeze(ctx, "", nil); return err },
		"use freezes": func() error { _, err := m.UseFreezes(ctx); return err },
		"events":      func() error { _, err := m.GetAllEvents(ctx, "", nil); return err },
		"delete":      func() error { _, err := m.DeleteAllEvents(ctx); return err },
		"calendar":    func() error { _, err := m.Calendar(ctx, 7); return err },
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, call(), errorvalues.ErrNotLoggedIn)
		})
	}
	assert.Nil(t, m.CurrentStreakData())
}

func TestStreakManagerCachesSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockStreakServiceI(ctrl)
	m := manager.NewStreakManager(svc, entity.DefaultStreakKey, discard)
	ctx := context.Background()
	first := &entity.StreakSnapshot{StreakKey: entity.DefaultStreakKey, UserID: "u1", CurrentStreak: 2}
	second := &entity.StreakSnapshot{StreakKey: entity.DefaultStreakKey, UserID: "u1", CurrentStreak: 3}

	gomock.InOrder(
		svc.EXPECT().Recalculate(gomock.Any(), "u1", entity.DefaultStreakKey).Return(first, nil),
		svc.EXPECT().AddEvent(gomock.Any(), "u1", entity.DefaultStreakKey, &service.AddEventRequest{
			Metadata: entity.Metadata{"lesson": "a1"},
		}).Return(&entity.EngagementEvent{ID: "e1"}, nil),
		svc.EXPECT().Recalculate(gomock.Any(), "u1", entity.DefaultStreakKey).Return(second, nil),
	)

	res, err := m.LogIn(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, first, res)
	assert.Equal(t, first, m.CurrentStreakData())

	event, err := m.AddEvent(ctx, entity.Metadata{"lesson": "a1"})
	require.NoError(t, err)
	assert.Equal(t, "e1", event.ID)
	assert.Equal(t, second, m.CurrentStreakData())

	m.LogOut()
	assert.Nil(t, m.CurrentStreakData())
	_, err = m.Recalculate(ctx)
	assert.ErrorIs(t, err, errorvalues.ErrNotLoggedIn)
}

func TestStreakManagerReturnsCreatedRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockStreakServiceI(ctrl)
	m := manager.NewStreakManager(svc, entity.DefaultStreakKey, discard)
	ctx := context.Background()
	snapshot := &entity.StreakSnapshot{StreakKey: entity.DefaultStreakKey, UserID: "u1", CurrentStreak: 1}
	refreshed := &entity.StreakSnapshot{StreakKey: entity.DefaultStreakKey, UserID: "u1", CurrentStreak: 1, FreezesAvailableCount: 1}

	gomock.InOrder(
		svc.EXPECT().Recalculate(gomock.Any(), "u1", entity.DefaultStreakKey).Return(snapshot, nil),
		svc.EXPECT().AddEvent(gomock.Any(), "u1", entity.DefaultStreakKey, &service.AddEventRequest{}).
			Return(&entity.EngagementEvent{ID: "e7", UserID: "u1", StreamKey: entity.DefaultStreakKey}, nil),
		svc.EXPECT().Recalculate(gomock.Any(), "u1", entity.DefaultStreakKey).Return(snapshot, nil),
		svc.EXPECT().AddFreeze(gomock.Any(), "u1", entity.DefaultStreakKey, &service.AddFreezeRequest{ID: "f1"}).
			Return(&entity.FreezeToken{ID: "f1"}, nil),
		svc.EXPECT().Recalculate(gomock.Any(), "u1", entity.DefaultStreakKey).Return(refreshed, nil),
		svc.EXPECT().AddEvent(gomock.Any(), "u1", entity.DefaultStreakKey, &service.AddEventRequest{}).
			Return(&entity.EngagementEvent{ID: "e8"}, nil),
		svc.EXPECT().Recalculate(gomock.Any(), "u1", entity.DefaultStreakKey).
			Return(nil, errorvalues.Storage("listing events", assert.AnError)),
	)

	_, err := m.LogIn(ctx, "u1")
	require.NoError(t, err)

	event, err := m.AddEvent(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "e7", event.ID)
	assert.False(t, event.IsFreezeConsumption)

	freeze, err := m.AddFreeze(ctx, "f1", nil)
	require.NoError(t, err)
	assert.Equal(t, "f1", freeze.ID)
	assert.Equal(t, refreshed, m.CurrentStreakData())

	event, err = m.AddEvent(ctx, nil)
	assert.ErrorIs(t, err, errorvalues.ErrStorage)
	require.NotNil(t, event)
	assert.Equal(t, "e8", event.ID)
}

func TestStreakManagerUseFreezes(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockStreakServiceI(ctrl)
	m := manager.NewStreakManager(svc, entity.DefaultStreakKey, discard)
	ctx := context.Background()
	broken := &entity.StreakSnapshot{Status: entity.StreakBroken, ApplyManualStreakFreezeStatus: entity.CanSaveWithFreezes(2)}
	saved := &entity.StreakSnapshot{Status: entity.StreakAtRisk, CurrentStreak: 8}

	testCases := []struct {
		Desc         string
		MockPrepFunc func()
		Expected     *entity.StreakSnapshot
		Error        error
	}{
		{
			Desc: "bridged",
			MockPrepFunc: func() {
				svc.EXPECT().UseFreezes(gomock.Any(), "u1", entity.DefaultStreakKey).Return(saved, nil)
			},
			Expected: saved,
		},
		{
			Desc: "not enough freezes",
			MockPrepFunc: func() {
				svc.EXPECT().UseFreezes(gomock.Any(), "u1", entity.DefaultStreakKey).
					Return(nil, &errorvalues.InsufficientFreezesError{Needed: 3, Available: 1})
			},
			Expected: saved,
			Error:    errorvalues.ErrInsufficientFreezes,
		},
	}
	svc.EXPECT().Recalculate(gomock.Any(), "u1", entity.DefaultStreakKey).Return(broken, nil)
	_, err := m.LogIn(ctx, "u1")
	require.NoError(t, err)
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			res, err := m.UseFreezes(ctx)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.Expected, res)
			}
			assert.Equal(t, tc.Expected, m.CurrentStreakData())
		})
	}
}

func TestStreakManagerSwitchUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockStreakServiceI(ctrl)
	m := manager.NewStreakManager(svc, entity.DefaultStreakKey, discard)
	ctx := context.Background()
	svc.EXPECT().Recalculate(gomock.Any(), "u1", entity.DefaultStreakKey).Return(&entity.StreakSnapshot{UserID: "u1"}, nil)
	svc.EXPECT().Recalculate(gomock.Any(), "u2", entity.DefaultStreakKey).Return(nil, errorvalues.Storage("listing events", assert.AnError))

	_, err := m.LogIn(ctx, "u1")
	require.NoError(t, err)
	_, err = m.LogIn(ctx, "u2")
	assert.ErrorIs(t, err, errorvalues.ErrStorage)
	assert.Nil(t, m.CurrentStreakData())

	_, err = m.LogIn(ctx, "")
	assert.ErrorIs(t, err, errorvalues.ErrEmptyUserID)
}

func TestXPManager(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockXPServiceI(ctrl)
	m := manager.NewXPManager(svc, entity.DefaultExperienceKey, discard)
	ctx := context.Background()

	_, err := m.AddExperiencePoints(ctx, 10, nil)
	assert.ErrorIs(t, err, errorvalues.ErrNotLoggedIn)

	empty := &entity.XPSnapshot{ExperienceKey: entity.DefaultExperienceKey, UserID: "u1"}
	after := &entity.XPSnapshot{ExperienceKey: entity.DefaultExperienceKey, UserID: "u1", PointsAllTime: 10, PointsToday: 10}
	gomock.InOrder(
		svc.EXPECT().Recalculate(gomock.Any(), "u1", entity.DefaultExperienceKey).Return(empty, nil),
		svc.EXPECT().AddXP(gomock.Any(), "u1", entity.DefaultExperienceKey, &service.AddXPRequest{Points: 10}).
			Return(&entity.XPEvent{ID: "x1", Points: 10}, nil),
		svc.EXPECT().Recalculate(gomock.Any(), "u1", entity.DefaultExperienceKey).Return(after, nil),
		svc.EXPECT().DeleteAllEvents(gomock.Any(), "u1", entity.DefaultExperienceKey).Return(int64(1), nil),
		svc.EXPECT().Recalculate(gomock.Any(), "u1", entity.DefaultExperienceKey).Return(empty, nil),
	)

	_, err = m.LogIn(ctx, "u1")
	require.NoError(t, err)
	event, err := m.AddExperiencePoints(ctx, 10, nil)
	require.NoError(t, err)
	assert.Equal(t, "x1", event.ID)
	assert.Equal(t, 10, event.Points)
	assert.Equal(t, after, m.CurrentExperiencePointsData())

	n, err := m.DeleteAllEvents(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, empty, m.CurrentExperiencePointsData())

	m.LogOut()
	assert.Nil(t, m.CurrentExperiencePointsData())
}

func TestProgressManager(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockProgressServiceI(ctrl)
	m := manager.NewProgressManager(svc, entity.DefaultProgressKey, discard)
	ctx := context.Background()

	_, err := m.GetAllProgress(ctx)
	assert.ErrorIs(t, err, errorvalues.ErrNotLoggedIn)
	require.NoError(t, m.LogIn("u1"))

	items := []entity.ProgressItem{
		{ID: "a", Value: 0.5, Metadata: entity.Metadata{"unit": "u1"}},
		{ID: "b", Value: 1},
	}
	testCases := []struct {
		Desc         string
		MockPrepFunc func()
		Call         func() (any, error)
		Expected     any
		Error        error
	}{
		{
			Desc: "set progress",
			MockPrepFunc: func() {
				svc.EXPECT().SetProgress(gomock.Any(), "u1", entity.DefaultProgressKey, &service.SetProgressRequest{ID: "a", Value: 1.5}).
					Return(&entity.ProgressItem{ID: "a", Value: 1}, nil)
			},
			Call: func() (any, error) {
				item, err := m.AddProgress(ctx, "a", 1.5, nil)
				if err != nil {
					return nil, err
				}
				return item.Value, nil
			},
			Expected: 1.0,
		},
		{
			Desc: "value by id",
			MockPrepFunc: func() {
				svc.EXPECT().GetProgress(gomock.Any(), "u1", entity.DefaultProgressKey, "a").Return(&items[0], nil)
			},
			Call:     func() (any, error) { return m.GetProgress(ctx, "a") },
			Expected: 0.5,
		},
		{
			Desc: "missing id",
			MockPrepFunc: func() {
				svc.EXPECT().GetProgress(gomock.Any(), "u1", entity.DefaultProgressKey, "z").Return(nil, errorvalues.ErrProgressNotFound)
			},
			Call:  func() (any, error) { return m.GetProgress(ctx, "z") },
			Error: errorvalues.ErrNotFound,
		},
		{
			Desc: "all as map",
			MockPrepFunc: func() {
				svc.EXPECT().ListProgress(gomock.Any(), "u1", entity.DefaultProgressKey).Return(items, nil)
			},
			Call:     func() (any, error) { return m.GetAllProgress(ctx) },
			Expected: map[string]float64{"a": 0.5, "b": 1},
		},
		{
			Desc: "max",
			MockPrepFunc: func() {
				svc.EXPECT().MaxProgress(gomock.Any(), "u1", entity.DefaultProgressKey, "unit", "u1").Return(0.5, nil)
			},
			Call:     func() (any, error) { return m.GetMaxProgress(ctx, "unit", "u1") },
			Expected: 0.5,
		},
		{
			Desc: "delete all",
			MockPrepFunc: func() {
				svc.EXPECT().DeleteAllProgress(gomock.Any(), "u1", entity.DefaultProgressKey).Return(int64(2), nil)
			},
			Call:     func() (any, error) { return m.DeleteAllProgress(ctx) },
			Expected: int64(2),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			res, err := tc.Call()
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, res)
		})
	}

	m.LogOut()
	assert.ErrorIs(t, m.DeleteProgress(ctx, "a"), errorvalues.ErrNotLoggedIn)
}
