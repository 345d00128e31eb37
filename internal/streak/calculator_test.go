package streak_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/limbo/engagement/internal/streak"
	"github.com/limbo/engagement/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = streak.DayOf(2026, time.March, 15)

func daysBack(from, to int) []streak.DayKey {
	days := make([]streak.DayKey, 0, to-from+1)
	for i := from; i <= to; i++ {
		days = append(days, today-streak.DayKey(i))
	}
	return days
}

func freezes(n int) []entity.FreezeToken {
	base := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	tokens := make([]entity.FreezeToken, 0, n)
	for i := 0; i < n; i++ {
		tokens = append(tokens, entity.FreezeToken{
			ID:          fmt.Sprintf("freeze_%d", i+1),
			StreamKey:   "daily",
			UserID:      "user_1",
			DateCreated: base.Add(time.Duration(i) * time.Hour),
		})
	}
	return tokens
}

func TestCalculate(t *testing.T) {
	testCases := []struct {
		Desc             string
		Days             []streak.DayKey
		Freezes          int
		Policy           streak.FreezePolicy
		ExpectedCurrent  int
		ExpectedLongest  int
		ExpectedStatus   entity.StreakStatus
		ExpectedManual   entity.ManualFreezeStatus
		ExpectedBridges  int
		ExpectedRemained int
	}{
		{
			Desc:            "no days",
			Policy:          streak.AutoConsumePolicy{},
			ExpectedStatus:  entity.StreakNone,
			ExpectedManual:  entity.CannotSaveWithFreezes(),
			ExpectedCurrent: 0,
			ExpectedLongest: 0,
		},
		{
			Desc:            "today not logged yet is not a break",
			Days:            daysBack(1, 3),
			Policy:          streak.AutoConsumePolicy{},
			ExpectedCurrent: 3,
			ExpectedLongest: 3,
			ExpectedStatus:  entity.StreakAtRisk,
			ExpectedManual:  entity.CannotSaveWithFreezes(),
		},
		{
			Desc:            "today logged",
			Days:            daysBack(0, 4),
			Policy:          streak.ManualApplyPolicy{},
			ExpectedCurrent: 5,
			ExpectedLongest: 5,
			ExpectedStatus:  entity.StreakActive,
			ExpectedManual:  entity.CannotSaveWithFreezes(),
		},
		{
			Desc:             "active streak still offers saving the older gap",
			Days:             append(daysBack(0, 4), daysBack(6, 8)...),
			Freezes:          1,
			Policy:           streak.ManualApplyPolicy{},
			ExpectedCurrent:  5,
			ExpectedLongest:  5,
			ExpectedStatus:   entity.StreakActive,
			ExpectedManual:   entity.CanSaveWithFreezes(1),
			ExpectedRemained: 1,
		},
		{
			Desc:             "gap longer than freezes resets streak",
			Days:             daysBack(4, 10),
			Freezes:          2,
			Policy:           streak.AutoConsumePolicy{},
			ExpectedCurrent:  0,
			ExpectedLongest:  7,
			ExpectedStatus:   entity.StreakBroken,
			ExpectedManual:   entity.CannotSaveWithFreezes(),
			ExpectedRemained: 2,
		},
		{
			Desc:             "gap bridged by freezes",
			Days:             daysBack(4, 10),
			Freezes:          3,
			Policy:           streak.AutoConsumePolicy{},
			ExpectedCurrent:  10,
			ExpectedLongest:  10,
			ExpectedStatus:   entity.StreakAtRisk,
			ExpectedManual:   entity.CannotSaveWithFreezes(),
			ExpectedBridges:  3,
			ExpectedRemained: 0,
		},
		{
			Desc:             "manual policy reports savable gap",
			Days:             daysBack(3, 5),
			Freezes:          2,
			Policy:           streak.ManualApplyPolicy{},
			ExpectedCurrent:  0,
			ExpectedLongest:  3,
			ExpectedStatus:   entity.StreakBroken,
			ExpectedManual:   entity.CanSaveWithFreezes(2),
			ExpectedRemained: 2,
		},
		{
			Desc:             "manual policy counts run before the gap",
			Days:             append(daysBack(0, 1), daysBack(4, 8)...),
			Freezes:          5,
			Policy:           streak.ManualApplyPolicy{},
			ExpectedCurrent:  2,
			ExpectedLongest:  5,
			ExpectedStatus:   entity.StreakActive,
			ExpectedManual:   entity.CanSaveWithFreezes(2),
			ExpectedRemained: 5,
		},
		{
			Desc:             "auto policy bridges several gaps",
			Days:             append(append(daysBack(0, 0), daysBack(2, 3)...), daysBack(6, 6)...),
			Freezes:          4,
			Policy:           streak.AutoConsumePolicy{},
			ExpectedCurrent:  7,
			ExpectedLongest:  7,
			ExpectedStatus:   entity.StreakActive,
			ExpectedManual:   entity.CannotSaveWithFreezes(),
			ExpectedBridges:  3,
			ExpectedRemained: 1,
		},
		{
			Desc:             "auto policy stops at second gap without partial bridging",
			Days:             append(append(daysBack(1, 1), daysBack(3, 3)...), daysBack(7, 9)...),
			Freezes:          2,
			Policy:           streak.AutoConsumePolicy{},
			ExpectedCurrent:  3,
			ExpectedLongest:  3,
			ExpectedStatus:   entity.StreakAtRisk,
			ExpectedManual:   entity.CannotSaveWithFreezes(),
			ExpectedBridges:  1,
			ExpectedRemained: 1,
		},
		{
			Desc:            "duplicate days are ignored",
			Days:            append(daysBack(1, 2), daysBack(1, 2)...),
			Policy:          streak.ManualApplyPolicy{},
			ExpectedCurrent: 2,
			ExpectedLongest: 2,
			ExpectedStatus:  entity.StreakAtRisk,
			ExpectedManual:  entity.CannotSaveWithFreezes(),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			res := streak.Calculate(streak.Input{
				Days:    tc.Days,
				Today:   today,
				Freezes: freezes(tc.Freezes),
				Policy:  tc.Policy,
			})
			assert.Equal(t, tc.ExpectedCurrent, res.CurrentStreak)
			assert.Equal(t, tc.ExpectedLongest, res.LongestStreak)
			assert.Equal(t, tc.ExpectedStatus, res.Status)
			assert.Equal(t, tc.ExpectedManual, res.ManualStatus)
			assert.Len(t, res.Bridges, tc.ExpectedBridges)
			assert.Len(t, res.FreezesRemaining, tc.ExpectedRemained)
			assert.GreaterOrEqual(t, res.LongestStreak, res.CurrentStreak)
		})
	}
}

func TestCalculateConsumesOldestFreezesFirst(t *testing.T) {
	tokens := freezes(5)
	res := streak.Calculate(streak.Input{
		Days:    daysBack(4, 10),
		Today:   today,
		Freezes: tokens,
		Policy:  streak.AutoConsumePolicy{},
	})
	require.Len(t, res.Bridges, 3)
	for i, b := range res.Bridges {
		assert.Equal(t, tokens[i].ID, b.Token.ID)
		assert.Equal(t, today-streak.DayKey(i+1), b.Day)
	}
	require.Len(t, res.FreezesRemaining, 2)
	assert.Equal(t, "freeze_4", res.FreezesRemaining[0].ID)
	assert.Nil(t, res.BreakGap)
}

func TestCalculateReportsBreakGap(t *testing.T) {
	res := streak.Calculate(streak.Input{
		Days:   daysBack(3, 5),
		Today:  today,
		Policy: streak.ManualApplyPolicy{},
	})
	require.NotNil(t, res.BreakGap)
	assert.Equal(t, today-1, res.BreakGap.Latest)
	assert.Equal(t, 2, res.BreakGap.Length)
	assert.Equal(t, 2, res.FreezesNeeded())

	bridges, ok := streak.BridgeGap(*res.BreakGap, freezes(1))
	assert.False(t, ok)
	assert.Nil(t, bridges)

	bridges, ok = streak.BridgeGap(*res.BreakGap, freezes(3))
	require.True(t, ok)
	require.Len(t, bridges, 2)
	assert.Equal(t, today-1, bridges[0].Day)
	assert.Equal(t, today-2, bridges[1].Day)
}

func TestCalculateWithoutGapsMatchesDayCount(t *testing.T) {
	for n := 1; n <= 30; n++ {
		res := streak.Calculate(streak.Input{
			Days:   daysBack(0, n-1),
			Today:  today,
			Policy: streak.AutoConsumePolicy{},
		})
		assert.Equal(t, n, res.CurrentStreak)
		assert.Equal(t, n, res.LongestStreak)
	}
}

func TestCalculateIsDeterministic(t *testing.T) {
	in := streak.Input{
		Days:    append(daysBack(0, 2), daysBack(5, 9)...),
		Today:   today,
		Freezes: freezes(2),
		Policy:  streak.AutoConsumePolicy{},
	}
	assert.Equal(t, streak.Calculate(in), streak.Calculate(in))
}

func TestLongestRun(t *testing.T) {
	testCases := []struct {
		Desc     string
		Days     []streak.DayKey
		Expected int
	}{
		{Desc: "empty", Days: nil, Expected: 0},
		{Desc: "single day", Days: daysBack(3, 3), Expected: 1},
		{Desc: "two runs", Days: append(daysBack(0, 2), daysBack(4, 8)...), Expected: 5},
		{Desc: "unsorted with duplicates", Days: []streak.DayKey{today - 2, today, today - 1, today, today - 5}, Expected: 3},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Expected, streak.LongestRun(tc.Days))
		})
	}
}

func TestAvailableFreezes(t *testing.T) {
	now := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)
	tokens := []entity.FreezeToken{
		{ID: "newest", DateCreated: now.Add(-time.Minute)},
		{ID: "expired", DateCreated: now.Add(-48 * time.Hour), DateExpires: &past},
		{ID: "consumed", DateCreated: now.Add(-72 * time.Hour), DateConsumed: &past},
		{ID: "oldest", DateCreated: now.Add(-24 * time.Hour), DateExpires: &future},
	}
	available := streak.AvailableFreezes(tokens, now)
	require.Len(t, available, 2)
	assert.Equal(t, "oldest", available[0].ID)
	assert.Equal(t, "newest", available[1].ID)
}
