package streak

import (
	"time"

	"github.com/limbo/engagement/pkg/entity"
)

type XPTotals struct {
	PointsAllTime    int
	PointsToday      int
	EventsTodayCount int
	DateLastEvent    *time.Time
	DateFirstEvent   *time.Time
}

// SummarizeXP folds the XP log once. "Today" is the day of now under clock.
func SummarizeXP(events []entity.XPEvent, clock Clock, now time.Time) XPTotals {
	var totals XPTotals
	today := clock.Day(now)
	for i := range events {
		e := events[i]
		totals.PointsAllTime += e.Points
		if clock.Day(e.OccurredAt) == today {
			totals.PointsToday += e.Points
			totals.EventsTodayCount++
		}
		if totals.DateLastEvent == nil || e.OccurredAt.After(*totals.DateLastEvent) {
			last := e.OccurredAt
			totals.DateLastEvent = &last
		}
		if totals.DateFirstEvent == nil || e.OccurredAt.Before(*totals.DateFirstEvent) {
			first := e.OccurredAt
			totals.DateFirstEvent = &first
		}
	}
	return totals
}

// MaxProgress returns the highest value among items whose metadata field
// equals the given value. ok is false when nothing matches.
func MaxProgress(items []entity.ProgressItem, field string, equals any) (max float64, ok bool) {
	for _, item := range items {
		if !item.Metadata.Matches(field, equals) {
			continue
		}
		if !ok || item.Value > max {
			max = item.Value
			ok = true
		}
	}
	return max, ok
}
