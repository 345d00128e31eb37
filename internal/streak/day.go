// Package streak holds the pure part of the engagement engine: mapping
// instants to calendar days, grouping events into qualifying days, and
// deriving streak, XP and progress aggregates. Nothing here touches storage
// or reads the wall clock.
package streak

import (
	"sort"
	"time"

	"github.com/limbo/engagement/pkg/entity"
)

const (
	secondsPerDay = 24 * 60 * 60
	dayLayout     = "2006-01-02"
)

// DayKey is a civil date counted in days since 1970-01-01.
type DayKey int

func DayOf(year int, month time.Month, day int) DayKey {
	return DayKey(time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay)
}

func ParseDay(s string) (DayKey, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return 0, err
	}
	return DayOf(t.Date()), nil
}

// Time returns midnight UTC of the day.
func (d DayKey) Time() time.Time {
	return time.Unix(int64(d)*secondsPerDay, 0).UTC()
}

func (d DayKey) String() string {
	return d.Time().Format(dayLayout)
}

func (d DayKey) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *DayKey) UnmarshalText(b []byte) error {
	parsed, err := ParseDay(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Clock maps instants to days in a location, with the day boundary moved
// Leeway past local midnight. The shift is applied to the instant before the
// civil date is taken, so every day is exactly as long as the local day.
type Clock struct {
	Location *time.Location
	Leeway   time.Duration
}

func NewClock(loc *time.Location, leewayHours int) Clock {
	return Clock{
		Location: loc,
		Leeway:   time.Duration(leewayHours) * time.Hour,
	}
}

func (c Clock) location() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

func (c Clock) Day(t time.Time) DayKey {
	y, m, d := t.In(c.location()).Add(-c.Leeway).Date()
	return DayOf(y, m, d)
}

// Instant returns an instant that falls on the given day, used to timestamp
// coverage events written for bridged days.
func (c Clock) Instant(day DayKey) time.Time {
	y, m, d := day.Time().Date()
	return time.Date(y, m, d, 12, 0, 0, 0, c.location()).Add(c.Leeway)
}

type DayBucket struct {
	Day           DayKey `json:"day"`
	EventCount    int    `json:"event_count"`
	FreezeApplied bool   `json:"freeze_applied"`
	Qualifying    bool   `json:"qualifying"`
}

// Buckets groups events by day, chronologically. Only days with at least one
// event are returned. Coverage events do not count towards EventCount; they
// make the day qualifying on their own.
func Buckets(events []entity.EngagementEvent, clock Clock, requiredPerDay int) []DayBucket {
	byDay := make(map[DayKey]*DayBucket)
	for _, e := range events {
		day := clock.Day(e.OccurredAt)
		b, ok := byDay[day]
		if !ok {
			b = &DayBucket{Day: day}
			byDay[day] = b
		}
		if e.IsFreezeConsumption {
			b.FreezeApplied = true
		} else {
			b.EventCount++
		}
	}
	result := make([]DayBucket, 0, len(byDay))
	for _, b := range byDay {
		b.Qualifying = b.FreezeApplied || b.EventCount >= requiredPerDay
		result = append(result, *b)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Day < result[j].Day })
	return result
}

// GroupByDay returns the qualifying days in chronological order.
func GroupByDay(events []entity.EngagementEvent, clock Clock, requiredPerDay int) []DayKey {
	buckets := Buckets(events, clock, requiredPerDay)
	days := make([]DayKey, 0, len(buckets))
	for _, b := range buckets {
		if b.Qualifying {
			days = append(days, b.Day)
		}
	}
	return days
}

// Calendar returns one bucket per day in [from, to], including empty days.
func Calendar(events []entity.EngagementEvent, clock Clock, requiredPerDay int, from, to DayKey) []DayBucket {
	if to < from {
		return nil
	}
	index := make(map[DayKey]DayBucket)
	for _, b := range Buckets(events, clock, requiredPerDay) {
		index[b.Day] = b
	}
	result := make([]DayBucket, 0, int(to-from)+1)
	for day := from; day <= to; day++ {
		b, ok := index[day]
		if !ok {
			b = DayBucket{Day: day}
		}
		result = append(result, b)
	}
	return result
}
