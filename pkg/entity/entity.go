package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

// EngagementEvent is a single user action inside a stream. Coverage events
// written when a freeze bridges a missed day carry IsFreezeConsumption and
// the id of the consumed token.
type EngagementEvent struct {
	ID                  string    `json:"id"`
	StreamKey           string    `json:"stream_key"`
	UserID              string    `json:"user_id"`
	OccurredAt          time.Time `json:"occurred_at"`
	Metadata            Metadata  `json:"metadata,omitempty"`
	IsFreezeConsumption bool      `json:"is_freeze_consumption"`
	FreezeID            string    `json:"freeze_id,omitempty"`
}

type FreezeToken struct {
	ID           string     `json:"id"`
	StreamKey    string     `json:"stream_key"`
	UserID       string     `json:"user_id"`
	DateCreated  time.Time  `json:"date_created"`
	DateExpires  *time.Time `json:"date_expires,omitempty"`
	DateConsumed *time.Time `json:"date_consumed,omitempty"`
}

// IsAvailable reports whether the token can still be spent at the given instant.
func (f FreezeToken) IsAvailable(at time.Time) bool {
	if f.DateConsumed != nil {
		return false
	}
	return f.DateExpires == nil || f.DateExpires.After(at)
}

// FreezeApplication pairs a token with the coverage event it produces.
type FreezeApplication struct {
	TokenID  string
	Coverage EngagementEvent
}

type StreakStatus string

const (
	StreakNone   StreakStatus = "none"
	StreakActive StreakStatus = "active"
	StreakAtRisk StreakStatus = "at_risk"
	StreakBroken StreakStatus = "broken"
)

type ManualFreezeState string

const (
	CanSaveStreakWithFreezes    ManualFreezeState = "can_save_streak_with_freezes"
	CannotSaveStreakWithFreezes ManualFreezeState = "cannot_save_streak_with_freezes"
)

type ManualFreezeStatus struct {
	State ManualFreezeState `json:"state"`
	Count int               `json:"count,omitempty"`
}

func CanSaveWithFreezes(count int) ManualFreezeStatus {
	return ManualFreezeStatus{State: CanSaveStreakWithFreezes, Count: count}
}

func CannotSaveWithFreezes() ManualFreezeStatus {
	return ManualFreezeStatus{State: CannotSaveStreakWithFreezes}
}

func (s ManualFreezeStatus) CanSave() bool {
	return s.State == CanSaveStreakWithFreezes
}

// StreakSnapshot is derived from the event log on every read and never stored.
type StreakSnapshot struct {
	StreakKey                     string             `json:"streak_key"`
	UserID                        string             `json:"user_id,omitempty"`
	CurrentStreak                 int                `json:"current_streak"`
	LongestStreak                 int                `json:"longest_streak"`
	TotalEvents                   int                `json:"total_events"`
	FreezesAvailableCount         int                `json:"freezes_available_count"`
	FreezesNeeded                 int                `json:"freezes_needed"`
	EventsRequiredPerDay          int                `json:"events_required_per_day"`
	TodayEventCount               int                `json:"today_event_count"`
	DateLastEvent                 *time.Time         `json:"date_last_event,omitempty"`
	Status                        StreakStatus       `json:"status"`
	ApplyManualStreakFreezeStatus ManualFreezeStatus `json:"apply_manual_streak_freeze_status"`
	RecentEvents                  []EngagementEvent  `json:"recent_events,omitempty"`
}

type XPEvent struct {
	ID            string    `json:"id"`
	ExperienceKey string    `json:"experience_key"`
	UserID        string    `json:"user_id"`
	Points        int       `json:"points"`
	OccurredAt    time.Time `json:"occurred_at"`
	Metadata      Metadata  `json:"metadata,omitempty"`
}

type XPSnapshot struct {
	ExperienceKey    string     `json:"experience_key"`
	UserID           string     `json:"user_id,omitempty"`
	PointsAllTime    int        `json:"points_all_time"`
	PointsToday      int        `json:"points_today"`
	EventsTodayCount int        `json:"events_today_count"`
	DateLastEvent    *time.Time `json:"date_last_event,omitempty"`
	DateCreated      *time.Time `json:"date_created,omitempty"`
	RecentEvents     []XPEvent  `json:"recent_events,omitempty"`
}

type ProgressItem struct {
	ID           string    `json:"id"`
	ProgressKey  string    `json:"progress_key"`
	UserID       string    `json:"user_id"`
	Value        float64   `json:"value"`
	Metadata     Metadata  `json:"metadata,omitempty"`
	DateCreated  time.Time `json:"date_created"`
	DateModified time.Time `json:"date_modified"`
}
