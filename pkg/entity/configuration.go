package entity

import (
	"math"
	"time"

	errorvalues "github.com/limbo/engagement/internal/error_values"
)

const (
	DefaultStreakKey     = "daily"
	DefaultExperienceKey = "general"
	DefaultProgressKey   = "general"
)

type FreezeBehavior string

const (
	AutoConsumeFreezes FreezeBehavior = "auto_consume_freezes"
	ManualApply        FreezeBehavior = "manual_apply"
)

// StreakConfiguration is fixed for the lifetime of a streak service.
type StreakConfiguration struct {
	StreakKey            string         `toml:"key" yaml:"key" json:"streak_key" validate:"required,stream_key"`
	EventsRequiredPerDay int            `toml:"events_required_per_day" yaml:"events_required_per_day" json:"events_required_per_day" validate:"min=1"`
	UseServerCalculation bool           `toml:"use_server_calculation" yaml:"use_server_calculation" json:"use_server_calculation" validate:"eq=false"`
	LeewayHours          int            `toml:"leeway_hours" yaml:"leeway_hours" json:"leeway_hours" validate:"min=0,max=23"`
	FreezeBehavior       FreezeBehavior `toml:"freeze_behavior" yaml:"freeze_behavior" json:"freeze_behavior" validate:"oneof=auto_consume_freezes manual_apply"`
	TimeZone             string         `toml:"timezone" yaml:"timezone" json:"timezone" validate:"omitempty,timezone"`
}

type ExperienceConfiguration struct {
	ExperienceKey string `toml:"key" yaml:"key" json:"experience_key" validate:"required,stream_key"`
	LeewayHours   int    `toml:"leeway_hours" yaml:"leeway_hours" json:"leeway_hours" validate:"min=0,max=23"`
	TimeZone      string `toml:"timezone" yaml:"timezone" json:"timezone" validate:"omitempty,timezone"`
}

type ProgressConfiguration struct {
	ProgressKey string `toml:"key" yaml:"key" json:"progress_key" validate:"required,stream_key"`
}

func DefaultStreakConfiguration() StreakConfiguration {
	return StreakConfiguration{
		StreakKey:            DefaultStreakKey,
		EventsRequiredPerDay: 1,
		FreezeBehavior:       AutoConsumeFreezes,
	}
}

// Location resolves the configured IANA zone, UTC when empty.
func (c StreakConfiguration) Location() (*time.Location, error) {
	return loadLocation(c.TimeZone)
}

func (c ExperienceConfiguration) Location() (*time.Location, error) {
	return loadLocation(c.TimeZone)
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(name)
}

// ClampProgress keeps a progress value inside [0, 1]. NaN is rejected.
func ClampProgress(v float64) (float64, error) {
	if math.IsNaN(v) {
		return 0, errorvalues.ErrInvalidProgressValue
	}
	return math.Max(0, math.Min(1, v)), nil
}
