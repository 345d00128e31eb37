package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/limbo/engagement/pkg/entity"
	"gopkg.in/yaml.v3"
)

// Streams lists every stream the engine serves.
type Streams struct {
	Streaks     []entity.StreakConfiguration     `toml:"streak" yaml:"streak"`
	Experiences []entity.ExperienceConfiguration `toml:"experience" yaml:"experience"`
	Progress    []entity.ProgressConfiguration   `toml:"progress" yaml:"progress"`
}

// DefaultStreams is one stream of each kind under the default keys.
func DefaultStreams() Streams {
	return Streams{
		Streaks:     []entity.StreakConfiguration{entity.DefaultStreakConfiguration()},
		Experiences: []entity.ExperienceConfiguration{{ExperienceKey: entity.DefaultExperienceKey}},
		Progress:    []entity.ProgressConfiguration{{ProgressKey: entity.DefaultProgressKey}},
	}
}

// LoadStreams reads a .toml, .yaml or .yml file. Streak entries start from
// the defaults so omitted fields keep their default values. Validation is
// left to the services.
func LoadStreams(path string) (Streams, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Streams{}, fmt.Errorf("reading streams config: %w", err)
	}
	var doc streamsDocument
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		_, err = toml.Decode(string(raw), &doc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &doc)
	default:
		return Streams{}, fmt.Errorf("unsupported streams config format %q", ext)
	}
	if err != nil {
		return Streams{}, fmt.Errorf("parsing streams config %s: %w", path, err)
	}
	return doc.streams(), nil
}

// streamsDocument keeps the user-facing streak fields optional.
type streamsDocument struct {
	Streaks     []streakDocument                 `toml:"streak" yaml:"streak"`
	Experiences []entity.ExperienceConfiguration `toml:"experience" yaml:"experience"`
	Progress    []entity.ProgressConfiguration   `toml:"progress" yaml:"progress"`
}

type streakDocument struct {
	Key                  string                 `toml:"key" yaml:"key"`
	EventsRequiredPerDay *int                   `toml:"events_required_per_day" yaml:"events_required_per_day"`
	UseServerCalculation bool                   `toml:"use_server_calculation" yaml:"use_server_calculation"`
	LeewayHours          int                    `toml:"leeway_hours" yaml:"leeway_hours"`
	FreezeBehavior       *entity.FreezeBehavior `toml:"freeze_behavior" yaml:"freeze_behavior"`
	TimeZone             string                 `toml:"timezone" yaml:"timezone"`
}

func (d streamsDocument) streams() Streams {
	s := Streams{
		Experiences: d.Experiences,
		Progress:    d.Progress,
	}
	for _, doc := range d.Streaks {
		cfg := entity.DefaultStreakConfiguration()
		cfg.StreakKey = doc.Key
		cfg.UseServerCalculation = doc.UseServerCalculation
		cfg.LeewayHours = doc.LeewayHours
		cfg.TimeZone = doc.TimeZone
		if doc.EventsRequiredPerDay != nil {
			cfg.EventsRequiredPerDay = *doc.EventsRequiredPerDay
		}
		if doc.FreezeBehavior != nil {
			cfg.FreezeBehavior = *doc.FreezeBehavior
		}
		s.Streaks = append(s.Streaks, cfg)
	}
	return s
}
