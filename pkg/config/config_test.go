package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/limbo/engagement/pkg/config"
	"github.com/limbo/engagement/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tomlStreams = `
[[streak]]
key = "daily"

[[streak]]
key = "reading"
events_required_per_day = 2
leeway_hours = 3
freeze_behavior = "manual_apply"
timezone = "Europe/Berlin"

[[experience]]
key = "general"

[[progress]]
key = "lessons"
`

const yamlStreams = `
streak:
  - key: daily
  - key: reading
    events_required_per_day: 2
    leeway_hours: 3
    freeze_behavior: manual_apply
    timezone: Europe/Berlin
experience:
  - key: general
progress:
  - key: lessons
`

func TestLoadStreams(t *testing.T) {
	expected := config.Streams{
		Streaks: []entity.StreakConfiguration{
			entity.DefaultStreakConfiguration(),
			{
				StreakKey:            "reading",
				EventsRequiredPerDay: 2,
				LeewayHours:          3,
				FreezeBehavior:       entity.ManualApply,
				TimeZone:             "Europe/Berlin",
			},
		},
		Experiences: []entity.ExperienceConfiguration{{ExperienceKey: "general"}},
		Progress:    []entity.ProgressConfiguration{{ProgressKey: "lessons"}},
	}
	testCases := []struct {
		Desc    string
		File    string
		Content string
	}{
		{Desc: "toml", File: "streams.toml", Content: tomlStreams},
		{Desc: "yaml", File: "streams.yaml", Content: yamlStreams},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tc.File)
			require.NoError(t, os.WriteFile(path, []byte(tc.Content), 0o600))
			streams, err := config.LoadStreams(path)
			require.NoError(t, err)
			assert.Equal(t, expected, streams)
		})
	}
}

func TestLoadStreamsErrors(t *testing.T) {
	dir := t.TempDir()
	unsupported := filepath.Join(dir, "streams.json")
	require.NoError(t, os.WriteFile(unsupported, []byte("{}"), 0o600))
	broken := filepath.Join(dir, "broken.toml")
	require.NoError(t, os.WriteFile(broken, []byte("[[streak]\nkey ="), 0o600))

	for _, path := range []string{filepath.Join(dir, "missing.toml"), unsupported, broken} {
		_, err := config.LoadStreams(path)
		assert.Error(t, err, path)
	}
}

func TestEnvGetters(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_DURATION", "90s")
	t.Setenv("TEST_BROKEN", "many")
	cfg := config.New()

	assert.Equal(t, 42, cfg.GetInt("TEST_INT", 1))
	assert.Equal(t, 1, cfg.GetInt("TEST_BROKEN", 1))
	assert.Equal(t, 90*time.Second, cfg.GetDuration("TEST_DURATION", time.Second))
	assert.Equal(t, time.Second, cfg.GetDuration("TEST_MISSING", time.Second))
	assert.Equal(t, "fallback", cfg.GetStringOr("TEST_MISSING", "fallback"))
}
