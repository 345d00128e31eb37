package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestUserLimitersEvictIdle(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	l := newUserLimiters(rate.Limit(1), 1)
	l.now = func() time.Time { return now }
	l.lastSweep = now

	busy := l.get("busy")
	idle := l.get("idle")
	assert.Same(t, busy, l.get("busy"))

	now = now.Add(limiterIdleTTL / 2)
	l.get("busy")
	assert.Len(t, l.limiters, 2)

	now = now.Add(limiterIdleTTL / 2)
	assert.Same(t, busy, l.get("busy"))
	assert.Len(t, l.limiters, 1)
	assert.NotContains(t, l.limiters, "idle")

	assert.NotSame(t, idle, l.get("idle"))
	assert.Len(t, l.limiters, 2)
}
