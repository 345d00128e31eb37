package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestMetricsExposure(t *testing.T) {
	IncEvent("streak")
	AddFreezesConsumed("auto", 2)
	AddFreezesConsumed("manual", 0)
	RateLimited.Inc()
	ObserveRecalculation(time.Now().Add(-150*time.Millisecond), "active")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rec.Code)
	}
	body := rec.Body.String()
	for _, m := range []string{
		`engagement_events_appended_total{kind="streak"} 1`,
		`engagement_freezes_consumed_total{mode="auto"} 2`,
		`engagement_streak_recalculations_total{status="active"} 1`,
		"engagement_streak_recalculation_duration_seconds",
		"engagement_requests_rate_limited_total 1",
	} {
		if !strings.Contains(body, m) {
			t.Fatalf("expected metric %s in body", m)
		}
	}
	if strings.Contains(body, `mode="manual"`) {
		t.Fatal("zero consumption should not create a series")
	}
}
