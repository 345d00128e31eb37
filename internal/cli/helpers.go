package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/limbo/engagement/pkg/entity"
)

// parseMetadata turns key=value pairs into metadata. Values that parse as a
// boolean or a number keep that type.
func parseMetadata(pairs []string) (entity.Metadata, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	m := make(entity.Metadata, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("metadata %q: want key=value", pair)
		}
		m[key] = parseScalar(value)
	}
	return m, nil
}

func parseScalar(s string) any {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// parseWhen accepts RFC 3339 or a plain date, read as noon in the local zone.
func parseWhen(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	d, err := time.ParseInLocation(time.DateOnly, s, time.Local)
	if err != nil {
		return nil, fmt.Errorf("time %q: want RFC 3339 or YYYY-MM-DD", s)
	}
	d = d.Add(12 * time.Hour)
	return &d, nil
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}
