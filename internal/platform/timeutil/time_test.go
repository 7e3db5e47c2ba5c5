package timeutil

import (
	"strings"
	"testing"
	"time"
)

func TestMicrosIsFixedWidthUTC(t *testing.T) {
	tests := []struct {
		ts   time.Time
		want string
	}{
		{time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), "2024-01-15T10:30:00.000000Z"},
		{time.Date(2024, 1, 15, 10, 30, 0, 1000, time.UTC), "2024-01-15T10:30:00.000001Z"},
	}
	for _, tt := range tests {
		if got := tt.ts.Format(RFC3339Micros); got != tt.want {
			t.Fatalf("Format(%v) = %q, want %q", tt.ts, got, tt.want)
		}
	}
}

func TestMicrosRoundTrip(t *testing.T) {
	ts := time.Date(2024, 6, 1, 8, 0, 0, 123456000, time.UTC)
	formatted := ts.Format(RFC3339Micros)
	if !strings.HasSuffix(formatted, ".123456Z") {
		t.Fatalf("unexpected fractional part: %s", formatted)
	}
	parsed, err := time.Parse(RFC3339Micros, formatted)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !parsed.Equal(ts) {
		t.Fatalf("round trip mismatch: %v != %v", parsed, ts)
	}
}
