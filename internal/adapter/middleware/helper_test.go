package middleware

import (
	"testing"
	"time"
)

func TestParseRequestAt(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    time.Time
		wantErr bool
	}{
		{"epoch seconds", "1788386400", time.Unix(1788386400, 0).UTC(), false},
		{"epoch milliseconds", "1788386400123", time.UnixMilli(1788386400123).UTC(), false},
		{"rfc3339 utc", "2026-09-01T10:00:00Z", time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), false},
		{"rfc3339 with offset", "2026-09-01T12:00:00+02:00", time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), false},
		{"rfc3339 nano", "2026-09-01T10:00:00.500Z", time.Date(2026, 9, 1, 10, 0, 0, 500*1e6, time.UTC), false},
		{"empty", "", time.Time{}, true},
		{"naive timestamp", "2026-09-01 10:00:00", time.Time{}, true},
		{"date only", "2026-09-01", time.Time{}, true},
		{"garbage", "manana", time.Time{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseRequestAt(tc.raw)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("parseRequestAt(%q) = %v, want error", tc.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseRequestAt(%q): %v", tc.raw, err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("parseRequestAt(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestValidReqID(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"11111111111111111111111111111111", true},
		{"A3BB189E-8BF9-3888-9912-ACE4E6543002", true}, // case-folded before matching
		{"a3bb189e-8bf9-3888-9912-ace4e6543002", true},
		{"  11111111111111111111111111111111  ", true},
		{"", false},
		{"short", false},
		{"1111111111111111111111111111111g", false},
		{"a3bb189e-8bf9-7888-c912-ace4e6543002", false}, // bad version and variant nibbles
	}

	for _, tc := range tests {
		if got := validReqID(tc.raw); got != tc.want {
			t.Errorf("validReqID(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestBuildKey(t *testing.T) {
	got := buildKey("POST", "/solicitudes", "abc", "req1")
	want := "idemp:sils:post:/solicitudes:abc:req1"
	if got != want {
		t.Fatalf("buildKey = %q, want %q", got, want)
	}
}

func TestBodyHashIsStable(t *testing.T) {
	a := bodyHash([]byte(`{"tipo":"NUEVA"}`))
	b := bodyHash([]byte(`{"tipo":"NUEVA"}`))
	c := bodyHash([]byte(`{"tipo":"REPARACION"}`))
	if a != b {
		t.Fatal("same body hashed differently")
	}
	if a == c {
		t.Fatal("different bodies collided")
	}
	if len(a) != 64 {
		t.Fatalf("hash length = %d, want 64 hex chars", len(a))
	}
}
