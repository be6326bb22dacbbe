package version

import (
	"strings"
	"testing"
)

func withBuildDate(t *testing.T, date string) {
	t.Helper()
	old := BuildDate
	BuildDate = date
	t.Cleanup(func() { BuildDate = old })
}

func TestBuildNumber(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		expected  int
		wantError bool
	}{
		{name: "epoch date", date: "2026-01-01", expected: 0},
		{name: "next day", date: "2026-01-02", expected: 1},
		{name: "one year later", date: "2027-01-01", expected: 365},
		{name: "across leap year", date: "2029-01-01", expected: 1096},
		{name: "invalid format", date: "18.10.2026", wantError: true},
		{name: "empty date", date: "", wantError: true},
		{name: "before epoch", date: "2025-12-31", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBuildDate(t, tt.date)

			got, err := BuildNumber()
			if tt.wantError {
				if err == nil {
					t.Fatalf("expected error, got nil (n=%d)", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("BuildNumber() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestInfoAndString(t *testing.T) {
	withBuildDate(t, "")
	info := Info()
	if info.Error == "" || info.Release != Release {
		t.Errorf("dev build should carry an error: %+v", info)
	}
	if !strings.Contains(String(), "dev build") {
		t.Errorf("unexpected dev string: %s", String())
	}

	withBuildDate(t, "2026-10-18")
	info = Info()
	if info.Error != "" || info.BuildNumber != 290 {
		t.Errorf("unexpected info: %+v", info)
	}
	if !strings.Contains(String(), "build 290") {
		t.Errorf("unexpected string: %s", String())
	}
}
