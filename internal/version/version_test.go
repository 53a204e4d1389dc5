package version

import (
	"fmt"
	"runtime/debug"
	"testing"
)

func TestCalculateBuildID(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		expected  int
		wantError bool
	}{
		{
			name:     "epoch date",
			date:     "2025-12-04",
			expected: 0,
		},
		{
			name:     "next day after epoch",
			date:     "2025-12-05",
			expected: 1,
		},
		{
			name:     "one year later",
			date:     "2026-12-04",
			expected: 365,
		},
		{
			name:     "date with leap years included",
			date:     "2032-12-04",
			expected: 2557,
		},
		{
			name:      "invalid format",
			date:      "invalid",
			wantError: true,
		},
		{
			name:      "empty date",
			date:      "",
			wantError: true,
		},
		{
			name:      "before epoch",
			date:      "2025-12-03",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// BuildDate is a package global, subtests stay sequential.
			old := BuildDate
			defer func() { BuildDate = old }()

			BuildDate = tt.date

			got, err := CalculateBuildID()

			if tt.wantError {
				if err == nil {
					t.Fatalf("expected error, got nil (id=%d)", got)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != tt.expected {
				t.Errorf("CalculateBuildID() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestFromSettings(t *testing.T) {
	commit, date := fromSettings([]debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "0123456789abcdef0123"},
		{Key: "vcs.time", Value: "2026-01-15T22:30:00Z"},
	})

	if commit != "0123456789ab" {
		t.Errorf("commit = %q", commit)
	}
	if date != "2026-01-15" {
		t.Errorf("date = %q", date)
	}

	commit, date = fromSettings(nil)
	if commit != "" || date != "" {
		t.Errorf("empty settings gave %q %q", commit, date)
	}
}

func TestString(t *testing.T) {
	oldDate, oldCommit := BuildDate, BuildCommit
	defer func() { BuildDate, BuildCommit = oldDate, oldCommit }()

	BuildDate = "2025-12-14"
	BuildCommit = "abc"

	want := fmt.Sprintf("Build 10 (2025-12-14) commit[abc] branch[%s] ci[%s]",
		coalesce(BuildBranch, "unknown"), coalesce(BuildCI, "local"))
	if got := String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
