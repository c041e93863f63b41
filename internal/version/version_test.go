package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestFull(t *testing.T) {
	full := Full()
	if !strings.Contains(full, Version) || !strings.Contains(full, "commit: "+Commit) {
		t.Errorf("Full() = %q, should contain version and commit", full)
	}
}

func TestFillFromSettings(t *testing.T) {
	saved := Commit
	defer func() { Commit = saved }()

	tests := []struct {
		name     string
		settings []debug.BuildSetting
		want     string
	}{
		{
			name: "short hash",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef"},
			},
			want: "0123456",
		},
		{
			name: "dirty tree",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef"},
				{Key: "vcs.modified", Value: "true"},
			},
			want: "0123456-dirty",
		},
		{
			name:     "no vcs info",
			settings: nil,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Commit = ""
			fillFromSettings(tt.settings)
			if Commit != tt.want {
				t.Errorf("Commit = %q, want %q", Commit, tt.want)
			}
		})
	}
}
