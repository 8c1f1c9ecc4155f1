package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestFillFromSettings(t *testing.T) {
	oldVersion, oldCommit := Version, Commit
	defer func() { Version, Commit = oldVersion, oldCommit }()

	Version, Commit = "", ""
	fillFromSettings([]debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef"},
		{Key: "vcs.modified", Value: "true"},
		{Key: "vcs.time", Value: "2024-03-05T10:00:00Z"},
	})

	if Commit != "0123456-dirty" {
		t.Errorf("Commit = %q, want 0123456-dirty", Commit)
	}
	if Version != "dev-20240305" {
		t.Errorf("Version = %q, want dev-20240305", Version)
	}
}

func TestFillFromSettingsKeepsLdflags(t *testing.T) {
	oldVersion, oldCommit := Version, Commit
	defer func() { Version, Commit = oldVersion, oldCommit }()

	Version, Commit = "v1.2.3", "abc"
	fillFromSettings([]debug.BuildSetting{{Key: "vcs.revision", Value: "fff"}})

	if Version != "v1.2.3" || Commit != "abc" {
		t.Errorf("ldflags values overwritten: %q %q", Version, Commit)
	}
}

func TestFull(t *testing.T) {
	if !strings.Contains(Full(), Version) || !strings.Contains(Full(), "commit:") {
		t.Errorf("Full() = %q", Full())
	}
}
