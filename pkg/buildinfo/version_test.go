package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func setVars(t *testing.T, version, commit, date string) {
	t.Helper()
	v, c, d := Version, Commit, Date
	Version, Commit, Date = version, commit, date
	t.Cleanup(func() { Version, Commit, Date = v, c, d })
}

func TestStrings(t *testing.T) {
	setVars(t, "v1.2.3", "abc123", "2024-05-01")

	if got := Template(); !strings.HasPrefix(got, "{{.Name}} version v1.2.3\ncommit: abc123\n") {
		t.Errorf("Template() = %q", got)
	}
	if got := UserAgent(); !strings.HasPrefix(got, "copybook/v1.2.3 ") {
		t.Errorf("UserAgent() = %q", got)
	}
	if got := Get(); got != (Info{Version: "v1.2.3", Commit: "abc123", Date: "2024-05-01"}) {
		t.Errorf("Get() = %+v", got)
	}
}

func TestFill(t *testing.T) {
	bi := &debug.BuildInfo{
		Main: debug.Module{Version: "v0.4.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "deadbeef"},
			{Key: "vcs.time", Value: "2024-05-01T10:00:00Z"},
		},
	}

	setVars(t, "dev", "none", "unknown")
	fill(bi)
	if Version != "v0.4.0" || Commit != "deadbeef" || Date != "2024-05-01T10:00:00Z" {
		t.Errorf("after fill: %s %s %s", Version, Commit, Date)
	}

	setVars(t, "v1.0.0", "cafe", "today")
	fill(bi)
	if Version != "v1.0.0" || Commit != "cafe" || Date != "today" {
		t.Errorf("ldflags values should win: %s %s %s", Version, Commit, Date)
	}

	setVars(t, "dev", "none", "unknown")
	fill(&debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	if Version != "dev" {
		t.Errorf("(devel) should not replace Version, got %s", Version)
	}
}
