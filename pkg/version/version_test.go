package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func withVersion(t *testing.T, v, commit, built string) {
	t.Helper()
	oldV, oldC, oldB := Version, Commit, BuildTime
	Version, Commit, BuildTime = v, commit, built
	t.Cleanup(func() { Version, Commit, BuildTime = oldV, oldC, oldB })
}

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		commit  string
		built   string
		want    string
	}{
		{"development", "0.0.0-dev", "", "", "0.0.0-dev (development)"},
		{"empty version", "", "", "", "0.0.0-dev (development)"},
		{"commit only", "1.2.3", "abc1234", "", "1.2.3 (commit: abc1234)"},
		{"full", "1.2.3", "abc1234", "2025-10-23T10:20:30Z", "1.2.3 (commit: abc1234, built at: 2025-10-23T10:20:30Z)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withVersion(t, tt.version, tt.commit, tt.built)
			assert.Equal(t, tt.want, FormatVersion())
		})
	}
}

func TestBuildSettingsApply(t *testing.T) {
	withVersion(t, "0.0.0-dev", "", "")

	buildSettings{
		"vcs.revision": "0123456789abcdef",
		"vcs.time":     "2025-10-23T10:20:30+02:00",
		"vcs.tag":      "v1.4.0",
		"vcs.modified": "true",
	}.apply()

	assert.Equal(t, "1.4.0-dirty", Version)
	assert.Equal(t, "0123456", Commit)
	assert.Equal(t, "2025-10-23T08:20:30Z", BuildTime)
}

func TestBuildSettingsApply_KeepsLdflags(t *testing.T) {
	withVersion(t, "2.0.0", "", "")

	buildSettings{"vcs.revision": "0123456789abcdef", "vcs.tag": "v1.0.0"}.apply()

	assert.Equal(t, "2.0.0", Version)
	assert.Empty(t, Commit)
}
