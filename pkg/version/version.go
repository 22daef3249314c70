package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

// Overridden with -ldflags "-X .../pkg/version.Version=..." at release time.
var Version = "0.0.0-dev"
var Commit = ""
var BuildTime = ""

type buildSettings map[string]string

func readBuildSettings() buildSettings {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi == nil {
		return nil
	}
	settings := make(buildSettings, len(bi.Settings))
	for _, s := range bi.Settings {
		settings[s.Key] = s.Value
	}
	return settings
}

// apply fills Version, Commit and BuildTime from VCS stamps when ldflags
// did not set them.
func (s buildSettings) apply() {
	if Version != "" && Version != "0.0.0-dev" {
		return
	}

	if rev := s["vcs.revision"]; Commit == "" && len(rev) >= 7 {
		Commit = rev[:7]
	}

	if t := s["vcs.time"]; BuildTime == "" && t != "" {
		if ts, err := time.Parse(time.RFC3339, t); err == nil {
			BuildTime = ts.UTC().Format("2006-01-02T15:04:05Z")
		}
	}

	if tag := s["vcs.tag"]; tag != "" {
		Version = strings.TrimPrefix(tag, "v")
		if strings.EqualFold(s["vcs.modified"], "true") {
			Version += "-dirty"
		}
	}
}

func init() {
	readBuildSettings().apply()
}

// FormatVersion returns the version with commit and build time when known.
// Ex.: "1.2.3 (commit: abc1234, built at: 2025-10-23T10:20:30Z)"
func FormatVersion() string {
	ver := Version
	if ver == "" {
		ver = "0.0.0-dev"
	}

	if Commit == "" {
		if BuildTime == "" {
			return fmt.Sprintf("%s (development)", ver)
		}
		return fmt.Sprintf("%s (commit: development, built at: %s)", ver, BuildTime)
	}

	if BuildTime != "" {
		return fmt.Sprintf("%s (commit: %s, built at: %s)", ver, Commit, BuildTime)
	}
	return fmt.Sprintf("%s (commit: %s)", ver, Commit)
}

// UserAgent is sent with outbound webhook requests.
func UserAgent() string {
	return "aws-billing-notifier/" + Version
}
