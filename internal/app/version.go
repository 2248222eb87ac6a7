package app

import (
	"fmt"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/apper-apps/feedbackhub-driver-pixel/internal/app.Version=1.2.0".
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion is the version line logged at startup. Commit and build time
// fall back to the VCS stamp the toolchain embeds when ldflags left them empty.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch {
			case s.Key == "vcs.revision" && commit == "":
				commit = s.Value
			case s.Key == "vcs.time" && built == "":
				built = s.Value
			}
		}
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, orUnknown(commit), orUnknown(built))
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
