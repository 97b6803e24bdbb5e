// Package version holds the build metadata stamped in with -ldflags, e.g.
//
//	-X sst-launcher/internal/version.Version=1.0.0
package version

import (
	"fmt"
	"runtime"

	"sst-launcher/internal/platform"
)

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Info describes the running binary and the host it resolves flags for
type Info struct {
	Version      string `json:"version"`
	GitCommit    string `json:"git_commit"`
	BuildDate    string `json:"build_date"`
	GoVersion    string `json:"go_version"`
	Platform     string `json:"platform"`
	Architecture string `json:"architecture"`
}

// Get collects the stamped metadata. Platform uses the flag-table spelling
// (Darwin, Linux, Windows).
func Get() Info {
	return Info{
		Version:      Version,
		GitCommit:    GitCommit,
		BuildDate:    BuildDate,
		GoVersion:    runtime.Version(),
		Platform:     platform.GetCurrentPlatform().String(),
		Architecture: runtime.GOARCH,
	}
}

func (i Info) String() string {
	return fmt.Sprintf("sst-launcher %s (commit: %s, built: %s, go: %s)\nPlatform:     %s/%s",
		i.Version, i.GitCommit, i.BuildDate, i.GoVersion, i.Platform, i.Architecture)
}
