package version

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"sst-launcher/internal/platform"
)

func TestGet(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()
	Version = "1.2.3"

	info := Get()
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "unknown", info.GitCommit)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, platform.GetCurrentPlatform().String(), info.Platform)
	assert.Equal(t, runtime.GOARCH, info.Architecture)
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:      "1.2.3",
		GitCommit:    "abc123",
		BuildDate:    "2024-01-01",
		GoVersion:    "go1.24.0",
		Platform:     "Linux",
		Architecture: "amd64",
	}

	lines := strings.Split(info.String(), "\n")
	assert.Equal(t, []string{
		"sst-launcher 1.2.3 (commit: abc123, built: 2024-01-01, go: go1.24.0)",
		"Platform:     Linux/amd64",
	}, lines)
}
