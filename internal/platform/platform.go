package platform

import (
	"context"
	"runtime"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shirou/gopsutil/v3/host"

	"sst-launcher/internal/common"
)

// Platform is an operating-system identifier in the flag table spelling
// (Darwin, Linux, Windows).
type Platform string

const (
	PlatformDarwin  Platform = PLATFORM_DARWIN
	PlatformLinux   Platform = PLATFORM_LINUX
	PlatformWindows Platform = PLATFORM_WINDOWS
)

func (p Platform) String() string {
	return string(p)
}

// NormalizeOS converts an OS name as reported by the Go runtime or gopsutil
// into a flag table identifier. Known names map to their canonical spelling;
// anything else is returned with its first letter upper-cased.
func NormalizeOS(name string) Platform {
	trimmed := strings.TrimSpace(name)
	switch strings.ToLower(trimmed) {
	case GOOS_DARWIN, "macos", "osx":
		return PlatformDarwin
	case GOOS_LINUX:
		return PlatformLinux
	case GOOS_WINDOWS:
		return PlatformWindows
	case "":
		return Platform(STATUS_UNKNOWN)
	}
	lower := strings.ToLower(trimmed)
	first, size := utf8.DecodeRuneInString(lower)
	return Platform(string(unicode.ToUpper(first)) + lower[size:])
}

// GetCurrentPlatform returns the identifier for the OS this binary was built for
func GetCurrentPlatform() Platform {
	return NormalizeOS(runtime.GOOS)
}

// HostInfo describes the running host
type HostInfo struct {
	Platform        Platform `json:"platform"`
	Distribution    string   `json:"distribution,omitempty"`
	PlatformVersion string   `json:"platform_version,omitempty"`
	KernelArch      string   `json:"kernel_arch,omitempty"`
}

var hostInfo = host.InfoWithContext

// DetectHost reports the host OS through gopsutil. When gopsutil cannot read
// the host details the identifier falls back to runtime.GOOS.
func DetectHost(ctx context.Context) *HostInfo {
	stat, err := hostInfo(ctx)
	if err != nil || stat == nil || stat.OS == "" {
		common.LauncherLogger.Debug("Host detection via gopsutil failed, using runtime.GOOS: %v", err)
		return &HostInfo{
			Platform:   GetCurrentPlatform(),
			KernelArch: runtime.GOARCH,
		}
	}

	return &HostInfo{
		Platform:        NormalizeOS(stat.OS),
		Distribution:    stat.Platform,
		PlatformVersion: stat.PlatformVersion,
		KernelArch:      stat.KernelArch,
	}
}

// Describe renders the host for log lines, e.g. "Linux (ubuntu 22.04, x86_64)"
func (h *HostInfo) Describe() string {
	var details []string
	if h.Distribution != "" {
		d := h.Distribution
		if h.PlatformVersion != "" {
			d += " " + h.PlatformVersion
		}
		details = append(details, d)
	}
	if h.KernelArch != "" {
		details = append(details, h.KernelArch)
	}
	if len(details) == 0 {
		return h.Platform.String()
	}
	return h.Platform.String() + " (" + strings.Join(details, ", ") + ")"
}
