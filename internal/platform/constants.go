package platform

const (
	// Identifiers used as flag table keys
	PLATFORM_DARWIN  = "Darwin"
	PLATFORM_LINUX   = "Linux"
	PLATFORM_WINDOWS = "Windows"

	// GOOS spellings reported by the Go runtime and gopsutil
	GOOS_DARWIN  = "darwin"
	GOOS_LINUX   = "linux"
	GOOS_WINDOWS = "windows"

	// JVM flags shared by the default table
	FLAG_AGGRESSIVE_HEAP      = "-XX:+AggressiveHeap"
	FLAG_USER_SIGNAL_HANDLERS = "-XX:+AllowUserSignalHandlers"
	FLAG_CHECK_JNI            = "-Xcheck:jni"

	// Exit code base for children terminated by a signal
	SIGNAL_EXIT_BASE = 128

	STATUS_UNKNOWN = "unknown"
)
