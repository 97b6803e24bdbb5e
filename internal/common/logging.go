package common

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the severity of a log message
type LogLevel int

const (
	LogDebug LogLevel = iota
	LogInfo
	LogWarn
	LogError
)

const debugEnvVar = "SST_LAUNCHER_DEBUG"

var logLevelNames = map[LogLevel]string{
	LogDebug: "DEBUG",
	LogInfo:  "INFO",
	LogWarn:  "WARN",
	LogError: "ERROR",
}

// SafeLogger writes leveled messages to stderr only, leaving stdout to the
// child processes.
type SafeLogger struct {
	mu     sync.Mutex
	prefix string
	runID  string
	level  LogLevel
	out    io.Writer
}

// NewSafeLogger creates a new safe logger with the given prefix. The default
// level is WARN so a normal run prints nothing of its own.
func NewSafeLogger(prefix string) *SafeLogger {
	level := LogWarn
	if v := os.Getenv(debugEnvVar); v == "1" || strings.EqualFold(v, "true") {
		level = LogDebug
	}
	return &SafeLogger{
		prefix: prefix,
		level:  level,
	}
}

// SetLevel sets the minimum log level
func (l *SafeLogger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Level returns the current minimum level
func (l *SafeLogger) Level() LogLevel {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// SetOutput redirects the logger; nil restores stderr
func (l *SafeLogger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
}

// SetRunID tags subsequent lines with the given run identifier
func (l *SafeLogger) SetRunID(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.runID = id
}

func (l *SafeLogger) log(level LogLevel, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	out := l.out
	if out == nil {
		out = os.Stderr
	}

	timestamp := time.Now().Format("2006/01/02 15:04:05")
	message := fmt.Sprintf(format, args...)

	if l.runID != "" {
		fmt.Fprintf(out, "%s [%s] %s(%s): %s\n", timestamp, logLevelNames[level], l.prefix, l.runID, message)
		return
	}
	fmt.Fprintf(out, "%s [%s] %s: %s\n", timestamp, logLevelNames[level], l.prefix, message)
}

func (l *SafeLogger) Debug(format string, args ...interface{}) {
	l.log(LogDebug, format, args...)
}

func (l *SafeLogger) Info(format string, args ...interface{}) {
	l.log(LogInfo, format, args...)
}

func (l *SafeLogger) Warn(format string, args ...interface{}) {
	l.log(LogWarn, format, args...)
}

func (l *SafeLogger) Error(format string, args ...interface{}) {
	l.log(LogError, format, args...)
}

// ParseLogLevel maps a level name to a LogLevel
func ParseLogLevel(name string) (LogLevel, error) {
	for level, levelName := range logLevelNames {
		if strings.EqualFold(name, levelName) {
			return level, nil
		}
	}
	return LogWarn, fmt.Errorf("unknown log level %q", name)
}

// Global logger instances for convenience
var (
	LauncherLogger = NewSafeLogger("Launcher")
	CLILogger      = NewSafeLogger("CLI")
)

// SetGlobalLevel applies level to every package-level logger
func SetGlobalLevel(level LogLevel) {
	LauncherLogger.SetLevel(level)
	CLILogger.SetLevel(level)
}
