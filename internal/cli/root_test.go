package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sst-launcher/internal/common"
	launchererrors "sst-launcher/internal/errors"
	"sst-launcher/internal/platform"
)

type recordingExecutor struct {
	commands  []string
	exitCodes []int
}

func (r *recordingExecutor) Run(ctx context.Context, cmd string, args []string) (*platform.Result, error) {
	idx := len(r.commands)
	r.commands = append(r.commands, strings.Join(append([]string{cmd}, args...), " "))
	code := 0
	if idx < len(r.exitCodes) {
		code = r.exitCodes[idx]
	}
	return &platform.Result{ExitCode: code, Duration: time.Millisecond}, nil
}

func (r *recordingExecutor) IsCommandAvailable(string) bool { return true }

func useExecutor(t *testing.T, exec platform.CommandExecutor) {
	t.Helper()
	orig := newExecutor
	newExecutor = func() platform.CommandExecutor { return exec }
	t.Cleanup(func() { newExecutor = orig })
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommandMetadata(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "sst-launcher", cmd.Use)
	assert.True(t, cmd.SilenceUsage)
	assert.True(t, cmd.SilenceErrors)

	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	assert.True(t, names[CmdFlags])
	assert.True(t, names[CmdVersion])
	assert.True(t, names[CmdConfig])
}

func TestRootRejectsPositionalArgs(t *testing.T) {
	useExecutor(t, &recordingExecutor{})
	_, _, err := execute(t, "extra")
	assert.Error(t, err)
}

func TestRootRunsSequence(t *testing.T) {
	exec := &recordingExecutor{}
	useExecutor(t, exec)

	_, _, err := execute(t, "--os", "Linux")
	require.NoError(t, err)

	require.Len(t, exec.commands, 5)
	assert.Equal(t, "make jar", exec.commands[0])
	assert.Equal(t, "java -ea -XX:+AggressiveHeap -XX:+AllowUserSignalHandlers -Xcheck:jni -cp sst.jar shared.test.All", exec.commands[1])
	assert.True(t, strings.HasSuffix(exec.commands[4], " sharedx.test.AllX"))
}

func TestRootPropagatesLastExitCode(t *testing.T) {
	exec := &recordingExecutor{exitCodes: []int{0, 0, 0, 0, 1}}
	useExecutor(t, exec)

	_, _, err := execute(t, "--os", "Windows")
	require.Error(t, err)

	var status *launchererrors.ExitStatusError
	require.ErrorAs(t, err, &status)
	assert.Equal(t, 1, status.Code)
	for _, c := range exec.commands[1:] {
		assert.True(t, strings.HasPrefix(c, "java -ea -XX:+AggressiveHeap -Xcheck:jni -cp sst.jar "), c)
	}
}

func TestRootAggregateFlag(t *testing.T) {
	useExecutor(t, &recordingExecutor{exitCodes: []int{0, 4, 0, 0, 0}})

	_, _, err := execute(t, "--os", "Darwin", "--aggregate")
	var status *launchererrors.ExitStatusError
	require.ErrorAs(t, err, &status)
	assert.Equal(t, 4, status.Code)
}

func TestRootStrictBuildFlag(t *testing.T) {
	exec := &recordingExecutor{exitCodes: []int{2}}
	useExecutor(t, exec)

	_, _, err := execute(t, "--os", "Darwin", "--strict-build")
	assert.True(t, launchererrors.IsBuildFailed(err))
	assert.Len(t, exec.commands, 1)
}

func TestRootUnsupportedPlatform(t *testing.T) {
	exec := &recordingExecutor{}
	useExecutor(t, exec)

	_, _, err := execute(t, "--os", "Plan9")
	assert.True(t, launchererrors.IsUnsupportedPlatform(err))
	assert.Empty(t, exec.commands)
}

func TestRootDryRun(t *testing.T) {
	exec := &recordingExecutor{}
	useExecutor(t, exec)

	stdout, _, err := execute(t, "--os", "Windows", "--dry-run")
	require.NoError(t, err)
	assert.Empty(t, exec.commands)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "make jar", lines[0])
	assert.Equal(t, "java -ea -XX:+AggressiveHeap -Xcheck:jni -cp sst.jar sharedx.test.AllX", lines[4])
}

func TestRootSummary(t *testing.T) {
	useExecutor(t, &recordingExecutor{})

	_, stderr, err := execute(t, "--os", "Linux", "--summary")
	require.NoError(t, err)
	assert.Contains(t, stderr, "shared.test.AllNative")
	assert.Contains(t, stderr, "on Linux")
}

func TestRootConfigFile(t *testing.T) {
	exec := &recordingExecutor{}
	useExecutor(t, exec)

	path := filepath.Join(t.TempDir(), "launcher.yaml")
	require.NoError(t, os.WriteFile(path, []byte("build:\n  command: ant\n  args: [jar]\nsuites: [shared.test.All]\n"), 0644))

	_, _, err := execute(t, "--config", path, "--os", "Linux")
	require.NoError(t, err)
	require.Len(t, exec.commands, 2)
	assert.Equal(t, "ant jar", exec.commands[0])
}

func TestRootBadConfig(t *testing.T) {
	exec := &recordingExecutor{}
	useExecutor(t, exec)

	_, _, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	assert.Empty(t, exec.commands)
}

func TestRootLogLevel(t *testing.T) {
	orig := common.LauncherLogger.Level()
	t.Cleanup(func() { common.SetGlobalLevel(orig) })

	t.Run("valid", func(t *testing.T) {
		useExecutor(t, &recordingExecutor{})
		_, _, err := execute(t, "--os", "Linux", "--log-level", "error")
		require.NoError(t, err)
		assert.Equal(t, common.LogError, common.LauncherLogger.Level())
		assert.Equal(t, common.LogError, common.CLILogger.Level())
	})

	t.Run("verbose wins", func(t *testing.T) {
		useExecutor(t, &recordingExecutor{})
		_, _, err := execute(t, "--os", "Linux", "--log-level", "error", "--verbose")
		require.NoError(t, err)
		assert.Equal(t, common.LogDebug, common.LauncherLogger.Level())
	})

	t.Run("unknown", func(t *testing.T) {
		exec := &recordingExecutor{}
		useExecutor(t, exec)
		_, _, err := execute(t, "--os", "Linux", "--log-level", "loud")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--log-level")
		assert.Empty(t, exec.commands)
	})
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, isTerminal(f))
}
