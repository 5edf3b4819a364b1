// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/H0llyW00dzZ/console-trace-logger/src/internal/trace"
	"github.com/H0llyW00dzZ/console-trace-logger/src/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const version = "1.3.3.7-testing"

// runCLI executes the root command with args against a fresh logger and
// returns the command output and the logger output.
func runCLI(t *testing.T, args ...string) (*logger.Logger, string, string, error) {
	t.Helper()

	var logBuf bytes.Buffer
	log := logger.New()
	log.SetOutput(&logBuf)
	log.SetTimestamps(false)

	var out bytes.Buffer
	cmd := newRootCmd(version, log)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return log, out.String(), logBuf.String(), err
}

func TestFiltersCommand(t *testing.T) {
	_, out, _, err := runCLI(t, "filters")
	require.NoError(t, err)

	assert.Contains(t, out, trace.DefaultLoggerFilterName)
	assert.Contains(t, out, trace.DefaultRuntimeFilterName)
	assert.Contains(t, out, string(trace.Exclusive))
}

func TestFiltersCommandWithConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "logger.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
filters:
  - type: inclusive
    name: app
    filterString: myapp/
    enabled: false
`), 0644))

	log, out, _, err := runCLI(t, "--config", cfgPath, "filters", "--disabled")
	require.NoError(t, err)

	assert.Contains(t, out, "app")
	assert.NotContains(t, out, trace.DefaultLoggerFilterName, "enabled defaults are excluded by --disabled")

	enabled, err := log.GetFilterEnabled(trace.Inclusive, "app")
	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestDemoCommand(t *testing.T) {
	log, _, logOut, err := runCLI(t, "demo", "--level", "trace")
	require.NoError(t, err)

	assert.Equal(t, logger.LevelTrace, log.Level())
	assert.Contains(t, logOut, "[TRACE] trace message")
	assert.Contains(t, logOut, "[INFO] info message")
	assert.Contains(t, logOut, `{"feature":"demo"}`)
	assert.Contains(t, logOut, "[ERROR] error message: something broke")
}

func TestRootFlags(t *testing.T) {
	log, _, _, err := runCLI(t, "filters", "--level", "error", "--no-timestamps", "--no-filters")
	require.NoError(t, err)

	assert.Equal(t, logger.LevelError, log.Level())
	assert.False(t, log.TraceFiltersEnabled())
}

func TestRootInvalidLevel(t *testing.T) {
	_, _, _, err := runCLI(t, "filters", "--level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}

func TestRootMissingConfig(t *testing.T) {
	_, _, _, err := runCLI(t, "filters", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestRenderFilterTable(t *testing.T) {
	assert.Equal(t, "No filters registered\n", renderFilterTable(nil))

	out := renderFilterTable([]trace.FilterData{
		{Type: trace.Exclusive, Name: "vendor", FilterString: `vendor/`, Enabled: true},
		{Type: trace.Inclusive, Name: "app", FilterString: `myapp/`, Enabled: false},
	})
	assert.Contains(t, out, "vendor")
	assert.Contains(t, out, "false")
	assert.Contains(t, out, "Pattern")
}
