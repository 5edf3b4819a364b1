// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package trace_test

import (
	"strings"
	"testing"

	"github.com/H0llyW00dzZ/console-trace-logger/src/internal/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceInfo(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "EmptyStack",
			testFunc: func(t *testing.T) {
				r := trace.NewRegistry(nil)

				ti := r.TraceInfo("", true)
				assert.Equal(t, trace.NoStackTrace, ti.Info)
				assert.Empty(t, ti.Trace)
			},
		},
		{
			name: "DefaultFiltersSkipOwnFrames",
			testFunc: func(t *testing.T) {
				// Line 1 carries the logger's own identifying substring
				// and a call-site token; the default exclusive filter
				// skips it, so line 2 supplies the call site. Line 2 is
				// consumed by the call-site scan and not re-added to the
				// full trace.
				r := trace.NewRegistry(nil)
				stack := strings.Join([]string{
					"console-trace-logger/src/logger/logger.go:99:1",
					"/app/handlers/user.go:42:7",
					"plain text line",
				}, "\n")

				ti := r.TraceInfo(stack, true)
				assert.Equal(t, "/app/handlers/user.go:42:7", ti.Info)
				assert.Equal(t, []string{"plain text line"}, ti.Trace)
			},
		},
		{
			name: "CallSiteWithoutColumn",
			testFunc: func(t *testing.T) {
				// Go runtime stacks carry file:line with no column.
				r := trace.NewRegistry(nil)
				stack := "main.main()\n\t/app/cmd/main.go:17 +0x1b\n"

				ti := r.TraceInfo(stack, false)
				assert.Equal(t, "/app/cmd/main.go:17", ti.Info)
				assert.Empty(t, ti.Trace)
			},
		},
		{
			name: "NoTokenLeavesSentinel",
			testFunc: func(t *testing.T) {
				r := trace.NewRegistry(nil)
				r.RemoveAllFilters()

				ti := r.TraceInfo("a line without any location token", true)
				assert.Equal(t, trace.NoStackTrace, ti.Info)
				assert.Equal(t, []string{"a line without any location token"}, ti.Trace,
					"without a call site the full-trace scan starts at the first line")
			},
		},
		{
			name: "EveryLineSuppressed",
			testFunc: func(t *testing.T) {
				r := trace.NewRegistry(nil)
				r.RemoveAllFilters()
				ok, err := r.AddFilter(trace.FilterConfig{Type: trace.Exclusive, Name: "all", FilterString: "."})
				require.NoError(t, err)
				require.True(t, ok)

				ti := r.TraceInfo("/app/a.go:1:1\n/app/b.go:2:2", true)
				assert.Equal(t, trace.NoStackTrace, ti.Info, "sentinel survives even though stack text was present")
				assert.Empty(t, ti.Trace)
			},
		},
		{
			name: "FullTraceKeepsOrderAndReevaluatesPerLine",
			testFunc: func(t *testing.T) {
				r := trace.NewRegistry(nil)
				r.RemoveAllFilters()
				ok, err := r.AddFilter(trace.FilterConfig{Type: trace.Exclusive, Name: "noise", FilterString: "noise"})
				require.NoError(t, err)
				require.True(t, ok)

				stack := strings.Join([]string{
					"/app/site.go:1:1",
					"first kept",
					"some noise here",
					"second kept",
				}, "\n")

				ti := r.TraceInfo(stack, true)
				assert.Equal(t, "/app/site.go:1:1", ti.Info)
				assert.Equal(t, []string{"first kept", "second kept"}, ti.Trace)
			},
		},
		{
			name: "NoFullTraceLeavesTraceEmpty",
			testFunc: func(t *testing.T) {
				r := trace.NewRegistry(nil)
				r.RemoveAllFilters()

				ti := r.TraceInfo("/app/site.go:1:1\ntrailing line", false)
				assert.Equal(t, "/app/site.go:1:1", ti.Info)
				assert.Empty(t, ti.Trace)
			},
		},
		{
			name: "GlobalGateDisablesSuppression",
			testFunc: func(t *testing.T) {
				r := trace.NewRegistry(nil)
				r.SetFiltersEnabled(false)

				stack := "console-trace-logger/src/logger/logger.go:99:1\n/app/user.go:42:7"
				ti := r.TraceInfo(stack, true)
				assert.Equal(t, "console-trace-logger/src/logger/logger.go:99:1", ti.Info,
					"with filtering disabled every line is kept")
				assert.Equal(t, []string{"/app/user.go:42:7"}, ti.Trace)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t)
		})
	}
}

func TestCaptureTraceInfo(t *testing.T) {
	r := trace.NewRegistry(nil)

	ti := r.CaptureTraceInfo(false)
	require.NotEqual(t, trace.NoStackTrace, ti.Info)
	assert.NotContains(t, ti.Info, "src/internal/trace/",
		"default filters keep the extractor's own frames out of the call site")

	full := r.CaptureTraceInfo(true)
	for _, line := range full.Trace {
		assert.NotContains(t, line, "runtime/debug", "capture machinery is filtered from the trace")
	}
}
