// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package trace_test

import (
	"testing"

	"github.com/H0llyW00dzZ/console-trace-logger/src/internal/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFilter(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "ValidPattern",
			testFunc: func(t *testing.T) {
				f, err := trace.NewFilter("node_modules", `node_modules`)
				require.NoError(t, err)
				require.NotNil(t, f)

				assert.Equal(t, "node_modules", f.Name())
				assert.Equal(t, `node_modules`, f.FilterString())
				assert.True(t, f.Enabled(), "filters are enabled by default")
			},
		},
		{
			name: "InvalidPattern",
			testFunc: func(t *testing.T) {
				f, err := trace.NewFilter("broken", `[unclosed`)
				require.Error(t, err)
				assert.Nil(t, f)
				assert.Contains(t, err.Error(), "broken", "error should name the filter")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t)
		})
	}
}

func TestFilterTest(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "UnanchoredMatch",
			testFunc: func(t *testing.T) {
				f, err := trace.NewFilter("x", "x")
				require.NoError(t, err)

				assert.True(t, f.Test("foo x bar"), "match anywhere in the value")
				assert.True(t, f.Test("x"))
				assert.False(t, f.Test("foo bar"))
			},
		},
		{
			name: "RegularExpressionSemantics",
			testFunc: func(t *testing.T) {
				f, err := trace.NewFilter("frames", `^goroutine \d+`)
				require.NoError(t, err)

				assert.True(t, f.Test("goroutine 12 [running]:"))
				assert.False(t, f.Test("  goroutine 12"), "anchor is honored")
			},
		},
		{
			name: "DisabledNeverMatches",
			testFunc: func(t *testing.T) {
				f, err := trace.NewFilter("x", "x")
				require.NoError(t, err)
				require.True(t, f.Test("x marks the spot"))

				f.SetEnabled(false)
				assert.False(t, f.Enabled())
				assert.False(t, f.Test("x marks the spot"), "disabled filter must not match previously matching input")

				f.SetEnabled(true)
				assert.True(t, f.Test("x marks the spot"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t)
		})
	}
}
