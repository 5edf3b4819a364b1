// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package trace

import (
	"regexp"
	"runtime/debug"
	"strings"
)

// NoStackTrace is the Info sentinel used when no usable stack text is
// available, or when every line of the stack was suppressed.
const NoStackTrace = "no stack trace"

// callSiteRe matches a file:line token with an optional column, e.g.
// "/src/app/main.go:42" or "app.js:10:7". Go runtime stacks carry no column;
// foreign stack text that does still matches.
var callSiteRe = regexp.MustCompile(`[\w./\\-]+:\d+(?::\d+)?`)

// TraceInfo holds the derived call-site token and the filtered remainder of
// a stack trace. It is an ephemeral value; the registry keeps no reference
// to it.
type TraceInfo struct {
	Info  string   `json:"info"`
	Trace []string `json:"trace"`
}

// StackTracer is implemented by errors that carry their own multi-line
// stack text. The extractor only depends on the text, not on any particular
// frame shape.
type StackTracer interface {
	StackTrace() string
}

// TraceInfo extracts call-site info from the given stack text.
//
// The text is split into lines and scanned from the top. While trace
// filtering is globally enabled, suppressed lines are skipped without being
// consumed for call-site purposes. The first surviving line containing a
// file:line token sets Info and ends the call-site scan. With fullTrace set,
// scanning resumes just past the call-site line (or from the start when no
// call-site was found) and every surviving line is appended to Trace in
// original order; suppression is re-evaluated per line in each pass.
//
// Parameters:
//   - stack: Multi-line stack text; empty means no stack is available
//   - fullTrace: Whether to also collect the filtered trace lines
//
// Returns:
//   - TraceInfo: Info set to the call-site token or [NoStackTrace]
func (r *Registry) TraceInfo(stack string, fullTrace bool) TraceInfo {
	r.mu.Lock()
	defer r.mu.Unlock()

	ti := TraceInfo{Info: NoStackTrace, Trace: []string{}}
	if stack == "" {
		return ti
	}

	lines := strings.Split(strings.TrimRight(stack, "\n"), "\n")
	next := 0
	for i, line := range lines {
		if r.filtersEnabled && r.suppressedLocked(line) {
			continue
		}
		if m := callSiteRe.FindString(line); m != "" {
			ti.Info = m
			next = i + 1
			break
		}
	}

	if !fullTrace {
		return ti
	}
	for _, line := range lines[next:] {
		if r.filtersEnabled && r.suppressedLocked(line) {
			continue
		}
		ti.Trace = append(ti.Trace, line)
	}
	return ti
}

// CaptureTraceInfo captures a stack trace at the call site and extracts its
// trace info. This is the path used for call-site annotation of ordinary
// log lines, where no error supplies the stack.
func (r *Registry) CaptureTraceInfo(fullTrace bool) TraceInfo {
	return r.TraceInfo(string(debug.Stack()), fullTrace)
}
