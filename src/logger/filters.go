// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"github.com/H0llyW00dzZ/console-trace-logger/src/internal/trace"
)

// This file mirrors the trace filter registry on the logger surface so
// callers manage filters through the logger they already hold.

// Filters returns the logger's trace filter registry.
func (l *Logger) Filters() *trace.Registry { return l.registry }

// AddFilter registers a trace filter. See [trace.Registry.AddFilter].
func (l *Logger) AddFilter(cfg trace.FilterConfig) (bool, error) {
	return l.registry.AddFilter(cfg)
}

// AddFilters registers trace filters in order, attempting every entry.
// See [trace.Registry.AddFilters].
func (l *Logger) AddFilters(cfgs []trace.FilterConfig) (bool, error) {
	return l.registry.AddFilters(cfgs)
}

// RemoveFilter removes a trace filter by type and name.
func (l *Logger) RemoveFilter(typ trace.FilterType, name string) (bool, error) {
	return l.registry.RemoveFilter(typ, name)
}

// RemoveAllFilters clears both filter namespaces, including the defaults.
func (l *Logger) RemoveAllFilters() { l.registry.RemoveAllFilters() }

// SetFilterEnabled mutates the enabled flag of the named filter.
func (l *Logger) SetFilterEnabled(typ trace.FilterType, name string, enabled bool) (bool, error) {
	return l.registry.SetFilterEnabled(typ, name, enabled)
}

// GetFilterEnabled returns the named filter's enabled flag, false when
// absent.
func (l *Logger) GetFilterEnabled(typ trace.FilterType, name string) (bool, error) {
	return l.registry.GetFilterEnabled(typ, name)
}

// GetFilterData returns a snapshot of the named filter, nil when absent.
func (l *Logger) GetFilterData(typ trace.FilterType, name string) (*trace.FilterData, error) {
	return l.registry.GetFilterData(typ, name)
}

// GetAllFilterData returns snapshots of all registered filters, optionally
// restricted by enabled state.
func (l *Logger) GetAllFilterData(enabledFilter ...bool) []trace.FilterData {
	return l.registry.GetAllFilterData(enabledFilter...)
}

// SetTraceFiltersEnabled globally gates trace filtering.
func (l *Logger) SetTraceFiltersEnabled(enabled bool) { l.registry.SetFiltersEnabled(enabled) }

// TraceFiltersEnabled reports whether trace filtering is globally enabled.
func (l *Logger) TraceFiltersEnabled() bool { return l.registry.FiltersEnabled() }

// TraceInfo derives call-site info and, optionally, the filtered trace.
// With a nil error a fresh stack is captured at the call site; an error
// implementing [trace.StackTracer] supplies its own stack text; any other
// error yields the no-stack sentinel.
func (l *Logger) TraceInfo(err error, fullTrace bool) trace.TraceInfo {
	if err == nil {
		return l.registry.CaptureTraceInfo(fullTrace)
	}
	if st, ok := err.(trace.StackTracer); ok {
		return l.registry.TraceInfo(st.StackTrace(), fullTrace)
	}
	return l.registry.TraceInfo("", fullTrace)
}
