// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"fmt"
	"strings"
)

// Level identifies the severity of a log line. A logger emits lines at or
// above its configured level.
type Level int32

const (
	// LevelTrace is the most verbose level; trace lines carry the full
	// filtered stack trace.
	LevelTrace Level = iota
	// LevelDebug is for diagnostic output.
	LevelDebug
	// LevelInfo is the default level.
	LevelInfo
	// LevelWarn is for recoverable, noteworthy conditions.
	LevelWarn
	// LevelError is for failures; error lines carry the full filtered
	// stack trace.
	LevelError
	// LevelOff disables all output.
	LevelOff
)

var levelNames = map[Level]string{
	LevelTrace: "TRACE",
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
	LevelOff:   "OFF",
}

// String returns the canonical upper-case level name.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int32(l))
}

// ParseLevel converts a case-insensitive level name into a Level.
// "warning" is accepted as an alias for "warn".
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "off", "none":
		return LevelOff, nil
	}
	return LevelOff, fmt.Errorf("unknown log level %q", s)
}
