// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/H0llyW00dzZ/console-trace-logger/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/console-trace-logger/src/internal/trace"
	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// ColorMode controls whether level tags are colorized.
type ColorMode int

const (
	// ColorAuto enables color only when the output is a terminal and TERM
	// is not "dumb".
	ColorAuto ColorMode = iota
	// ColorAlways forces color even for non-terminal writers.
	ColorAlways
	// ColorNever disables color.
	ColorNever
)

// ParseColorMode converts a mode name ("auto", "always", "never") into a
// ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("unknown color mode %q", s)
}

// timestampLayout is the optional line prefix format.
const timestampLayout = "2006-01-02 15:04:05.000"

// levelColors maps each level to its tag color. EnableColor bypasses the
// package-global NO_COLOR detection in fatih/color; the logger applies its
// own terminal detection instead.
var levelColors = map[Level]*color.Color{
	LevelTrace: levelColor(color.FgMagenta),
	LevelDebug: levelColor(color.FgCyan),
	LevelInfo:  levelColor(color.FgGreen),
	LevelWarn:  levelColor(color.FgYellow),
	LevelError: levelColor(color.FgRed),
}

func levelColor(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

// Logger is a color-coded leveled console logger. Every line carries a
// severity tag and, optionally, a timestamp and the call-site location
// derived from a filtered stack trace. Trace- and error-level lines append
// the full filtered trace as indented follow-up lines.
//
// Logger is safe for concurrent use by multiple goroutines.
type Logger struct {
	mu         sync.Mutex
	raw        io.Writer // writer as supplied by the caller
	out        io.Writer // raw, possibly wrapped for color handling
	level      Level
	timestamps bool
	callSite   bool
	colorMode  ColorMode
	colorOn    bool
	registry   *trace.Registry
}

// New returns a logger writing to stderr at [LevelInfo] with timestamps,
// call-site annotation, and automatic color detection. The logger owns a
// trace filter registry pre-loaded with the default exclusive filters.
func New() *Logger {
	l := &Logger{
		level:      LevelInfo,
		timestamps: true,
		callSite:   true,
		colorMode:  ColorAuto,
	}
	l.registry = trace.NewRegistry(l)
	l.setOutput(os.Stderr)
	return l
}

var (
	defaultLogger *Logger
	defaultOnce   sync.Once
)

// Default returns the process-wide logger, constructing it on first use.
// Code that needs isolated state should construct its own via [New].
func Default() *Logger {
	defaultOnce.Do(func() {
		defaultLogger = New()
	})
	return defaultLogger
}

// SetOutput sets the output destination. File writers are re-examined for
// terminal color support according to the current color mode.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.setOutput(w)
}

// setOutput applies w and recomputes color state. The caller must hold l.mu.
func (l *Logger) setOutput(w io.Writer) {
	l.raw = w
	l.out = w
	l.colorOn = l.colorMode == ColorAlways
	if f, ok := w.(*os.File); ok {
		if l.colorMode == ColorAuto {
			l.colorOn = (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) &&
				os.Getenv("TERM") != "dumb"
		}
		if l.colorOn {
			l.out = colorable.NewColorable(f)
		}
	}
}

// SetColorMode sets the color mode and re-evaluates terminal detection for
// the current writer.
func (l *Logger) SetColorMode(m ColorMode) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.colorMode = m
	l.setOutput(l.raw)
}

// SetLevel sets the minimum severity the logger emits.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.level = level
}

// Level returns the minimum severity the logger emits.
func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.level
}

// SetTimestamps toggles the timestamp line prefix.
func (l *Logger) SetTimestamps(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.timestamps = enabled
}

// SetCallSite toggles the call-site suffix on every line.
func (l *Logger) SetCallSite(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.callSite = enabled
}

// Trace logs at trace level with the full filtered stack trace appended.
func (l *Logger) Trace(args ...any) { l.emit(LevelTrace, true, "", formatArgs(args)) }

// Tracef logs a formatted message at trace level with the full filtered
// stack trace appended.
func (l *Logger) Tracef(format string, args ...any) {
	l.emit(LevelTrace, true, "", fmt.Sprintf(format, args...))
}

// Debug logs at debug level.
func (l *Logger) Debug(args ...any) { l.emit(LevelDebug, false, "", formatArgs(args)) }

// Debugf logs a formatted message at debug level.
func (l *Logger) Debugf(format string, args ...any) {
	l.emit(LevelDebug, false, "", fmt.Sprintf(format, args...))
}

// Info logs at info level.
func (l *Logger) Info(args ...any) { l.emit(LevelInfo, false, "", formatArgs(args)) }

// Infof logs a formatted message at info level.
func (l *Logger) Infof(format string, args ...any) {
	l.emit(LevelInfo, false, "", fmt.Sprintf(format, args...))
}

// Warn logs at warn level.
func (l *Logger) Warn(args ...any) { l.emit(LevelWarn, false, "", formatArgs(args)) }

// Warnf logs a formatted message at warn level. Warnf also serves as the
// trace registry's warning channel.
func (l *Logger) Warnf(format string, args ...any) {
	l.emit(LevelWarn, false, "", fmt.Sprintf(format, args...))
}

// Error logs at error level with the full filtered stack trace appended.
// When an argument implements [trace.StackTracer], its stack text supplies
// the trace; otherwise a fresh stack is captured at the call site.
func (l *Logger) Error(args ...any) {
	var stack string
	for _, a := range args {
		if st, ok := a.(trace.StackTracer); ok {
			stack = st.StackTrace()
			break
		}
	}
	l.emit(LevelError, true, stack, formatArgs(args))
}

// Errorf logs a formatted message at error level with the full filtered
// stack trace appended. Errorf also serves as the trace registry's error
// channel.
func (l *Logger) Errorf(format string, args ...any) {
	l.emit(LevelError, true, "", fmt.Sprintf(format, args...))
}

// emit assembles and writes a single log line. A fresh stack is captured
// when the line needs call-site info or a full trace and no stack text was
// supplied.
func (l *Logger) emit(level Level, fullTrace bool, stack, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level || l.level == LevelOff {
		return
	}

	var ti trace.TraceInfo
	if l.callSite || fullTrace {
		if stack == "" {
			ti = l.registry.CaptureTraceInfo(fullTrace)
		} else {
			ti = l.registry.TraceInfo(stack, fullTrace)
		}
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if l.timestamps {
		buf.WriteString(time.Now().Format(timestampLayout))
		buf.WriteByte(' ')
	}
	buf.WriteString(l.levelTag(level))
	buf.WriteByte(' ')
	buf.WriteString(msg)
	if l.callSite && ti.Info != "" && ti.Info != trace.NoStackTrace {
		buf.WriteString(" (")
		buf.WriteString(ti.Info)
		buf.WriteByte(')')
	}
	buf.WriteByte('\n')
	for _, line := range ti.Trace {
		buf.WriteString("    ")
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	l.out.Write(buf.Bytes())
}

// levelTag renders the bracketed severity tag, colorized when enabled.
// The caller must hold l.mu.
func (l *Logger) levelTag(level Level) string {
	tag := "[" + level.String() + "]"
	if !l.colorOn {
		return tag
	}
	c, ok := levelColors[level]
	if !ok {
		return tag
	}
	return c.Sprint(tag)
}
