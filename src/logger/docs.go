// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides a color-coded leveled console logger with
// stack-trace call-site annotation. Each line carries a colorized severity
// tag, an optional timestamp, and the first unfiltered file:line location of
// the call; trace- and error-level lines append the full filtered stack
// trace. Noise from known frames is suppressed through named
// inclusive/exclusive regular-expression filters managed on the logger
// surface. Line assembly uses buffer pooling for efficient memory usage
// under high concurrency.
package logger
