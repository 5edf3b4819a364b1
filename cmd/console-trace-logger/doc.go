// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// console-trace-logger is a command-line companion for the color-coded
// console logger library. It exercises the logger end to end and inspects
// the stack-trace filter configuration.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/console-trace-logger/cmd/console-trace-logger@latest
//
// # Usage
//
//	console-trace-logger [COMMAND] [FLAGS]
//
// # Commands
//
//	demo      Emit a sample log line at every level
//	filters   List registered trace filters as a markdown table
//
// # Flags
//
//	-c, --config        Logger configuration file (.json, .yaml, .yml)
//	-l, --level         Minimum level to emit (trace, debug, info, warn, error, off)
//	    --no-color      Disable colored level tags
//	    --no-timestamps Disable the timestamp prefix
//	    --no-filters    Disable trace filtering
//
// # Examples
//
// Emit demo output at every level, including the filtered stack trace:
//
//	console-trace-logger demo --level trace
//
// List the filters loaded from a config file:
//
//	console-trace-logger --config logger.yaml filters
//
// Show only disabled filters:
//
//	console-trace-logger --config logger.yaml filters --disabled
package main
