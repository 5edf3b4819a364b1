// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the console trace
// logger. It implements a Cobra-based CLI that configures a logger from
// flags or a JSON/YAML config file, emits demo output at every level, and
// lists the registered trace filters in tabular form.
package cli
