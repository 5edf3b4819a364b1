// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package trace implements the stack-trace filtering engine behind the
// console logger. It provides named inclusive/exclusive regular-expression
// filters, a registry that applies them with deny-list-first semantics, and
// extraction of call-site information and filtered traces from multi-line
// stack text. All registry operations are safe for concurrent use.
package trace
