// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package trace

import (
	"fmt"
	"regexp"
)

// Filter pairs a compiled regular expression with a stable name and a
// mutable enabled flag. The name and pattern are immutable after
// construction; changing a pattern requires removing the filter and adding
// a new one.
type Filter struct {
	name         string
	filterString string
	re           *regexp.Regexp
	enabled      bool
}

// NewFilter compiles filterString and returns a filter that is enabled by
// default.
//
// Parameters:
//   - name: Stable identifier, unique within its registry namespace
//   - filterString: Regular expression source
//
// Returns:
//   - *Filter: The constructed filter
//   - error: When filterString is not a valid regular expression
func NewFilter(name, filterString string) (*Filter, error) {
	re, err := regexp.Compile(filterString)
	if err != nil {
		return nil, fmt.Errorf("invalid filter %q: %w", name, err)
	}
	return &Filter{
		name:         name,
		filterString: filterString,
		re:           re,
		enabled:      true,
	}, nil
}

// Test reports whether value matches the filter pattern anywhere in the
// string (unanchored). A disabled filter never matches.
func (f *Filter) Test(value string) bool {
	if !f.enabled {
		return false
	}
	return f.re.MatchString(value)
}

// Name returns the filter name.
func (f *Filter) Name() string { return f.name }

// FilterString returns the original regular expression source.
func (f *Filter) FilterString() string { return f.filterString }

// Enabled reports whether the filter participates in matching.
func (f *Filter) Enabled() bool { return f.enabled }

// SetEnabled toggles whether the filter participates in matching.
func (f *Filter) SetEnabled(enabled bool) { f.enabled = enabled }
