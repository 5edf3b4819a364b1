// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package trace

import (
	"errors"
	"fmt"
	"log"
	"sync"
)

// FilterType selects one of the registry's two filter namespaces.
type FilterType string

const (
	// Exclusive filters form a deny list; any match suppresses a line
	// unconditionally.
	Exclusive FilterType = "exclusive"
	// Inclusive filters form an allow list; once at least one is
	// registered, a line must match one of them to survive.
	Inclusive FilterType = "inclusive"
)

var (
	// ErrInvalidFilterType is returned when a filter-scoped operation
	// receives a type other than [Exclusive] or [Inclusive].
	ErrInvalidFilterType = errors.New(`filter type must be "exclusive" or "inclusive"`)
	// ErrInvalidFilterConfig is returned when a filter config carries an
	// empty name or filter string.
	ErrInvalidFilterConfig = errors.New("filter name and filterString must be non-empty")
)

// Default exclusive filters registered by [NewRegistry]. The first hides the
// logger's own frames from call-site extraction, the second hides the stack
// capture machinery and goroutine headers. Callers may remove or override
// both.
const (
	DefaultLoggerFilterName    = "logger"
	DefaultLoggerFilterString  = `console-trace-logger|src/(logger|internal/trace)/`
	DefaultRuntimeFilterName   = "runtime"
	DefaultRuntimeFilterString = `^goroutine \d+ |runtime/debug`
)

// FilterConfig describes a filter to register.
type FilterConfig struct {
	Type         FilterType `json:"type" yaml:"type"`
	Name         string     `json:"name" yaml:"name"`
	FilterString string     `json:"filterString" yaml:"filterString"`
	// Enabled optionally overrides the default enabled state (true).
	Enabled *bool `json:"enabled,omitempty" yaml:"enabled,omitempty"`
}

// FilterData is a point-in-time snapshot of a registered filter.
type FilterData struct {
	Enabled      bool       `json:"enabled" yaml:"enabled"`
	FilterString string     `json:"filterString" yaml:"filterString"`
	Name         string     `json:"name" yaml:"name"`
	Type         FilterType `json:"type" yaml:"type"`
}

// Reporter receives the registry's recoverable failure reports. Data-driven
// conditions (unknown filter type, duplicate names) are reported here and
// surfaced as boolean failures rather than errors. The logger implements
// this interface; the indirection avoids an import cycle.
type Reporter interface {
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// stderrReporter is the fallback for registries constructed without a
// Reporter (e.g. standalone use in tests).
type stderrReporter struct{}

func (stderrReporter) Warnf(format string, args ...any)  { log.Printf("WARN "+format, args...) }
func (stderrReporter) Errorf(format string, args ...any) { log.Printf("ERROR "+format, args...) }

// filterSet is an insertion-ordered collection of filters keyed by name.
// Order is load-bearing: matching short-circuits on the first hit.
type filterSet struct {
	order  []*Filter
	byName map[string]*Filter
}

func newFilterSet() *filterSet {
	return &filterSet{byName: make(map[string]*Filter)}
}

func (s *filterSet) get(name string) (*Filter, bool) {
	f, ok := s.byName[name]
	return f, ok
}

func (s *filterSet) add(f *Filter) {
	s.byName[f.name] = f
	s.order = append(s.order, f)
}

func (s *filterSet) remove(name string) bool {
	if _, ok := s.byName[name]; !ok {
		return false
	}
	delete(s.byName, name)
	for i, f := range s.order {
		if f.name == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *filterSet) clear() {
	s.order = nil
	s.byName = make(map[string]*Filter)
}

func (s *filterSet) len() int { return len(s.order) }

// Registry holds the named exclusive and inclusive trace filters and
// implements the two-pass suppression policy plus trace extraction. The two
// namespaces are independent; a name may exist in both.
//
// Registry is safe for concurrent use by multiple goroutines.
type Registry struct {
	mu             sync.Mutex
	exclusive      *filterSet
	inclusive      *filterSet
	filtersEnabled bool
	rep            Reporter
}

// NewRegistry returns a registry with trace filtering enabled and the two
// default exclusive filters pre-registered. A nil Reporter falls back to
// stderr.
func NewRegistry(rep Reporter) *Registry {
	if rep == nil {
		rep = stderrReporter{}
	}
	r := &Registry{
		exclusive:      newFilterSet(),
		inclusive:      newFilterSet(),
		filtersEnabled: true,
		rep:            rep,
	}
	// Known-good patterns; compile cannot fail here.
	r.AddFilter(FilterConfig{Type: Exclusive, Name: DefaultLoggerFilterName, FilterString: DefaultLoggerFilterString})
	r.AddFilter(FilterConfig{Type: Exclusive, Name: DefaultRuntimeFilterName, FilterString: DefaultRuntimeFilterString})
	return r
}

// setFor resolves the namespace for typ. The caller must hold r.mu.
func (r *Registry) setFor(typ FilterType) (*filterSet, error) {
	switch typ {
	case Exclusive:
		return r.exclusive, nil
	case Inclusive:
		return r.inclusive, nil
	}
	return nil, fmt.Errorf("%w: got %q", ErrInvalidFilterType, typ)
}

// AddFilter validates cfg and registers a new filter.
//
// An unknown type or a duplicate name is a recoverable, data-driven failure:
// it is reported through the Reporter and returns (false, nil). An empty
// name or filter string, or a pattern that does not compile, is a caller
// error returned as (false, error). The registry is left unchanged on every
// failure path.
//
// Returns:
//   - bool: Whether the filter was registered
//   - error: Validation or compile error, nil for recoverable failures
func (r *Registry) AddFilter(cfg FilterConfig) (bool, error) {
	ok, report, err := r.addFilter(cfg)
	if report != nil {
		// Reported outside the registry lock; the Reporter may itself
		// capture a stack trace through this registry.
		report(r.rep)
	}
	return ok, err
}

func (r *Registry) addFilter(cfg FilterConfig) (bool, func(Reporter), error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, err := r.setFor(cfg.Type)
	if err != nil {
		return false, func(rep Reporter) { rep.Errorf("addFilter: %v", err) }, nil
	}
	if cfg.Name == "" || cfg.FilterString == "" {
		return false, nil, ErrInvalidFilterConfig
	}
	if _, exists := set.get(cfg.Name); exists {
		typ, name := cfg.Type, cfg.Name
		return false, func(rep Reporter) {
			rep.Warnf("addFilter: %s filter %q is already registered", typ, name)
		}, nil
	}
	f, err := NewFilter(cfg.Name, cfg.FilterString)
	if err != nil {
		return false, nil, err
	}
	if cfg.Enabled != nil {
		f.SetEnabled(*cfg.Enabled)
	}
	set.add(f)
	return true, nil, nil
}

// AddFilters registers every config in order. Unlike a batch transaction it
// attempts all entries regardless of earlier failures and keeps whatever
// subset succeeded. It returns true only if every entry was registered;
// fatal errors from individual entries are joined.
func (r *Registry) AddFilters(cfgs []FilterConfig) (bool, error) {
	ok := true
	var errs []error
	for _, cfg := range cfgs {
		added, err := r.AddFilter(cfg)
		if err != nil {
			errs = append(errs, err)
		}
		if !added {
			ok = false
		}
	}
	return ok, errors.Join(errs...)
}

// RemoveFilter removes the named filter from the selected namespace and
// reports whether a filter was actually present and removed. An invalid
// type is a caller error.
func (r *Registry) RemoveFilter(typ FilterType, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, err := r.setFor(typ)
	if err != nil {
		return false, err
	}
	return set.remove(name), nil
}

// RemoveAllFilters clears both namespaces unconditionally, including the
// default filters.
func (r *Registry) RemoveAllFilters() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.exclusive.clear()
	r.inclusive.clear()
}

// SetFilterEnabled mutates the enabled flag of the named filter. It returns
// true only if the filter exists; absence is not an error.
func (r *Registry) SetFilterEnabled(typ FilterType, name string, enabled bool) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, err := r.setFor(typ)
	if err != nil {
		return false, err
	}
	f, ok := set.get(name)
	if !ok {
		return false, nil
	}
	f.SetEnabled(enabled)
	return true, nil
}

// GetFilterEnabled returns the named filter's enabled flag, or false when
// the filter does not exist.
func (r *Registry) GetFilterEnabled(typ FilterType, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, err := r.setFor(typ)
	if err != nil {
		return false, err
	}
	f, ok := set.get(name)
	if !ok {
		return false, nil
	}
	return f.Enabled(), nil
}

// GetFilterData returns a snapshot of the named filter, or nil when the
// filter does not exist.
func (r *Registry) GetFilterData(typ FilterType, name string) (*FilterData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, err := r.setFor(typ)
	if err != nil {
		return nil, err
	}
	f, ok := set.get(name)
	if !ok {
		return nil, nil
	}
	return &FilterData{
		Enabled:      f.Enabled(),
		FilterString: f.FilterString(),
		Name:         f.Name(),
		Type:         typ,
	}, nil
}

// GetAllFilterData returns snapshots of all registered filters, exclusive
// entries first, each namespace in insertion order. An optional boolean
// restricts the result to filters whose enabled flag equals it.
func (r *Registry) GetAllFilterData(enabledFilter ...bool) []FilterData {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]FilterData, 0, r.exclusive.len()+r.inclusive.len())
	collect := func(typ FilterType, set *filterSet) {
		for _, f := range set.order {
			if len(enabledFilter) > 0 && f.Enabled() != enabledFilter[0] {
				continue
			}
			out = append(out, FilterData{
				Enabled:      f.Enabled(),
				FilterString: f.FilterString(),
				Name:         f.Name(),
				Type:         typ,
			})
		}
	}
	collect(Exclusive, r.exclusive)
	collect(Inclusive, r.inclusive)
	return out
}

// SetFiltersEnabled globally gates whether suppression is consulted during
// trace extraction. When disabled, every line is treated as kept.
func (r *Registry) SetFiltersEnabled(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.filtersEnabled = enabled
}

// FiltersEnabled reports whether trace filtering is globally enabled.
func (r *Registry) FiltersEnabled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.filtersEnabled
}

// Suppressed reports whether line is suppressed by the current filter sets.
func (r *Registry) Suppressed(line string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.suppressedLocked(line)
}

// suppressedLocked implements the asymmetric two-tier policy. Exclusive
// filters are checked first and always win: a line matching an enabled
// exclusive filter is suppressed even if an inclusive filter also matches.
// Inclusive filtering is opt-in; with none registered every remaining line
// is kept, with at least one registered a line must match one to survive.
// The caller must hold r.mu.
func (r *Registry) suppressedLocked(line string) bool {
	if r.exclusive.len() == 0 && r.inclusive.len() == 0 {
		return false
	}
	for _, f := range r.exclusive.order {
		if f.Test(line) {
			return true
		}
	}
	if r.inclusive.len() == 0 {
		return false
	}
	for _, f := range r.inclusive.order {
		if f.Test(line) {
			return false
		}
	}
	return true
}
