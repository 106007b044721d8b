package report

import (
	"fmt"
	"strings"
)

// Registry maps report names to strategies. It is assembled once and only
// read afterwards.
type Registry struct {
	strategies map[string]Strategy
	order      []string
}

// NewRegistry registers strategies in the given order. It panics on an empty
// or duplicate name, which is a programming error.
func NewRegistry(strategies ...Strategy) *Registry {
	r := &Registry{strategies: make(map[string]Strategy, len(strategies))}
	for _, s := range strategies {
		name := strings.ToLower(s.Name())
		if name == "" {
			panic("report: strategy with empty name")
		}
		if _, dup := r.strategies[name]; dup {
			panic(fmt.Sprintf("report: duplicate strategy %q", name))
		}
		r.strategies[name] = s
		r.order = append(r.order, name)
	}
	return r
}

// DefaultRegistry returns a registry with the built-in reports. New reports
// are added here.
func DefaultRegistry() *Registry {
	return NewRegistry(
		NewPerformance(),
	)
}

// Lookup finds a strategy by name, ignoring case. Surrounding blanks are
// not trimmed.
func (r *Registry) Lookup(name string) (Strategy, error) {
	if s, ok := r.strategies[strings.ToLower(name)]; ok {
		return s, nil
	}
	return nil, &UnknownReportError{Name: name, Available: r.Names()}
}

// Names lists registered report names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
