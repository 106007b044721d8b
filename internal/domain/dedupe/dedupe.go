// Package dedupe tracks which keys have already been seen.
package dedupe

// Deduper records seen keys so each one is handled at most once.
type Deduper interface {
	// SeenAndRecord reports whether key was seen before and records it if not.
	SeenAndRecord(key string) bool
}

// inMemoryDeduper implements Deduper with a plain map. It is not safe for
// concurrent use.
type inMemoryDeduper struct {
	seen      map[string]struct{}
	normalize func(string) string
}

// NewInMemoryDeduper creates a new in-memory deduper with configuration options.
func NewInMemoryDeduper(opts ...Option) Deduper {
	d := &inMemoryDeduper{
		seen:      make(map[string]struct{}),
		normalize: func(s string) string { return s },
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

func (d *inMemoryDeduper) SeenAndRecord(key string) bool {
	key = d.normalize(key)
	if _, exists := d.seen[key]; exists {
		return true
	}
	d.seen[key] = struct{}{}
	return false
}

// Strings returns items without repeats, keeping the first occurrence of each
// key in its original position. The input slice is not modified.
func Strings(items []string, opts ...Option) []string {
	d := NewInMemoryDeduper(opts...)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if d.SeenAndRecord(item) {
			continue
		}
		out = append(out, item)
	}
	return out
}
