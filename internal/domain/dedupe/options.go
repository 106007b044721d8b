package dedupe

// Option applies a configuration option to the in-memory deduper.
type Option func(*inMemoryDeduper)

// WithNormalizer maps every key before comparison, e.g. filepath.Clean so
// that "./a.csv" and "a.csv" count as the same key. The original values are
// still what Strings returns.
func WithNormalizer(fn func(string) string) Option {
	return func(d *inMemoryDeduper) {
		if fn != nil {
			d.normalize = fn
		}
	}
}
