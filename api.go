package patricia

type Iterator[V any] interface {
	HasNext() bool
	Next() (Pair[V], error)
}

// New returns an empty trie populated by opts, applied in order.
func New[V any](opts ...Option[V]) *Trie[V] {
	t := &Trie[V]{root: &node[V]{}}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// WithEmptyKey binds value to the empty-string key.
func WithEmptyKey[V any](value V) Option[V] {
	return func(t *Trie[V]) {
		t.Set("", value)
	}
}

// WithMap stores every pair of m. Map iteration order is random, which
// only matters if m is combined with other options setting the same keys.
func WithMap[V any](m map[string]V) Option[V] {
	return func(t *Trie[V]) {
		for k, v := range m {
			t.Set(k, v)
		}
	}
}

// WithPairs stores pairs in order; the last write of a key wins.
func WithPairs[V any](pairs ...Pair[V]) Option[V] {
	return func(t *Trie[V]) {
		for _, p := range pairs {
			t.Set(p.Key, p.Value)
		}
	}
}

// From sets the window start. Negative values count back from the end of
// the text once; a start still below zero is not clamped and matches nothing.
func From(start int) MatchOption {
	return func(w *window) {
		w.start = start
	}
}

// To sets the window end. Negative values count back from the end of the
// text.
func To(end int) MatchOption {
	return func(w *window) {
		w.end = end
		w.hasEnd = true
	}
}
