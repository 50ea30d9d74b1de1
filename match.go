package patricia

import (
	"iter"
	"strings"
)

// MatchItems returns a sequence of every stored key occurring in text at the
// window start and ending at or before the window end, shortest first.
//
// Without options the window is the whole text. Negative offsets count
// back from the end of text; a window that is inverted or starts before the
// text yields nothing.
//
//	t := patricia.New(patricia.WithMap(map[string]int{"foo": 1, "foobar": 2}))
//	for k, v := range t.MatchItems("a foobar!", patricia.From(2), patricia.To(8)) {
//	    fmt.Println(k, v) // foo 1, then foobar 2
//	}
//
// Keys must not be added or deleted while the sequence is being ranged
// over; doing so panics with ErrConcurrentModification.
func (t *Trie[V]) MatchItems(text string, opts ...MatchOption) iter.Seq2[string, V] {
	w := newWindow(opts)
	return func(yield func(string, V) bool) {
		t.scan(text, w, t.guard(yield))
	}
}

// MatchKeys is like MatchItems but yields only keys.
func (t *Trie[V]) MatchKeys(text string, opts ...MatchOption) iter.Seq[string] {
	return keysOf(t.MatchItems(text, opts...))
}

// MatchValues is like MatchItems but yields only values.
func (t *Trie[V]) MatchValues(text string, opts ...MatchOption) iter.Seq[V] {
	return valuesOf(t.MatchItems(text, opts...))
}

// LongestMatch returns the longest stored key occurring in text at the
// window start, i.e. the last pair MatchItems would yield.
func (t *Trie[V]) LongestMatch(text string, opts ...MatchOption) (key string, value V, ok bool) {
	t.scan(text, newWindow(opts), func(k string, v V) bool {
		key, value, ok = k, v, true
		return true
	})
	return key, value, ok
}

// MatchItem returns the longest match in text, or ErrNotFound.
func (t *Trie[V]) MatchItem(text string, opts ...MatchOption) (string, V, error) {
	key, value, ok := t.LongestMatch(text, opts...)
	if !ok {
		return "", value, ErrNotFound
	}
	return key, value, nil
}

func (t *Trie[V]) MatchKey(text string, opts ...MatchOption) (string, error) {
	key, _, err := t.MatchItem(text, opts...)
	return key, err
}

func (t *Trie[V]) MatchValue(text string, opts ...MatchOption) (V, error) {
	_, value, err := t.MatchItem(text, opts...)
	return value, err
}

// MatchKeyOr returns the longest matching key, or def if nothing matches.
func (t *Trie[V]) MatchKeyOr(text string, def string, opts ...MatchOption) string {
	if key, _, ok := t.LongestMatch(text, opts...); ok {
		return key
	}
	return def
}

// MatchValueOr returns the value of the longest match, or def if nothing
// matches.
func (t *Trie[V]) MatchValueOr(text string, def V, opts ...MatchOption) V {
	if _, value, ok := t.LongestMatch(text, opts...); ok {
		return value
	}
	return def
}

// scan descends from the root consuming text at the window start, one edge
// at a time, and reports every terminal node reached inside the window.
func (t *Trie[V]) scan(text string, w window, callback Callback[V]) traverseAction {
	start, end, ok := w.bounds(text)
	if !ok {
		return traverseContinue
	}

	curr, pos := t.root, start
	for {
		if curr.terminal && !callback(text[start:pos], curr.value) {
			return traverseStop
		}
		if pos >= end {
			return traverseContinue
		}

		e := curr.findChild(text[pos])
		if e == nil || !strings.HasPrefix(text[pos:end], e.label) {
			return traverseContinue
		}
		curr, pos = e.child, pos+len(e.label)
	}
}

// WithPrefix returns a sequence of every stored pair whose key starts with
// prefix, in depth-first order.
//
// Keys must not be added or deleted while the sequence is being ranged
// over; doing so panics with ErrConcurrentModification.
func (t *Trie[V]) WithPrefix(prefix string) iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		if n, key, ok := t.descend(prefix); ok {
			t.recursiveForEach(n, key, t.guard(yield))
		}
	}
}

// KeysWithPrefix is like WithPrefix but yields only keys.
func (t *Trie[V]) KeysWithPrefix(prefix string) iter.Seq[string] {
	return keysOf(t.WithPrefix(prefix))
}

// ForEachKeyPrefix collects every stored key starting with prefix.
func (t *Trie[V]) ForEachKeyPrefix(prefix string) []string {
	keys := make([]string, 0)
	if n, key, ok := t.descend(prefix); ok {
		t.recursiveForEach(n, key, func(k string, _ V) bool {
			keys = append(keys, k)
			return true
		})
	}
	return keys
}

// IsPrefix reports whether some stored key starts with prefix. The empty
// prefix is always accepted, even by an empty trie.
func (t *Trie[V]) IsPrefix(prefix string) bool {
	if prefix == "" {
		return true
	}
	_, _, ok := t.descend(prefix)
	return ok
}

// descend consumes prefix from the root. The prefix may end inside an edge
// label, in which case the node below that edge is returned. key is the
// full key spelled down to the returned node.
func (t *Trie[V]) descend(prefix string) (n *node[V], key string, ok bool) {
	curr, rest := t.root, prefix
	for len(rest) > 0 {
		e := curr.findChild(rest[0])
		if e == nil {
			return nil, "", false
		}

		matched := e.match(rest)
		switch {
		case matched == len(e.label):
			curr, rest = e.child, rest[matched:]
		case matched == len(rest):
			// prefix ends inside the label
			return e.child, prefix[:len(prefix)-len(rest)] + e.label, true
		default:
			return nil, "", false
		}
	}
	return curr, prefix, true
}
