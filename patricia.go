// Package patricia implements a PATRICIA trie (compressed radix tree) keyed
// by strings, with matching operations for scanning text: all or the longest
// stored keys occurring at a text offset, and all stored keys under a prefix.
//
// Keys are compared byte by byte; no Unicode normalization is applied.
// A Trie is not safe for concurrent use.
package patricia

import (
	"errors"
)

const (
	traverseStop traverseAction = iota
	traverseContinue
)

const nullIdx = -1

var (
	ErrNotFound               = errors.New("key not found")
	ErrNoMoreEntries          = errors.New("there are no more entries in the trie")
	ErrConcurrentModification = errors.New("trie modified during iteration")
)

type (
	// Trie maps string keys to values of type V. The zero value is not
	// usable; create tries with New.
	Trie[V any] struct {
		size int
		// gen changes whenever a key is added or deleted, so that live
		// sequences can detect it.
		gen  uint64
		root *node[V]
	}

	// Pair is a stored key with its value.
	Pair[V any] struct {
		Key   string
		Value V
	}

	Option[V any] func(t *Trie[V])

	// MatchOption narrows the window of text considered by the match
	// operations.
	MatchOption func(w *window)

	node[V any] struct {
		// sorted by the first byte of label
		edges    []edge[V]
		value    V
		terminal bool
	}

	edge[V any] struct {
		label string
		child *node[V]
	}

	window struct {
		start  int
		end    int
		hasEnd bool
	}

	// Callback receives every visited key. Returning false stops the walk.
	Callback[V any] func(key string, value V) bool

	traverseAction int

	// pathStep is one level of a recorded descent: the edge at idx of
	// parent was followed.
	pathStep[V any] struct {
		parent *node[V]
		idx    int
	}

	iteratorLevel[V any] struct {
		node    *node[V]
		key     string
		edgeIdx int
	}

	iterator[V any] struct {
		trie     *Trie[V]
		gen      uint64
		nextNode *node[V]
		nextKey  string
		depth    []*iteratorLevel[V]
	}
)

// bounds translates the window against text. ok is false when no key can
// match inside it.
func (w window) bounds(text string) (start, end int, ok bool) {
	start, end = w.start, len(text)
	if w.hasEnd {
		end = w.end
	}
	if start < 0 {
		start += len(text)
	}
	if end < 0 {
		end += len(text)
	}
	if end > len(text) {
		// a match must lie inside text anyway
		end = len(text)
	}
	if start < 0 || start > end {
		return 0, 0, false
	}
	return start, end, true
}

func newWindow(opts []MatchOption) window {
	var w window
	for _, opt := range opts {
		opt(&w)
	}
	return w
}

func commonPrefixLen(a, b string) int {
	idx, limit := 0, min(len(a), len(b))
	for ; idx < limit; idx++ {
		if a[idx] != b[idx] {
			break
		}
	}
	return idx
}
