// Package scanner tokenizes text against a dictionary trie.
package scanner

import (
	"iter"

	"github.com/e11jah/patricia"
)

// Token is a dictionary key found in the scanned text.
type Token[V any] struct {
	Key    string
	Value  V
	Offset int
}

// End is the offset right after the token.
func (t Token[V]) End() int {
	return t.Offset + len(t.Key)
}

type Options struct {
	// LongestOnly reports only the longest key at each position.
	LongestOnly bool
	// Overlap restarts matching one byte after a match start instead of
	// after the longest key found there.
	Overlap bool
}

// Scan walks text left to right and yields the dictionary keys occurring at
// each position, shortest first unless opts.LongestOnly is set. Positions
// without a match are skipped one byte at a time. An empty key never
// produces a token.
func Scan[V any](dict *patricia.Trie[V], text string, opts Options) iter.Seq[Token[V]] {
	return func(yield func(Token[V]) bool) {
		for pos := 0; pos < len(text); {
			longest := 0

			if opts.LongestOnly {
				if key, value, ok := dict.LongestMatch(text, patricia.From(pos)); ok && key != "" {
					if !yield(Token[V]{Key: key, Value: value, Offset: pos}) {
						return
					}
					longest = len(key)
				}
			} else {
				for key, value := range dict.MatchItems(text, patricia.From(pos)) {
					if key == "" {
						continue
					}
					if !yield(Token[V]{Key: key, Value: value, Offset: pos}) {
						return
					}
					longest = len(key)
				}
			}

			if longest == 0 || opts.Overlap {
				pos++
			} else {
				pos += longest
			}
		}
	}
}

// Count returns how often each key occurs in text.
func Count[V any](dict *patricia.Trie[V], text string, opts Options) map[string]int {
	counts := make(map[string]int)
	for tok := range Scan(dict, text, opts) {
		counts[tok.Key]++
	}
	return counts
}
