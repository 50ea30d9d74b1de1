package patricia

import (
	"fmt"
	"iter"
	"strings"
)

func (t *Trie[V]) Size() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.size
}

// Set stores value under key, overwriting any previous value.
func (t *Trie[V]) Set(key string, value V) {
	curr := t.root
	for {
		if len(key) == 0 {
			if !curr.terminal {
				t.size++
				t.gen++
			}
			curr.setValue(value)
			return
		}

		e := curr.findChild(key[0])
		if e == nil {
			// no child found, create new leaf
			leaf := &node[V]{}
			leaf.setValue(value)
			curr.addChild(key, leaf)
			t.size++
			t.gen++
			return
		}

		matched := e.match(key)
		if matched == len(e.label) {
			curr, key = e.child, key[matched:]
			continue
		}

		// the key ends inside the label or diverges from it
		mid := e.split(matched)
		t.gen++
		t.size++
		if matched == len(key) {
			mid.setValue(value)
			return
		}
		leaf := &node[V]{}
		leaf.setValue(value)
		mid.addChild(key[matched:], leaf)
		return
	}
}

// Get returns the value stored under key, or ErrNotFound.
func (t *Trie[V]) Get(key string) (V, error) {
	if n := t.lookup(key); n != nil && n.terminal {
		return n.value, nil
	}
	var zero V
	return zero, ErrNotFound
}

func (t *Trie[V]) Contains(key string) bool {
	n := t.lookup(key)
	return n != nil && n.terminal
}

// lookup descends along key and returns the node it ends at, terminal or
// not, or nil when key leaves the tree.
func (t *Trie[V]) lookup(key string) *node[V] {
	curr := t.root
	for len(key) > 0 {
		e := curr.findChild(key[0])
		if e == nil || !strings.HasPrefix(key, e.label) {
			return nil
		}
		curr, key = e.child, key[len(e.label):]
	}
	return curr
}

// Delete removes key, or returns ErrNotFound if it is not stored.
func (t *Trie[V]) Delete(key string) error {
	path := make([]pathStep[V], 0, 8)

	curr := t.root
	for rest := key; len(rest) > 0; {
		idx, ok := curr.index(rest[0])
		if !ok || !strings.HasPrefix(rest, curr.edges[idx].label) {
			return ErrNotFound
		}
		path = append(path, pathStep[V]{parent: curr, idx: idx})
		rest = rest[len(curr.edges[idx].label):]
		curr = curr.edges[idx].child
	}
	if !curr.terminal {
		return ErrNotFound
	}

	curr.clearValue()
	t.size--
	t.gen++
	t.compress(path)
	return nil
}

// compress restores path compression bottom-up along a recorded descent.
// The root is never part of the walk as a child, so it is never removed.
func (t *Trie[V]) compress(path []pathStep[V]) {
	for i := len(path) - 1; i >= 0; i-- {
		step := path[i]
		e := &step.parent.edges[step.idx]

		switch {
		case e.child.empty():
			step.parent.removeChild(step.idx)
		case e.child.redundant():
			e.merge()
			return
		default:
			return
		}
	}
}

// All returns a sequence of every stored pair in depth-first order.
// Edges are kept sorted, so the order is stable for a given set of keys,
// but callers should not depend on it.
//
// Keys must not be added or deleted while the sequence is being ranged
// over; doing so panics with ErrConcurrentModification. Overwriting the
// value of a stored key is allowed.
func (t *Trie[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		t.recursiveForEach(t.root, "", t.guard(yield))
	}
}

// Keys is like All but yields only keys.
func (t *Trie[V]) Keys() iter.Seq[string] {
	return keysOf(t.All())
}

// Values is like All but yields only values.
func (t *Trie[V]) Values() iter.Seq[V] {
	return valuesOf(t.All())
}

// Walk calls callback for every stored pair in depth-first order until it
// returns false.
func (t *Trie[V]) Walk(callback Callback[V]) {
	t.recursiveForEach(t.root, "", callback)
}

func (t *Trie[V]) recursiveForEach(curr *node[V], key string, callback Callback[V]) traverseAction {
	if curr.terminal && !callback(key, curr.value) {
		return traverseStop
	}

	for i := range curr.edges {
		e := &curr.edges[i]
		if t.recursiveForEach(e.child, key+e.label, callback) == traverseStop {
			return traverseStop
		}
	}
	return traverseContinue
}

// guard adapts yield to a Callback that panics if a key was added or deleted
// while the consumer held control.
func (t *Trie[V]) guard(yield func(string, V) bool) Callback[V] {
	gen := t.gen
	return func(key string, value V) bool {
		if !yield(key, value) {
			return false
		}
		if t.gen != gen {
			panic(ErrConcurrentModification)
		}
		return true
	}
}

func keysOf[V any](seq iter.Seq2[string, V]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for k := range seq {
			if !yield(k) {
				return
			}
		}
	}
}

func valuesOf[V any](seq iter.Seq2[string, V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range seq {
			if !yield(v) {
				return
			}
		}
	}
}

// String renders every stored pair, e.g. Trie{"ba": 2, "baz": 3}.
func (t *Trie[V]) String() string {
	var sb strings.Builder
	sb.WriteString("Trie{")
	first := true
	t.Walk(func(key string, value V) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%q: %v", key, value)
		return true
	})
	sb.WriteString("}")
	return sb.String()
}

// Iterator returns a pull iterator over every stored pair, in the same
// order as All. Once a key is added or deleted, Next returns
// ErrConcurrentModification.
func (t *Trie[V]) Iterator() Iterator[V] {
	it := &iterator[V]{
		trie:  t,
		gen:   t.gen,
		depth: []*iteratorLevel[V]{{node: t.root, edgeIdx: nullIdx}},
	}
	it.next()
	return it
}

func (it *iterator[V]) HasNext() bool {
	return it != nil && it.nextNode != nil
}

func (it *iterator[V]) Next() (Pair[V], error) {
	if it.trie.gen != it.gen {
		return Pair[V]{}, ErrConcurrentModification
	}
	if !it.HasNext() {
		return Pair[V]{}, ErrNoMoreEntries
	}
	cur := Pair[V]{Key: it.nextKey, Value: it.nextNode.value}
	it.next()
	return cur, nil
}

func (it *iterator[V]) next() {
	it.nextNode, it.nextKey = nil, ""
	for len(it.depth) > 0 {
		level := it.depth[len(it.depth)-1]

		if level.edgeIdx == nullIdx {
			level.edgeIdx = 0
			if level.node.terminal {
				it.nextNode, it.nextKey = level.node, level.key
				return
			}
			continue
		}

		if level.edgeIdx >= len(level.node.edges) {
			it.depth = it.depth[:len(it.depth)-1]
			continue
		}

		e := level.node.edges[level.edgeIdx]
		level.edgeIdx++
		it.depth = append(it.depth, &iteratorLevel[V]{
			node:    e.child,
			key:     level.key + e.label,
			edgeIdx: nullIdx,
		})
	}
}
