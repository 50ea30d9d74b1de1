package patricia

import (
	"sort"
)

// index returns the position of the edge whose label starts with c, or the
// position where such an edge would be inserted and false.
func (n *node[V]) index(c byte) (int, bool) {
	idx := sort.Search(len(n.edges), func(i int) bool {
		return n.edges[i].label[0] >= c
	})
	return idx, idx < len(n.edges) && n.edges[idx].label[0] == c
}

// findChild returns the edge dispatched by c, or nil.
func (n *node[V]) findChild(c byte) *edge[V] {
	if idx, ok := n.index(c); ok {
		return &n.edges[idx]
	}
	return nil
}

func (n *node[V]) addChild(label string, child *node[V]) {
	idx, _ := n.index(label[0])

	// maintain sorted order: shift right & insert
	n.edges = append(n.edges, edge[V]{})
	copy(n.edges[idx+1:], n.edges[idx:])
	n.edges[idx] = edge[V]{label: label, child: child}
}

func (n *node[V]) removeChild(idx int) {
	copy(n.edges[idx:], n.edges[idx+1:])
	n.edges[len(n.edges)-1] = edge[V]{}
	n.edges = n.edges[:len(n.edges)-1]
}

func (n *node[V]) setValue(value V) {
	n.value = value
	n.terminal = true
}

func (n *node[V]) clearValue() {
	var zero V
	n.value = zero
	n.terminal = false
}

// redundant reports whether a non-root n breaks path compression: no value
// and exactly one child.
func (n *node[V]) redundant() bool {
	return !n.terminal && len(n.edges) == 1
}

func (n *node[V]) empty() bool {
	return !n.terminal && len(n.edges) == 0
}

// split cuts e after the first at bytes and returns the intermediate node
// now sitting at the cut.
func (e *edge[V]) split(at int) *node[V] {
	mid := &node[V]{}
	mid.edges = []edge[V]{{label: e.label[at:], child: e.child}}
	e.label = e.label[:at]
	e.child = mid
	return mid
}

// merge folds the single child of e.child into e.
func (e *edge[V]) merge() {
	grandchild := e.child.edges[0]
	e.label += grandchild.label
	e.child = grandchild.child
}

// match returns the length of the common prefix of e.label and s.
func (e *edge[V]) match(s string) int {
	return commonPrefixLen(e.label, s)
}
