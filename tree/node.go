package tree

// Node is one vertex of a labeled, ordered tree.
//
// A Node carries a domain value, an optional advisory key, and an
// ordered list of child subtrees. Children are held by pointer so that
// the same subtree instance may be referenced from several trees at
// once without copying; because of this aliasing a Node keeps no
// parent backref. Nodes are built once and treated as read-only
// afterwards.
type Node[V comparable] struct {
	Value    V
	Key      string
	Children []*Node[V]
}

// New constructs a node from a value and already-constructed children.
func New[V comparable](value V, children ...*Node[V]) *Node[V] {
	return &Node[V]{
		Value:    value,
		Children: children,
	}
}

// WithKey sets the node's identity key. The key is opaque metadata:
// no operation in this module consults it.
func (n *Node[V]) WithKey(key string) *Node[V] {
	n.Key = key
	return n
}
