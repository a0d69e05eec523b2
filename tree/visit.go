package tree

// Visit walks the subtree rooted at n. f is called with isPost=false
// before a node's children and isPost=true after them. Returning false
// from the pre call skips the node's children.
func (n *Node[V]) Visit(f func(n *Node[V], isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.Children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node[V]) Count() int {
	res := 0
	n.Visit(func(_ *Node[V], isPost bool) (bool, error) {
		if !isPost {
			res++
		}
		return true, nil
	})
	return res
}
