// Package tree provides the labeled, ordered tree model diffed and
// projected by this module.
//
// # Usage
//
//	a := tree.New("root",
//	    tree.New("child1").WithKey("child1"),
//	    tree.New("child2",
//	        tree.New("child2-1")))
//
// Values may be of any comparable type; rendering uses the value's
// fmt representation. Subtrees are shared by pointer, never deep
// copied, so a subtree may belong to several trees at once.
//
// # Related Packages
//
//   - github.com/treedelta/go-treedelta - diff and projection over trees
//   - github.com/treedelta/go-treedelta/yamltree - YAML documents as trees
package tree
