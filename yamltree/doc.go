// Package yamltree loads YAML and JSON documents as labeled, ordered
// trees suitable for positional diffing.
//
// # Usage
//
//	a, err := yamltree.Parse(aBytes)
//	b, err := yamltree.Parse(bBytes)
//	ps := treedelta.Diff(a, b)
//
// # Related Packages
//
//   - github.com/treedelta/go-treedelta - diff and projection
//   - github.com/treedelta/go-treedelta/tree - the tree model
package yamltree
