// Package treedelta computes structural differences between two
// versions of a labeled, ordered tree and projects the difference back
// onto the original tree as change-annotated text.
//
// # Usage
//
//	a := tree.New("root", tree.New("child1"))
//	b := tree.New("root", tree.New("child1"), tree.New("child2"))
//
//	ps := treedelta.Diff(a, b)
//	treedelta.Print(a, ps)
//	// root
//	//   child1
//	//   child2(*)
//
// Diff pairs nodes purely by structural position: a pre-order walk of
// the first tree, children matched index by index. There is no
// key-based matching and no move detection; a reorder surfaces as some
// combination of updates, removes and inserts.
//
// The patch set produced by Diff holds shared references into the
// second tree's subtrees. Applying it via [Render] does not mutate
// either tree and does not build a merged tree; the projection is the
// output.
//
// # Positions
//
// Positions are assigned by a counter shared across the whole diff
// walk, incremented before each child visit. [Render] and [Resolve]
// reproduce the same counting rule over the same original tree.
// Positions inside removed or replaced subtrees are never assigned, so
// a position is meaningful only for the exact (tree, patch set) pair
// that produced it.
//
// # Related Packages
//
//   - github.com/treedelta/go-treedelta/tree - the tree model
//   - github.com/treedelta/go-treedelta/yamltree - YAML documents as trees
//   - github.com/treedelta/go-treedelta/filter - expression-based pruning
package treedelta
