package treedelta

import (
	"slices"

	"github.com/treedelta/go-treedelta/debug"
	"github.com/treedelta/go-treedelta/tree"
)

// Diff compares a and b by structural position and returns the patch
// set that projects a into b.
//
// Nodes are paired purely by index in a pre-order walk of a, parent
// before children, children left to right; identity keys are never
// consulted. At each pair, equal values recurse into the children
// while unequal values record an update replacing the whole subtree,
// with no deeper comparison inside it. A child of a with no
// counterpart in b records a remove at the child's position; trailing
// children of b with no counterpart in a are batched into a single
// insert keyed at the parent's position.
//
// The returned set holds aliased references into b's subtrees, so b's
// content remains reachable from the set without copying. Diffing a
// tree against itself yields an empty, non-nil set.
func Diff[V comparable](a, b *tree.Node[V]) PatchSet[V] {
	res := PatchSet[V]{}
	pos := 0
	diffWalk(a, b, res, &pos)
	if debug.Diff() {
		debug.Logf("diff: %d patches\n", len(res))
	}
	return res
}

func diffWalk[V comparable](a, b *tree.Node[V], res PatchSet[V], pos *int) {
	if a.Value == b.Value {
		diffChildren(a.Children, b.Children, res, pos)
		return
	}
	res[*pos] = &Patch[V]{Op: OpUpdate, Node: b}
}

// diffChildren pairs the two child lists by index. The counter
// increments before child i is visited; Render and Resolve must follow
// the same rule or patches get misrouted.
func diffChildren[V comparable](as, bs []*tree.Node[V], res PatchSet[V], pos *int) {
	parentPos := *pos
	na, nb := len(as), len(bs)
	for i := 0; i < na; i++ {
		*pos++
		if i >= nb {
			// no descent: positions inside a removed subtree are
			// never assigned
			res[*pos] = &Patch[V]{Op: OpRemove}
			continue
		}
		diffWalk(as[i], bs[i], res, pos)
	}
	if nb > na {
		res[parentPos] = &Patch[V]{Op: OpInsert, Nodes: slices.Clone(bs[na:])}
	}
}
