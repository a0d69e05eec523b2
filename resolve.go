package treedelta

import "github.com/treedelta/go-treedelta/tree"

// Resolve replays the projection traversal of root under ps and
// returns the original node seen at each visited position.
//
// Positions inside removed or replaced subtrees are absent from the
// result: the diff never assigned them, so position numbers are not
// portable node identifiers outside one matched diff/apply pairing.
func Resolve[V comparable](root *tree.Node[V], ps PatchSet[V]) map[int]*tree.Node[V] {
	res := map[int]*tree.Node[V]{}
	pos := 0
	resolveWalk(root, ps, res, &pos)
	return res
}

func resolveWalk[V comparable](n *tree.Node[V], ps PatchSet[V], res map[int]*tree.Node[V], pos *int) {
	res[*pos] = n
	if p, ok := ps[*pos]; ok && p.Op != OpInsert {
		// updates and removes do not descend
		return
	}
	for _, c := range n.Children {
		*pos++
		resolveWalk(c, ps, res, pos)
	}
}
