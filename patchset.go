package treedelta

import (
	"fmt"
	"strings"

	"github.com/treedelta/go-treedelta/tree"
)

// Op is the kind of a Patch.
type Op int

const (
	OpUpdate Op = iota
	OpInsert
	OpRemove
)

func (o Op) String() string {
	s, ok := map[Op]string{
		OpUpdate: "update",
		OpInsert: "insert",
		OpRemove: "remove",
	}[o]
	if ok {
		return s
	}
	return "<unknown op>"
}

func (o Op) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Op) UnmarshalText(d []byte) error {
	oo, ok := map[string]Op{
		"update": OpUpdate,
		"insert": OpInsert,
		"remove": OpRemove,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized op %q", d)
	}
	*o = oo
	return nil
}

func Ops() []Op {
	return []Op{
		OpUpdate,
		OpInsert,
		OpRemove,
	}
}

// Patch is one patch-set entry, keyed to one position of the original
// tree's diff traversal.
//
// An update holds the replacement subtree in Node; an insert holds the
// appended sibling subtrees in Nodes. Both alias subtrees of the second
// tree given to [Diff], they never copy them. A remove carries no data.
type Patch[V comparable] struct {
	Op    Op
	Node  *tree.Node[V]
	Nodes []*tree.Node[V]
}

func (p *Patch[V]) String() string {
	switch p.Op {
	case OpUpdate:
		return fmt.Sprintf("update %v", p.Node.Value)
	case OpInsert:
		vals := make([]string, len(p.Nodes))
		for i, n := range p.Nodes {
			vals[i] = fmt.Sprint(n.Value)
		}
		return "insert " + strings.Join(vals, ", ")
	case OpRemove:
		return "remove"
	}
	panic("op")
}

// PatchSet maps positions of the original tree's diff traversal to
// patches. Positions are assigned by [Diff] and reproduced by [Render]
// and [Resolve]; they are meaningful only for the exact
// (original tree, patch set) pairing that produced them.
type PatchSet[V comparable] map[int]*Patch[V]

func (ps PatchSet[V]) Empty() bool {
	return len(ps) == 0
}
