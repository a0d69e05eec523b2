package treedelta

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/treedelta/go-treedelta/debug"
	"github.com/treedelta/go-treedelta/tree"
)

// Render writes the projection of ps applied to root: one line per
// rendered node, indented by depth, with every inserted or replaced
// node's line suffixed by the change marker. Neither root nor ps is
// modified and no merged tree is materialized.
//
// ps must have been produced by [Diff] with root as its first
// argument. Rendering with a patch set computed against a different
// original tree is not detected and yields a meaningless listing.
func Render[V comparable](w io.Writer, root *tree.Node[V], ps PatchSet[V], opts ...RenderOption) error {
	cfg := renderConfig{marker: DefaultMarker, indent: DefaultIndent}
	for _, opt := range opts {
		opt(&cfg)
	}
	if debug.Patch() {
		debug.Logf("render: %d patches over %d nodes\n", len(ps), root.Count())
	}
	r := &renderer[V]{renderConfig: cfg, w: w, ps: ps}
	return r.apply(root, 0)
}

// Print renders to standard output with default options.
func Print[V comparable](root *tree.Node[V], ps PatchSet[V]) error {
	return Render(os.Stdout, root, ps)
}

// renderer threads the shared position counter through the projection.
// Its traversal must agree with the diff walk on exactly when the
// counter increments.
type renderer[V comparable] struct {
	renderConfig
	w   io.Writer
	ps  PatchSet[V]
	pos int
}

func (r *renderer[V]) apply(n *tree.Node[V], depth int) error {
	p, ok := r.ps[r.pos]
	if !ok {
		if err := r.line(n, depth, false); err != nil {
			return err
		}
		return r.applyChildren(n, depth)
	}
	switch p.Op {
	case OpUpdate:
		// the original node's children are not visited: the diff
		// never assigned their positions
		return r.subtree(p.Node, depth)
	case OpInsert:
		if err := r.line(n, depth, false); err != nil {
			return err
		}
		if err := r.applyChildren(n, depth); err != nil {
			return err
		}
		for _, ins := range p.Nodes {
			if err := r.subtree(ins, depth+1); err != nil {
				return err
			}
		}
		return nil
	case OpRemove:
		return nil
	}
	panic("op")
}

func (r *renderer[V]) applyChildren(n *tree.Node[V], depth int) error {
	for _, c := range n.Children {
		r.pos++
		if err := r.apply(c, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// subtree renders n and all its descendants marked changed, without
// consulting the patch set or the position counter.
func (r *renderer[V]) subtree(n *tree.Node[V], depth int) error {
	if err := r.line(n, depth, true); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := r.subtree(c, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (r *renderer[V]) line(n *tree.Node[V], depth int, changed bool) error {
	s := strings.Repeat(r.indent, depth) + fmt.Sprint(n.Value)
	if changed {
		s += r.marker
	}
	if r.colors != nil {
		s = r.colors.Line(changed, s)
	}
	_, err := fmt.Fprintln(r.w, s)
	return err
}
