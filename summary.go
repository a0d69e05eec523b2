package treedelta

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/treedelta/go-treedelta/tree"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Summary writes one line per patch in ps, ordered by position, in the
// form "<pos> <op> <value>". Inserts emit one line per appended
// subtree. Updates show the old and new value as an inline word diff,
// deletions in [-..-] and insertions in {+..+}.
func Summary[V comparable](w io.Writer, root *tree.Node[V], ps PatchSet[V]) error {
	origs := Resolve(root, ps)
	diffCfg := diffpatch.New()
	for _, pos := range slices.Sorted(maps.Keys(ps)) {
		p := ps[pos]
		switch p.Op {
		case OpUpdate:
			from := ""
			if orig := origs[pos]; orig != nil {
				from = fmt.Sprint(orig.Value)
			}
			to := fmt.Sprint(p.Node.Value)
			if _, err := fmt.Fprintf(w, "%d update %s\n", pos, inlineDiff(diffCfg, from, to)); err != nil {
				return err
			}
		case OpInsert:
			for _, n := range p.Nodes {
				if _, err := fmt.Fprintf(w, "%d insert %v\n", pos, n.Value); err != nil {
					return err
				}
			}
		case OpRemove:
			if orig := origs[pos]; orig != nil {
				if _, err := fmt.Fprintf(w, "%d remove %v\n", pos, orig.Value); err != nil {
					return err
				}
				continue
			}
			if _, err := fmt.Fprintf(w, "%d remove\n", pos); err != nil {
				return err
			}
		default:
			panic("op")
		}
	}
	return nil
}

// inlineDiff renders from -> to on a single line.
func inlineDiff(cfg *diffpatch.DiffMatchPatch, from, to string) string {
	if from == "" || from == to {
		return to
	}
	diffs := cfg.DiffMain(from, to, false)
	var b strings.Builder
	for i := range diffs {
		d := &diffs[i]
		switch d.Type {
		case diffpatch.DiffEqual:
			b.WriteString(d.Text)
		case diffpatch.DiffDelete:
			b.WriteString("[-" + d.Text + "-]")
		case diffpatch.DiffInsert:
			b.WriteString("{+" + d.Text + "+}")
		}
	}
	return b.String()
}
