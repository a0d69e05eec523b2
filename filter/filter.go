package filter

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/treedelta/go-treedelta/debug"
	"github.com/treedelta/go-treedelta/tree"
)

// Predicate is a compiled keep/drop test over nodes.
type Predicate struct {
	src     string
	program *vm.Program
}

// Compile compiles src as a boolean expression over the variables
// value, key and depth, e.g. `key != "status" and depth < 3`.
func Compile(src string) (*Predicate, error) {
	program, err := expr.Compile(src, expr.Env(env("", "", 0)), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("error compiling filter %q: %w", src, err)
	}
	return &Predicate{src: src, program: program}, nil
}

func (p *Predicate) Keep(n *tree.Node[string], depth int) (bool, error) {
	res, err := expr.Run(p.program, env(n.Value, n.Key, depth))
	if err != nil {
		return false, fmt.Errorf("error evaluating filter %q on %q: %w", p.src, n.Value, err)
	}
	return res.(bool), nil
}

func env(value, key string, depth int) map[string]any {
	return map[string]any{
		"value": value,
		"key":   key,
		"depth": depth,
	}
}

// Prune returns root with every subtree whose root fails p dropped.
// The root itself is always kept. Subtrees with no dropped descendants
// are shared with the input, not copied.
func Prune(root *tree.Node[string], p *Predicate) (*tree.Node[string], error) {
	return prune(root, p, 0)
}

func prune(n *tree.Node[string], p *Predicate, depth int) (*tree.Node[string], error) {
	kept := make([]*tree.Node[string], 0, len(n.Children))
	changed := false
	for _, c := range n.Children {
		keep, err := p.Keep(c, depth+1)
		if err != nil {
			return nil, err
		}
		if !keep {
			if debug.Filter() {
				debug.Logf("filter: dropping %q at depth %d\n", c.Value, depth+1)
			}
			changed = true
			continue
		}
		cc, err := prune(c, p, depth+1)
		if err != nil {
			return nil, err
		}
		if cc != c {
			changed = true
		}
		kept = append(kept, cc)
	}
	if !changed {
		return n, nil
	}
	return tree.New(n.Value, kept...).WithKey(n.Key), nil
}
