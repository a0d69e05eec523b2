package yamltree

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/treedelta/go-treedelta/tree"
)

// RootLabel is the value given to the synthetic root of every parsed
// document, so any two documents agree at the root and a diff descends
// into their content.
const RootLabel = "$"

// Parse converts a YAML (or JSON) document into a labeled, ordered
// tree:
//
//   - a mapping entry with a scalar value becomes a leaf "k: v", keyed k
//   - a mapping entry with a composite value becomes a node "k", keyed k
//   - a sequence item that is a scalar becomes a leaf "v"
//   - a sequence item that is composite becomes a node "-"
//
// Mapping order is preserved. The positional diff pairs children by
// index, so document order is significant.
func Parse(data []byte) (*tree.Node[string], error) {
	var doc any
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("error decoding document: %w", err)
	}
	return tree.New(RootLabel, children(doc)...), nil
}

func children(v any) []*tree.Node[string] {
	switch x := v.(type) {
	case yaml.MapSlice:
		res := make([]*tree.Node[string], 0, len(x))
		for i := range x {
			res = append(res, entry(&x[i]))
		}
		return res
	case []any:
		res := make([]*tree.Node[string], 0, len(x))
		for _, item := range x {
			if isComposite(item) {
				res = append(res, tree.New("-", children(item)...))
				continue
			}
			res = append(res, tree.New(scalar(item)))
		}
		return res
	case nil:
		return nil
	default:
		// scalar document
		return []*tree.Node[string]{tree.New(scalar(x))}
	}
}

func entry(item *yaml.MapItem) *tree.Node[string] {
	k := scalar(item.Key)
	if isComposite(item.Value) {
		return tree.New(k, children(item.Value)...).WithKey(k)
	}
	return tree.New(k + ": " + scalar(item.Value)).WithKey(k)
}

func isComposite(v any) bool {
	switch v.(type) {
	case yaml.MapSlice, []any:
		return true
	}
	return false
}

func scalar(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%v", v)
}
