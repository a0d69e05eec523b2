package filter

import (
	"testing"

	"github.com/treedelta/go-treedelta/tree"
)

func TestPruneByKey(t *testing.T) {
	pred, err := Compile(`key != "status"`)
	if err != nil {
		t.Fatal(err)
	}
	spec := tree.New("spec",
		tree.New("replicas: 3")).WithKey("spec")
	root := tree.New("$",
		spec,
		tree.New("status",
			tree.New("ready: true")).WithKey("status"))
	res, err := Prune(root, pred)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(res.Children))
	}
	if res.Children[0] != spec {
		t.Error("untouched subtree should be shared, not copied")
	}
}

func TestPruneByDepth(t *testing.T) {
	pred, err := Compile(`depth < 2`)
	if err != nil {
		t.Fatal(err)
	}
	root := tree.New("$",
		tree.New("a",
			tree.New("a1")),
		tree.New("b"))
	res, err := Prune(root, pred)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(res.Children))
	}
	if len(res.Children[0].Children) != 0 {
		t.Error("grandchildren should be dropped")
	}
}

func TestPruneUnchangedIsShared(t *testing.T) {
	pred, err := Compile(`true`)
	if err != nil {
		t.Fatal(err)
	}
	root := tree.New("$",
		tree.New("a",
			tree.New("a1")))
	res, err := Prune(root, pred)
	if err != nil {
		t.Fatal(err)
	}
	if res != root {
		t.Error("a no-op prune should return the input tree")
	}
}

func TestCompileError(t *testing.T) {
	if _, err := Compile(`key +`); err == nil {
		t.Error("expected a compile error")
	}
}

func TestPruneByValue(t *testing.T) {
	pred, err := Compile(`value != "noise"`)
	if err != nil {
		t.Fatal(err)
	}
	root := tree.New("$",
		tree.New("keep"),
		tree.New("noise"),
		tree.New("keep2"))
	res, err := Prune(root, pred)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(res.Children))
	}
}
