package tree

import (
	"testing"
)

func TestVisitOrder(t *testing.T) {
	root := New("root",
		New("a",
			New("a1"),
			New("a2")),
		New("b"))
	var pre, post []string
	err := root.Visit(func(n *Node[string], isPost bool) (bool, error) {
		if isPost {
			post = append(post, n.Value)
		} else {
			pre = append(pre, n.Value)
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	wantPre := []string{"root", "a", "a1", "a2", "b"}
	wantPost := []string{"a1", "a2", "a", "b", "root"}
	if got := pre; !equal(got, wantPre) {
		t.Errorf("pre-order: got %v, want %v", got, wantPre)
	}
	if got := post; !equal(got, wantPost) {
		t.Errorf("post-order: got %v, want %v", got, wantPost)
	}
}

func TestVisitSkip(t *testing.T) {
	root := New("root",
		New("a",
			New("a1")),
		New("b"))
	var pre []string
	root.Visit(func(n *Node[string], isPost bool) (bool, error) {
		if !isPost {
			pre = append(pre, n.Value)
		}
		return n.Value != "a", nil
	})
	want := []string{"root", "a", "b"}
	if !equal(pre, want) {
		t.Errorf("got %v, want %v", pre, want)
	}
}

func TestCount(t *testing.T) {
	root := New("root",
		New("a",
			New("a1"),
			New("a2")),
		New("b"))
	if got := root.Count(); got != 5 {
		t.Errorf("got %d, want 5", got)
	}
	if got := New("leaf").Count(); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
}

func TestSharedSubtree(t *testing.T) {
	shared := New("shared",
		New("inner"))
	t1 := New("t1", shared)
	t2 := New("t2", shared, New("extra"))
	if t1.Children[0] != t2.Children[0] {
		t.Error("both trees should alias the same subtree")
	}
}

func TestWithKey(t *testing.T) {
	n := New("v").WithKey("k")
	if n.Key != "k" {
		t.Errorf("got %q, want %q", n.Key, "k")
	}
	if New("v").Key != "" {
		t.Error("key should default to unset")
	}
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
