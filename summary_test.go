package treedelta

import (
	"bytes"
	"testing"

	"github.com/treedelta/go-treedelta/tree"
)

func TestSummaryScenario(t *testing.T) {
	node1, node2 := scenarioTrees()
	ps := Diff(node1, node2)
	var buf bytes.Buffer
	if err := Summary(&buf, node1, ps); err != nil {
		t.Fatalf("summary: %v", err)
	}
	want := lines(
		"0 insert child5",
		"0 insert child6",
		"2 remove child1-1",
		"4 update child2-[-1-]{+2+}",
		"5 update child2-[-2-]{+1+}",
		"6 update child[-3-]{+4+}")
	if got := buf.String(); got != want {
		t.Errorf("unexpected summary:\n%s", got)
	}
}

func TestSummaryEmpty(t *testing.T) {
	root := tree.New("root")
	var buf bytes.Buffer
	if err := Summary(&buf, root, Diff(root, root)); err != nil {
		t.Fatalf("summary: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestInlineDiffEqualValues(t *testing.T) {
	a := tree.New("root", tree.New("x", tree.New("x1")))
	b := tree.New("root", tree.New("x", tree.New("x2")))
	ps := Diff(a, b)
	var buf bytes.Buffer
	if err := Summary(&buf, a, ps); err != nil {
		t.Fatalf("summary: %v", err)
	}
	if got, want := buf.String(), lines("2 update x[-1-]{+2+}"); got != want {
		t.Errorf("unexpected summary:\n%s", got)
	}
}
