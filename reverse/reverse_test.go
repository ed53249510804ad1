package reverse

import (
	"strings"
	"testing"

	"asciigraph/graph"
	"asciigraph/layout"
	"asciigraph/render"
)

func renderedChain(t *testing.T) string {
	t.Helper()
	g := &graph.Graph{
		Direction: graph.FlowLR,
		Nodes: []graph.Node{
			{ID: "A", Label: "Start"},
			{ID: "B", Label: "End"},
		},
		Edges: []graph.Edge{{Source: "A", Target: "B", HasArrowEnd: true}},
	}
	result := layout.Layout(g, layout.Config{PaddingX: 2, PaddingY: 1, BoxBorderPadding: 1})
	return render.Flowchart(result, render.Options{})
}

func TestBuildGridWidensWideRunes(t *testing.T) {
	g := BuildGrid("a中b\ncde")
	if g.Width != 4 {
		t.Fatalf("grid width = %d, want 4 (the wide rune takes two columns)", g.Width)
	}
	if g.At(0, 0) != 'a' {
		t.Errorf("grid(0,0) = %q, want 'a'", g.At(0, 0))
	}
}

func TestDetectBoxesFindsARectangle(t *testing.T) {
	art := "┌───┐\n" +
		"│box│\n" +
		"└───┘"
	g := BuildGrid(art)
	boxes := DetectBoxes(g)
	if len(boxes) != 1 {
		t.Fatalf("detected %d boxes, want 1: %+v", len(boxes), boxes)
	}
	if boxes[0].Label != "box" {
		t.Errorf("label = %q, want %q", boxes[0].Label, "box")
	}
}

func TestParseRoundTripsRenderedChain(t *testing.T) {
	rendered := renderedChain(t)
	result := Parse(rendered, graph.FlowLR)

	if len(result.Graph.Nodes) != 2 {
		t.Fatalf("parsed %d nodes, want 2:\n%s", len(result.Graph.Nodes), rendered)
	}
	if len(result.Graph.Edges) != 1 {
		t.Fatalf("parsed %d edges, want 1:\n%s", len(result.Graph.Edges), rendered)
	}
	labels := map[string]bool{}
	for _, n := range result.Graph.Nodes {
		labels[n.Label] = true
	}
	if !labels["Start"] || !labels["End"] {
		t.Errorf("parsed labels = %v, want Start and End", labels)
	}
	if !strings.Contains(result.Text, "-->") {
		t.Errorf("emitted Mermaid text has no edge:\n%s", result.Text)
	}
}

func TestParseSelfLoopIsNotAmbiguous(t *testing.T) {
	g := &graph.Graph{
		Direction: graph.FlowLR,
		Nodes:     []graph.Node{{ID: "A", Label: "A"}},
		Edges:     []graph.Edge{{Source: "A", Target: "A", HasArrowEnd: true}},
	}
	result := layout.Layout(g, layout.Config{PaddingX: 2, PaddingY: 1, BoxBorderPadding: 1})
	rendered := render.Flowchart(result, render.Options{})

	parsed := Parse(rendered, graph.FlowLR)
	if len(parsed.Graph.Edges) != 1 {
		t.Fatalf("parsed %d edges from a single self loop, want 1:\n%s", len(parsed.Graph.Edges), rendered)
	}
	if parsed.Ambiguous {
		t.Errorf("a single self loop was reported as ambiguous:\n%s", rendered)
	}
}
