package layout

import (
	"testing"

	"asciigraph/graph"
)

func simpleGraph() *graph.Graph {
	return &graph.Graph{
		Direction: graph.FlowLR,
		Nodes: []graph.Node{
			{ID: "A", Label: "A"},
			{ID: "B", Label: "B"},
			{ID: "C", Label: "Cee"},
		},
		Edges: []graph.Edge{
			{Source: "A", Target: "B"},
			{Source: "B", Target: "C"},
		},
	}
}

func defaultConfig() Config {
	return Config{PaddingX: 2, PaddingY: 1, BoxBorderPadding: 1}
}

func TestLayoutRoutesEveryEdgeInASimpleChain(t *testing.T) {
	result := Layout(simpleGraph(), defaultConfig())

	if len(result.Unroutable) != 0 {
		t.Fatalf("unroutable edges = %v, want none in an unobstructed chain", result.Unroutable)
	}
	for _, e := range result.Edges {
		if len(e.Path) < 2 {
			t.Errorf("edge %s->%s has a degenerate path %v", e.Source, e.Target, e.Path)
		}
	}
}

func TestLayoutAssignsNonOverlappingBoxes(t *testing.T) {
	result := Layout(simpleGraph(), defaultConfig())

	for i := 0; i < len(result.Nodes); i++ {
		for j := i + 1; j < len(result.Nodes); j++ {
			a, b := result.Nodes[i], result.Nodes[j]
			aMinX, aMinY, aMaxX, aMaxY := a.Box()
			bMinX, bMinY, bMaxX, bMaxY := b.Box()
			overlap := aMinX <= bMaxX && bMinX <= aMaxX && aMinY <= bMaxY && bMinY <= aMaxY
			if overlap {
				t.Errorf("nodes %s and %s overlap: (%d,%d,%d,%d) vs (%d,%d,%d,%d)", a.ID, b.ID, aMinX, aMinY, aMaxX, aMaxY, bMinX, bMinY, bMaxX, bMaxY)
			}
		}
	}
}

func TestLayoutSelfLoopStaysWithinCanvas(t *testing.T) {
	g := &graph.Graph{
		Direction: graph.FlowLR,
		Nodes:     []graph.Node{{ID: "A", Label: "A"}},
		Edges:     []graph.Edge{{Source: "A", Target: "A"}},
	}
	result := Layout(g, defaultConfig())
	if len(result.Unroutable) != 0 {
		t.Fatalf("self loop failed to route: %v", result.Unroutable)
	}
	for _, p := range result.Edges[0].Path {
		if p.X < 0 || p.Y < 0 || p.X > result.CanvasW || p.Y > result.CanvasH {
			t.Errorf("self loop point %v escaped canvas bounds %dx%d", p, result.CanvasW, result.CanvasH)
		}
	}
}
