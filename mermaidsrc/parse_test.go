package mermaidsrc

import (
	"strings"
	"testing"

	"asciigraph/graph"
)

func TestParseNodesShapesAndEdge(t *testing.T) {
	src := `flowchart LR
A[Start] --> B{Decision}
B -->|yes| C((Done))
`
	g, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if g.Direction != graph.FlowLR {
		t.Errorf("direction = %v, want FlowLR", g.Direction)
	}
	if len(g.Nodes) != 3 {
		t.Fatalf("got %d nodes, want 3", len(g.Nodes))
	}

	byID := map[string]graph.Node{}
	for _, n := range g.Nodes {
		byID[n.ID] = n
	}
	if byID["A"].Shape != graph.ShapeRectangle || byID["A"].Label != "Start" {
		t.Errorf("node A = %+v, want rectangle labeled Start", byID["A"])
	}
	if byID["B"].Shape != graph.ShapeDiamond || byID["B"].Label != "Decision" {
		t.Errorf("node B = %+v, want diamond labeled Decision", byID["B"])
	}
	if byID["C"].Shape != graph.ShapeCircle || byID["C"].Label != "Done" {
		t.Errorf("node C = %+v, want circle labeled Done", byID["C"])
	}

	if len(g.Edges) != 2 {
		t.Fatalf("got %d edges, want 2", len(g.Edges))
	}
	if g.Edges[1].Label != "yes" {
		t.Errorf("second edge label = %q, want %q", g.Edges[1].Label, "yes")
	}
}

func TestParseImplicitNodeFromEdgeOnly(t *testing.T) {
	g, err := Parse("flowchart TD\nX --> Y\n")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(g.Nodes) != 2 {
		t.Fatalf("got %d nodes, want 2 implicit nodes", len(g.Nodes))
	}
	if g.Nodes[0].Label != "X" || g.Nodes[1].Label != "Y" {
		t.Errorf("implicit node labels = %q, %q, want ids as labels", g.Nodes[0].Label, g.Nodes[1].Label)
	}
}

func TestParseSubgraphMembership(t *testing.T) {
	src := `flowchart LR
subgraph S1 [Group One]
A[A]
B[B]
end
A --> B
`
	g, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(g.Subgraphs) != 1 {
		t.Fatalf("got %d subgraphs, want 1", len(g.Subgraphs))
	}
	sg := g.Subgraphs[0]
	if sg.Label != "Group One" {
		t.Errorf("subgraph label = %q, want %q", sg.Label, "Group One")
	}
	if len(sg.NodeIDs) != 2 {
		t.Errorf("subgraph node ids = %v, want [A B]", sg.NodeIDs)
	}
	for _, n := range g.Nodes {
		if n.SubgraphID != "S1" {
			t.Errorf("node %s SubgraphID = %q, want S1", n.ID, n.SubgraphID)
		}
	}
}

func TestParseRecognizesLeadingArrowhead(t *testing.T) {
	g, err := Parse("flowchart LR\nA[A] <--> B[B]\n")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(g.Edges) != 1 {
		t.Fatalf("got %d edges, want 1", len(g.Edges))
	}
	e := g.Edges[0]
	if !e.HasArrowStart || !e.HasArrowEnd {
		t.Errorf("edge = %+v, want both HasArrowStart and HasArrowEnd true", e)
	}
}

func TestParseLeadingArrowheadWithoutTrailing(t *testing.T) {
	g, err := Parse("flowchart LR\nA[A] <-- B[B]\n")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(g.Edges) != 1 {
		t.Fatalf("got %d edges, want 1", len(g.Edges))
	}
	e := g.Edges[0]
	if !e.HasArrowStart {
		t.Errorf("edge = %+v, want HasArrowStart true", e)
	}
	if e.HasArrowEnd {
		t.Errorf("edge = %+v, want HasArrowEnd false", e)
	}
}

func TestArrowForRoundTripsBidirectionalEdge(t *testing.T) {
	g := &graph.Graph{
		Direction: graph.FlowLR,
		Nodes: []graph.Node{{ID: "A", Label: "A"}, {ID: "B", Label: "B"}},
		Edges: []graph.Edge{
			{Source: "A", Target: "B", HasArrowStart: true, HasArrowEnd: true},
		},
	}
	text, err := Emit(g)
	if err != nil {
		t.Fatalf("Emit returned error: %v", err)
	}
	reparsed, err := Parse(text)
	if err != nil {
		t.Fatalf("re-parsing emitted text failed: %v", err)
	}
	if len(reparsed.Edges) != 1 {
		t.Fatalf("round trip lost the edge: %+v", reparsed)
	}
	e := reparsed.Edges[0]
	if !e.HasArrowStart || !e.HasArrowEnd {
		t.Errorf("round-tripped edge = %+v, want both arrowhead flags true", e)
	}
}

func TestEmitRoundTripsThroughParse(t *testing.T) {
	g := &graph.Graph{
		Direction: graph.FlowTD,
		Nodes: []graph.Node{
			{ID: "A", Label: "Alpha", Shape: graph.ShapeRounded},
			{ID: "B", Label: "Beta", Shape: graph.ShapeRectangle},
		},
		Edges: []graph.Edge{
			{Source: "A", Target: "B", Label: "next", Style: graph.EdgeDashed},
		},
	}

	text, err := Emit(g)
	if err != nil {
		t.Fatalf("Emit returned error: %v", err)
	}
	if !strings.Contains(text, "flowchart TD") {
		t.Errorf("emitted text missing direction header: %q", text)
	}

	reparsed, err := Parse(text)
	if err != nil {
		t.Fatalf("re-parsing emitted text failed: %v", err)
	}
	if len(reparsed.Nodes) != 2 || len(reparsed.Edges) != 1 {
		t.Fatalf("round trip lost structure: %+v", reparsed)
	}
	if reparsed.Edges[0].Label != "next" {
		t.Errorf("round trip lost edge label: %q", reparsed.Edges[0].Label)
	}
}
