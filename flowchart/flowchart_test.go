package flowchart

import (
	"strings"
	"testing"

	"asciigraph/config"
	"asciigraph/graph"
	"asciigraph/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

func TestRenderProducesNonEmptyCanvas(t *testing.T) {
	src := "flowchart LR\nA[Start] --> B[End]\n"
	out, err := Render(src, config.Default())
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if !strings.Contains(out, "Start") || !strings.Contains(out, "End") {
		t.Errorf("rendered output missing node labels:\n%s", out)
	}
}

func TestRenderWithMetricsAcceptsARegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	src := "flowchart LR\nA[A] --> B[B]\n"

	if _, err := RenderWithMetrics(src, config.Default(), m); err != nil {
		t.Fatalf("RenderWithMetrics returned error: %v", err)
	}
}

func TestReverseProducesParsableMermaid(t *testing.T) {
	src := "flowchart LR\nA[Start] --> B[End]\n"
	rendered, err := Render(src, config.Default())
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	back := Reverse(rendered, graph.FlowLR)
	if !strings.Contains(back, "-->") {
		t.Errorf("reversed Mermaid text has no edge arrow:\n%s", back)
	}
	if !strings.Contains(back, "flowchart LR") {
		t.Errorf("reversed Mermaid text missing direction header:\n%s", back)
	}
}

func TestRenderStacksDisconnectedComponentsVerticallyForLR(t *testing.T) {
	src := "flowchart LR\nA[Alpha] --> B[Beta]\nC[Gamma] --> D[Delta]\n"
	out, err := Render(src, config.Default())
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	for _, label := range []string{"Alpha", "Beta", "Gamma", "Delta"} {
		if !strings.Contains(out, label) {
			t.Errorf("stitched render missing label %q:\n%s", label, out)
		}
	}
	lines := strings.Split(out, "\n")
	alphaRow, gammaRow := -1, -1
	for i, l := range lines {
		if alphaRow < 0 && strings.Contains(l, "Alpha") {
			alphaRow = i
		}
		if gammaRow < 0 && strings.Contains(l, "Gamma") {
			gammaRow = i
		}
	}
	if alphaRow < 0 || gammaRow <= alphaRow {
		t.Errorf("expected LR components stacked top to bottom (Alpha above Gamma), got rows %d and %d:\n%s", alphaRow, gammaRow, out)
	}
}

func TestSplitComponentsKeepsConnectedGraphWhole(t *testing.T) {
	g := &graph.Graph{
		Nodes: []graph.Node{{ID: "A"}, {ID: "B"}},
		Edges: []graph.Edge{{Source: "A", Target: "B"}},
	}
	components := splitComponents(g)
	if len(components) != 1 || components[0] != g {
		t.Errorf("splitComponents(connected graph) = %d components, want the original graph unchanged", len(components))
	}
}

func TestSplitComponentsPartitionsDisconnectedGraph(t *testing.T) {
	g := &graph.Graph{
		Nodes: []graph.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}},
		Edges: []graph.Edge{{Source: "A", Target: "B"}},
	}
	components := splitComponents(g)
	if len(components) != 2 {
		t.Fatalf("splitComponents(disconnected graph) = %d components, want 2", len(components))
	}
	total := 0
	for _, c := range components {
		total += len(c.Nodes)
	}
	if total != 3 {
		t.Errorf("split components hold %d total nodes, want 3", total)
	}
}

func TestFlipRenderedStringReversesRowOrder(t *testing.T) {
	in := "one\ntwo\nthree"
	out := flipRenderedString(in)
	want := "three\ntwo\none"
	if out != want {
		t.Errorf("flipRenderedString(%q) = %q, want %q", in, out, want)
	}
}
