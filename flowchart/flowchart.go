// Package flowchart wires the whole pipeline together: parse Mermaid
// source, lay out and route the graph, draw it to a canvas string,
// and expose the reverse direction the same way. This is the single
// entry point external callers use; everything downstream considers
// a fresh graph and A* context per call so a render is a pure
// function of its inputs.
package flowchart

import (
	"fmt"

	"asciigraph/config"
	"asciigraph/graph"
	"asciigraph/layout"
	"asciigraph/mermaidsrc"
	"asciigraph/metrics"
	"asciigraph/render"
	"asciigraph/reverse"
	"asciigraph/stitch"
)

// componentGap is the blank separator band stitched between
// independently laid-out connected components.
const componentGap = 4

// Render parses Mermaid flowchart source and produces the finished
// character-art string.
func Render(mermaidText string, cfg config.Config) (string, error) {
	return RenderWithMetrics(mermaidText, cfg, nil)
}

// RenderWithMetrics is Render with optional instrumentation; pass nil
// to skip metrics entirely.
func RenderWithMetrics(mermaidText string, cfg config.Config, m *metrics.Metrics) (string, error) {
	g, err := mermaidsrc.Parse(mermaidText)
	if err != nil {
		return "", fmt.Errorf("parsing mermaid source: %w", err)
	}

	dir, flip := cfg.ResolveDirection()
	g.Direction = dir

	out, unroutable := renderGraph(g, cfg)
	if m != nil {
		m.UnroutableEdges.Add(float64(unroutable))
	}

	if flip {
		out = flipRenderedString(out)
	}
	return out, nil
}

func layoutConfig(cfg config.Config) layout.Config {
	return layout.Config{
		PaddingX:         cfg.PaddingX,
		PaddingY:         cfg.PaddingY,
		BoxBorderPadding: cfg.BoxBorderPadding,
	}
}

// renderGraph lays out and draws g, splitting it into its connected
// components and stitching their independent layouts back together
// when it isn't a single connected graph: each component routes its
// edges against its own blocked-cell and segment-usage state, never
// consuming another component's routing budget.
func renderGraph(g *graph.Graph, cfg config.Config) (string, int) {
	components := splitComponents(g)
	if len(components) == 1 {
		result := layout.Layout(components[0], layoutConfig(cfg))
		return render.Flowchart(result, render.Options{UseASCII: cfg.UseASCII}), len(result.Unroutable)
	}

	sizes := make([]stitch.LayoutSize, 0, len(components))
	unroutable := 0
	for _, comp := range components {
		result := layout.Layout(comp, layoutConfig(cfg))
		unroutable += len(result.Unroutable)
		rendered := render.Flowchart(result, render.Options{UseASCII: cfg.UseASCII})
		sizes = append(sizes, stitch.LayoutSize{
			Width:  result.CanvasW,
			Height: result.CanvasH,
			Rows:   splitLines(rendered),
		})
	}

	direction := "LR"
	if g.Direction == graph.FlowTD {
		direction = "TD"
	}
	stitched := stitch.StitchLayouts(sizes, direction, componentGap)
	return joinLines(stitched.Rows), unroutable
}

// splitComponents partitions g by connected component (via
// stitch.FindConnectedComponents) and returns one sub-graph per
// component, each carrying only the nodes, edges and subgraphs wholly
// contained within it. A connected graph returns a single-element
// slice holding g itself, unchanged.
func splitComponents(g *graph.Graph) []*graph.Graph {
	nodeIDs := make([]string, len(g.Nodes))
	idxOf := make(map[string]int, len(g.Nodes))
	for i, n := range g.Nodes {
		nodeIDs[i] = n.ID
		idxOf[n.ID] = i
	}

	var edgeRefs []stitch.EdgeRef
	for _, e := range g.Edges {
		from, ok1 := idxOf[e.Source]
		to, ok2 := idxOf[e.Target]
		if !ok1 || !ok2 {
			continue
		}
		edgeRefs = append(edgeRefs, stitch.EdgeRef{From: from, To: to})
	}

	groups, _ := stitch.FindConnectedComponents(nodeIDs, edgeRefs)
	if len(groups) <= 1 {
		return []*graph.Graph{g}
	}

	out := make([]*graph.Graph, 0, len(groups))
	for _, members := range groups {
		memberSet := make(map[string]bool, len(members))
		for _, id := range members {
			memberSet[id] = true
		}

		sub := &graph.Graph{Direction: g.Direction}
		for _, n := range g.Nodes {
			if memberSet[n.ID] {
				sub.Nodes = append(sub.Nodes, n)
			}
		}
		for _, e := range g.Edges {
			if memberSet[e.Source] && memberSet[e.Target] {
				sub.Edges = append(sub.Edges, e)
			}
		}
		for _, sg := range g.Subgraphs {
			if subgraphWithin(sg, memberSet) {
				sub.Subgraphs = append(sub.Subgraphs, sg)
			}
		}
		out = append(out, sub)
	}
	return out
}

func subgraphWithin(sg *graph.Subgraph, memberSet map[string]bool) bool {
	for _, id := range sg.NodeIDs {
		if !memberSet[id] {
			return false
		}
	}
	return true
}

// flipRenderedString reverses row order of an already-composited
// canvas string, used to turn a TD/LR render into its BT/RL
// presentation without routing the layout upside down.
func flipRenderedString(s string) string {
	lines := splitLines(s)
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
	return joinLines(lines)
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i, r := range s {
		if r == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}

func joinLines(lines []string) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}

// Reverse parses rendered character art back into Mermaid source.
func Reverse(rendered string, dir graph.FlowDirection) string {
	return reverse.Parse(rendered, dir).Text
}
