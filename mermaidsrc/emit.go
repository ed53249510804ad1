package mermaidsrc

import (
	"fmt"
	"strings"

	"asciigraph/graph"
)

// Emit converts a graph.Graph back into Mermaid flowchart syntax,
// with subgraphs rendered as nested blocks.
func Emit(g *graph.Graph) (string, error) {
	if g == nil {
		return "", fmt.Errorf("graph is nil")
	}

	var sb strings.Builder
	dir := "LR"
	if g.Direction == graph.FlowTD {
		dir = "TD"
	}
	fmt.Fprintf(&sb, "flowchart %s\n", dir)

	inSubgraph := map[string]bool{}
	for _, sg := range g.Subgraphs {
		writeSubgraph(&sb, sg, g, inSubgraph, 1)
	}
	for _, n := range g.Nodes {
		if inSubgraph[n.ID] {
			continue
		}
		writeNode(&sb, n, 1)
	}
	for _, e := range g.Edges {
		writeEdge(&sb, e, 1)
	}
	return sb.String(), nil
}

func writeSubgraph(sb *strings.Builder, sg *graph.Subgraph, g *graph.Graph, inSubgraph map[string]bool, depth int) {
	indent := strings.Repeat("    ", depth)
	fmt.Fprintf(sb, "%ssubgraph %s [%s]\n", indent, sg.ID, sg.Label)
	for _, id := range sg.NodeIDs {
		inSubgraph[id] = true
		if n := g.NodeByID(id); n != nil {
			writeNode(sb, *n, depth+1)
		}
	}
	for _, child := range sg.Children {
		writeSubgraph(sb, child, g, inSubgraph, depth+1)
	}
	fmt.Fprintf(sb, "%send\n", indent)
}

func writeNode(sb *strings.Builder, n graph.Node, depth int) {
	indent := strings.Repeat("    ", depth)
	l, r := bracketsFor(n.Shape)
	fmt.Fprintf(sb, "%s%s%s\"%s\"%s\n", indent, n.ID, l, n.Label, r)
}

func writeEdge(sb *strings.Builder, e graph.Edge, depth int) {
	indent := strings.Repeat("    ", depth)
	arrow := arrowFor(e)
	if e.Label != "" {
		fmt.Fprintf(sb, "%s%s %s|%s| %s\n", indent, e.Source, arrow, e.Label, e.Target)
	} else {
		fmt.Fprintf(sb, "%s%s %s %s\n", indent, e.Source, arrow, e.Target)
	}
}

func bracketsFor(s graph.Shape) (string, string) {
	switch s {
	case graph.ShapeRounded:
		return "(", ")"
	case graph.ShapeStadium:
		return "([", "])"
	case graph.ShapeSubroutine:
		return "[[", "]]"
	case graph.ShapeCylinder:
		return "[(", ")]"
	case graph.ShapeDiamond:
		return "{", "}"
	case graph.ShapeHexagon:
		return "{{", "}}"
	case graph.ShapeCircle:
		return "((", "))"
	default:
		return "[", "]"
	}
}

// arrowFor builds the Mermaid arrow token for e: the body encodes the
// stroke style, a trailing ">" is added only for an arrowhead at the
// target end, and a leading "<" only for one at the source end. A
// solid edge with no arrowhead at either end falls back to the plain
// "---" line token rather than a dangling "--". A dashed or thick edge
// with no arrowhead at either end is still written with a trailing
// ">" ("-.->" or "==>"), since Parse has no token for those styles
// without one.
func arrowFor(e graph.Edge) string {
	body := "--"
	switch e.Style {
	case graph.EdgeDashed:
		body = "-.-"
	case graph.EdgeThick:
		body = "=="
	}
	switch {
	case e.HasArrowStart && e.HasArrowEnd:
		return "<" + body + ">"
	case e.HasArrowStart:
		return "<" + body
	case e.HasArrowEnd:
		return body + ">"
	case e.Style == graph.EdgeSolid:
		return "---"
	default:
		return body + ">"
	}
}
