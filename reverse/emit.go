package reverse

import (
	"fmt"
	"sort"
	"strings"

	"asciigraph/graph"
)

// ParseResult is the flowchart reconstructed from rendered character
// art, together with the raw Mermaid text form.
type ParseResult struct {
	Graph *graph.Graph
	Text  string

	// Ambiguous is true if at least one arrowhead traced to more than
	// one candidate source box and was resolved by the heuristic
	// disambiguation policy rather than an unambiguous shortest path.
	Ambiguous bool
}

// Parse rebuilds a flowchart from a rendered canvas string: grid
// reconstruction, box detection, arrow tracing, and Mermaid emission.
func Parse(rendered string, dir graph.FlowDirection) ParseResult {
	g := BuildGrid(rendered)
	boxes := DetectBoxes(g)
	traces, ambiguousCount := traceArrows(g, boxes)

	fg := &graph.Graph{Direction: dir}
	nodeIDs := assignNodeIDs(boxes)
	for i, b := range boxes {
		fg.Nodes = append(fg.Nodes, graph.Node{ID: nodeIDs[i], Label: b.Label})
	}
	for _, t := range traces {
		fg.Edges = append(fg.Edges, graph.Edge{
			Source:      nodeIDs[t.SourceBox],
			Target:      nodeIDs[t.TargetBox],
			Label:       t.Label,
			Style:       t.Style,
			HasArrowEnd: true,
		})
	}

	return ParseResult{Graph: fg, Text: Emit(fg), Ambiguous: ambiguousCount > 0}
}

// assignNodeIDs sorts boxes by label for stable id assignment, then
// returns a slice mapping the original box index to its assigned id.
func assignNodeIDs(boxes []Box) []string {
	order := make([]int, len(boxes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return boxes[order[i]].Label < boxes[order[j]].Label
	})
	ids := make([]string, len(boxes))
	for rank, boxIdx := range order {
		ids[boxIdx] = fmt.Sprintf("N%d", rank+1)
	}
	return ids
}

// Emit renders a flowchart graph back to Mermaid source text.
func Emit(g *graph.Graph) string {
	var sb strings.Builder
	dir := "LR"
	if g.Direction == graph.FlowTD {
		dir = "TD"
	}
	fmt.Fprintf(&sb, "flowchart %s\n", dir)
	for _, n := range g.Nodes {
		fmt.Fprintf(&sb, "%s[\"%s\"]\n", n.ID, n.Label)
	}
	for _, e := range g.Edges {
		arrow := arrowToken(e.Style)
		if e.Label != "" {
			fmt.Fprintf(&sb, "%s %s|%s| %s\n", e.Source, arrow, e.Label, e.Target)
		} else {
			fmt.Fprintf(&sb, "%s %s %s\n", e.Source, arrow, e.Target)
		}
	}
	return sb.String()
}

// arrowToken returns the Mermaid arrow body matching s, with a
// trailing arrowhead since every traced edge in this package records
// an arrow sighting at its target end.
func arrowToken(s graph.EdgeStyle) string {
	switch s {
	case graph.EdgeDashed:
		return "-.->"
	case graph.EdgeThick:
		return "==>"
	default:
		return "-->"
	}
}
