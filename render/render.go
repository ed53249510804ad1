// Package render composites a laid-out, routed graph.Graph onto a
// canvas.Canvas: subgraph borders, node boxes, edge paths, corners,
// arrowheads, port markers and labels, each as a separate overlay
// merged in a fixed order under the junction algebra, finishing with
// crossing de-ambiguation.
package render

import (
	"asciigraph/canvas"
	"asciigraph/graph"
	"asciigraph/layout"
)

// Options controls ASCII/Unicode character selection.
type Options struct {
	UseASCII bool
}

// Flowchart draws a fully routed layout result to a canvas string.
func Flowchart(result layout.Result, opts Options) string {
	if len(result.Nodes) == 0 {
		return ""
	}

	base := canvas.New(result.CanvasW, result.CanvasH)

	// 1. subgraph borders, shallowest first so inner subgraphs overdraw.
	for _, sg := range orderedShallowFirst(result.Subgraphs) {
		ov := drawSubgraphBorder(sg, result.Nodes, opts)
		canvas.MergeOnto(base, ov, 0, 0, opts.UseASCII)
	}

	// 2. node boxes.
	for _, n := range result.Nodes {
		ov := drawNodeBox(n, opts)
		canvas.MergeOnto(base, ov, n.DrawX, n.DrawY, opts.UseASCII)
	}

	// 3. edge paths.
	for _, e := range result.Edges {
		ov := drawEdgePath(e, opts)
		canvas.MergeOnto(base, ov, 0, 0, opts.UseASCII)
	}

	// 4. corners are emitted as part of the path overlay's junction
	// characters already, since the algebra self-selects corners from
	// connectivity; nothing further to composite here.

	// 5. arrowheads.
	for _, e := range result.Edges {
		ov := drawArrowheads(e, opts)
		canvas.MergeOnto(base, ov, 0, 0, opts.UseASCII)
	}

	// 6. box-start port markers, Unicode only.
	if !opts.UseASCII {
		for _, e := range result.Edges {
			ov := drawPortMarkers(e, result.Nodes)
			canvas.MergeOnto(base, ov, 0, 0, opts.UseASCII)
		}
	}

	// 7. edge labels, computed after 1-6 so they can read the base canvas.
	placed := placeLabels(base, result.Edges, result.Nodes, opts)
	for _, ov := range placed {
		canvas.MergeOnto(base, ov, 0, 0, opts.UseASCII)
	}

	// 8. subgraph labels, top.
	for _, sg := range orderedShallowFirst(result.Subgraphs) {
		ov := drawSubgraphLabel(sg, result.Nodes, opts)
		canvas.MergeOnto(base, ov, 0, 0, opts.UseASCII)
	}

	if !opts.UseASCII {
		canvas.DeambiguateUnicodeCrossings(base)
	}
	return base.String()
}

func orderedShallowFirst(roots []*graph.Subgraph) []*graph.Subgraph {
	var out []*graph.Subgraph
	var walk func(nodes []*graph.Subgraph)
	walk = func(nodes []*graph.Subgraph) {
		out = append(out, nodes...)
		for _, sg := range nodes {
			walk(sg.Children)
		}
	}
	walk(roots)
	return out
}
