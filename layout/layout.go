// Package layout assigns grid coordinates to nodes (level-based
// placement, 3x3 reservation with collision shifting, column/row
// sizing) and converts the finished grid into drawing coordinates for
// the canvas.
package layout

import (
	"github.com/charmbracelet/log"

	"asciigraph/graph"
	"asciigraph/router"
)

// marginSchedule is tried in order until an attempt routes every edge
// with a path of at least two points.
var marginSchedule = []int{0, 1, 2, 3, 4}

// Result is a fully laid out and routed graph, ready for drawing.
type Result struct {
	Nodes      []graph.Node
	Edges      []graph.Edge
	Subgraphs  []*graph.Subgraph
	CanvasW    int
	CanvasH    int
	Unroutable []int // indices into Edges whose path stayed empty
}

// Config carries the caller-configurable spacing knobs.
type Config struct {
	PaddingX         int
	PaddingY         int
	BoxBorderPadding int
}

// Layout runs the full level-placement, reservation, sizing and
// routing pipeline, retrying with increasing margin if any edge fails
// to route.
func Layout(g *graph.Graph, cfg Config) Result {
	var last Result
	for i, margin := range marginSchedule {
		last = attempt(g, cfg, margin)
		if allRouted(last) {
			if i > 0 {
				log.Debug("layout converged after margin retry", "margin", margin, "attempt", i)
			}
			return last
		}
		log.Debug("layout attempt left edges unrouted, widening margin", "margin", margin, "unroutable", len(last.Unroutable))
	}
	return last
}

func allRouted(r Result) bool {
	for _, e := range r.Edges {
		if len(e.Path) < 2 {
			return false
		}
	}
	return true
}

func attempt(g *graph.Graph, cfg Config, margin int) Result {
	nodes := append([]graph.Node(nil), g.Nodes...)
	edges := append([]graph.Edge(nil), g.Edges...)

	assignGridCoords(nodes, edges, g.Direction, margin)

	colWidths, rowHeights := sizeColumnsAndRows(nodes, cfg, g)
	widenForLabels(nodes, edges, colWidths, rowHeights, g.Direction)
	nodes = placeDrawCoords(nodes, colWidths, rowHeights)

	stride := sumInts(colWidths) + 1
	height := sumInts(rowHeights) + 1

	blocked := blockedIndices(nodes, stride)
	rtr := router.New(stride, height, blocked)

	for i := range edges {
		src := g.NodeByID(edges[i].Source)
		dst := g.NodeByID(edges[i].Target)
		if src == nil || dst == nil {
			continue
		}
		srcNode := findNode(nodes, edges[i].Source)
		dstNode := findNode(nodes, edges[i].Target)
		res := rtr.RouteEdge(edges[i], g.Direction, srcNode, dstNode)
		if res.Routed {
			edges[i].Path = res.Path
			edges[i].StartDir = res.StartDir
			edges[i].EndDir = res.EndDir
		}
	}

	// grid-size inflation: widen columns/rows any path actually visits
	inflateForPaths(edges, &colWidths, &rowHeights, cfg)
	nodes = placeDrawCoords(nodes, colWidths, rowHeights)

	var unroutable []int
	for i, e := range edges {
		if len(e.Path) < 2 {
			unroutable = append(unroutable, i)
		}
	}

	return Result{
		Nodes:      nodes,
		Edges:      edges,
		Subgraphs:  g.Subgraphs,
		CanvasW:    sumInts(colWidths),
		CanvasH:    sumInts(rowHeights),
		Unroutable: unroutable,
	}
}

func findNode(nodes []graph.Node, id string) graph.Node {
	for _, n := range nodes {
		if n.ID == id {
			return n
		}
	}
	return graph.Node{}
}

func sumInts(xs []int) int {
	t := 0
	for _, x := range xs {
		t += x
	}
	return t
}

func blockedIndices(nodes []graph.Node, stride int) []int {
	var out []int
	for _, n := range nodes {
		minX, minY, maxX, maxY := n.Box()
		for y := minY; y <= maxY; y++ {
			for x := minX; x <= maxX; x++ {
				out = append(out, x+y*stride)
			}
		}
	}
	return out
}
