package layout

import (
	"asciigraph/canvas"
	"asciigraph/graph"
)

// sizeColumnsAndRows derives the per-column width and per-row height
// tables from node grid coordinates: three cells per node axis
// (border, content, border), sized from padding and label display
// width. The cell before a node gets a fixed overhead of 4 added to
// its vertical padding if the node is the topmost node in its
// subgraph reachable by an edge from outside that subgraph.
func sizeColumnsAndRows(nodes []graph.Node, cfg Config, g *graph.Graph) ([]int, []int) {
	maxCol, maxRow := 0, 0
	for _, n := range nodes {
		if n.Grid.X+2 > maxCol {
			maxCol = n.Grid.X + 2
		}
		if n.Grid.Y+2 > maxRow {
			maxRow = n.Grid.Y + 2
		}
	}

	cols := make([]int, maxCol+1)
	rows := make([]int, maxRow+1)
	for i := range cols {
		cols[i] = cfg.PaddingX / 2
		if cols[i] < 1 {
			cols[i] = 1
		}
	}
	for i := range rows {
		rows[i] = cfg.PaddingY / 2
		if rows[i] < 1 {
			rows[i] = 1
		}
	}

	topmostExternal := topmostExternallyTargeted(nodes, g)

	for _, n := range nodes {
		labelW := canvas.StringWidth(n.Label)
		content := 2*cfg.PaddingX + labelW
		if content < 1 {
			content = 1
		}
		if content > cols[n.Grid.X+1] {
			cols[n.Grid.X+1] = content
		}
		cols[n.Grid.X] = maxInt(cols[n.Grid.X], 1)
		cols[n.Grid.X+2] = maxInt(cols[n.Grid.X+2], 1)

		rowHeight := 1 + 2*cfg.PaddingY
		if rowHeight > rows[n.Grid.Y+1] {
			rows[n.Grid.Y+1] = rowHeight
		}
		before := 1
		if topmostExternal[n.ID] {
			before = maxInt(cfg.PaddingY/2, 1) + 4
		}
		rows[n.Grid.Y] = maxInt(rows[n.Grid.Y], before)
		rows[n.Grid.Y+2] = maxInt(rows[n.Grid.Y+2], 1)
	}
	return cols, rows
}

// topmostExternallyTargeted finds, per subgraph, the node with the
// smallest grid Y that has an incoming edge from outside the
// subgraph.
func topmostExternallyTargeted(nodes []graph.Node, g *graph.Graph) map[string]bool {
	subgraphOf := make(map[string]string, len(nodes))
	for _, n := range nodes {
		subgraphOf[n.ID] = n.SubgraphID
	}

	bestY := map[string]int{}
	bestNode := map[string]string{}
	for _, e := range g.Edges {
		if e.Source == e.Target {
			continue
		}
		srcSub := subgraphOf[e.Source]
		dstSub := subgraphOf[e.Target]
		if dstSub == "" || srcSub == dstSub {
			continue
		}
		var target *graph.Node
		for i := range nodes {
			if nodes[i].ID == e.Target {
				target = &nodes[i]
				break
			}
		}
		if target == nil {
			continue
		}
		if y, ok := bestY[dstSub]; !ok || target.Grid.Y < y {
			bestY[dstSub] = target.Grid.Y
			bestNode[dstSub] = target.ID
		}
	}

	out := make(map[string]bool, len(bestNode))
	for _, id := range bestNode {
		out[id] = true
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// widenForLabels implements the label line selection step: the grid
// band an edge's path is expected to cross between its source and
// target levels is widened to max(current, labelWidth+2) so a long
// label is never squeezed against neighboring content. Self-loops
// carry no such crossing band and are skipped.
func widenForLabels(nodes []graph.Node, edges []graph.Edge, cols, rows []int, dir graph.FlowDirection) {
	byID := make(map[string]graph.Node, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = n
	}
	for _, e := range edges {
		if e.Label == "" || e.Source == e.Target {
			continue
		}
		src, ok := byID[e.Source]
		if !ok {
			continue
		}
		dst, ok := byID[e.Target]
		if !ok {
			continue
		}
		labelW := canvas.StringWidth(e.Label) + 2
		if dir == graph.FlowLR {
			widenBand(cols, src.Grid.X, dst.Grid.X, labelW)
		} else {
			widenBand(rows, src.Grid.Y, dst.Grid.Y, labelW)
		}
	}
}

// widenBand widens the gap band that immediately follows the lower of
// level a and level b (the cell after its 3-cell reservation) to at
// least minWidth. When the two levels are not adjacent, the other gap
// bands between them are left as they are.
func widenBand(widths []int, a, b, minWidth int) {
	if a > b {
		a, b = b, a
	}
	mid := a + 3 // gap band right after a's border/content/border, before the next level starts
	if mid < 0 || mid >= len(widths) {
		return
	}
	if widths[mid] < minWidth {
		widths[mid] = minWidth
	}
}
