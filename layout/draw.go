package layout

import "asciigraph/graph"

// placeDrawCoords converts every node's grid coordinate to a drawing
// coordinate (a cell offset in the canvas) using the running sum of
// column widths and row heights, and sets Width/Height from the
// content column/row.
func placeDrawCoords(nodes []graph.Node, colWidths, rowHeights []int) []graph.Node {
	colOffset := prefixSums(colWidths)
	rowOffset := prefixSums(rowHeights)

	out := make([]graph.Node, len(nodes))
	for i, n := range nodes {
		out[i] = n
		out[i].DrawX = colOffset[n.Grid.X]
		out[i].DrawY = rowOffset[n.Grid.Y]
		out[i].Width = colWidths[n.Grid.X+1] + 2
		out[i].Height = rowHeights[n.Grid.Y+1] + 2
	}
	return out
}

func prefixSums(xs []int) []int {
	out := make([]int, len(xs)+1)
	sum := 0
	for i, x := range xs {
		out[i] = sum
		sum += x
	}
	out[len(xs)] = sum
	return out
}

// inflateForPaths walks every unit step of every routed edge and
// ensures the column/row it passes through has at least a minimal
// width, so columns and rows a path visits but no node occupies never
// collapse to zero width.
func inflateForPaths(edges []graph.Edge, colWidths, rowHeights *[]int, cfg Config) {
	minCol := cfg.PaddingX / 2
	if minCol < 1 {
		minCol = 1
	}
	minRow := cfg.PaddingY / 2
	if minRow < 1 {
		minRow = 1
	}
	for _, e := range edges {
		for _, p := range e.Path {
			ensureLen(colWidths, p.X, minCol)
			ensureLen(rowHeights, p.Y, minRow)
		}
	}
}

func ensureLen(xs *[]int, idx, fill int) {
	for len(*xs) <= idx {
		*xs = append(*xs, fill)
	}
	if (*xs)[idx] < 1 {
		(*xs)[idx] = fill
	}
}
