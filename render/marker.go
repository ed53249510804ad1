package render

import (
	"asciigraph/canvas"
	"asciigraph/graph"
)

// drawPortMarkers paints a junction glyph on the source node's border
// at the cell the edge departs from, so the reverse parser's arrow
// tracer has a source-marker junction to walk back to. Unicode only.
func drawPortMarkers(e graph.Edge, nodes []graph.Node) *canvas.Canvas {
	if len(e.Path) < 1 {
		return canvas.New(0, 0)
	}
	start := e.Path[0]

	src := nodeAt(nodes, e.Source)
	if src == nil {
		return canvas.New(0, 0)
	}
	minX, minY, maxX, maxY := src.Box()

	ov := canvas.New(start.X, start.Y)
	marker := markerGlyph(start, minX, minY, maxX, maxY, e.StartDir)
	if marker != 0 {
		ov.SetRune(start.X, start.Y, marker)
	}
	return ov
}

func nodeAt(nodes []graph.Node, id string) *graph.Node {
	for i := range nodes {
		if nodes[i].ID == id {
			return &nodes[i]
		}
	}
	return nil
}

// markerGlyph picks the source-marker junction appropriate to which
// border side the port sits on: the tee whose stub points out of the
// box, matching the junction the departing path already forms there.
func markerGlyph(p graph.Point, minX, minY, maxX, maxY int, dir graph.Direction) rune {
	switch {
	case p.Y == minY:
		return '┴'
	case p.Y == maxY:
		return '┬'
	case p.X == minX:
		return '┤'
	case p.X == maxX:
		return '├'
	default:
		return 0
	}
}
