package render

import (
	"asciigraph/canvas"
	"asciigraph/graph"
)

// drawArrowheads paints the directional glyph on the path cell just
// before the end (and, for bidirectional edges, just after the start)
// of a routed path, so the arrowhead sits outside the node and the
// border cell the path ends on is left intact. It is oriented by the
// direction of travel of the path's final (or first) segment.
func drawArrowheads(e graph.Edge, opts Options) *canvas.Canvas {
	if len(e.Path) < 2 {
		return canvas.New(0, 0)
	}
	maxX, maxY := 0, 0
	for _, p := range e.Path {
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	ov := canvas.New(maxX, maxY)

	if e.HasArrowEnd {
		last := e.Path[len(e.Path)-1]
		prev := e.Path[len(e.Path)-2]
		at := graph.Point{X: last.X + sign(prev.X-last.X), Y: last.Y + sign(prev.Y-last.Y)}
		ov.SetRune(at.X, at.Y, arrowGlyph(prev, last, opts.UseASCII))
	}
	if e.HasArrowStart {
		first := e.Path[0]
		second := e.Path[1]
		at := graph.Point{X: first.X + sign(second.X-first.X), Y: first.Y + sign(second.Y-first.Y)}
		ov.SetRune(at.X, at.Y, arrowGlyph(second, first, opts.UseASCII))
	}
	return ov
}

// arrowGlyph returns the arrowhead glyph pointing from "from" toward
// "to" (the direction of travel entering the arrow cell).
func arrowGlyph(from, to graph.Point, useASCII bool) rune {
	dx := sign(to.X - from.X)
	dy := sign(to.Y - from.Y)
	if useASCII {
		switch {
		case dx > 0:
			return '>'
		case dx < 0:
			return '<'
		case dy > 0:
			return 'v'
		case dy < 0:
			return '^'
		default:
			return '*'
		}
	}
	switch {
	case dx > 0 && dy == 0:
		return '►'
	case dx < 0 && dy == 0:
		return '◄'
	case dy > 0 && dx == 0:
		return '▼'
	case dy < 0 && dx == 0:
		return '▲'
	case dx > 0 && dy > 0:
		return '◢'
	case dx > 0 && dy < 0:
		return '◥'
	case dx < 0 && dy > 0:
		return '◣'
	case dx < 0 && dy < 0:
		return '◤'
	default:
		return '▲'
	}
}
