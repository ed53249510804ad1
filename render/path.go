package render

import (
	"asciigraph/canvas"
	"asciigraph/graph"
)

// drawEdgePath paints one edge's routed path as a sequence of
// straight strokes; corners fall out of the junction algebra when
// this overlay is later merged onto the base canvas, since a turn
// point receives both an incoming and outgoing directional bit before
// it is ever looked up as a character.
func drawEdgePath(e graph.Edge, opts Options) *canvas.Canvas {
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

	// build a connectivity mask per cell along the path, then render
	// each cell to its junction glyph (or a run character for pure
	// straight interior cells, which the algebra also derives).
	masks := map[graph.Point]int{}
	skip := map[graph.Point]bool{}
	step := 0

	for i := 0; i < len(e.Path)-1; i++ {
		a, b := e.Path[i], e.Path[i+1]
		stepPath(a, b, func(from, to graph.Point) {
			toBit, fromBit := bitsBetween(from, to)
			masks[from] |= toBit
			masks[to] |= fromBit
			if e.Style == graph.EdgeDashed && step%2 == 1 {
				skip[to] = true
			}
			step++
		})
	}

	for p, mask := range masks {
		if skip[p] && mask != 0 && !isTurn(mask) {
			continue
		}
		r := canvas.CharForMask(mask)
		if opts.UseASCII {
			r = asciiForMask(mask)
		} else if e.Style == graph.EdgeThick && !isTurn(mask) {
			r = thickRune(mask, r)
		}
		ov.SetRune(p.X, p.Y, r)
	}
	return ov
}

// isTurn reports whether a connectivity mask represents a corner
// (one horizontal bit and one vertical bit), which dashing never
// omits — omitting a turn would break the path's traceability.
func isTurn(mask int) bool {
	const (
		bitLeft  = 1
		bitRight = 2
		bitUp    = 4
		bitDown  = 8
	)
	h := mask&(bitLeft|bitRight) != 0
	v := mask&(bitUp|bitDown) != 0
	return h && v
}

// thickRune substitutes the heavy variant for a straight run's box
// character, leaving turns and space cells untouched.
func thickRune(mask int, fallback rune) rune {
	const (
		bitLeft  = 1
		bitRight = 2
		bitUp    = 4
		bitDown  = 8
	)
	switch mask {
	case bitLeft, bitRight, bitLeft | bitRight:
		return '━'
	case bitUp, bitDown, bitUp | bitDown:
		return '┃'
	default:
		return fallback
	}
}

func asciiForMask(mask int) rune {
	const (
		bitLeft  = 1
		bitRight = 2
		bitUp    = 4
		bitDown  = 8
	)
	horiz := mask&(bitLeft|bitRight) != 0
	vert := mask&(bitUp|bitDown) != 0
	switch {
	case horiz && vert:
		return '+'
	case vert:
		return '|'
	default:
		return '-'
	}
}

func bitsBetween(a, b graph.Point) (toBit, fromBit int) {
	const (
		bitLeft  = 1
		bitRight = 2
		bitUp    = 4
		bitDown  = 8
	)
	switch {
	case b.X > a.X:
		return bitRight, bitLeft
	case b.X < a.X:
		return bitLeft, bitRight
	case b.Y > a.Y:
		return bitDown, bitUp
	default:
		return bitUp, bitDown
	}
}

// stepPath walks every unit step between a and b (which lie on one
// axis and may be several cells apart, since the router returns
// collinear-collapsed paths) and invokes fn for each step.
func stepPath(a, b graph.Point, fn func(from, to graph.Point)) {
	dx := sign(b.X - a.X)
	dy := sign(b.Y - a.Y)
	cur := a
	for cur != b {
		next := graph.Point{X: cur.X + dx, Y: cur.Y + dy}
		fn(cur, next)
		cur = next
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
