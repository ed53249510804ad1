package canvas

// Connectivity bits for a box-drawing character: which of its four
// sides carries a line stroke.
const (
	bitLeft  = 1
	bitRight = 2
	bitUp    = 4
	bitDown  = 8
)

// maskToJunction is the full set of Unicode box-drawing characters the
// merge algebra understands, keyed by connectivity mask. Mask 0 (no
// connectivity) has no character — a cell with nothing drawn on it is
// a space, not a junction glyph.
var maskToJunction = map[int]rune{
	bitLeft:                         '╴',
	bitRight:                        '╶',
	bitLeft | bitRight:              '─',
	bitUp:                           '╵',
	bitLeft | bitUp:                 '┘',
	bitRight | bitUp:                '└',
	bitLeft | bitRight | bitUp:      '┴',
	bitDown:                         '╷',
	bitLeft | bitDown:               '┐',
	bitRight | bitDown:              '┌',
	bitLeft | bitRight | bitDown:    '┬',
	bitUp | bitDown:                 '│',
	bitLeft | bitUp | bitDown:       '┤',
	bitRight | bitUp | bitDown:      '├',
	bitLeft | bitRight | bitUp | bitDown: '┼',
}

var junctionToMask map[rune]int

func init() {
	junctionToMask = make(map[rune]int, len(maskToJunction))
	for mask, r := range maskToJunction {
		junctionToMask[r] = mask
	}
}

// IsJunctionChar reports whether r is one of the sixteen (fifteen
// non-empty) box-drawing connectivity glyphs this algebra knows.
func IsJunctionChar(r rune) bool {
	_, ok := junctionToMask[r]
	return ok
}

// MaskOf returns the connectivity bitmask of a junction character, or
// 0 if r is not one.
func MaskOf(r rune) int {
	return junctionToMask[r]
}

// CharForMask returns the junction glyph for a connectivity mask, or
// a space for mask 0.
func CharForMask(mask int) rune {
	if mask == 0 {
		return ' '
	}
	return maskToJunction[mask]
}

// isArrowChar reports whether r is one of the directional arrowhead
// glyphs (Unicode or ASCII) painted by the drawing step; arrows are
// never subject to junction merging — later compositing steps simply
// overwrite in drawing order.
func isArrowChar(r rune) bool {
	switch r {
	case '▲', '▼', '◄', '►', '◥', '◤', '◢', '◣',
		'^', 'v', '<', '>', '*':
		return true
	}
	return false
}

// MergeCell combines an existing canvas cell with an overlay glyph
// according to the junction algebra: a space overlay never touches
// the base; two junction characters combine by OR-ing their
// connectivity bits; anything else and the overlay simply wins. In
// ASCII mode there is no algebra at all — the overlay always wins.
func MergeCell(existing, overlay rune, useASCII bool) rune {
	if overlay == ' ' {
		return existing
	}
	if useASCII {
		return overlay
	}
	if existing == ' ' {
		return overlay
	}
	if IsJunctionChar(existing) && IsJunctionChar(overlay) {
		return CharForMask(MaskOf(existing) | MaskOf(overlay))
	}
	return overlay
}

// MergeOnto composites overlay onto base at the given offset using
// the junction algebra (or plain overwrite in ASCII mode). Overlay
// cells holding a space never touch base.
func MergeOnto(base, overlay *Canvas, offsetX, offsetY int, useASCII bool) {
	ow, oh := overlay.Size()
	if ow < 0 || oh < 0 {
		return
	}
	base.IncreaseSize(offsetX+ow, offsetY+oh)
	for x := 0; x <= ow; x++ {
		for y := 0; y <= oh; y++ {
			r := overlay.cells[x][y]
			if r == ' ' {
				continue
			}
			bx, by := offsetX+x, offsetY+y
			merged := MergeCell(base.Get(bx, by), r, useASCII)
			base.SetRune(bx, by, merged)
			if overlay.wide[x][y] {
				base.wide[bx][by] = true
			}
		}
	}
}

// MergeCanvases composites any number of overlays onto a copy of base,
// in order, at the given offset (applied to every overlay alike),
// and returns the result. base is not mutated.
func MergeCanvases(base *Canvas, offsetX, offsetY int, useASCII bool, overlays ...*Canvas) *Canvas {
	result := base.Copy()
	for _, ov := range overlays {
		if ov == nil {
			continue
		}
		MergeOnto(result, ov, offsetX, offsetY, useASCII)
	}
	return result
}

// DeambiguateUnicodeCrossings replaces every four-way crossing (┼)
// with the straight character (─ or │) that best matches how its
// neighbours actually connect to it — flowchart edges that cross on
// the canvas never logically join, so a crossing is always a
// "bridge", not a real junction. Idempotent: running it twice has the
// same effect as running it once, since no output state is ┼.
func DeambiguateUnicodeCrossings(c *Canvas) {
	maxX, maxY := c.Size()
	for x := 0; x <= maxX; x++ {
		for y := 0; y <= maxY; y++ {
			if c.cells[x][y] != '┼' {
				continue
			}
			horiz := 0
			vert := 0
			if MaskOf(c.Get(x-1, y))&bitRight != 0 {
				horiz++
			}
			if MaskOf(c.Get(x+1, y))&bitLeft != 0 {
				horiz++
			}
			if MaskOf(c.Get(x, y-1))&bitDown != 0 {
				vert++
			}
			if MaskOf(c.Get(x, y+1))&bitUp != 0 {
				vert++
			}
			if horiz >= vert {
				c.cells[x][y] = '─'
			} else {
				c.cells[x][y] = '│'
			}
		}
	}
}

// FlipVertically reverses the row order of the canvas, used to turn a
// top-to-bottom layout into a bottom-to-top one for the rare reversed
// flow directions the caller resolves before drawing.
func FlipVertically(c *Canvas) *Canvas {
	maxX, maxY := c.Size()
	out := New(maxX, maxY)
	for x := 0; x <= maxX; x++ {
		for y := 0; y <= maxY; y++ {
			out.cells[x][y] = c.cells[x][maxY-y]
			out.wide[x][y] = c.wide[x][maxY-y]
		}
	}
	return out
}
