package render

import (
	"asciigraph/canvas"
	"asciigraph/graph"
)

type labelBox struct {
	minX, y, maxX int
}

func (b labelBox) overlaps(o labelBox) bool {
	if b.y != o.y {
		return false
	}
	return b.minX <= o.maxX && o.minX <= b.maxX
}

func (b labelBox) overlapsNode(n graph.Node) bool {
	minX, minY, maxX, maxY := n.Box()
	if b.y < minY || b.y > maxY {
		return false
	}
	return b.minX <= maxX && minX <= b.maxX
}

// placeLabels selects, for every labelled edge, the path segment that
// best carries its label and returns an overlay per edge painting the
// label text avoiding forbidden cells. Segments are considered in
// edge input order so later labels avoid earlier ones.
func placeLabels(base *canvas.Canvas, edges []graph.Edge, nodes []graph.Node, opts Options) []*canvas.Canvas {
	var placed []labelBox
	var overlays []*canvas.Canvas

	for i := range edges {
		e := &edges[i]
		if e.Label == "" || len(e.Path) < 2 {
			continue
		}
		labelW := canvas.StringWidth(e.Label)
		seg, ok := chooseLabelSegment(e.Path, labelW, placed, nodes)
		if !ok {
			continue
		}
		startX, y, ok := findLabelStart(base, seg, labelW, placed)
		if !ok {
			continue
		}
		box := labelBox{minX: startX, y: y, maxX: startX + labelW - 1}
		placed = append(placed, box)
		e.LabelLine = [2]graph.Point{{X: startX, Y: y}, {X: box.maxX, Y: y}}

		ov := canvas.New(box.maxX, y)
		ov.DrawText(startX, y, e.Label)
		overlays = append(overlays, ov)
	}
	return overlays
}

type pathSegment struct {
	a, b  graph.Point
	width int
}

// chooseLabelSegment picks the first segment wide enough whose
// centred box doesn't overlap a previously placed label or a node
// box; falls back to the widest non-overlapping candidate, then the
// widest segment overall.
func chooseLabelSegment(path []graph.Point, labelW int, placed []labelBox, nodes []graph.Node) (pathSegment, bool) {
	segs := horizontalSegments(path)
	if len(segs) == 0 {
		return pathSegment{}, false
	}

	fits := func(s pathSegment) bool {
		if s.width < labelW {
			return false
		}
		mid := (s.a.X + s.b.X) / 2
		startX := mid - labelW/2
		box := labelBox{minX: startX, y: s.a.Y, maxX: startX + labelW - 1}
		for _, p := range placed {
			if box.overlaps(p) {
				return false
			}
		}
		for _, n := range nodes {
			if box.overlapsNode(n) {
				return false
			}
		}
		return true
	}

	for _, s := range segs {
		if fits(s) {
			return s, true
		}
	}

	widest := segs[0]
	for _, s := range segs {
		if s.width > widest.width {
			widest = s
		}
	}
	nonOverlapping := func(s pathSegment) bool {
		mid := (s.a.X + s.b.X) / 2
		startX := mid - labelW/2
		box := labelBox{minX: startX, y: s.a.Y, maxX: startX + labelW - 1}
		for _, p := range placed {
			if box.overlaps(p) {
				return false
			}
		}
		return true
	}
	var best pathSegment
	found := false
	for _, s := range segs {
		if nonOverlapping(s) && (!found || s.width > best.width) {
			best, found = s, true
		}
	}
	if found {
		return best, true
	}
	return widest, true
}

func horizontalSegments(path []graph.Point) []pathSegment {
	var out []pathSegment
	for i := 0; i < len(path)-1; i++ {
		a, b := path[i], path[i+1]
		if a.Y != b.Y {
			continue
		}
		w := b.X - a.X
		if w < 0 {
			w = -w
			a, b = b, a
		}
		out = append(out, pathSegment{a: a, b: b, width: w + 1})
	}
	return out
}

// findLabelStart searches for a starting column near the segment's
// centre that avoids forbidden cells (arrowheads, junctions, bridge
// crossings) and other placed labels, nearest-first.
func findLabelStart(base *canvas.Canvas, seg pathSegment, labelW int, placed []labelBox) (int, int, bool) {
	maxX, _ := base.Size()
	y := seg.a.Y
	centre := (seg.a.X+seg.b.X)/2 - labelW/2

	tryStart := func(x int) bool {
		if x < 0 || x+labelW-1 > maxX {
			return false
		}
		box := labelBox{minX: x, y: y, maxX: x + labelW - 1}
		for _, p := range placed {
			if box.overlaps(p) {
				return false
			}
		}
		for dx := 0; dx < labelW; dx++ {
			if isForbiddenCell(base, x+dx, y) {
				return false
			}
		}
		return true
	}

	if seg.a.X <= centre && centre+labelW-1 <= seg.b.X && tryStart(centre) {
		return centre, y, true
	}
	for offset := 0; offset <= maxX; offset++ {
		if tryStart(centre + offset) {
			return centre + offset, y, true
		}
		if tryStart(centre - offset) {
			return centre - offset, y, true
		}
	}
	return 0, 0, false
}

// isForbiddenCell reports whether (x,y) holds an arrowhead, an ASCII
// '+' corner, or a box-drawing glyph joining a horizontal and a
// vertical stroke: a corner, a tee, or a bridge crossing, which still
// reads ┼ here because de-ambiguation runs after labels are placed.
// Only the cell's own glyph is examined, not its neighbours.
func isForbiddenCell(base *canvas.Canvas, x, y int) bool {
	r := base.Get(x, y)
	if isArrowGlyph(r) || r == '+' {
		return true
	}
	if canvas.IsJunctionChar(r) {
		mask := canvas.MaskOf(r)
		const (
			bitLeft  = 1
			bitRight = 2
			bitUp    = 4
			bitDown  = 8
		)
		h := mask&(bitLeft|bitRight) != 0
		v := mask&(bitUp|bitDown) != 0
		if h && v {
			return true // corner/tee/crossing: never write a label glyph over it
		}
	}
	return false
}

func isArrowGlyph(r rune) bool {
	switch r {
	case '▲', '▼', '◄', '►', '◥', '◤', '◢', '◣', '^', 'v', '<', '>', '*':
		return true
	}
	return false
}
