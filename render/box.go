package render

import (
	"asciigraph/canvas"
	"asciigraph/graph"
)

// borderGlyphs holds the four corners and two edge glyphs for one
// shape's border, in Unicode and ASCII form.
type borderGlyphs struct {
	topLeft, topRight, bottomLeft, bottomRight rune
	horizontal, vertical                       rune
}

func glyphsFor(shape graph.Shape, useASCII bool) borderGlyphs {
	if useASCII {
		return borderGlyphs{'+', '+', '+', '+', '-', '|'}
	}
	switch shape {
	case graph.ShapeRounded, graph.ShapeStadium, graph.ShapeCircle:
		return borderGlyphs{'╭', '╮', '╰', '╯', '─', '│'}
	case graph.ShapeSubroutine:
		return borderGlyphs{'╔', '╗', '╚', '╝', '═', '║'}
	default:
		return borderGlyphs{'┌', '┐', '└', '┘', '─', '│'}
	}
}

// drawNodeBox renders one node's border and centred label onto a
// fresh overlay canvas sized to its own box, positioned at (0,0) —
// the caller merges it at the node's draw coordinates.
func drawNodeBox(n graph.Node, opts Options) *canvas.Canvas {
	w, h := n.Width, n.Height
	ov := canvas.New(w-1, h-1)
	g := glyphsFor(n.Shape, opts.UseASCII)

	ov.SetRune(0, 0, g.topLeft)
	ov.SetRune(w-1, 0, g.topRight)
	ov.SetRune(0, h-1, g.bottomLeft)
	ov.SetRune(w-1, h-1, g.bottomRight)
	for x := 1; x < w-1; x++ {
		ov.SetRune(x, 0, g.horizontal)
		ov.SetRune(x, h-1, g.horizontal)
	}
	for y := 1; y < h-1; y++ {
		ov.SetRune(0, y, g.vertical)
		ov.SetRune(w-1, y, g.vertical)
	}

	if n.Label != "" {
		labelW := canvas.StringWidth(n.Label)
		startX := (w - labelW) / 2
		startY := h / 2
		if startX < 1 {
			startX = 1
		}
		ov.DrawText(startX, startY, n.Label)
	}
	return ov
}

// drawSubgraphBorder draws the bounding rectangle around every node
// belonging to sg (recursively including its children), one column
// of padding out from the tightest node bounding box.
func drawSubgraphBorder(sg *graph.Subgraph, nodes []graph.Node, opts Options) *canvas.Canvas {
	minX, minY, maxX, maxY, ok := subgraphBounds(sg, nodes)
	if !ok {
		return canvas.New(0, 0)
	}
	minX--
	minY--
	maxX++
	maxY++
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}

	ov := canvas.New(maxX, maxY)
	g := borderGlyphs{'┌', '┐', '└', '┘', '─', '│'}
	if opts.UseASCII {
		g = borderGlyphs{'+', '+', '+', '+', '-', '|'}
	}
	ov.SetRune(minX, minY, g.topLeft)
	ov.SetRune(maxX, minY, g.topRight)
	ov.SetRune(minX, maxY, g.bottomLeft)
	ov.SetRune(maxX, maxY, g.bottomRight)
	for x := minX + 1; x < maxX; x++ {
		ov.SetRune(x, minY, g.horizontal)
		ov.SetRune(x, maxY, g.horizontal)
	}
	for y := minY + 1; y < maxY; y++ {
		ov.SetRune(minX, y, g.vertical)
		ov.SetRune(maxX, y, g.vertical)
	}
	return ov
}

// drawSubgraphLabel draws the subgraph's name centred on its top
// border.
func drawSubgraphLabel(sg *graph.Subgraph, nodes []graph.Node, opts Options) *canvas.Canvas {
	if sg.Label == "" {
		return canvas.New(0, 0)
	}
	minX, minY, maxX, _, ok := subgraphBounds(sg, nodes)
	if !ok {
		return canvas.New(0, 0)
	}
	minX--
	minY--
	maxX++
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	ov := canvas.New(maxX, minY)
	labelW := canvas.StringWidth(sg.Label)
	startX := minX + 1 + ((maxX-minX-1)-labelW)/2
	if startX <= minX {
		startX = minX + 1
	}
	ov.DrawText(startX, minY, sg.Label)
	return ov
}

func subgraphBounds(sg *graph.Subgraph, nodes []graph.Node) (minX, minY, maxX, maxY int, ok bool) {
	ids := collectSubgraphNodeIDs(sg)
	if len(ids) == 0 {
		return 0, 0, 0, 0, false
	}
	first := true
	for _, n := range nodes {
		if !ids[n.ID] {
			continue
		}
		nMinX, nMinY, nMaxX, nMaxY := n.Box()
		if first {
			minX, minY, maxX, maxY = nMinX, nMinY, nMaxX, nMaxY
			first = false
			continue
		}
		if nMinX < minX {
			minX = nMinX
		}
		if nMinY < minY {
			minY = nMinY
		}
		if nMaxX > maxX {
			maxX = nMaxX
		}
		if nMaxY > maxY {
			maxY = nMaxY
		}
	}
	return minX, minY, maxX, maxY, !first
}

func collectSubgraphNodeIDs(sg *graph.Subgraph) map[string]bool {
	out := map[string]bool{}
	var walk func(s *graph.Subgraph)
	walk = func(s *graph.Subgraph) {
		for _, id := range s.NodeIDs {
			out[id] = true
		}
		for _, c := range s.Children {
			walk(c)
		}
	}
	walk(sg)
	return out
}
