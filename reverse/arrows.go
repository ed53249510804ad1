package reverse

import (
	"github.com/charmbracelet/log"

	"asciigraph/graph"
)

// arrowGlyphs maps each arrowhead glyph to its direction of travel
// (dx, dy) — the direction the arrow points, i.e. away from its
// source.
var arrowGlyphs = map[rune][2]int{
	'▲': {0, -1}, '▼': {0, 1}, '◄': {-1, 0}, '►': {1, 0},
	'◥': {1, -1}, '◤': {-1, -1}, '◢': {1, 1}, '◣': {-1, 1},
	'^': {0, -1}, 'v': {0, 1}, '<': {-1, 0}, '>': {1, 0},
}

func isSourceMarker(r rune) bool {
	switch r {
	case '├', '┤', '┬', '┴', '┼':
		return true
	}
	return false
}

// isHeavyRune reports whether r is one of the bold straight-run
// glyphs drawEdgePath substitutes for a thick-styled edge.
func isHeavyRune(r rune) bool {
	return r == '━' || r == '┃'
}

// TracedEdge is one candidate source-to-arrow trace.
type TracedEdge struct {
	SourceBox int // index into the box slice
	TargetBox int
	PathLen   int
	Label     string
	IsSelf    bool
	Style     graph.EdgeStyle
}

// TraceArrows finds every arrowhead in the grid, computes its target
// box, and BFS-traces backward through non-whitespace non-interior
// cells to every reachable source-marker border cell, applying the
// disambiguation policy when several sources are found.
func TraceArrows(g *Grid, boxes []Box) []TracedEdge {
	edges, _ := traceArrows(g, boxes)
	return edges
}

func traceArrows(g *Grid, boxes []Box) (edges []TracedEdge, ambiguous int) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width; x++ {
			dir, ok := arrowGlyphs[g.At(x, y)]
			if !ok {
				continue
			}
			targetIdx := boxAdjacentTo(boxes, x+dir[0], y+dir[1])
			if targetIdx < 0 {
				continue
			}
			candidates, style := bfsSources(g, boxes, x, y, targetIdx)
			for i := range candidates {
				candidates[i].label = ExtractLabel(g, boxes[candidates[i].sourceBox], x, y)
			}
			if len(candidates) > 1 {
				ambiguous++
				log.Debug("multiple arrow sources traced to one target, disambiguating", "target", targetIdx, "candidates", len(candidates), "x", x, "y", y)
			}
			chosen := disambiguate(candidates, targetIdx)
			for i := range chosen {
				chosen[i].Style = style
			}
			edges = append(edges, chosen...)
		}
	}
	return edges, ambiguous
}

// boxAdjacentTo returns the index of the box whose border includes
// (x, y), or -1.
func boxAdjacentTo(boxes []Box, x, y int) int {
	for i, b := range boxes {
		if x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY {
			return i
		}
	}
	return -1
}

func inBoxInterior(boxes []Box, x, y int) (int, bool) {
	for i, b := range boxes {
		if x > b.MinX && x < b.MaxX && y > b.MinY && y < b.MaxY {
			return i, true
		}
	}
	return -1, false
}

type bfsCandidate struct {
	sourceBox int
	pathLen   int
	label     string
}

// bfsSources walks backward from the arrow tail through non-space,
// non-box-interior cells, collecting every border cell whose glyph is
// a source-marker junction, along with the shortest BFS distance to
// reach it (each candidate's label is filled in afterwards by the
// caller via ExtractLabel). It also
// reports the stroke style discovered along the way: a sighting of a
// heavy straight-run glyph marks the path thick, and bridging across
// a single blank dash-gap cell (drawEdgePath blanks every other
// non-turn cell of a dashed path) marks it dashed.
func bfsSources(g *Grid, boxes []Box, ax, ay, targetIdx int) ([]bfsCandidate, graph.EdgeStyle) {
	type state struct{ x, y int }
	start := state{ax, ay}
	dist := map[state]int{start: 0}
	queue := []state{start}
	var found []bfsCandidate
	visitedSource := map[int]bool{}
	style := graph.EdgeSolid

	for h := 0; h < len(queue); h++ {
		cur := queue[h]
		d := dist[cur]
		for _, off := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nx, ny := cur.x+off[0], cur.y+off[1]
			ns := state{nx, ny}
			if _, seen := dist[ns]; seen {
				continue
			}
			r := g.At(nx, ny)
			if isPlaceholderOrSpace(r) {
				// Bridge a single-cell dash gap: if the cell one step
				// further in the same direction is on-path, treat the
				// blank cell as traversable and mark the path dashed.
				fx, fy := nx+off[0], ny+off[1]
				fs := state{fx, fy}
				if _, seen := dist[fs]; seen {
					continue
				}
				fr := g.At(fx, fy)
				if isPlaceholderOrSpace(fr) {
					continue
				}
				if boxIdx, interior := inBoxInterior(boxes, fx, fy); interior && boxIdx != targetIdx {
					continue
				}
				style = graph.EdgeDashed
				if isSourceMarker(fr) {
					if bIdx := boxAdjacentTo(boxes, fx, fy); bIdx >= 0 && !visitedSource[bIdx] {
						visitedSource[bIdx] = true
						found = append(found, bfsCandidate{sourceBox: bIdx, pathLen: d + 2})
					}
					continue
				}
				dist[fs] = d + 2
				queue = append(queue, fs)
				continue
			}
			if isHeavyRune(r) {
				style = graph.EdgeThick
			}
			if boxIdx, interior := inBoxInterior(boxes, nx, ny); interior && boxIdx != targetIdx {
				continue
			}
			if isSourceMarker(r) {
				if bIdx := boxAdjacentTo(boxes, nx, ny); bIdx >= 0 && !visitedSource[bIdx] {
					visitedSource[bIdx] = true
					found = append(found, bfsCandidate{sourceBox: bIdx, pathLen: d + 1})
				}
				continue // border cells are accepted as terminal, not walked further
			}
			dist[ns] = d + 1
			queue = append(queue, ns)
		}
	}
	return found, style
}

func isLabelChar(r rune) bool {
	return !isHorizontalBorder(r) && !isVerticalBorder(r) && !isTopLeftCorner(r) &&
		!isTopRightCorner(r) && !isBottomLeftCorner(r) && !isBottomRightCorner(r) &&
		!isSourceMarker(r) && !isPlaceholderOrSpace(r)
}

// ExtractLabel walks the rows between a source box and an arrow head,
// from source-side toward arrow-side, and at each row tests whether
// it forms a horizontal run of label characters; returns the first
// such run found (matching the renderer's bias toward placing labels
// on the first wide path segment), or "" when no row in the band
// holds one.
func ExtractLabel(g *Grid, source Box, arrowX, arrowY int) string {
	y1, y2 := source.MaxY, arrowY
	step := 1
	if y1 > y2 {
		step = -1
	}
	var longest string
	for y := y1; ; y += step {
		run := longestLabelRun(g, y)
		if run != "" {
			return run
		}
		if len(run) > len(longest) {
			longest = run
		}
		if y == y2 {
			break
		}
	}
	if longest == "" {
		longest = longestLabelRun(g, arrowY)
	}
	return longest
}

// longestLabelRun scans one row for the longest contiguous run of
// label characters (letters, digits, punctuation — anything that
// isn't a structural border, placeholder, or space).
func longestLabelRun(g *Grid, y int) string {
	var best, cur []rune
	for x := 0; x < g.Width; x++ {
		r := g.At(x, y)
		if isLabelChar(r) {
			cur = append(cur, r)
		} else {
			if len(cur) > len(best) {
				best = cur
			}
			cur = nil
		}
	}
	if len(cur) > len(best) {
		best = cur
	}
	return trimSpaceRunes(best)
}

// disambiguate applies the multi-source policy: suppress pseudo
// self-loops when real candidates exist, emit all same-labelled
// candidates (shared end-segment fan-in), else pick shortest path
// breaking ties against self-loops.
func disambiguate(cands []bfsCandidate, targetIdx int) []TracedEdge {
	if len(cands) == 0 {
		return nil
	}
	var selfs, others []bfsCandidate
	for _, c := range cands {
		if c.sourceBox == targetIdx {
			selfs = append(selfs, c)
		} else {
			others = append(others, c)
		}
	}

	pool := cands
	if len(others) > 0 {
		minOther := others[0].pathLen
		for _, o := range others {
			if o.pathLen < minOther {
				minOther = o.pathLen
			}
		}
		pool = others
		for _, s := range selfs {
			if s.pathLen <= minOther-2 {
				pool = append(pool, s)
			}
		}
	}

	allSameLabel := len(pool) > 1
	for _, c := range pool {
		if c.label != pool[0].label {
			allSameLabel = false
			break
		}
	}
	if allSameLabel {
		out := make([]TracedEdge, len(pool))
		for i, c := range pool {
			out[i] = TracedEdge{SourceBox: c.sourceBox, TargetBox: targetIdx, PathLen: c.pathLen, Label: c.label, IsSelf: c.sourceBox == targetIdx}
		}
		return out
	}

	best := pool[0]
	for _, c := range pool[1:] {
		if c.pathLen < best.pathLen || (c.pathLen == best.pathLen && c.sourceBox != targetIdx && best.sourceBox == targetIdx) {
			best = c
		}
	}
	return []TracedEdge{{SourceBox: best.sourceBox, TargetBox: targetIdx, PathLen: best.pathLen, Label: best.label, IsSelf: best.sourceBox == targetIdx}}
}
