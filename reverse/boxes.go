package reverse

import "unicode"

// Box is a detected node rectangle in grid coordinates, inclusive.
type Box struct {
	MinX, MinY, MaxX, MaxY int
	Label                  string
}

func (b Box) contains(o Box) bool {
	return b.MinX <= o.MinX && b.MinY <= o.MinY && b.MaxX >= o.MaxX && b.MaxY >= o.MaxY
}

func (b Box) strictlyContains(o Box) bool {
	return b.contains(o) && b != o
}

// The renderer draws three border glyph families depending on a
// node's shape (render/box.go's glyphsFor): the default rectangle
// family, the rounded/stadium/circle family, and the double-lined
// subroutine family. Detection must recognize all three so a node
// drawn with any shape can be re-parsed.
func isTopLeftCorner(r rune) bool {
	return r == '┌' || r == '╭' || r == '╔'
}

func isTopRightCorner(r rune) bool {
	return r == '┐' || r == '╮' || r == '╗'
}

func isBottomLeftCorner(r rune) bool {
	return r == '└' || r == '╰' || r == '╚'
}

func isBottomRightCorner(r rune) bool {
	return r == '┘' || r == '╯' || r == '╝'
}

func isHorizontalBorder(r rune) bool {
	return r == '─' || r == '═'
}

func isVerticalBorder(r rune) bool {
	return r == '│' || r == '║'
}

// The border predicates also accept the tee a routed edge leaves where
// it meets a border (a source's port marker, or a target's entry
// point), so a node with edges attached is still detected.
func isTopBorder(r rune) bool {
	return isHorizontalBorder(r) || isTopLeftCorner(r) || isTopRightCorner(r) || r == '┬' || r == '┴'
}

func isBottomBorder(r rune) bool {
	return isHorizontalBorder(r) || isBottomLeftCorner(r) || isBottomRightCorner(r) || r == '┬' || r == '┴'
}

func isSideBorder(r rune) bool {
	return isVerticalBorder(r) || r == '├' || r == '┤'
}

// DetectBoxes runs all three box-detection strategies, unions the
// results, and drops any box strictly contained in another (which
// discards subgraph outer rectangles picked up incidentally).
func DetectBoxes(g *Grid) []Box {
	var all []Box
	all = append(all, topLeftAnchored(g)...)
	all = append(all, bottomUp(g)...)
	all = append(all, fixedHeight(g)...)

	all = dedupe(all)

	var out []Box
	for i, b := range all {
		contained := false
		for j, o := range all {
			if i == j {
				continue
			}
			if o.strictlyContains(b) {
				contained = true
				break
			}
		}
		if !contained && hasRealLabel(g, b) {
			out = append(out, b)
		}
	}
	return out
}

func dedupe(boxes []Box) []Box {
	seen := map[[4]int]bool{}
	var out []Box
	for _, b := range boxes {
		key := [4]int{b.MinX, b.MinY, b.MaxX, b.MaxY}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, b)
	}
	return out
}

// topLeftAnchored finds a ┌, its matching ┐ on the same row, and a
// matching └/┘ pair on a lower row, validating borders throughout.
func topLeftAnchored(g *Grid) []Box {
	var out []Box
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width; x++ {
			if !isTopLeftCorner(g.At(x, y)) {
				continue
			}
			x2 := x + 1
			for x2 < g.Width && isTopBorder(g.At(x2, y)) && !isTopRightCorner(g.At(x2, y)) {
				x2++
			}
			if x2 >= g.Width || !isTopRightCorner(g.At(x2, y)) {
				continue
			}
			for y2 := y + 1; y2 < g.Height(); y2++ {
				if !isSideBorder(g.At(x, y2)) || !isSideBorder(g.At(x2, y2)) {
					if (isBottomLeftCorner(g.At(x, y2)) || isBottomRightCorner(g.At(x, y2))) &&
						validBottomRow(g, x, x2, y2) {
						out = append(out, Box{MinX: x, MinY: y, MaxX: x2, MaxY: y2, Label: extractLabel(g, x, x2, y, y2)})
					}
					break
				}
			}
		}
	}
	return out
}

func validBottomRow(g *Grid, x1, x2, y int) bool {
	if !isBottomLeftCorner(g.At(x1, y)) || !isBottomRightCorner(g.At(x2, y)) {
		return false
	}
	for x := x1 + 1; x < x2; x++ {
		if !isBottomBorder(g.At(x, y)) {
			return false
		}
	}
	return true
}

// bottomUp finds └/┘ pairs and walks upward through side borders
// until the top is lost, handling boxes whose top border was
// overwritten by an edge label crossing over the box.
func bottomUp(g *Grid) []Box {
	var out []Box
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width; x++ {
			if !isBottomLeftCorner(g.At(x, y)) {
				continue
			}
			x2 := x + 1
			for x2 < g.Width && isBottomBorder(g.At(x2, y)) && !isBottomRightCorner(g.At(x2, y)) {
				x2++
			}
			if x2 >= g.Width || !isBottomRightCorner(g.At(x2, y)) {
				continue
			}
			top := -1
			for y2 := y - 1; y2 >= 0; y2-- {
				l, r := g.At(x, y2), g.At(x2, y2)
				if isTopLeftCorner(l) && isTopRightCorner(r) {
					top = y2
					break
				}
				if !isSideBorder(l) || !isSideBorder(r) {
					break
				}
			}
			if top >= 0 {
				out = append(out, Box{MinX: x, MinY: top, MaxX: x2, MaxY: y, Label: extractLabel(g, x, x2, top, y)})
			}
		}
	}
	return out
}

// fixedHeight assumes the renderer's default single-line label box
// height (5 rows: top, pad, label, pad, bottom) for boxes whose top
// or bottom border is entirely obscured.
func fixedHeight(g *Grid) []Box {
	var out []Box
	for y := 0; y < g.Height(); y++ {
		for x1 := 0; x1 < g.Width; x1++ {
			if !isSideBorder(g.At(x1, y)) {
				continue
			}
			for x2 := x1 + 1; x2 < g.Width; x2++ {
				if !isSideBorder(g.At(x2, y)) {
					continue
				}
				top, bot := y-2, y+2
				if top < 0 || bot >= g.Height() {
					continue
				}
				if !isSideBorder(g.At(x1, y-1)) || !isSideBorder(g.At(x2, y-1)) {
					continue
				}
				if !isSideBorder(g.At(x1, y+1)) || !isSideBorder(g.At(x2, y+1)) {
					continue
				}
				if !rowLooksLikeBorder(g, x1, x2, top, isTopBorder) {
					continue
				}
				if !rowLooksLikeBorder(g, x1, x2, bot, isBottomBorder) {
					continue
				}
				out = append(out, Box{MinX: x1, MinY: top, MaxX: x2, MaxY: bot, Label: extractLabel(g, x1, x2, top, bot)})
			}
		}
	}
	return out
}

func rowLooksLikeBorder(g *Grid, x1, x2, y int, ok func(rune) bool) bool {
	for x := x1; x <= x2; x++ {
		if !ok(g.At(x, y)) {
			return false
		}
	}
	return true
}

func extractLabel(g *Grid, x1, x2, y1, y2 int) string {
	var best string
	for y := y1 + 1; y < y2; y++ {
		var sb []rune
		for x := x1 + 1; x < x2; x++ {
			r := g.At(x, y)
			if r == placeholder {
				continue
			}
			sb = append(sb, r)
		}
		s := trimSpaceRunes(sb)
		if len(s) > len(best) {
			best = s
		}
	}
	return best
}

func trimSpaceRunes(rs []rune) string {
	start, end := 0, len(rs)
	for start < end && rs[start] == ' ' {
		start++
	}
	for end > start && rs[end-1] == ' ' {
		end--
	}
	return string(rs[start:end])
}

// hasRealLabel rejects candidates whose interior contains only
// structural characters (no letter, digit, or other identifiable
// content) — a stray box of border-adjacent noise, not a real node.
func hasRealLabel(g *Grid, b Box) bool {
	for y := b.MinY + 1; y < b.MaxY; y++ {
		for x := b.MinX + 1; x < b.MaxX; x++ {
			r := g.At(x, y)
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				return true
			}
		}
	}
	return false
}
