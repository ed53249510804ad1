package stitch

// LayoutSize is the drawn dimensions of one independently laid-out
// component, and its rendered rows in row-major order.
type LayoutSize struct {
	Width, Height int
	Rows          []string
}

// StitchLayouts stacks a set of independently laid-out component
// canvases into one: TD (top-down) flowcharts stack components
// horizontally left-to-right; LR (left-right) flowcharts stack
// components vertically top-to-bottom. gap is the number of blank
// columns/rows inserted between components.
func StitchLayouts(layouts []LayoutSize, direction string, gap int) LayoutSize {
	if len(layouts) == 0 {
		return LayoutSize{}
	}
	if direction == "TD" {
		return stitchHorizontal(layouts, gap)
	}
	return stitchVertical(layouts, gap)
}

func stitchHorizontal(layouts []LayoutSize, gap int) LayoutSize {
	width := 0
	height := 0
	for i, l := range layouts {
		width += l.Width
		if i > 0 {
			width += gap
		}
		if l.Height > height {
			height = l.Height
		}
	}
	rows := make([]string, height)
	for y := 0; y < height; y++ {
		row := ""
		for i, l := range layouts {
			if i > 0 {
				row += spaces(gap)
			}
			if y < len(l.Rows) {
				row += padRight(l.Rows[y], l.Width)
			} else {
				row += spaces(l.Width)
			}
		}
		rows[y] = row
	}
	return LayoutSize{Width: width, Height: height, Rows: rows}
}

func stitchVertical(layouts []LayoutSize, gap int) LayoutSize {
	width := 0
	height := 0
	for i, l := range layouts {
		if l.Width > width {
			width = l.Width
		}
		height += l.Height
		if i > 0 {
			height += gap
		}
	}
	var rows []string
	for i, l := range layouts {
		if i > 0 {
			for g := 0; g < gap; g++ {
				rows = append(rows, spaces(width))
			}
		}
		for _, r := range l.Rows {
			rows = append(rows, padRight(r, width))
		}
	}
	return LayoutSize{Width: width, Height: height, Rows: rows}
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

func padRight(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return s + spaces(width-len(runes))
}
