package router

import "asciigraph/graph"

// determineStartAndEndDir returns the (preferred, alternative) port
// direction pairs for source and target, chosen from a fixed
// decision table keyed on the octant of the vector between the two
// node centres and the overall flowchart direction.
func determineStartAndEndDir(dir graph.FlowDirection, source, target graph.Node) (start, end [2]graph.Direction) {
	sx, sy := centre(source)
	tx, ty := centre(target)
	dx, dy := tx-sx, ty-sy

	octant := octantOf(dx, dy)

	if dir == graph.FlowLR {
		return lrTable[octant].start, lrTable[octant].end
	}
	return tdTable[octant].start, tdTable[octant].end
}

func centre(n graph.Node) (int, int) {
	minX, minY, maxX, maxY := n.Box()
	return (minX + maxX) / 2, (minY + maxY) / 2
}

// octant buckets the vector into one of eight compass directions,
// used purely to index the decision tables below.
type octant int

const (
	octE octant = iota
	octNE
	octN
	octNW
	octW
	octSW
	octS
	octSE
)

func octantOf(dx, dy int) octant {
	if dx == 0 && dy == 0 {
		return octE
	}
	// screen coordinates: +y is down.
	switch {
	case dx > 0 && dy == 0:
		return octE
	case dx > 0 && dy < 0:
		return octNE
	case dx == 0 && dy < 0:
		return octN
	case dx < 0 && dy < 0:
		return octNW
	case dx < 0 && dy == 0:
		return octW
	case dx < 0 && dy > 0:
		return octSW
	case dx == 0 && dy > 0:
		return octS
	default:
		return octSE
	}
}

type dirPair struct {
	start [2]graph.Direction
	end   [2]graph.Direction
}

// lrTable is the port decision table for left-to-right flowcharts:
// the dominant axis is horizontal, so most octants prefer Right/Left
// ports with Down/Up as the alternative.
var lrTable = map[octant]dirPair{
	octE:  {start: [2]graph.Direction{graph.Right, graph.Down}, end: [2]graph.Direction{graph.Left, graph.Up}},
	octNE: {start: [2]graph.Direction{graph.Right, graph.Up}, end: [2]graph.Direction{graph.Left, graph.Down}},
	octN:  {start: [2]graph.Direction{graph.Up, graph.Right}, end: [2]graph.Direction{graph.Down, graph.Left}},
	octNW: {start: [2]graph.Direction{graph.Left, graph.Up}, end: [2]graph.Direction{graph.Right, graph.Down}},
	octW:  {start: [2]graph.Direction{graph.Left, graph.Down}, end: [2]graph.Direction{graph.Right, graph.Up}},
	octSW: {start: [2]graph.Direction{graph.Left, graph.Down}, end: [2]graph.Direction{graph.Right, graph.Up}},
	octS:  {start: [2]graph.Direction{graph.Down, graph.Right}, end: [2]graph.Direction{graph.Up, graph.Left}},
	octSE: {start: [2]graph.Direction{graph.Right, graph.Down}, end: [2]graph.Direction{graph.Left, graph.Up}},
}

// tdTable is the mirror table for top-down flowcharts: the dominant
// axis is vertical.
var tdTable = map[octant]dirPair{
	octE:  {start: [2]graph.Direction{graph.Right, graph.Down}, end: [2]graph.Direction{graph.Left, graph.Up}},
	octNE: {start: [2]graph.Direction{graph.Up, graph.Right}, end: [2]graph.Direction{graph.Down, graph.Left}},
	octN:  {start: [2]graph.Direction{graph.Up, graph.Left}, end: [2]graph.Direction{graph.Down, graph.Right}},
	octNW: {start: [2]graph.Direction{graph.Up, graph.Left}, end: [2]graph.Direction{graph.Down, graph.Right}},
	octW:  {start: [2]graph.Direction{graph.Left, graph.Down}, end: [2]graph.Direction{graph.Right, graph.Up}},
	octSW: {start: [2]graph.Direction{graph.Down, graph.Left}, end: [2]graph.Direction{graph.Up, graph.Right}},
	octS:  {start: [2]graph.Direction{graph.Down, graph.Right}, end: [2]graph.Direction{graph.Up, graph.Left}},
	octSE: {start: [2]graph.Direction{graph.Down, graph.Right}, end: [2]graph.Direction{graph.Up, graph.Left}},
}

// selfLoopDirs returns the canned port and bend direction for a
// self-edge under the given flowchart direction: the loop exits and
// re-enters the node on the same side (port), bending twice through
// bend to form the rectangular excursion.
func selfLoopDirs(dir graph.FlowDirection) (port, bend graph.Direction) {
	if dir == graph.FlowLR {
		return graph.Right, graph.Down
	}
	return graph.Down, graph.Right
}
