package router

import (
	"asciigraph/graph"
	"asciigraph/pathfinding"
)

// routeSelfLoop constructs a deterministic rectangular excursion for
// a self-edge, bypassing A* entirely: step clearance cells out along
// the port direction, bend, travel clearance cells along the bend
// direction, bend back, and re-enter the same border on a second
// port offset from the first. Tries clearance 1..12 and accepts the
// first shape that genuinely leaves the box, never forms a crossing
// under the recorded point usage, and respects segment sharing.
func (r *Router) routeSelfLoop(edge graph.Edge, dir graph.FlowDirection, node graph.Node) Result {
	port, bend := selfLoopDirs(dir)

	for clearance := 1; clearance <= 12; clearance++ {
		path := buildLoopShape(node, port, bend, clearance)
		if path == nil {
			continue
		}
		if len(pathfinding.MergePathIdx(toIdxList(path, r.stride), r.stride)) < 4 {
			continue
		}
		if r.loopCrossesExisting(path) {
			continue
		}
		if !r.loopRespectsSegmentSharing(path, edge) {
			continue
		}
		rawIdx := toIdxList(path, r.stride)
		r.recordUsage(rawIdx, edge)
		merged := pathfinding.MergePathIdx(rawIdx, r.stride)
		return Result{
			Path:     r.toPoints(merged),
			StartDir: port,
			EndDir:   port,
			Routed:   true,
		}
	}
	return Result{}
}

// buildLoopShape lays out the excursion's raw unit-step path: exit
// port, out clearance cells, bend, across clearance cells, bend back
// toward the border, re-enter at a point offset from the exit port
// along the border by clearance cells so start and end differ.
func buildLoopShape(node graph.Node, port, bend graph.Direction, clearance int) []graph.Point {
	minX, minY, maxX, maxY := node.Box()
	exit := portPoint(node, port)
	pv := port.Vector()
	bv := bend.Vector()

	var pts []graph.Point
	cur := exit
	pts = append(pts, cur)
	for i := 0; i < clearance; i++ {
		cur = cur.Add(pv)
		pts = append(pts, cur)
	}
	for i := 0; i < clearance; i++ {
		cur = cur.Add(bv)
		pts = append(pts, cur)
	}
	// step back toward the border, then re-enter at an offset port
	inV := pv
	inV.X, inV.Y = -inV.X, -inV.Y
	for i := 0; i < clearance; i++ {
		cur = cur.Add(inV)
		pts = append(pts, cur)
	}
	reentry := offsetPortAlongBorder(minX, minY, maxX, maxY, port, exit, clearance)
	if reentry != cur {
		pts = append(pts, reentry)
	}
	if pts[0] == pts[len(pts)-1] {
		return nil
	}
	return pts
}

func offsetPortAlongBorder(minX, minY, maxX, maxY int, port graph.Direction, exit graph.Point, clearance int) graph.Point {
	switch port {
	case graph.Right, graph.Left:
		y := exit.Y + clearance
		if y > maxY {
			y = exit.Y - clearance
			if y < minY {
				y = exit.Y
			}
		}
		return graph.Point{X: exit.X, Y: y}
	default:
		x := exit.X + clearance
		if x > maxX {
			x = exit.X - clearance
			if x < minX {
				x = exit.X
			}
		}
		return graph.Point{X: x, Y: exit.Y}
	}
}

func toIdxList(pts []graph.Point, stride int) []int {
	out := make([]int, len(pts))
	for i, p := range pts {
		out[i] = p.X + p.Y*stride
	}
	return out
}

func (r *Router) loopCrossesExisting(path []graph.Point) bool {
	for i := 0; i < len(path)-1; i++ {
		a, b := path[i], path[i+1]
		aIdx := a.X + a.Y*r.stride
		bIdx := b.X + b.Y*r.stride
		toBit, fromBit := pathfinding.StepBits(a.X, a.Y, b.X, b.Y)
		if pathfinding.WouldCross(r.points.Mask(aIdx), toBit) {
			return true
		}
		if pathfinding.WouldCross(r.points.Mask(bIdx), fromBit) {
			return true
		}
	}
	return false
}

func (r *Router) loopRespectsSegmentSharing(path []graph.Point, edge graph.Edge) bool {
	for i := 0; i < len(path)-1; i++ {
		a, b := path[i], path[i+1]
		aIdx := a.X + a.Y*r.stride
		bIdx := b.X + b.Y*r.stride
		key := pathfinding.SegmentKey(aIdx, bIdx, r.stride)
		u, ok := r.usage.Get(key)
		if !ok || !u.Used {
			continue
		}
		if u.UsedAsMiddle {
			return false
		}
	}
	return true
}
