// Package router turns a laid-out graph.Edge list into concrete
// canvas paths: port selection, strict-then-widened A* retries,
// canned self-loop shapes, and the usage bookkeeping later edges must
// respect. Edges are routed in input order — this is a deliberate
// greedy per-edge strategy, not globally optimal multi-commodity
// routing.
package router

import (
	"errors"

	"github.com/charmbracelet/log"

	"asciigraph/graph"
	"asciigraph/pathfinding"
)

// ErrUnroutable is a sentinel for callers that want a Go error rather
// than a zero Result to signal that an edge stayed unrouted after
// every retry step in the schedule. Nothing in this module returns it:
// RouteEdge reports failure through Result.Routed.
var ErrUnroutable = errors.New("router: edge could not be routed within any retry bound")

// fast and full are the bounds-expansion schedules the strict retry
// loop steps through.
var fastBounds = []int{12, 24, 48}
var fullBounds = []int{12, 24, 48, 96, 192, 384}

const (
	portPenalty     = 100
	boundaryPenalty = 200
)

// Router carries the shared search context and usage tables for one
// layout attempt. Create one per attempt; edges routed through it in
// order see each other's recorded usage.
type Router struct {
	ctx    *pathfinding.Context
	usage  *pathfinding.SegmentUsage
	points *pathfinding.UsedPointSet

	stride, height int
}

// New builds a router over a grid of the given size, with all cells
// in blockedIdx marked impassable (node interiors, subgraph borders).
func New(stride, height int, blockedIdx []int) *Router {
	ctx := pathfinding.NewContext(stride, height)
	for _, idx := range blockedIdx {
		ctx.SetBlocked(idx, true)
	}
	return &Router{
		ctx:    ctx,
		usage:  pathfinding.NewSegmentUsage(),
		points: pathfinding.NewUsedPointSet(),
		stride: stride,
		height: height,
	}
}

// Result is the outcome of routing one edge.
type Result struct {
	Path     []graph.Point // merged (collinear-collapsed) path, empty if unroutable
	StartDir graph.Direction
	EndDir   graph.Direction
	Routed   bool
}

// RouteEdge routes a single edge from a source port area to a target
// port area, given the overall flowchart direction and the source and
// target node boxes (used to compute port candidates and, for
// self-edges, the canned loop shape).
func (r *Router) RouteEdge(edge graph.Edge, dir graph.FlowDirection, source, target graph.Node) Result {
	if edge.Source == edge.Target {
		return r.routeSelfLoop(edge, dir, source)
	}

	startCandidates, endCandidates := determineStartAndEndDir(dir, source, target)

	type attempt struct {
		bounds []int
		starts []graph.Direction
		ends   []graph.Direction
	}
	base := attempt{fastBounds, startCandidates[:1], endCandidates[:1]}
	expandedStart := attempt{fastBounds, expandDirections(startCandidates), endCandidates[:1]}
	expandedAll := attempt{fastBounds, expandDirections(startCandidates), expandDirections(endCandidates)}

	schedule := []attempt{
		base,
		expandedStart,
		expandedAll,
		{fullBounds, base.starts, base.ends},
		{fullBounds, expandedStart.starts, expandedStart.ends},
		{fullBounds, expandedAll.starts, expandedAll.ends},
	}

	var best *scoredPath
	for step, a := range schedule {
		for _, bound := range a.bounds {
			cand := r.tryCandidates(edge, source, target, a.starts, a.ends, bound)
			if cand != nil {
				best = cand
				break
			}
		}
		if best != nil {
			if step > 0 {
				log.Debug("routed after retry escalation", "source", edge.Source, "target", edge.Target, "step", step)
			}
			break
		}
	}

	if best == nil {
		log.Warn("edge unroutable after full retry schedule", "source", edge.Source, "target", edge.Target)
		return Result{}
	}

	r.recordUsage(best.rawPath, edge)
	merged := pathfinding.MergePathIdx(best.rawPath, r.stride)
	return Result{
		Path:     r.toPoints(merged),
		StartDir: best.startDir,
		EndDir:   best.endDir,
		Routed:   true,
	}
}

type scoredPath struct {
	rawPath  []int
	startDir graph.Direction
	endDir   graph.Direction
	cost     int
}

// tryCandidates runs strict A* over the Cartesian product of start
// and end direction candidates at one bounds step, keeping the
// cheapest successful result.
func (r *Router) tryCandidates(edge graph.Edge, source, target graph.Node, starts, ends []graph.Direction, bound int) *scoredPath {
	var best *scoredPath
	for _, sd := range starts {
		for _, ed := range ends {
			fromPt := portPoint(source, sd)
			toPt := portPoint(target, ed)
			if fromPt == toPt {
				continue // candidates collapsing to a single point are discarded
			}
			fromIdx := r.ctx.Idx(fromPt.X, fromPt.Y)
			toIdx := r.ctx.Idx(toPt.X, toPt.Y)
			bounds := r.boundsAround(fromPt, toPt, bound)

			path := r.ctx.GetPathStrict(fromIdx, toIdx, bounds, pathfinding.StrictConstraints{
				Usage:      r.usage,
				Points:     r.points,
				RouteFrom:  fromIdx,
				RouteTo:    toIdx,
				EdgeFromID: edge.Source,
				EdgeToID:   edge.Target,
			})
			if path == nil {
				continue
			}
			cost := candidateCost(path, r.stride, sd, ed)
			if best == nil || cost < best.cost {
				best = &scoredPath{rawPath: path, startDir: sd, endDir: ed, cost: cost}
			}
		}
	}
	return best
}

func candidateCost(path []int, stride int, sd, ed graph.Direction) int {
	merged := pathfinding.MergePathIdx(path, stride)
	turns := len(merged) - 2
	if turns < 0 {
		turns = 0
	}
	cost := turns + 2
	if sd.IsDiagonal() {
		cost += portPenalty
	}
	if ed.IsDiagonal() {
		cost += portPenalty
	}
	for _, idx := range []int{path[0], path[len(path)-1]} {
		x, y := idx%stride, idx/stride
		if x == 0 || y == 0 {
			cost += boundaryPenalty
		}
	}
	return cost
}

func (r *Router) boundsAround(a, b graph.Point, expand int) pathfinding.Bounds {
	minX, maxX := a.X, b.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	minX -= expand
	minY -= expand
	maxX += expand
	maxY += expand
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= r.stride {
		maxX = r.stride - 1
	}
	if maxY >= r.height {
		maxY = r.height - 1
	}
	return pathfinding.Bounds{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

func (r *Router) recordUsage(rawPath []int, edge graph.Edge) {
	r.usage.RecordPath(rawPath, r.stride, edge.Source, edge.Target)
	r.points.RecordPath(rawPath, r.stride)
}

func (r *Router) toPoints(idxPath []int) []graph.Point {
	out := make([]graph.Point, len(idxPath))
	for i, idx := range idxPath {
		x, y := idx%r.stride, idx/r.stride
		out[i] = graph.Point{X: x, Y: y}
	}
	return out
}

// expandDirections widens a (preferred, alternative) pair to the full
// candidate set, excluding diagonals, deduplicated and order-stable.
func expandDirections(base [2]graph.Direction) []graph.Direction {
	seen := map[graph.Direction]bool{}
	out := make([]graph.Direction, 0, 6)
	add := func(d graph.Direction) {
		if seen[d] {
			return
		}
		seen[d] = true
		out = append(out, d)
	}
	add(base[0])
	add(base[1])
	add(graph.Right)
	add(graph.Left)
	add(graph.Down)
	add(graph.Up)
	return out
}

func portPoint(n graph.Node, d graph.Direction) graph.Point {
	minX, minY, maxX, maxY := n.Box()
	midX := (minX + maxX) / 2
	midY := (minY + maxY) / 2
	switch d {
	case graph.Up:
		return graph.Point{X: midX, Y: minY}
	case graph.Down:
		return graph.Point{X: midX, Y: maxY}
	case graph.Left:
		return graph.Point{X: minX, Y: midY}
	case graph.Right:
		return graph.Point{X: maxX, Y: midY}
	case graph.UpperLeft:
		return graph.Point{X: minX, Y: minY}
	case graph.UpperRight:
		return graph.Point{X: maxX, Y: minY}
	case graph.LowerLeft:
		return graph.Point{X: minX, Y: maxY}
	case graph.LowerRight:
		return graph.Point{X: maxX, Y: maxY}
	default:
		return graph.Point{X: midX, Y: midY}
	}
}
