// Package pathfinding implements the 4-neighbour A* search the router
// runs once per edge (and, under strict mode, once per retry). The
// search state lives in three parallel arrays reused across calls via
// a rolling stamp, so routing a diagram with hundreds of edges never
// re-zeroes the grid.
package pathfinding

import "container/heap"

// Bounds restricts a search to the axis-aligned rectangle
// [MinX,MaxX] x [MinY,MaxY], in the same coordinate space as Stride.
type Bounds struct {
	MinX, MinY, MaxX, MaxY int
}

func (b Bounds) contains(x, y int) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Context holds the reusable search arrays for one grid size. Callers
// create one Context per layout attempt and run every edge's search
// through it; NewSearch bumps the stamp instead of re-zeroing.
type Context struct {
	Stride, Height int
	blocked        []bool

	stamp     uint32
	costStamp []uint32
	costSoFar []int
	cameFrom  []int

	pq minHeap
}

// NewContext allocates a search context for a grid of the given
// stride (row width) and height (row count). Every index is
// idx = x + y*stride.
func NewContext(stride, height int) *Context {
	n := stride * height
	return &Context{
		Stride:    stride,
		Height:    height,
		blocked:   make([]bool, n),
		costStamp: make([]uint32, n),
		costSoFar: make([]int, n),
		cameFrom:  make([]int, n),
	}
}

// Idx converts grid coordinates to the parallel-array index.
func (c *Context) Idx(x, y int) int { return x + y*c.Stride }

// XY converts a parallel-array index back to grid coordinates.
func (c *Context) XY(idx int) (x, y int) { return idx % c.Stride, idx / c.Stride }

// SetBlocked marks or clears a cell as impassable to unconstrained
// and strict searches alike (node interiors, subgraph borders).
func (c *Context) SetBlocked(idx int, blocked bool) {
	c.blocked[idx] = blocked
}

// Blocked reports whether idx is impassable.
func (c *Context) Blocked(idx int) bool {
	return c.blocked[idx]
}

// newSearch advances the epoch stamp, skipping zero on wraparound
// since zero is the "never touched" sentinel in costStamp.
func (c *Context) newSearch() uint32 {
	c.stamp++
	if c.stamp == 0 {
		c.stamp = 1
	}
	return c.stamp
}

func (c *Context) touched(idx int) bool {
	return c.costStamp[idx] == c.stamp
}

func (c *Context) costAt(idx int) int {
	if c.touched(idx) {
		return c.costSoFar[idx]
	}
	return -1
}

func heuristic(ax, ay, bx, by int) int {
	dx := ax - bx
	if dx < 0 {
		dx = -dx
	}
	dy := ay - by
	if dy < 0 {
		dy = -dy
	}
	h := dx + dy
	if dx != 0 && dy != 0 {
		h++ // tie-break toward straight-line completion
	}
	return h
}

var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// GetPath runs the unconstrained search: only permanently blocked
// cells are impassable. Returns the raw index path from fromIdx to
// toIdx inclusive, or nil if bounds is exhausted without reaching the
// target.
func (c *Context) GetPath(fromIdx, toIdx int, bounds Bounds) []int {
	return c.search(fromIdx, toIdx, bounds, nil)
}

// StrictConstraints carries the segment- and point-usage tables that
// getPathStrict consults inline while expanding neighbours, plus the
// identity of the edge being routed so start/end exceptions can be
// recognised.
type StrictConstraints struct {
	Usage       *SegmentUsage
	Points      *UsedPointSet
	RouteFrom   int
	RouteTo     int
	EdgeFromID  string
	EdgeToID    string
}

// GetPathStrict runs the constrained search: in addition to blocked
// cells, a step is only permitted when it does not create a four-way
// crossing under the point-connectivity mask and does not violate
// segment-sharing rules recorded by previously routed edges.
func (c *Context) GetPathStrict(fromIdx, toIdx int, bounds Bounds, cons StrictConstraints) []int {
	return c.search(fromIdx, toIdx, bounds, &cons)
}

func (c *Context) search(fromIdx, toIdx int, bounds Bounds, cons *StrictConstraints) []int {
	stamp := c.newSearch()
	c.pq = c.pq[:0]

	fx, fy := c.XY(fromIdx)
	tx, ty := c.XY(toIdx)

	c.costSoFar[fromIdx] = 0
	c.costStamp[fromIdx] = stamp
	c.cameFrom[fromIdx] = -1
	heap.Push(&c.pq, pqEntry{idx: fromIdx, cost: 0, priority: heuristic(fx, fy, tx, ty)})

	for len(c.pq) > 0 {
		entry := heap.Pop(&c.pq).(pqEntry)
		if entry.cost != c.costAt(entry.idx) {
			continue // stale: a cheaper path to this cell was already found
		}
		if entry.idx == toIdx {
			return c.reconstruct(fromIdx, toIdx, stamp)
		}
		cx, cy := c.XY(entry.idx)
		for _, off := range neighborOffsets {
			nx, ny := cx+off[0], cy+off[1]
			if !bounds.contains(nx, ny) {
				continue
			}
			nIdx := c.Idx(nx, ny)
			if c.blocked[nIdx] && nIdx != toIdx {
				continue
			}
			if cons != nil && !c.stepAllowed(entry.idx, nIdx, cx, cy, nx, ny, cons) {
				continue
			}
			newCost := entry.cost + 1
			if !c.touched(nIdx) || newCost < c.costSoFar[nIdx] {
				c.costSoFar[nIdx] = newCost
				c.costStamp[nIdx] = stamp
				c.cameFrom[nIdx] = entry.idx
				heap.Push(&c.pq, pqEntry{idx: nIdx, cost: newCost, priority: newCost + heuristic(nx, ny, tx, ty)})
			}
		}
	}
	return nil
}

// stepAllowed implements the two inlined strict-mode rules: the
// crossing rule and the segment-sharing rule.
func (c *Context) stepAllowed(fromIdx, toIdx, fx, fy, tx, ty int, cons *StrictConstraints) bool {
	dirToBit, dirFromBit := stepBits(fx, fy, tx, ty)

	if cons.Points != nil {
		existingA := cons.Points.mask(fromIdx)
		if wouldCross(existingA, dirToBit) {
			return false
		}
		existingB := cons.Points.mask(toIdx)
		if wouldCross(existingB, dirFromBit) {
			return false
		}
	}

	if cons.Usage != nil {
		seg := SegmentKey(fromIdx, toIdx, c.Stride)
		u, ok := cons.Usage.Get(seg)
		if ok && u.Used {
			if u.UsedAsMiddle {
				return false
			}
			isStart := fromIdx == cons.RouteFrom || toIdx == cons.RouteFrom
			isEnd := fromIdx == cons.RouteTo || toIdx == cons.RouteTo
			if !isStart && !isEnd {
				return false
			}
			if isStart {
				if u.StartSourceMulti || (u.StartSource != "" && u.StartSource != cons.EdgeFromID) {
					return false
				}
			}
			if isEnd {
				if u.EndTargetMulti || (u.EndTarget != "" && u.EndTarget != cons.EdgeToID) {
					return false
				}
			}
		}
	}
	return true
}

func stepBits(fx, fy, tx, ty int) (toBit, fromBit int) {
	return StepBits(fx, fy, tx, ty)
}

// StepBits returns the connectivity bit set on the "from" cell toward
// the "to" cell, and its inverse set on the "to" cell, for a single
// grid-adjacent step.
func StepBits(fx, fy, tx, ty int) (toBit, fromBit int) {
	switch {
	case tx > fx:
		return BitRight, BitLeft
	case tx < fx:
		return BitLeft, BitRight
	case ty > fy:
		return BitDown, BitUp
	default:
		return BitUp, BitDown
	}
}

// Connectivity bits for a grid cell's 4-bit usage mask: which
// directions a drawn stroke leaves the cell in.
const (
	BitLeft  = 1
	BitRight = 2
	BitUp    = 4
	BitDown  = 8

	bitLeft  = BitLeft
	bitRight = BitRight
	bitUp    = BitUp
	bitDown  = BitDown
)

// wouldCross reports whether adding bit to existing produces both
// horizontal bits and both vertical bits set at once — a four-way
// crossing, which strict routing never introduces mid-path.
func wouldCross(existing, bit int) bool {
	return WouldCross(existing, bit)
}

// WouldCross reports whether adding bit to existing's connectivity
// mask would create a four-way crossing (both horizontal bits and
// both vertical bits set at once).
func WouldCross(existing, bit int) bool {
	combined := existing | bit
	return combined&(BitLeft|BitRight) == (BitLeft|BitRight) && combined&(BitUp|BitDown) == (BitUp|BitDown)
}

func (c *Context) reconstruct(fromIdx, toIdx int, stamp uint32) []int {
	var path []int
	for idx := toIdx; idx != -1; idx = c.cameFrom[idx] {
		path = append(path, idx)
		if idx == fromIdx {
			break
		}
	}
	// reverse in place
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// MergePathIdx collapses collinear runs in a raw index path down to
// just its endpoints and turn points.
func MergePathIdx(path []int, stride int) []int {
	if len(path) <= 2 {
		return path
	}
	out := make([]int, 0, len(path))
	out = append(out, path[0])
	prevDx, prevDy := dirOf(path[0], path[1], stride)
	for i := 1; i < len(path)-1; i++ {
		dx, dy := dirOf(path[i], path[i+1], stride)
		if dx != prevDx || dy != prevDy {
			out = append(out, path[i])
		}
		prevDx, prevDy = dx, dy
	}
	out = append(out, path[len(path)-1])
	return out
}

func dirOf(a, b, stride int) (dx, dy int) {
	ax, ay := a%stride, a/stride
	bx, by := b%stride, b/stride
	return sign(bx - ax), sign(by - ay)
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

// pqEntry is a heap element: (priority, cost) ordering with cost as
// tiebreaker so the search prefers cheaper-so-far paths on ties.
type pqEntry struct {
	idx      int
	cost     int
	priority int
}

type minHeap []pqEntry

func (h minHeap) Len() int { return len(h) }
func (h minHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].cost < h[j].cost
}
func (h minHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x any)   { *h = append(*h, x.(pqEntry)) }
func (h *minHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
