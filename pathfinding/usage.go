package pathfinding

// SegmentEntry records what has already used a unit segment of the
// grid, so later edges' strict searches can decide whether they are
// allowed to share it.
type SegmentEntry struct {
	Used             bool
	UsedAsMiddle     bool
	StartSource      string // edgeFromId of the latest route that used this segment as a start-step
	StartSourceMulti bool
	EndTarget        string // edgeToId of the latest route that used this segment as an end-step
	EndTargetMulti   bool
	UsedCount        int
}

// SegmentUsage is keyed by unit-segment identity: two adjacent grid
// cells collapse to one key regardless of traversal direction.
type SegmentUsage struct {
	entries map[int]*SegmentEntry
}

// NewSegmentUsage returns an empty usage table, reset at the start of
// every layout attempt.
func NewSegmentUsage() *SegmentUsage {
	return &SegmentUsage{entries: make(map[int]*SegmentEntry)}
}

// SegmentKey computes the direction-independent key for the unit
// segment between two grid-adjacent indices.
func SegmentKey(a, b, stride int) int {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	horizontal := hi-lo == 1
	key := lo * 2
	if !horizontal {
		key++
	}
	return key
}

// Get returns the entry for a segment key, if any has been recorded.
func (u *SegmentUsage) Get(key int) (SegmentEntry, bool) {
	e, ok := u.entries[key]
	if !ok {
		return SegmentEntry{}, false
	}
	return *e, true
}

func (u *SegmentUsage) entry(key int) *SegmentEntry {
	e, ok := u.entries[key]
	if !ok {
		e = &SegmentEntry{}
		u.entries[key] = e
	}
	return e
}

// RecordStart marks a segment as the first (start) step of a route.
func (u *SegmentUsage) RecordStart(key int, edgeFromID string) {
	e := u.entry(key)
	e.Used = true
	e.UsedCount++
	if e.StartSource != "" && e.StartSource != edgeFromID {
		e.StartSourceMulti = true
	}
	e.StartSource = edgeFromID
}

// RecordEnd marks a segment as the last (end) step of a route.
func (u *SegmentUsage) RecordEnd(key int, edgeToID string) {
	e := u.entry(key)
	e.Used = true
	e.UsedCount++
	if e.EndTarget != "" && e.EndTarget != edgeToID {
		e.EndTargetMulti = true
	}
	e.EndTarget = edgeToID
}

// RecordMiddle marks a segment as an interior step of a route, never
// shareable again.
func (u *SegmentUsage) RecordMiddle(key int) {
	e := u.entry(key)
	e.Used = true
	e.UsedAsMiddle = true
	e.UsedCount++
}

// RecordPath walks a raw (unmerged) index path and records every unit
// segment: first as start, last as end, all others as middle.
func (u *SegmentUsage) RecordPath(path []int, stride int, edgeFromID, edgeToID string) {
	if len(path) < 2 {
		return
	}
	for i := 0; i < len(path)-1; i++ {
		key := SegmentKey(path[i], path[i+1], stride)
		isFirst, isLast := i == 0, i == len(path)-2
		if isFirst {
			u.RecordStart(key, edgeFromID)
		}
		if isLast {
			u.RecordEnd(key, edgeToID)
		}
		if !isFirst && !isLast {
			u.RecordMiddle(key)
		}
	}
}

// UsedPointSet records, per non-blocked grid cell, the 4-bit
// connectivity mask of stroke directions that have already been
// drawn through it.
type UsedPointSet struct {
	masks map[int]int
}

// NewUsedPointSet returns an empty point-connectivity table.
func NewUsedPointSet() *UsedPointSet {
	return &UsedPointSet{masks: make(map[int]int)}
}

func (p *UsedPointSet) mask(idx int) int {
	return p.masks[idx]
}

// Mask returns the connectivity mask recorded at idx.
func (p *UsedPointSet) Mask(idx int) int {
	return p.masks[idx]
}

// AddBit ORs a single connectivity bit into idx's mask.
func (p *UsedPointSet) AddBit(idx, bit int) {
	p.masks[idx] |= bit
}

// RecordPath walks a raw index path and ORs in the connectivity bits
// for every step, on both endpoints of each unit segment.
func (p *UsedPointSet) RecordPath(path []int, stride int) {
	for i := 0; i < len(path)-1; i++ {
		a, b := path[i], path[i+1]
		ax, ay := a%stride, a/stride
		bx, by := b%stride, b/stride
		toBit, fromBit := stepBits(ax, ay, bx, by)
		p.AddBit(a, toBit)
		p.AddBit(b, fromBit)
	}
}
