package layout

import "asciigraph/graph"

// levelStep is the grid-coordinate distance between successive levels
// (and between successive siblings at the same level): each node
// reserves a 3x3 block, so 4 leaves one cell of separation.
const levelStep = 4

// assignGridCoords computes each node's logical grid coordinate:
// roots (nodes untargeted by any non-self edge) go to level 0 along
// the graph's minor axis, in increasing order; every other node's
// level is one more than that of the node a stable BFS from the roots
// first reaches it from (its shortest distance, not the longest), and
// its coordinate along the level axis is level*levelStep. margin
// shifts every coordinate uniformly, so
// the outermost ports are never pinned to axis zero.
func assignGridCoords(nodes []graph.Node, edges []graph.Edge, dir graph.FlowDirection, margin int) {
	idxOf := make(map[string]int, len(nodes))
	for i, n := range nodes {
		idxOf[n.ID] = i
	}

	incoming := make([][]int, len(nodes))
	targeted := make([]bool, len(nodes))
	for _, e := range edges {
		if e.Source == e.Target {
			continue
		}
		si, sok := idxOf[e.Source]
		ti, tok := idxOf[e.Target]
		if !sok || !tok {
			continue
		}
		incoming[ti] = append(incoming[ti], si)
		targeted[ti] = true
	}

	level := make([]int, len(nodes))
	visited := make([]bool, len(nodes))

	var roots []int
	var subgraphRoots []int
	for i, n := range nodes {
		if targeted[i] {
			continue
		}
		if n.SubgraphID != "" {
			subgraphRoots = append(subgraphRoots, i)
		} else {
			roots = append(roots, i)
		}
	}
	if len(roots) == 0 {
		roots = subgraphRoots
		subgraphRoots = nil
	}

	// External roots at level 0, subgraph-internal roots at level 1
	// (one levelStep in), so subgraph borders have room to be drawn.
	queue := make([]int, 0, len(nodes))
	for _, i := range roots {
		level[i] = 0
		visited[i] = true
		queue = append(queue, i)
	}
	for _, i := range subgraphRoots {
		level[i] = 1
		visited[i] = true
		queue = append(queue, i)
	}

	// forward adjacency for BFS propagation
	outgoing := make([][]int, len(nodes))
	for _, e := range edges {
		if e.Source == e.Target {
			continue
		}
		si, sok := idxOf[e.Source]
		ti, tok := idxOf[e.Target]
		if !sok || !tok {
			continue
		}
		outgoing[si] = append(outgoing[si], ti)
	}

	for h := 0; h < len(queue); h++ {
		cur := queue[h]
		for _, next := range outgoing[cur] {
			if visited[next] {
				continue // already leveled, possibly via a shorter path or a back edge in a cycle
			}
			level[next] = level[cur] + 1
			visited[next] = true
			queue = append(queue, next)
		}
	}
	for i := range nodes {
		if !visited[i] {
			level[i] = 0 // isolated node with no reachable root, e.g. cyclic component
		}
	}

	occupied := map[graph.GridCoord]bool{}
	minorCounter := map[int]int{}

	for i := range nodes {
		lvl := level[i]
		minor := minorCounter[lvl]
		minorCounter[lvl] = minor + levelStep

		var coord graph.GridCoord
		if dir == graph.FlowLR {
			coord = graph.GridCoord{X: lvl * levelStep, Y: minor}
		} else {
			coord = graph.GridCoord{X: minor, Y: lvl * levelStep}
		}
		coord = reserve(occupied, coord, dir)
		nodes[i].Grid = graph.GridCoord{X: coord.X + margin, Y: coord.Y + margin}
	}
}

// reserve finds a free 3x3 grid block for coord, shifting
// perpendicular to the level axis by levelStep on every collision.
func reserve(occupied map[graph.GridCoord]bool, coord graph.GridCoord, dir graph.FlowDirection) graph.GridCoord {
	for occupied[coord] {
		if dir == graph.FlowLR {
			coord.Y += levelStep
		} else {
			coord.X += levelStep
		}
	}
	occupied[coord] = true
	return coord
}
