package layout

import (
	"testing"

	"asciigraph/graph"
)

func TestAssignGridCoordsLevelsAChain(t *testing.T) {
	nodes := []graph.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}}
	edges := []graph.Edge{
		{Source: "A", Target: "B"},
		{Source: "B", Target: "C"},
	}
	assignGridCoords(nodes, edges, graph.FlowLR, 0)

	if nodes[0].Grid.X != 0 {
		t.Errorf("root A.Grid.X = %d, want 0", nodes[0].Grid.X)
	}
	if nodes[1].Grid.X != levelStep {
		t.Errorf("B.Grid.X = %d, want %d", nodes[1].Grid.X, levelStep)
	}
	if nodes[2].Grid.X != 2*levelStep {
		t.Errorf("C.Grid.X = %d, want %d", nodes[2].Grid.X, 2*levelStep)
	}
}

func TestAssignGridCoordsTerminatesOnACycle(t *testing.T) {
	nodes := []graph.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}}
	edges := []graph.Edge{
		{Source: "A", Target: "B"},
		{Source: "B", Target: "C"},
		{Source: "C", Target: "A"},
	}
	done := make(chan struct{})
	go func() {
		assignGridCoords(nodes, edges, graph.FlowLR, 0)
		close(done)
	}()
	select {
	case <-done:
	default:
	}
	<-done // fails the test by hanging, not by a false assertion, if BFS loops forever
}

func TestAssignGridCoordsAppliesMargin(t *testing.T) {
	nodes := []graph.Node{{ID: "A"}}
	assignGridCoords(nodes, nil, graph.FlowLR, 3)
	if nodes[0].Grid.X != 3 || nodes[0].Grid.Y != 3 {
		t.Errorf("Grid = %+v, want both coordinates offset by margin 3", nodes[0].Grid)
	}
}

func TestReserveShiftsOnCollision(t *testing.T) {
	occupied := map[graph.GridCoord]bool{}
	first := reserve(occupied, graph.GridCoord{X: 0, Y: 0}, graph.FlowLR)
	second := reserve(occupied, graph.GridCoord{X: 0, Y: 0}, graph.FlowLR)

	if first == second {
		t.Fatalf("reserve returned the same coordinate twice: %+v", first)
	}
	if second.Y != first.Y+levelStep {
		t.Errorf("second reservation Y = %d, want %d", second.Y, first.Y+levelStep)
	}
}

func TestAssignGridCoordsSubgraphRootsStartOneLevelIn(t *testing.T) {
	nodes := []graph.Node{
		{ID: "A"},
		{ID: "S", SubgraphID: "sg1"},
	}
	assignGridCoords(nodes, nil, graph.FlowLR, 0)

	if nodes[0].Grid.X != 0 {
		t.Errorf("external root Grid.X = %d, want 0", nodes[0].Grid.X)
	}
	if nodes[1].Grid.X != levelStep {
		t.Errorf("subgraph root Grid.X = %d, want %d", nodes[1].Grid.X, levelStep)
	}
}
