package router

import (
	"testing"

	"asciigraph/graph"
)

func TestOctantOfBucketsEightDirections(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy int
		want   octant
	}{
		{"due east", 5, 0, octE},
		{"northeast", 5, -5, octNE},
		{"due north", 0, -5, octN},
		{"northwest", -5, -5, octNW},
		{"due west", -5, 0, octW},
		{"southwest", -5, 5, octSW},
		{"due south", 0, 5, octS},
		{"southeast", 5, 5, octSE},
		{"coincident centres default east", 0, 0, octE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := octantOf(tt.dx, tt.dy); got != tt.want {
				t.Errorf("octantOf(%d,%d) = %v, want %v", tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

func TestSelfLoopDirsMatchesFlowDirection(t *testing.T) {
	port, bend := selfLoopDirs(graph.FlowLR)
	if port != graph.Right || bend != graph.Down {
		t.Errorf("LR self loop dirs = (%v,%v), want (Right,Down)", port, bend)
	}

	port, bend = selfLoopDirs(graph.FlowTD)
	if port != graph.Down || bend != graph.Right {
		t.Errorf("TD self loop dirs = (%v,%v), want (Down,Right)", port, bend)
	}
}

func TestLRAndTDTablesCoverEveryOctant(t *testing.T) {
	octants := []octant{octE, octNE, octN, octNW, octW, octSW, octS, octSE}
	for _, o := range octants {
		if _, ok := lrTable[o]; !ok {
			t.Errorf("lrTable missing entry for octant %v", o)
		}
		if _, ok := tdTable[o]; !ok {
			t.Errorf("tdTable missing entry for octant %v", o)
		}
	}
}
