package stitch

import "testing"

func TestFindConnectedComponentsPartitionsByEdges(t *testing.T) {
	nodeIDs := []string{"A", "B", "C", "D"}
	edges := []EdgeRef{{From: 0, To: 1}}

	components, edgeGroups := FindConnectedComponents(nodeIDs, edges)

	if len(components) != 3 {
		t.Fatalf("got %d components, want 3 (AB, C, D)", len(components))
	}
	if components[0][0] != "A" || components[0][1] != "B" {
		t.Errorf("first component = %v, want [A B]", components[0])
	}
	if len(edgeGroups[0]) != 1 {
		t.Errorf("edge group for AB = %v, want one edge index", edgeGroups[0])
	}
	if len(edgeGroups[1]) != 0 || len(edgeGroups[2]) != 0 {
		t.Errorf("isolated nodes must carry no edges: %v", edgeGroups)
	}
}

func TestFindConnectedComponentsSingleComponent(t *testing.T) {
	nodeIDs := []string{"A", "B", "C"}
	edges := []EdgeRef{{From: 0, To: 1}, {From: 1, To: 2}}

	components, _ := FindConnectedComponents(nodeIDs, edges)
	if len(components) != 1 {
		t.Fatalf("got %d components, want 1", len(components))
	}
	if len(components[0]) != 3 {
		t.Errorf("component = %v, want all 3 nodes", components[0])
	}
}

func TestStitchLayoutsTDStacksHorizontally(t *testing.T) {
	c1 := LayoutSize{Width: 5, Height: 3, Rows: []string{"11111", "11111", "11111"}}
	c2 := LayoutSize{Width: 4, Height: 2, Rows: []string{"2222", "2222"}}

	out := StitchLayouts([]LayoutSize{c1, c2}, "TD", 2)

	if out.Width != 5+2+4 {
		t.Errorf("width = %d, want %d", out.Width, 11)
	}
	if out.Height != 3 {
		t.Errorf("height = %d, want max component height 3", out.Height)
	}
}

func TestStitchLayoutsLRStacksVertically(t *testing.T) {
	c1 := LayoutSize{Width: 100, Height: 50, Rows: make([]string, 50)}
	c2 := LayoutSize{Width: 80, Height: 70, Rows: make([]string, 70)}

	out := StitchLayouts([]LayoutSize{c1, c2}, "LR", 20)

	if out.Width != 100 {
		t.Errorf("width = %d, want max component width 100", out.Width)
	}
	if out.Height != 50+70+20 {
		t.Errorf("height = %d, want %d", out.Height, 140)
	}
}

func TestStitchLayoutsPadsShortRows(t *testing.T) {
	c1 := LayoutSize{Width: 3, Height: 1, Rows: []string{"ab"}}
	out := StitchLayouts([]LayoutSize{c1}, "TD", 0)
	if out.Rows[0] != "ab " {
		t.Errorf("row = %q, want padded to width 3", out.Rows[0])
	}
}
