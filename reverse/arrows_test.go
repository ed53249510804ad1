package reverse

import (
	"testing"

	"asciigraph/graph"
)

func TestDisambiguatePrefersRealSourceOverPseudoSelfLoop(t *testing.T) {
	cands := []bfsCandidate{
		{sourceBox: 0, pathLen: 5, label: ""},
		{sourceBox: 1, pathLen: 3, label: "go"},
	}
	got := disambiguate(cands, 0)
	if len(got) != 1 {
		t.Fatalf("got %d edges, want 1: %+v", len(got), got)
	}
	if got[0].SourceBox != 1 || got[0].IsSelf {
		t.Errorf("chose %+v, want the non-self candidate", got[0])
	}
}

func TestDisambiguateKeepsSelfLoopWhenNoOtherCandidate(t *testing.T) {
	cands := []bfsCandidate{{sourceBox: 2, pathLen: 4, label: "retry"}}
	got := disambiguate(cands, 2)
	if len(got) != 1 || !got[0].IsSelf {
		t.Fatalf("got %+v, want a single self-loop edge", got)
	}
}

func TestDisambiguateEmitsAllCandidatesSharingALabel(t *testing.T) {
	cands := []bfsCandidate{
		{sourceBox: 0, pathLen: 3, label: "yes"},
		{sourceBox: 1, pathLen: 4, label: "yes"},
	}
	got := disambiguate(cands, 2)
	if len(got) != 2 {
		t.Fatalf("got %d edges, want 2 (shared label fan-in): %+v", len(got), got)
	}
}

func TestDisambiguateBreaksTiesOnShorterPath(t *testing.T) {
	cands := []bfsCandidate{
		{sourceBox: 0, pathLen: 6, label: "a"},
		{sourceBox: 1, pathLen: 2, label: "b"},
	}
	got := disambiguate(cands, 2)
	if len(got) != 1 || got[0].SourceBox != 1 {
		t.Fatalf("got %+v, want the shorter-path candidate (box 1)", got)
	}
}

func TestDisambiguateEmptyCandidatesReturnsNil(t *testing.T) {
	if got := disambiguate(nil, 0); got != nil {
		t.Errorf("disambiguate(nil) = %+v, want nil", got)
	}
}

func TestBfsSourcesDetectsThickStyleFromHeavyRuneSighting(t *testing.T) {
	g := BuildGrid("┤━━►")
	boxes := []Box{
		{MinX: 0, MinY: 0, MaxX: 0, MaxY: 0},
		{MinX: 4, MinY: 0, MaxX: 4, MaxY: 0},
	}
	found, style := bfsSources(g, boxes, 3, 0, 1)
	if len(found) != 1 || found[0].sourceBox != 0 {
		t.Fatalf("got %+v, want a single candidate sourced at box 0", found)
	}
	if style != graph.EdgeThick {
		t.Errorf("style = %v, want EdgeThick", style)
	}
}

func TestBfsSourcesBridgesDashGapsAndDetectsDashedStyle(t *testing.T) {
	g := BuildGrid("├ ─ ►")
	boxes := []Box{
		{MinX: 0, MinY: 0, MaxX: 0, MaxY: 0},
		{MinX: 5, MinY: 0, MaxX: 5, MaxY: 0},
	}
	found, style := bfsSources(g, boxes, 4, 0, 1)
	if len(found) != 1 || found[0].sourceBox != 0 {
		t.Fatalf("got %+v, want a single candidate sourced at box 0 traced across the dash gaps", found)
	}
	if style != graph.EdgeDashed {
		t.Errorf("style = %v, want EdgeDashed", style)
	}
}

func TestBfsSourcesDefaultsToSolidStyleWithNoSpecialGlyphs(t *testing.T) {
	g := BuildGrid("┤──►")
	boxes := []Box{
		{MinX: 0, MinY: 0, MaxX: 0, MaxY: 0},
		{MinX: 4, MinY: 0, MaxX: 4, MaxY: 0},
	}
	_, style := bfsSources(g, boxes, 3, 0, 1)
	if style != graph.EdgeSolid {
		t.Errorf("style = %v, want EdgeSolid", style)
	}
}

func TestIsHeavyRuneRecognizesBoldStraightRuns(t *testing.T) {
	if !isHeavyRune('━') || !isHeavyRune('┃') {
		t.Error("isHeavyRune should recognize both heavy box-drawing runes")
	}
	if isHeavyRune('─') || isHeavyRune('a') {
		t.Error("isHeavyRune should not recognize light borders or plain characters")
	}
}

func TestIsSourceMarkerRecognizesJunctionGlyphs(t *testing.T) {
	for _, r := range []rune{'├', '┤', '┬', '┴', '┼'} {
		if !isSourceMarker(r) {
			t.Errorf("isSourceMarker(%q) = false, want true", r)
		}
	}
	if isSourceMarker('a') {
		t.Errorf("isSourceMarker('a') = true, want false")
	}
}
