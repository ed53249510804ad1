package canvas

import "testing"

func TestNewCanvasIsAllSpaces(t *testing.T) {
	c := New(4, 2)
	for x := 0; x <= 4; x++ {
		for y := 0; y <= 2; y++ {
			if c.Get(x, y) != ' ' {
				t.Errorf("cell (%d,%d) = %q, want space", x, y, c.Get(x, y))
			}
		}
	}
}

func TestSetRuneAndGet(t *testing.T) {
	c := New(3, 3)
	c.SetRune(1, 1, 'X')
	if got := c.Get(1, 1); got != 'X' {
		t.Errorf("Get(1,1) = %q, want 'X'", got)
	}
}

func TestGetOutOfBoundsReturnsSpace(t *testing.T) {
	c := New(1, 1)
	if got := c.Get(-1, 0); got != ' ' {
		t.Errorf("Get(-1,0) = %q, want space", got)
	}
	if got := c.Get(5, 5); got != ' ' {
		t.Errorf("Get(5,5) = %q, want space", got)
	}
}

func TestIncreaseSizePreservesContent(t *testing.T) {
	c := New(1, 1)
	c.SetRune(0, 0, 'Z')
	c.IncreaseSize(5, 5)
	if got := c.Get(0, 0); got != 'Z' {
		t.Errorf("IncreaseSize lost existing content: Get(0,0) = %q, want 'Z'", got)
	}
	maxX, maxY := c.Size()
	if maxX < 5 || maxY < 5 {
		t.Errorf("Size() = (%d,%d), want at least (5,5)", maxX, maxY)
	}
}

func TestCopyIsIndependent(t *testing.T) {
	c := New(2, 2)
	c.SetRune(0, 0, 'A')
	dup := c.Copy()
	dup.SetRune(0, 0, 'B')
	if c.Get(0, 0) != 'A' {
		t.Errorf("mutating the copy changed the original: Get(0,0) = %q", c.Get(0, 0))
	}
}

func TestDrawTextPlacesRunesLeftToRight(t *testing.T) {
	c := New(10, 1)
	c.DrawText(1, 0, "hi")
	if c.Get(1, 0) != 'h' || c.Get(2, 0) != 'i' {
		t.Errorf("DrawText did not place runes left to right: %q %q", c.Get(1, 0), c.Get(2, 0))
	}
}
