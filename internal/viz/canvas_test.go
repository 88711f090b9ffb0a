package viz

import (
	"strings"
	"testing"
)

func TestCanvasSetAndClear(t *testing.T) {
	c := NewCanvas(4, 4)

	c.Set(0, 0, 1)
	if c.Grid[0][0] == 0x2800 {
		t.Error("pixel not set")
	}
	if c.Shades[0][0] != 1 {
		t.Errorf("shade %d, want 1", c.Shades[0][0])
	}

	c.Clear()
	if c.Grid[0][0] != 0x2800 || c.Shades[0][0] != 0 {
		t.Error("clear did not reset the cell")
	}
}

func TestCanvasIgnoresOutOfRange(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(-1, 0, 1)
	c.Set(0, -5, 1)
	c.Set(100, 0, 1)
	c.Set(0, 100, 1)

	for row := range c.Grid {
		for col := range c.Grid[row] {
			if c.Grid[row][col] != 0x2800 {
				t.Errorf("cell (%d,%d) was modified", row, col)
			}
		}
	}
}

func TestCanvasSubPixelPacking(t *testing.T) {
	c := NewCanvas(1, 1)
	// All 8 dots of one cell.
	for y := 0; y < 4; y++ {
		for x := 0; x < 2; x++ {
			c.Set(x, y, 2)
		}
	}
	if c.Grid[0][0] != 0x28FF {
		t.Errorf("full cell rune %#x, want 0x28FF", c.Grid[0][0])
	}
}

func TestDrawLineEndpoints(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawLine(0, 0, 19, 39, 3)

	if c.Grid[0][0] == 0x2800 {
		t.Error("line start not drawn")
	}
	if c.Grid[9][9] == 0x2800 {
		t.Error("line end not drawn")
	}
}

func TestDrawCircleStaysOnRadius(t *testing.T) {
	c := NewCanvas(20, 10)
	c.DrawCircle(20, 20, 8, 1)

	// Cardinal points of the circle.
	for _, pt := range [][2]int{{28, 20}, {12, 20}, {20, 28}, {20, 12}} {
		col, row := pt[0]/2, pt[1]/4
		if c.Grid[row][col] == 0x2800 {
			t.Errorf("circle missing point (%d,%d)", pt[0], pt[1])
		}
	}
	// Center stays empty.
	if c.Grid[5][10] != 0x2800 {
		t.Error("circle filled its center")
	}
}

func TestStringShape(t *testing.T) {
	c := NewCanvas(3, 2)
	out := c.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("%d lines, want 2", len(lines))
	}
	for _, line := range lines {
		if len([]rune(line)) != 3 {
			t.Errorf("line width %d, want 3", len([]rune(line)))
		}
	}
}

func TestRenderFallsBackWithoutPalette(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0, 99)
	out := c.Render(nil)
	if !strings.ContainsRune(out, rune(0x2800|0x1)) {
		t.Error("render dropped the lit pixel")
	}
}
