package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille patterns: 2x4 dots per character cell, Unicode offset 0x2800.
//	1 4
//	2 5
//	3 6
//	7 8
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a Braille pixel canvas with a per-cell shade layer. Pixels are
// addressed in sub-pixel coordinates spanning (Width*2) x (Height*4); each
// cell remembers the last shade drawn into it so edges keep their ramp
// color when the grid is rendered through lipgloss.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Shades        [][]int
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Shades: make([][]int, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Shades[i] = make([]int, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

// Set lights the sub-pixel at (x, y) with a shade index into the active
// palette. Out-of-range coordinates are dropped.
func (c *Canvas) Set(x, y, shade int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	c.Shades[row][col] = shade
}

// Clear resets all pixels and shades.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
			c.Shades[i][j] = 0
		}
	}
}

// DrawLine draws a line in the given shade using Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1, shade int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, shade)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawCircle draws a circle outline in the given shade using the midpoint
// algorithm. Radius is in sub-pixels.
func (c *Canvas) DrawCircle(cx, cy, r, shade int) {
	if r < 0 {
		return
	}
	if r == 0 {
		c.Set(cx, cy, shade)
		return
	}

	x, y := r, 0
	err := 1 - r
	for x >= y {
		c.Set(cx+x, cy+y, shade)
		c.Set(cx+y, cy+x, shade)
		c.Set(cx-y, cy+x, shade)
		c.Set(cx-x, cy+y, shade)
		c.Set(cx-x, cy-y, shade)
		c.Set(cx-y, cy-x, shade)
		c.Set(cx+y, cy-x, shade)
		c.Set(cx+x, cy-y, shade)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

// String renders the raw grid without styling. Used by tests and anywhere
// color is unwanted.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render returns the grid with each cell styled by its shade. The palette
// maps shade indices to styles; indices outside the palette fall back to
// unstyled output.
func (c *Canvas) Render(palette []lipgloss.Style) string {
	var b strings.Builder
	for row := range c.Grid {
		for col, r := range c.Grid[row] {
			shade := c.Shades[row][col]
			if r != 0x2800 && shade >= 0 && shade < len(palette) {
				b.WriteString(palette[shade].Render(string(r)))
			} else {
				b.WriteRune(r)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
