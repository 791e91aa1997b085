package grid

import "strings"

// Class tags a cell so a backend can color it without re-deriving meaning
// from the rune.
type Class uint8

const (
	ClassPlain Class = iota
	ClassBorder
	ClassLabel
	ClassBitOn
	ClassBitOff
	ClassMarker
	ClassAccent
)

// Cell is one character position on the canvas.
type Cell struct {
	Rune  rune
	Class Class
}

// Canvas is a fixed-size character grid. Writes outside it are dropped.
type Canvas struct {
	Width, Height int
	Cells         [][]Cell
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Cells:  make([][]Cell, h),
	}
	for y := range c.Cells {
		c.Cells[y] = make([]Cell, w)
	}
	c.Clear()
	return c
}

// Clear blanks every cell.
func (c *Canvas) Clear() {
	for y := range c.Cells {
		for x := range c.Cells[y] {
			c.Cells[y][x] = Cell{Rune: ' '}
		}
	}
}

func (c *Canvas) Set(x, y int, r rune, class Class) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return
	}
	c.Cells[y][x] = Cell{Rune: r, Class: class}
}

// At returns the cell at (x, y), or a blank cell when out of bounds.
func (c *Canvas) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return Cell{Rune: ' '}
	}
	return c.Cells[y][x]
}

// Text writes s starting at (x, y), one cell per rune.
func (c *Canvas) Text(x, y int, s string, class Class) {
	for _, r := range s {
		c.Set(x, y, r, class)
		x++
	}
}

// HLine repeats r across [x0, x1].
func (c *Canvas) HLine(x0, x1, y int, r rune, class Class) {
	for x := x0; x <= x1; x++ {
		c.Set(x, y, r, class)
	}
}

// VLine repeats r down [y0, y1].
func (c *Canvas) VLine(x, y0, y1 int, r rune, class Class) {
	for y := y0; y <= y1; y++ {
		c.Set(x, y, r, class)
	}
}

// Row returns line y as plain text with trailing blanks removed.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.Height {
		return ""
	}
	var b strings.Builder
	for _, cell := range c.Cells[y] {
		b.WriteRune(cell.Rune)
	}
	return strings.TrimRight(b.String(), " ")
}

// String renders the whole canvas as plain text.
func (c *Canvas) String() string {
	rows := make([]string, c.Height)
	for y := range rows {
		rows[y] = c.Row(y)
	}
	return strings.Join(rows, "\n")
}

// Runs splits row y into maximal spans of equal class, which is what a
// styling backend needs to emit one escape sequence per span.
func (c *Canvas) Runs(y int) []Run {
	if y < 0 || y >= c.Height || c.Width == 0 {
		return nil
	}
	var runs []Run
	row := c.Cells[y]
	start := 0
	for x := 1; x <= len(row); x++ {
		if x == len(row) || row[x].Class != row[start].Class {
			var b strings.Builder
			for _, cell := range row[start:x] {
				b.WriteRune(cell.Rune)
			}
			runs = append(runs, Run{Text: b.String(), Class: row[start].Class})
			start = x
		}
	}
	return runs
}

// Run is a horizontal span of cells sharing a class.
type Run struct {
	Text  string
	Class Class
}
