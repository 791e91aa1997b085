package grid

import (
	"fmt"
	"unicode/utf8"

	"github.com/san-kum/bitviz/internal/bits"
)

// Labels for the three rows, top to bottom.
const (
	CurrentLabel = "Current"
	OptLabel     = "Operation"
	ResultLabel  = "Result"
)

// Render rebuilds the whole screen from f. Nothing is carried over from a
// previous frame.
func Render(f *bits.Frame, g Glyphs) *Canvas {
	c := NewCanvas(ScreenWidth+1, ScreenHeight+1)
	result := f.Result()

	DrawBorder(c, g)
	DrawIntro(c)

	DrawValueBox(c, BoxRow(0), "CURRENT", f.Current)
	DrawValueBox(c, BoxRow(1), "OPT", f.Opt)
	DrawValueBox(c, BoxRow(2), "RESULT", result)

	DrawLegend(c, f.Op)

	DrawBitGrid(c, GridRow(0), CurrentLabel, f.Current)
	DrawBitGrid(c, GridRow(1), OptLabel, f.Opt)
	DrawBitGrid(c, GridRow(2), ResultLabel, result)
	return c
}

// GridRow is the top border row of the i-th bit grid.
func GridRow(i int) int { return GridTop + i*GridSpacing }

// BoxRow is the top border row of the i-th value box.
func BoxRow(i int) int { return BoxTop + i*BoxSpacing }

// CellX is the column holding the digit for grid column i.
func CellX(i int) int { return GridX + CellWidth/2 + i*CellWidth }

// DrawBitGrid draws a bordered 16-cell row starting at row top, MSB leftmost,
// with a marker in the row above for every set bit. Only the low 16 bits of v
// are shown.
func DrawBitGrid(c *Canvas, top int, label string, v bits.Register) {
	right := GridX + GridCols*CellWidth
	mid := top + CellHeight/2
	bottom := top + CellHeight

	c.HLine(GridX, right, top, '─', ClassBorder)
	c.HLine(GridX, right, bottom, '─', ClassBorder)
	for i := 1; i < GridCols; i++ {
		x := GridX + i*CellWidth
		c.Set(x, top, '┬', ClassBorder)
		c.Set(x, bottom, '┴', ClassBorder)
	}
	c.Set(GridX, top, '┌', ClassBorder)
	c.Set(right, top, '┐', ClassBorder)
	c.Set(GridX, bottom, '└', ClassBorder)
	c.Set(right, bottom, '┘', ClassBorder)

	for i := 0; i <= GridCols; i++ {
		c.Set(GridX+i*CellWidth, mid, '│', ClassBorder)
	}

	for i := 0; i < GridCols; i++ {
		x := CellX(i)
		if v.Bit(GridCols - 1 - i) {
			c.Set(x, mid, '1', ClassBitOn)
			c.Set(x, top-1, Marker, ClassMarker)
		} else {
			c.Set(x, mid, '0', ClassBitOff)
		}
	}

	c.Text(LabelX, mid, label, ClassLabel)
}

// DrawValueBox draws a BoxWidth-wide box at row top showing v in hex and
// decimal.
func DrawValueBox(c *Canvas, top int, label string, v bits.Register) {
	right := BoxX + BoxWidth
	bottom := top + BoxHeight - 1

	c.HLine(BoxX, right, top, '─', ClassBorder)
	c.HLine(BoxX, right, bottom, '─', ClassBorder)
	c.VLine(BoxX, top, bottom, '│', ClassBorder)
	c.VLine(right, top, bottom, '│', ClassBorder)
	c.Set(BoxX, top, '┌', ClassBorder)
	c.Set(right, top, '┐', ClassBorder)
	c.Set(BoxX, bottom, '└', ClassBorder)
	c.Set(right, bottom, '┘', ClassBorder)

	c.Set(BoxX+2, top, ' ', ClassPlain)
	c.Text(BoxX+3, top, label, ClassLabel)
	c.Set(BoxX+3+utf8.RuneCountInString(label), top, ' ', ClassPlain)

	c.Text(BoxX+2, top+1, "Hex     : ", ClassPlain)
	c.Text(BoxX+12, top+1, v.Hex(), ClassAccent)
	c.Text(BoxX+2, top+2, "Decimal : ", ClassPlain)
	c.Text(BoxX+12, top+2, fmt.Sprintf("%d", v.Uint16()), ClassAccent)
}

// DrawLegend draws the key binding table and the active operation line.
func DrawLegend(c *Canvas, op bits.Operation) {
	for i, line := range legendText {
		drawFramed(c, LegendX, LegendY+i, line)
	}

	c.HLine(ActiveRuleX, ActiveRuleX+activeRuleWidth-1, ActiveRuleY, '─', ClassBorder)

	x := ActiveX
	for _, part := range []struct {
		text  string
		class Class
	}{
		{"Active Opt : ", ClassPlain},
		{op.Name(), ClassAccent},
		{" | Symbol : ", ClassPlain},
		{op.Symbol(), ClassAccent},
	} {
		c.Text(x, ActiveY, part.text, part.class)
		x += utf8.RuneCountInString(part.text)
	}
}

// DrawBorder draws the outer frame, the title and the separator between the
// upper panel and the bit grids.
func DrawBorder(c *Canvas, g Glyphs) {
	c.HLine(0, ScreenWidth, TitleRow, g.Horizontal, ClassBorder)
	c.HLine(0, ScreenWidth, ScreenHeight, g.Horizontal, ClassBorder)
	c.HLine(0, ScreenWidth, SeparatorRow, g.Horizontal, ClassBorder)
	c.VLine(0, TitleRow, ScreenHeight, g.Vertical, ClassBorder)
	c.VLine(ScreenWidth, TitleRow, ScreenHeight, g.Vertical, ClassBorder)

	c.Set(0, TitleRow, g.TopLeft, ClassBorder)
	c.Set(ScreenWidth, TitleRow, g.TopRight, ClassBorder)
	c.Set(0, ScreenHeight, g.BottomLeft, ClassBorder)
	c.Set(ScreenWidth, ScreenHeight, g.BottomRight, ClassBorder)
	c.Set(0, SeparatorRow, g.LeftTee, ClassBorder)
	c.Set(ScreenWidth, SeparatorRow, g.RightTee, ClassBorder)

	x := (ScreenWidth-len(Title))/2 - 2
	c.Text(x, TitleRow, "┤ ", ClassBorder)
	c.Text(x+2, TitleRow, Title, ClassAccent)
	c.Text(x+2+len(Title), TitleRow, " ├", ClassBorder)
}

// DrawIntro writes the explanatory text under the title.
func DrawIntro(c *Canvas) {
	for i, line := range introText {
		c.Text(IntroX, IntroY+i, line, ClassPlain)
	}
}

// drawFramed writes a line whose box-drawing runes belong to the frame.
func drawFramed(c *Canvas, x, y int, line string) {
	for _, r := range line {
		class := ClassPlain
		if r >= 0x2500 && r <= 0x257F {
			class = ClassBorder
		}
		c.Set(x, y, r, class)
		x++
	}
}
