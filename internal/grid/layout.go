package grid

import (
	"fmt"
	"strings"
)

// Screen geometry. The outer border occupies column ScreenWidth and row
// ScreenHeight, so a canvas is one cell larger in each direction.
const (
	ScreenWidth  = 80
	ScreenHeight = 43

	TitleRow     = 2
	SeparatorRow = 28
	IntroX       = 4
	IntroY       = 4
)

// Bit grid geometry.
const (
	GridCols    = 16
	CellWidth   = 4
	CellHeight  = 2
	GridX       = 13
	GridTop     = 31
	GridSpacing = 4
	LabelX      = 3
)

// Value box geometry.
const (
	BoxX       = 3
	BoxTop     = 11
	BoxWidth   = 26
	BoxHeight  = 4
	BoxSpacing = 5
)

// Legend geometry.
const (
	LegendX     = 41
	LegendY     = 11
	ActiveRuleX = 25
	ActiveRuleY = 26
	ActiveX     = 27
	ActiveY     = 27
)

const (
	Title  = "Bit Visualizer"
	Marker = '↓'
)

// Glyphs is the outer border glyph set.
type Glyphs struct {
	Name                    string
	Horizontal, Vertical    rune
	TopLeft, TopRight       rune
	BottomLeft, BottomRight rune
	LeftTee, RightTee       rune
}

var (
	LineGlyphs = Glyphs{
		Name:        "line",
		Horizontal:  '─',
		Vertical:    '│',
		TopLeft:     '┌',
		TopRight:    '┐',
		BottomLeft:  '└',
		BottomRight: '┘',
		LeftTee:     '├',
		RightTee:    '┤',
	}

	BlockGlyphs = Glyphs{
		Name:        "block",
		Horizontal:  '█',
		Vertical:    '█',
		TopLeft:     '█',
		TopRight:    '█',
		BottomLeft:  '█',
		BottomRight: '█',
		LeftTee:     '█',
		RightTee:    '█',
	}

	glyphSets = []Glyphs{LineGlyphs, BlockGlyphs}
)

// GetGlyphs looks a glyph set up by name.
func GetGlyphs(name string) (Glyphs, error) {
	for _, g := range glyphSets {
		if g.Name == strings.ToLower(name) {
			return g, nil
		}
	}
	return LineGlyphs, fmt.Errorf("grid: unknown border %q (available: %v)", name, GlyphNames())
}

func GlyphNames() []string {
	names := make([]string, len(glyphSets))
	for i, g := range glyphSets {
		names[i] = g.Name
	}
	return names
}

var introText = []string{
	"Imagine a 16-bit processor.",
	"Humans read decimal, base-10 (0-9). Computers work in binary, base-2 (0-1).",
	"Hexadecimal (0123456789ABCDEF) is shorthand for binary:",
	"Example: 0xF = 1111, 0xA = 1010, 0x5 = 0101",
	"",
	"One thing to remember: computers count from 0, not 1!",
}

var legendText = []string{
	"┌───────────────────────────────────┐",
	"│              CONTROLS             │",
	"├───────────┬────────────┬──────────┤",
	"│ a : AND   │ x : XOR    │ < : <<   │",
	"│ o : OR    │ n : NOT    │ > : >>   │",
	"├───────────┴─────┬──────┴──────────┤",
	"│ Left  : Curr << │ Up   : Curr ++  │",
	"│ Right : Curr >> │ Down : Curr --  │",
	"├─────────────────┼─────────────────┤",
	"│ j     : Opt <<  │ i    : Opt ++   │",
	"│ l     : Opt >>  │ k    : Opt --   │",
	"├─────────────────┼─────────────────┤",
	"│ q     : Quit    │ r    : Reset    │",
	"└─────────────────┴─────────────────┘",
}

const activeRuleWidth = 33
