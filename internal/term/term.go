// Package term runs the bit visualizer directly on a tcell screen with an
// explicit blocking event loop.
package term

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/san-kum/bitviz/internal/bits"
	"github.com/san-kum/bitviz/internal/grid"
	"github.com/san-kum/bitviz/internal/viz"
)

// Backend owns the screen and the frame for the lifetime of one session.
type Backend struct {
	screen tcell.Screen
	frame  bits.Frame
	glyphs grid.Glyphs
	styles map[grid.Class]tcell.Style
}

// New wraps an initialized screen and starts from frame.
func New(screen tcell.Screen, frame bits.Frame, glyphs grid.Glyphs, theme viz.Theme) *Backend {
	return &Backend{
		screen: screen,
		frame:  frame,
		glyphs: glyphs,
		styles: Styles(theme),
	}
}

// Frame returns a copy of the current frame.
func (b *Backend) Frame() bits.Frame { return b.frame }

// Draw repaints every cell from the current frame and presents it.
func (b *Backend) Draw() {
	c := grid.Render(&b.frame, b.glyphs)
	b.screen.Clear()
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			cell := c.At(x, y)
			b.screen.SetContent(x, y, cell.Rune, nil, b.styles[cell.Class])
		}
	}
	b.screen.Show()
}

// Loop draws, then blocks for one event, until quit or the screen closes.
func (b *Backend) Loop() {
	for {
		b.Draw()

		ev := b.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				return
			}
			if b.frame.Apply(KeyFromTcell(ev)) {
				log.Printf("quit at current=%s opt=%s op=%s", b.frame.Current.Hex(), b.frame.Opt.Hex(), b.frame.Op)
				return
			}
			log.Printf("key %q: current=%s opt=%s op=%s result=%s",
				ev.Name(), b.frame.Current.Hex(), b.frame.Opt.Hex(), b.frame.Op, b.frame.Result().Hex())
		case *tcell.EventResize:
			b.screen.Sync()
		}
	}
}

// KeyFromTcell decodes a tcell key event. Runes with ctrl or alt held are
// not bound to anything.
func KeyFromTcell(ev *tcell.EventKey) bits.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return bits.Key{Code: bits.KeyUp}
	case tcell.KeyDown:
		return bits.Key{Code: bits.KeyDown}
	case tcell.KeyLeft:
		return bits.Key{Code: bits.KeyLeft}
	case tcell.KeyRight:
		return bits.Key{Code: bits.KeyRight}
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) == 0 {
			return bits.RuneKey(ev.Rune())
		}
	}
	return bits.Key{Code: bits.KeyOther}
}

// Styles converts a theme's lipgloss colors into tcell styles.
func Styles(t viz.Theme) map[grid.Class]tcell.Style {
	fg := func(c string) tcell.Style { return tcell.StyleDefault.Foreground(tcell.GetColor(c)) }
	return map[grid.Class]tcell.Style{
		grid.ClassPlain:  fg(string(t.Text)),
		grid.ClassBorder: fg(string(t.Secondary)),
		grid.ClassLabel:  fg(string(t.Primary)).Bold(true),
		grid.ClassBitOn:  fg(string(t.Success)).Bold(true),
		grid.ClassBitOff: fg(string(t.Muted)),
		grid.ClassMarker: fg(string(t.Warning)),
		grid.ClassAccent: fg(string(t.Accent)).Bold(true),
	}
}

// Run opens the terminal, runs the loop and restores the terminal.
func Run(frame bits.Frame, glyphs grid.Glyphs, theme viz.Theme) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	log.Printf("starting tcell backend: clamp=%s border=%s theme=%s", frame.Policy, glyphs.Name, theme.Name)
	New(screen, frame, glyphs, theme).Loop()
	return nil
}
