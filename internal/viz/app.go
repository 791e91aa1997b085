package viz

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/bitviz/internal/bits"
	"github.com/san-kum/bitviz/internal/grid"
)

// Model holds the frame and everything needed to draw it.
type Model struct {
	frame    bits.Frame
	glyphs   grid.Glyphs
	styles   map[grid.Class]lipgloss.Style
	quitting bool
}

// NewModel starts a session from frame.
func NewModel(frame bits.Frame, glyphs grid.Glyphs, theme Theme) Model {
	return Model{
		frame:  frame,
		glyphs: glyphs,
		styles: theme.Styles(),
	}
}

// Frame returns a copy of the current frame.
func (m Model) Frame() bits.Frame { return m.frame }

func (m Model) Init() tea.Cmd { return nil }

// Update applies exactly one transition per key message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if m.frame.Apply(KeyFromTea(msg)) {
			log.Printf("quit at current=%s opt=%s op=%s", m.frame.Current.Hex(), m.frame.Opt.Hex(), m.frame.Op)
			m.quitting = true
			return m, tea.Quit
		}
		log.Printf("key %q: current=%s opt=%s op=%s result=%s",
			msg.String(), m.frame.Current.Hex(), m.frame.Opt.Hex(), m.frame.Op, m.frame.Result().Hex())
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return Paint(grid.Render(&m.frame, m.glyphs), m.styles)
}

// KeyFromTea decodes a Bubble Tea key message. Runes typed with alt held and
// pasted multi-rune input are not bound to anything.
func KeyFromTea(msg tea.KeyMsg) bits.Key {
	switch msg.Type {
	case tea.KeyUp:
		return bits.Key{Code: bits.KeyUp}
	case tea.KeyDown:
		return bits.Key{Code: bits.KeyDown}
	case tea.KeyLeft:
		return bits.Key{Code: bits.KeyLeft}
	case tea.KeyRight:
		return bits.Key{Code: bits.KeyRight}
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && !msg.Alt {
			return bits.RuneKey(msg.Runes[0])
		}
	}
	return bits.Key{Code: bits.KeyOther}
}

// Run blocks until the user quits.
func Run(frame bits.Frame, glyphs grid.Glyphs, theme Theme) error {
	log.Printf("starting bubbletea backend: clamp=%s border=%s theme=%s", frame.Policy, glyphs.Name, theme.Name)
	p := tea.NewProgram(NewModel(frame, glyphs, theme), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
