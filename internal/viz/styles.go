package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/bitviz/internal/grid"
)

// Paint renders the canvas with one style span per run of equal class.
func Paint(c *grid.Canvas, styles map[grid.Class]lipgloss.Style) string {
	var b strings.Builder
	for y := 0; y < c.Height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, run := range c.Runs(y) {
			if strings.TrimSpace(run.Text) == "" {
				b.WriteString(run.Text)
				continue
			}
			style, ok := styles[run.Class]
			if !ok {
				b.WriteString(run.Text)
				continue
			}
			b.WriteString(style.Render(run.Text))
		}
	}
	return b.String()
}
