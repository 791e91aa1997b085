// Package wave draws register values as digital timing diagrams, MSB first,
// the way a logic analyzer would show a serial shift-out of the word.
package wave

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/bitviz/internal/bits"
)

const (
	// DefaultSamplesPerBit keeps each bit wide enough to read on an 80 column
	// terminal.
	DefaultSamplesPerBit = 4

	// vertical distance between stacked signals in a timing diagram
	laneGap = 2

	// highest level in a timing diagram: the top lane's high state
	timingTop = 2*laneGap + 1
)

// Samples expands v into a square wave: samplesPerBit points per bit at
// level 0 or 1, MSB first, offset by base.
func Samples(v bits.Register, samplesPerBit int, base float64) []float64 {
	if samplesPerBit < 1 {
		samplesPerBit = 1
	}
	out := make([]float64, 0, bits.Width*samplesPerBit)
	for i := bits.Width - 1; i >= 0; i-- {
		level := base
		if v.Bit(i) {
			level++
		}
		for j := 0; j < samplesPerBit; j++ {
			out = append(out, level)
		}
	}
	return out
}

// Plot draws a single value.
func Plot(v bits.Register, samplesPerBit int) string {
	return asciigraph.Plot(Samples(v, samplesPerBit, 0),
		asciigraph.Height(1),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(1),
		asciigraph.Precision(0),
		asciigraph.Caption(fmt.Sprintf("%s  %s  %d", v.Hex(), v.Binary(), v.Uint16())),
	)
}

// Timing stacks current, opt and result of f as three lanes, result at the
// bottom. Lanes are colored only when color is set.
func Timing(f *bits.Frame, samplesPerBit int, color bool) string {
	result := f.Result()
	lanes := [][]float64{
		Samples(f.Current, samplesPerBit, 2*laneGap),
		Samples(f.Opt, samplesPerBit, laneGap),
		Samples(result, samplesPerBit, 0),
	}
	opts := []asciigraph.Option{
		asciigraph.Height(timingTop),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(timingTop),
		asciigraph.Precision(0),
		asciigraph.Caption(fmt.Sprintf("current %s %s opt %s = %s",
			f.Current.Hex(), f.Op.Symbol(), f.Opt.Hex(), result.Hex())),
	}
	if color {
		opts = append(opts, asciigraph.SeriesColors(asciigraph.Cyan, asciigraph.Yellow, asciigraph.Green))
	}
	return asciigraph.PlotMany(lanes, opts...)
}
