package config

import (
	"sort"

	"github.com/san-kum/bitviz/internal/bits"
)

// Preset is a named starting frame.
type Preset struct {
	Description string
	Current     bits.Register
	Opt         bits.Register
	Op          bits.Operation
}

// Frame returns the preset as a frame using the given clamp policy.
func (p *Preset) Frame(policy bits.ClampPolicy) bits.Frame {
	return bits.Frame{Current: p.Current, Opt: p.Opt, Op: p.Op, Policy: policy}
}

var Presets = map[string]*Preset{
	"zero": {
		Description: "startup state",
		Op:          bits.OpAnd,
	},
	"mask": {
		Description: "mask out a nibble pattern",
		Current:     0x00F0,
		Opt:         0x0F0F,
		Op:          bits.OpAnd,
	},
	"merge": {
		Description: "combine two nibble patterns",
		Current:     0x00F0,
		Opt:         0x0F0F,
		Op:          bits.OpOr,
	},
	"toggle": {
		Description: "flip the bits selected by opt",
		Current:     0x00F0,
		Opt:         0x0F0F,
		Op:          bits.OpXor,
	},
	"edges": {
		Description: "only the outermost bits set",
		Current:     0x8001,
		Opt:         0x8001,
		Op:          bits.OpAnd,
	},
	"checker": {
		Description: "alternating bits fill the word",
		Current:     0xAAAA,
		Opt:         0x5555,
		Op:          bits.OpOr,
	},
	"invert": {
		Description: "complement of the high byte",
		Current:     0xFF00,
		Op:          bits.OpNot,
	},
	"double": {
		Description: "shift left multiplies by two",
		Current:     0x0015,
		Op:          bits.OpShiftLeft,
	},
	"halve": {
		Description: "shift right divides by two",
		Current:     0x0054,
		Op:          bits.OpShiftRight,
	},
}

func GetPreset(name string) *Preset {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
