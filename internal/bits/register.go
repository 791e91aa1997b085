package bits

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// Width is the number of displayed bits per register.
	Width = 16

	// Max is the largest value a register holds after clamping.
	Max Register = 1<<Width - 1

	// values at or above this point came from a decrement that wrapped below 0
	underflowMark Register = 1 << 31
)

// Register is a 16-bit operand kept in a wider word so that a shift or
// increment past the top bit stays visible until Clamp runs.
type Register uint32

// Uint16 returns the low 16 bits, which is what gets displayed.
func (r Register) Uint16() uint16 { return uint16(r) }

// Bit reports whether bit i (0 = least significant) is set.
func (r Register) Bit(i int) bool {
	return r>>uint(i)&1 == 1
}

// InRange reports whether r fits in 16 bits.
func (r Register) InRange() bool { return r <= Max }

// Hex formats the displayed value as 0xNNNN.
func (r Register) Hex() string { return fmt.Sprintf("0x%04X", r.Uint16()) }

// Binary formats the displayed value as 16 binary digits, MSB first.
func (r Register) Binary() string { return fmt.Sprintf("%016b", r.Uint16()) }

func (r Register) shl() Register { return r << 1 }
func (r Register) shr() Register { return r >> 1 }
func (r Register) inc() Register { return r + 1 }
func (r Register) dec() Register { return r - 1 }

// ClampPolicy decides what an out-of-range register becomes.
type ClampPolicy int

const (
	// ClampSaturate pins overflow to Max and underflow to 0.
	ClampSaturate ClampPolicy = iota
	// ClampOne resets any out-of-range value to 1.
	ClampOne
)

var clampNames = map[ClampPolicy]string{
	ClampSaturate: "saturate",
	ClampOne:      "one",
}

func (p ClampPolicy) String() string {
	if name, ok := clampNames[p]; ok {
		return name
	}
	return fmt.Sprintf("ClampPolicy(%d)", int(p))
}

// Clamp forces r back into [0, Max].
func (p ClampPolicy) Clamp(r Register) Register {
	if r.InRange() {
		return r
	}
	switch p {
	case ClampOne:
		return 1
	default:
		if r >= underflowMark {
			return 0
		}
		return Max
	}
}

// ParseClampPolicy maps a policy name to its value.
func ParseClampPolicy(name string) (ClampPolicy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for p, n := range clampNames {
		if n == name {
			return p, nil
		}
	}
	return ClampSaturate, fmt.Errorf("%w: %q", ErrUnknownClampPolicy, name)
}

// ClampPolicyNames lists the accepted policy names.
func ClampPolicyNames() []string {
	return []string{clampNames[ClampSaturate], clampNames[ClampOne]}
}

// ParseValue reads a 16-bit literal in decimal, 0x hex, 0b binary or 0o octal.
// Underscores between digits are accepted.
func ParseValue(s string) (Register, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, Width)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidValue, s)
	}
	return Register(v), nil
}
