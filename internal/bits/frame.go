package bits

// KeyCode identifies the non-printable keys the visualizer reacts to.
type KeyCode int

const (
	KeyOther KeyCode = iota
	KeyRune
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// Key is one decoded input event. Rune is only meaningful for KeyRune.
type Key struct {
	Code KeyCode
	Rune rune
}

// RuneKey builds a printable key event.
func RuneKey(r rune) Key { return Key{Code: KeyRune, Rune: r} }

// Frame is the complete persistent state: both operands and the selected
// operation. Result is always derived, never stored.
type Frame struct {
	Current Register
	Opt     Register
	Op      Operation
	Policy  ClampPolicy
}

// NewFrame returns the startup state: both registers zero, AND selected.
func NewFrame(policy ClampPolicy) Frame {
	return Frame{Op: OpAnd, Policy: policy}
}

// Result evaluates the active operation against the current operands.
func (f *Frame) Result() Register {
	return Evaluate(f.Current, f.Opt, f.Op)
}

// Reset zeroes both registers and keeps the operation.
func (f *Frame) Reset() {
	f.Current, f.Opt = 0, 0
}

var opKeys = map[rune]Operation{
	'a': OpAnd,
	'o': OpOr,
	'x': OpXor,
	'n': OpNot,
	'<': OpShiftLeft,
	'>': OpShiftRight,
}

// Apply performs the single transition bound to k and reports whether the
// loop should stop. Quit leaves the frame untouched; unbound keys are no-ops.
func (f *Frame) Apply(k Key) (quit bool) {
	switch k.Code {
	case KeyUp:
		f.Current = f.Current.inc()
	case KeyDown:
		f.Current = f.Current.dec()
	case KeyLeft:
		f.Current = f.Current.shl()
	case KeyRight:
		f.Current = f.Current.shr()
	case KeyRune:
		if op, ok := opKeys[k.Rune]; ok {
			f.Op = op
			return false
		}
		switch k.Rune {
		case 'q':
			return true
		case 'r':
			f.Reset()
		case 'j':
			f.Opt = f.Opt.shl()
		case 'l':
			f.Opt = f.Opt.shr()
		case 'i':
			f.Opt = f.Opt.inc()
		case 'k':
			f.Opt = f.Opt.dec()
		}
	}
	f.clamp()
	return false
}

func (f *Frame) clamp() {
	f.Current = f.Policy.Clamp(f.Current)
	f.Opt = f.Policy.Clamp(f.Opt)
}
