package bits

import "testing"

func TestNewFrame(t *testing.T) {
	f := NewFrame(ClampSaturate)
	if f.Current != 0 || f.Opt != 0 || f.Op != OpAnd || f.Result() != 0 {
		t.Errorf("unexpected start state: %+v result=%#x", f, uint32(f.Result()))
	}
}

func TestFrame_Apply(t *testing.T) {
	tests := []struct {
		name    string
		start   Frame
		key     Key
		current Register
		opt     Register
		op      Operation
	}{
		{"up", Frame{Current: 1}, Key{Code: KeyUp}, 2, 0, OpNone},
		{"down", Frame{Current: 2}, Key{Code: KeyDown}, 1, 0, OpNone},
		{"left", Frame{Current: 0x0101}, Key{Code: KeyLeft}, 0x0202, 0, OpNone},
		{"right", Frame{Current: 0x0101}, Key{Code: KeyRight}, 0x0080, 0, OpNone},
		{"i", Frame{Opt: 1}, RuneKey('i'), 0, 2, OpNone},
		{"k", Frame{Opt: 2}, RuneKey('k'), 0, 1, OpNone},
		{"j", Frame{Opt: 0x0101}, RuneKey('j'), 0, 0x0202, OpNone},
		{"l", Frame{Opt: 0x0101}, RuneKey('l'), 0, 0x0080, OpNone},
		{"a", Frame{Current: 3, Opt: 5, Op: OpXor}, RuneKey('a'), 3, 5, OpAnd},
		{"o", Frame{Current: 3, Opt: 5}, RuneKey('o'), 3, 5, OpOr},
		{"x", Frame{Current: 3, Opt: 5}, RuneKey('x'), 3, 5, OpXor},
		{"n", Frame{Current: 3, Opt: 5}, RuneKey('n'), 3, 5, OpNot},
		{"<", Frame{Current: 3, Opt: 5}, RuneKey('<'), 3, 5, OpShiftLeft},
		{">", Frame{Current: 3, Opt: 5}, RuneKey('>'), 3, 5, OpShiftRight},
		{"reset", Frame{Current: 3, Opt: 5, Op: OpNot}, RuneKey('r'), 0, 0, OpNot},
		{"unbound rune", Frame{Current: 3, Opt: 5, Op: OpOr}, RuneKey('z'), 3, 5, OpOr},
		{"uppercase is unbound", Frame{Current: 3, Opt: 5, Op: OpOr}, RuneKey('A'), 3, 5, OpOr},
		{"other key", Frame{Current: 3, Opt: 5, Op: OpOr}, Key{Code: KeyOther}, 3, 5, OpOr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.start
			if quit := f.Apply(tt.key); quit {
				t.Fatal("unexpected quit")
			}
			if f.Current != tt.current || f.Opt != tt.opt || f.Op != tt.op {
				t.Errorf("got {%#x %#x %s}, want {%#x %#x %s}",
					uint32(f.Current), uint32(f.Opt), f.Op, uint32(tt.current), uint32(tt.opt), tt.op)
			}
		})
	}
}

func TestFrame_QuitDoesNotMutate(t *testing.T) {
	f := Frame{Current: 0x1234, Opt: 0x00FF, Op: OpXor}
	before := f
	if !f.Apply(RuneKey('q')) {
		t.Fatal("q should quit")
	}
	if f != before {
		t.Errorf("quit mutated frame: %+v -> %+v", before, f)
	}
}

func TestFrame_Boundaries(t *testing.T) {
	tests := []struct {
		name   string
		policy ClampPolicy
		start  Register
		key    Key
		want   Register
	}{
		{"saturate inc at max", ClampSaturate, Max, Key{Code: KeyUp}, Max},
		{"saturate dec at zero", ClampSaturate, 0, Key{Code: KeyDown}, 0},
		{"saturate shl top bit", ClampSaturate, 0x8000, Key{Code: KeyLeft}, Max},
		{"saturate shl in range", ClampSaturate, 0x4000, Key{Code: KeyLeft}, 0x8000},
		{"one inc at max", ClampOne, Max, Key{Code: KeyUp}, 1},
		{"one dec at zero", ClampOne, 0, Key{Code: KeyDown}, 1},
		{"one shl top bit", ClampOne, 0x8000, Key{Code: KeyLeft}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFrame(tt.policy)
			f.Current = tt.start
			f.Apply(tt.key)
			if f.Current != tt.want {
				t.Errorf("current = %#x, want %#x", uint32(f.Current), uint32(tt.want))
			}
			if !f.Current.InRange() {
				t.Errorf("current %#x escaped 16 bits", uint32(f.Current))
			}
		})
	}
}

func TestFrame_ResultNeverStale(t *testing.T) {
	f := NewFrame(ClampSaturate)
	keys := []Key{
		{Code: KeyUp}, {Code: KeyUp}, RuneKey('i'), {Code: KeyLeft}, RuneKey('o'),
		RuneKey('j'), RuneKey('x'), {Code: KeyDown}, RuneKey('n'), RuneKey('k'),
		RuneKey('<'), {Code: KeyRight}, RuneKey('>'), RuneKey('r'), RuneKey('a'),
	}
	for i, k := range keys {
		f.Apply(k)
		if got, want := f.Result(), Evaluate(f.Current, f.Opt, f.Op); got != want {
			t.Fatalf("step %d: result %#x, want %#x", i, uint32(got), uint32(want))
		}
	}
}
