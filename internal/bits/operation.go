package bits

import (
	"fmt"
	"strings"
)

// Operation is the bitwise transform that produces the result register.
type Operation int

const (
	OpNone Operation = iota
	OpAnd
	OpOr
	OpXor
	OpNot
	OpShiftLeft
	OpShiftRight
)

type opInfo struct {
	name, symbol string
	aliases      []string
}

var opTable = map[Operation]opInfo{
	OpNone:       {name: "NONE", symbol: ""},
	OpAnd:        {name: "AND", symbol: "&", aliases: []string{"and", "&"}},
	OpOr:         {name: "OR", symbol: "|", aliases: []string{"or", "|"}},
	OpXor:        {name: "XOR", symbol: "^", aliases: []string{"xor", "^"}},
	OpNot:        {name: "NOT", symbol: "~", aliases: []string{"not", "~"}},
	OpShiftLeft:  {name: "<<", symbol: "<<", aliases: []string{"shl", "<<", "lshift"}},
	OpShiftRight: {name: ">>", symbol: ">>", aliases: []string{"shr", ">>", "rshift"}},
}

// Operations lists the selectable variants in legend order.
func Operations() []Operation {
	return []Operation{OpAnd, OpOr, OpXor, OpNot, OpShiftLeft, OpShiftRight}
}

// Name is the label shown in the legend.
func (op Operation) Name() string {
	if info, ok := opTable[op]; ok {
		return info.name
	}
	return opTable[OpNone].name
}

// Symbol is the operator glyph shown next to the name.
func (op Operation) Symbol() string {
	return opTable[op].symbol
}

func (op Operation) String() string { return op.Name() }

// UsesOpt reports whether the opt register contributes to the result.
func (op Operation) UsesOpt() bool {
	switch op {
	case OpAnd, OpOr, OpXor:
		return true
	}
	return false
}

// Evaluate computes the result for the given operands. NOT and the shifts
// read only current; shifts always move exactly one bit. The result is not
// clamped: callers display its low 16 bits.
func Evaluate(current, opt Register, op Operation) Register {
	switch op {
	case OpAnd:
		return current & opt
	case OpOr:
		return current | opt
	case OpXor:
		return current ^ opt
	case OpNot:
		return ^current
	case OpShiftLeft:
		return current << 1
	case OpShiftRight:
		return current >> 1
	default:
		return 0
	}
}

// ParseOperation accepts a name ("and", "shl") or a symbol ("&", "<<").
func ParseOperation(s string) (Operation, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, op := range Operations() {
		for _, alias := range opTable[op].aliases {
			if alias == key {
				return op, nil
			}
		}
	}
	return OpNone, fmt.Errorf("%w: %q", ErrUnknownOperation, s)
}
