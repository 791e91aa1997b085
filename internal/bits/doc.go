// Package bits provides the state machine behind the bit visualizer.
//
// The package defines the numeric core that every frame is rebuilt from:
//
//   - [Register]: a 16-bit operand stored in a 32-bit word
//   - [Operation]: the selected bitwise transform
//   - [Frame]: both registers plus the active operation
//   - [Evaluate]: pure (current, opt, op) -> result mapping
//
// # Example
//
//	f := bits.NewFrame(bits.ClampSaturate)
//	f.Apply(bits.RuneKey('i'))
//	f.Apply(bits.Key{Code: bits.KeyUp})
//	result := f.Result()
//
// # Thread Safety
//
// Frame is owned by a single event loop and is NOT safe for concurrent use.
package bits
