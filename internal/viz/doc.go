// Package viz runs the bit visualizer on top of Bubble Tea.
//
// Each key press is one message: the model applies the bound transition to
// its frame and View rebuilds the whole screen from it. Colors come from a
// [Theme], which maps every canvas cell class to a lipgloss style.
//
// # Key Bindings
//
//	a o x n < >  - select AND, OR, XOR, NOT, <<, >>
//	Up / Down    - current + 1 / current - 1
//	Left / Right - current << 1 / current >> 1
//	i / k        - opt + 1 / opt - 1
//	j / l        - opt << 1 / opt >> 1
//	r            - reset both registers
//	q            - quit
package viz
