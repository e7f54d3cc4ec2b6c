// Package keys parses and checks the virtual-key code sequences stored in
// remap rules.
//
// A key sequence is a ';' separated list of decimal Windows virtual-key codes,
// for example "162;160;65" for Ctrl (Left) + Shift (Left) + A. A shortcut is
// classified into four modifier slots (Win, Ctrl, Alt, Shift), each of which
// may be unset, left, right or either side, plus a single action key.
package keys
