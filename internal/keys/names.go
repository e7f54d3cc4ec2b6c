package keys

import (
	"fmt"
	"sort"
	"strings"

	"keyremap/internal/match"
)

var names = map[uint32]string{
	0x08: "Backspace",
	0x09: "Tab",
	0x0D: "Enter",
	0x13: "Pause",
	0x14: "Caps Lock",
	0x1B: "Esc",
	0x20: "Space",
	0x21: "Page Up",
	0x22: "Page Down",
	0x23: "End",
	0x24: "Home",
	0x25: "Left",
	0x26: "Up",
	0x27: "Right",
	0x28: "Down",
	0x2C: "Print Screen",
	0x2D: "Insert",
	0x2E: "Delete",
	0x5D: "Apps/Menu",
	0x90: "Num Lock",
	0x91: "Scroll Lock",
	0xBA: ";",
	0xBB: "=",
	0xBC: ",",
	0xBD: "-",
	0xBE: ".",
	0xBF: "/",
	0xC0: "`",
	0xDB: "[",
	0xDC: "\\",
	0xDD: "]",
	0xDE: "'",

	VKShift:    "Shift",
	VKControl:  "Ctrl",
	VKMenu:     "Alt",
	VKLWin:     "Win (Left)",
	VKRWin:     "Win (Right)",
	VKWinBoth:  "Win",
	VKLShift:   "Shift (Left)",
	VKRShift:   "Shift (Right)",
	VKLControl: "Ctrl (Left)",
	VKRControl: "Ctrl (Right)",
	VKLMenu:    "Alt (Left)",
	VKRMenu:    "Alt (Right)",
	VKDisabled: "Disable",
}

var byName map[string]uint32

func init() {
	for c := uint32('0'); c <= '9'; c++ {
		names[c] = string(rune(c))
	}

	for c := uint32('A'); c <= 'Z'; c++ {
		names[c] = string(rune(c))
	}

	for i := uint32(0); i < 24; i++ {
		names[0x70+i] = fmt.Sprintf("F%d", i+1)
	}

	for i := uint32(0); i < 10; i++ {
		names[0x60+i] = fmt.Sprintf("NumPad %d", i)
	}

	byName = make(map[string]uint32, len(names))
	for code, name := range names {
		byName[nameKey(name)] = code
	}
}

// Name returns the display name of code, or "VK 0xNN" when it has none.
func Name(code uint32) string {
	if n, ok := names[code]; ok {
		return n
	}

	return fmt.Sprintf("VK 0x%02X", code)
}

// Names maps codes to display names.
func Names(codes []uint32) []string {
	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = Name(c)
	}

	return out
}

// JoinNames renders codes the way the editor shows them.
func JoinNames(codes []uint32) string {
	return strings.Join(Names(codes), " + ")
}

// Lookup finds the code of a display name. Case, spaces and parentheses are
// ignored, so "ctrl left" finds "Ctrl (Left)".
func Lookup(name string) (uint32, bool) {
	code, ok := byName[nameKey(name)]
	return code, ok
}

// nameKey keeps punctuation-only names such as "-" distinct.
func nameKey(name string) string {
	if n := match.NormalizeName(name); n != "" {
		return n
	}

	return strings.TrimSpace(name)
}

// Suggest returns up to three known key names close to name.
func Suggest(name string) []string {
	all := make([]string, 0, len(names))
	for _, n := range names {
		all = append(all, n)
	}

	sort.Strings(all)

	return match.Suggest(name, all, 3)
}

// ParseNames converts display names into codes. Unknown names produce an
// error listing close matches.
func ParseNames(list []string) ([]uint32, error) {
	codes := make([]uint32, 0, len(list))

	for _, n := range list {
		code, ok := Lookup(n)
		if !ok {
			if s := Suggest(n); len(s) > 0 {
				return nil, fmt.Errorf("%w: %q (did you mean %s?)", ErrUnknownKeyName, n, strings.Join(s, ", "))
			}

			return nil, fmt.Errorf("%w: %q", ErrUnknownKeyName, n)
		}

		codes = append(codes, code)
	}

	return codes, nil
}
