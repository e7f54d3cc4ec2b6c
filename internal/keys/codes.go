package keys

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Separator joins the codes of a key sequence.
const Separator = ";"

// Virtual-key codes with special meaning for shortcuts.
const (
	VKShift    uint32 = 0x10
	VKControl  uint32 = 0x11
	VKMenu     uint32 = 0x12
	VKDelete   uint32 = 0x2E
	VKL        uint32 = 0x4C
	VKLWin     uint32 = 0x5B
	VKRWin     uint32 = 0x5C
	VKLShift   uint32 = 0xA0
	VKRShift   uint32 = 0xA1
	VKLControl uint32 = 0xA2
	VKRControl uint32 = 0xA3
	VKLMenu    uint32 = 0xA4
	VKRMenu    uint32 = 0xA5

	// VKDisabled marks a key that is remapped to nothing.
	VKDisabled uint32 = 0x100
	// VKWinBoth stands for either Windows key; there is no system code for it.
	VKWinBoth uint32 = 0x104
)

// ErrInvalidKeyCode is returned for a segment that is not a decimal key code.
var ErrInvalidKeyCode = errors.New("keys: invalid key code")

// ParseCodes splits a key sequence into codes. Empty segments are skipped.
func ParseCodes(s string) ([]uint32, error) {
	var codes []uint32

	for part := range strings.SplitSeq(s, Separator) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		v, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w %q in %q", ErrInvalidKeyCode, part, s)
		}

		codes = append(codes, uint32(v))
	}

	return codes, nil
}

// FormatCodes joins codes back into a key sequence.
func FormatCodes(codes []uint32) string {
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = strconv.FormatUint(uint64(c), 10)
	}

	return strings.Join(parts, Separator)
}

// IsModifier reports whether code is one of the Win, Ctrl, Alt or Shift codes.
func IsModifier(code uint32) bool {
	switch code {
	case VKLWin, VKRWin, VKWinBoth,
		VKControl, VKLControl, VKRControl,
		VKMenu, VKLMenu, VKRMenu,
		VKShift, VKLShift, VKRShift:
		return true
	default:
		return false
	}
}
