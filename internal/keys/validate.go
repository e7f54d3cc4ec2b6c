package keys

import "errors"

// MaxShortcutKeys is four modifiers plus one action key.
const MaxShortcutKeys = 5

var (
	ErrUnknownKeyName      = errors.New("keys: unknown key name")
	ErrTooFewKeys          = errors.New("keys: shortcut needs at least two keys")
	ErrTooManyKeys         = errors.New("keys: shortcut has too many keys")
	ErrMustStartWithMod    = errors.New("keys: shortcut must start with a modifier")
	ErrRepeatedModifier    = errors.New("keys: shortcut repeats a modifier")
	ErrNoActionKey         = errors.New("keys: shortcut has no action key")
	ErrMultipleActionKeys  = errors.New("keys: shortcut has more than one action key")
	ErrDisabledAsActionKey = errors.New("keys: disable cannot be an action key")
	ErrReservedShortcut    = errors.New("keys: shortcut is reserved by the system")
	ErrActionKeyNotLast    = errors.New("keys: action key must come last")
)

// ValidateShortcut checks codes against the rules for a run-program
// shortcut. The first violation found is returned.
func ValidateShortcut(codes []uint32) error {
	if len(codes) < 2 {
		return ErrTooFewKeys
	}

	if len(codes) > MaxShortcutKeys {
		return ErrTooManyKeys
	}

	if !IsModifier(codes[0]) {
		return ErrMustStartWithMod
	}

	var s Shortcut

	actions := 0

	for _, c := range codes {
		if IsModifier(c) {
			if actions > 0 {
				return ErrActionKeyNotLast
			}

			slot, _ := s.slotFor(c)
			if *slot != ModifierDisabled {
				return ErrRepeatedModifier
			}

			s.SetKey(c)

			continue
		}

		if c == VKDisabled {
			return ErrDisabledAsActionKey
		}

		actions++
		if actions > 1 {
			return ErrMultipleActionKeys
		}

		s.ActionKey = c
	}

	if actions == 0 {
		return ErrNoActionKey
	}

	if IsReserved(s) {
		return ErrReservedShortcut
	}

	return nil
}

// IsReserved reports whether s is Win+L or Ctrl+Alt+Del, which the system
// always handles itself.
func IsReserved(s Shortcut) bool {
	winL := s.Win != ModifierDisabled && s.Ctrl == ModifierDisabled &&
		s.Alt == ModifierDisabled && s.Shift == ModifierDisabled && s.ActionKey == VKL
	ctrlAltDel := s.Win == ModifierDisabled && s.Ctrl != ModifierDisabled &&
		s.Alt != ModifierDisabled && s.Shift == ModifierDisabled && s.ActionKey == VKDelete

	return winL || ctrlAltDel
}
