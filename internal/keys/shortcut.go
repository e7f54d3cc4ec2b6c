package keys

//go:generate go tool stringer -type=ModifierKey -trimprefix=Modifier -output=modifier_string.go

// ModifierKey says which side of a modifier a shortcut uses.
type ModifierKey int

const (
	ModifierDisabled ModifierKey = iota
	ModifierLeft
	ModifierRight
	ModifierBoth
)

// Shortcut is a key sequence classified into modifier slots and one action key.
type Shortcut struct {
	Win       ModifierKey
	Ctrl      ModifierKey
	Alt       ModifierKey
	Shift     ModifierKey
	ActionKey uint32
}

// NewShortcut builds a Shortcut from codes. Repeated keys are ignored.
func NewShortcut(codes []uint32) Shortcut {
	var s Shortcut
	for _, c := range codes {
		s.SetKey(c)
	}

	return s
}

// SetKey assigns code to its slot. It returns false when the slot already
// holds exactly that value.
func (s *Shortcut) SetKey(code uint32) bool {
	slot, side := s.slotFor(code)
	if slot == nil {
		if s.ActionKey == code {
			return false
		}

		s.ActionKey = code

		return true
	}

	if *slot == side {
		return false
	}

	*slot = side

	return true
}

func (s *Shortcut) slotFor(code uint32) (*ModifierKey, ModifierKey) {
	switch code {
	case VKWinBoth:
		return &s.Win, ModifierBoth
	case VKLWin:
		return &s.Win, ModifierLeft
	case VKRWin:
		return &s.Win, ModifierRight
	case VKControl:
		return &s.Ctrl, ModifierBoth
	case VKLControl:
		return &s.Ctrl, ModifierLeft
	case VKRControl:
		return &s.Ctrl, ModifierRight
	case VKMenu:
		return &s.Alt, ModifierBoth
	case VKLMenu:
		return &s.Alt, ModifierLeft
	case VKRMenu:
		return &s.Alt, ModifierRight
	case VKShift:
		return &s.Shift, ModifierBoth
	case VKLShift:
		return &s.Shift, ModifierLeft
	case VKRShift:
		return &s.Shift, ModifierRight
	default:
		return nil, ModifierDisabled
	}
}

// Codes returns the shortcut as codes in Win, Ctrl, Alt, Shift, action order.
func (s Shortcut) Codes() []uint32 {
	var codes []uint32

	add := func(m ModifierKey, left, right, both uint32) {
		switch m {
		case ModifierLeft:
			codes = append(codes, left)
		case ModifierRight:
			codes = append(codes, right)
		case ModifierBoth:
			codes = append(codes, both)
		}
	}

	add(s.Win, VKLWin, VKRWin, VKWinBoth)
	add(s.Ctrl, VKLControl, VKRControl, VKControl)
	add(s.Alt, VKLMenu, VKRMenu, VKMenu)
	add(s.Shift, VKLShift, VKRShift, VKShift)

	if s.ActionKey != 0 {
		codes = append(codes, s.ActionKey)
	}

	return codes
}

// String renders the shortcut with key names joined by " + ".
func (s Shortcut) String() string {
	return JoinNames(s.Codes())
}
