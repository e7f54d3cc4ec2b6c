package remap

import "keyremap/internal/common"

// Dedupe drops rules equal to an earlier rule. Order is kept.
func Dedupe(rules []AppRule) []AppRule {
	return common.UniqueFunc(rules, func(a, b AppRule) bool {
		same, _ := a.Equal(&b)
		return same
	})
}

// DedupeKeys is Dedupe for key-only rules.
func DedupeKeys(rules []KeysRule) []KeysRule {
	return common.UniqueFunc(rules, func(a, b KeysRule) bool {
		same, _ := a.Equal(&b)
		return same
	})
}

// Normalize dedupes every section of s in place and returns how many rules
// were removed.
func Normalize(s *Settings) int {
	if s == nil {
		return 0
	}

	before := s.Count()

	s.RemapKeys.InProcess = DedupeKeys(s.RemapKeys.InProcess)
	s.RemapShortcuts.Global = DedupeKeys(s.RemapShortcuts.Global)
	s.RemapShortcuts.AppSpecific = Dedupe(s.RemapShortcuts.AppSpecific)
	s.RemapShortcuts.RunProgram = Dedupe(s.RemapShortcuts.RunProgram)

	return before - s.Count()
}
