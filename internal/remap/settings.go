package remap

import "fmt"

// Section names as they appear in diagnostics.
const (
	SectionInProcess   = "inProcess"
	SectionGlobal      = "global"
	SectionAppSpecific = "appSpecific"
	SectionRunProgram  = "runProgram"
)

// Settings is the remap settings document.
type Settings struct {
	RemapKeys      KeysSection      `json:"remapKeys" yaml:"remapKeys"`
	RemapShortcuts ShortcutsSection `json:"remapShortcuts" yaml:"remapShortcuts"`
}

// KeysSection holds single-key remaps.
type KeysSection struct {
	InProcess []KeysRule `json:"inProcess" yaml:"inProcess"`
}

// ShortcutsSection holds shortcut remaps.
type ShortcutsSection struct {
	Global      []KeysRule `json:"global" yaml:"global"`
	AppSpecific []AppRule  `json:"appSpecific" yaml:"appSpecific"`
	RunProgram  []AppRule  `json:"runProgram" yaml:"runProgram"`
}

// Count returns the number of rules across all sections.
func (s *Settings) Count() int {
	if s == nil {
		return 0
	}

	return len(s.RemapKeys.InProcess) +
		len(s.RemapShortcuts.Global) +
		len(s.RemapShortcuts.AppSpecific) +
		len(s.RemapShortcuts.RunProgram)
}

// RuleLabel names the i-th rule of a section, e.g. "runProgram[2]".
func RuleLabel(section string, i int) string {
	return fmt.Sprintf("%s[%d]", section, i)
}
