package remap

import (
	"errors"
	"fmt"
	"strings"

	"keyremap/internal/diagnostic"
	"keyremap/internal/keys"
	"keyremap/internal/launch"
	"keyremap/internal/targetspec"
)

// Diagnostic codes reported by Validate.
const (
	CodeSettingsNil         = "settings_is_nil"
	CodeInvalidKeyCode      = "invalid_key_code"
	CodeMissingOriginalKeys = "missing_original_keys"
	CodeMissingTargetApp    = "missing_target_app"
	CodeTargetOverflow      = "target_overflow"
	CodeArgsUnparsable      = "args_unparsable"
	CodeDuplicateRule       = "duplicate_rule"
	CodeConflictingShortcut = "conflicting_shortcut"
	CodeMapToSameKeys       = "map_to_same_keys"
	CodeRefreshConfig       = "refresh_config"
)

var shortcutCodes = []struct {
	err  error
	code string
}{
	{keys.ErrTooFewKeys, "shortcut_too_few_keys"},
	{keys.ErrTooManyKeys, "shortcut_too_many_keys"},
	{keys.ErrMustStartWithMod, "shortcut_must_start_with_modifier"},
	{keys.ErrRepeatedModifier, "shortcut_repeated_modifier"},
	{keys.ErrNoActionKey, "shortcut_no_action_key"},
	{keys.ErrMultipleActionKeys, "shortcut_multiple_action_keys"},
	{keys.ErrDisabledAsActionKey, "shortcut_disable_as_action_key"},
	{keys.ErrReservedShortcut, "shortcut_reserved"},
	{keys.ErrActionKeyNotLast, "shortcut_action_key_not_last"},
}

// ShortcutCode maps a keys validation error to its diagnostic code.
func ShortcutCode(err error) string {
	for _, sc := range shortcutCodes {
		if errors.Is(err, sc.err) {
			return sc.code
		}
	}

	return "shortcut_invalid"
}

// Validate checks every rule of s and collects all findings.
func Validate(s *Settings) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if s == nil {
		res.AddError(CodeSettingsNil, "settings document is nil", "", "")
		return res
	}

	validateKeysRules(res, SectionInProcess, s.RemapKeys.InProcess)
	validateKeysRules(res, SectionGlobal, s.RemapShortcuts.Global)
	validateAppSpecific(res, s.RemapShortcuts.AppSpecific)
	validateRunProgram(res, s.RemapShortcuts.RunProgram)

	return res
}

func validateKeysRules(res *diagnostic.Diagnostics, section string, rules []KeysRule) {
	for i := range rules {
		label := RuleLabel(section, i)
		validateKeysRule(res, label, &rules[i], true)

		for j := range i {
			if same, _ := rules[j].Equal(&rules[i]); same {
				res.AddError(CodeDuplicateRule, "rule repeats "+RuleLabel(section, j), label, "")
				break
			}
		}
	}
}

// validateKeysRule checks the key sequences of r. newKeysRequired is false
// for run-program rules, which have no replacement keys.
func validateKeysRule(res *diagnostic.Diagnostics, label string, r *KeysRule, newKeysRequired bool) []uint32 {
	if strings.TrimSpace(r.OriginalKeys) == "" {
		res.AddError(CodeMissingOriginalKeys, "rule has no original keys", label, "originalKeys")
		return nil
	}

	orig, err := keys.ParseCodes(r.OriginalKeys)
	if err != nil {
		res.AddError(CodeInvalidKeyCode, err.Error(), label, "originalKeys")
		return nil
	}

	if !newKeysRequired {
		return orig
	}

	repl, err := keys.ParseCodes(r.NewRemapKeys)
	if err != nil {
		res.AddError(CodeInvalidKeyCode, err.Error(), label, "newRemapKeys")
		return orig
	}

	if keys.FormatCodes(orig) == keys.FormatCodes(repl) {
		res.AddWarning(CodeMapToSameKeys, "rule maps keys to themselves", label, "newRemapKeys")
	}

	return orig
}

func validateAppSpecific(res *diagnostic.Diagnostics, rules []AppRule) {
	for i := range rules {
		r := &rules[i]
		label := RuleLabel(SectionAppSpecific, i)

		validateKeysRule(res, label, &r.KeysRule, true)

		if strings.TrimSpace(r.TargetApp) == "" {
			res.AddError(CodeMissingTargetApp, "app-specific rule has no target app", label, "targetApp")
		}

		checkDuplicate(res, SectionAppSpecific, rules, i)
	}
}

func validateRunProgram(res *diagnostic.Diagnostics, rules []AppRule) {
	// canonical shortcut -> index of the first rule using it
	seen := map[string]int{}

	for i := range rules {
		r := &rules[i]
		label := RuleLabel(SectionRunProgram, i)

		codes := validateKeysRule(res, label, &r.KeysRule, false)
		if codes != nil {
			if err := keys.ValidateShortcut(codes); err != nil {
				res.AddError(ShortcutCode(err), err.Error(), label, "originalKeys")
			}
		}

		validateTarget(res, label, r.Target())

		if checkDuplicate(res, SectionRunProgram, rules, i) || codes == nil {
			continue
		}

		canon := keys.FormatCodes(keys.NewShortcut(codes).Codes())
		if j, ok := seen[canon]; ok && rules[j].TargetApp != r.TargetApp {
			res.AddError(CodeConflictingShortcut,
				fmt.Sprintf("shortcut %s already runs %q (%s)",
					keys.JoinNames(codes), rules[j].TargetAppName(), RuleLabel(SectionRunProgram, j)),
				label, "originalKeys")

			continue
		}

		seen[canon] = i
	}
}

func validateTarget(res *diagnostic.Diagnostics, label string, f targetspec.Field) {
	switch strings.TrimSpace(f.Primary()) {
	case "":
		res.AddError(CodeMissingTargetApp, "run-program rule has no program", label, "targetApp")
	case launch.RefreshConfig:
		res.AddInfo(CodeRefreshConfig, "rule reloads the settings instead of starting a program", label, "targetApp")
	}

	if extra := targetspec.Overflow(string(f)); len(extra) > 0 {
		res.AddWarning(CodeTargetOverflow,
			fmt.Sprintf("%d extra part(s) after the working directory are ignored", len(extra)),
			label, "targetApp")
	}

	if _, err := launch.SplitArgs(f.Secondary()); err != nil {
		res.AddWarning(CodeArgsUnparsable, err.Error(), label, "targetApp")
	}
}

// checkDuplicate records rules[i] as a duplicate of an earlier equal rule.
func checkDuplicate(res *diagnostic.Diagnostics, section string, rules []AppRule, i int) bool {
	for j := range i {
		if same, _ := rules[j].Equal(&rules[i]); same {
			res.AddError(CodeDuplicateRule, "rule repeats "+RuleLabel(section, j), RuleLabel(section, i), "")
			return true
		}
	}

	return false
}
