package remap

import (
	"strconv"
	"strings"

	"keyremap/internal/keys"
	"keyremap/internal/targetspec"
)

// KeysRule maps an original key sequence to a new one.
type KeysRule struct {
	OriginalKeys string `json:"originalKeys" yaml:"originalKeys"`
	NewRemapKeys string `json:"newRemapKeys" yaml:"newRemapKeys,omitempty"`
}

// MappedOriginalKeys returns display names for the original keys.
func (r KeysRule) MappedOriginalKeys() []string {
	return mappedNames(r.OriginalKeys)
}

// MappedNewRemapKeys returns display names for the new keys.
func (r KeysRule) MappedNewRemapKeys() []string {
	return mappedNames(r.NewRemapKeys)
}

// Equal compares both key sequences byte for byte.
func (r *KeysRule) Equal(other *KeysRule) (bool, error) {
	if r == nil || other == nil {
		return false, ErrNilRule
	}

	return r.OriginalKeys == other.OriginalKeys &&
		r.NewRemapKeys == other.NewRemapKeys, nil
}

// AppRule is a KeysRule bound to a target application.
type AppRule struct {
	KeysRule `yaml:",inline"`

	TargetApp string `json:"targetApp" yaml:"targetApp"`
}

// Target returns the raw target as a composite field.
func (r AppRule) Target() targetspec.Field {
	return targetspec.Field(r.TargetApp)
}

// TargetAppName returns the program path.
func (r AppRule) TargetAppName() string {
	return r.Target().Primary()
}

// TargetAppShortName returns the file name of the program path.
func (r AppRule) TargetAppShortName() string {
	return r.Target().PrimaryBaseName()
}

// TargetAppArgs returns the launch arguments.
func (r AppRule) TargetAppArgs() string {
	return r.Target().Secondary()
}

// TargetAppDir returns the working directory.
func (r AppRule) TargetAppDir() string {
	return r.Target().Tertiary()
}

// SetTarget encodes spec into TargetApp.
func (r *AppRule) SetTarget(spec targetspec.Spec) {
	r.TargetApp = string(spec.Field())
}

// Equal compares original keys, new keys and target byte for byte.
func (r *AppRule) Equal(other *AppRule) (bool, error) {
	if r == nil || other == nil {
		return false, ErrNilRule
	}

	same, err := r.KeysRule.Equal(&other.KeysRule)
	if err != nil {
		return false, err
	}

	return same && r.TargetApp == other.TargetApp, nil
}

// mappedNames renders each code of seq by name. Segments that are not codes
// are kept as written.
func mappedNames(seq string) []string {
	var out []string

	for part := range strings.SplitSeq(seq, keys.Separator) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		code, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			out = append(out, part)
			continue
		}

		out = append(out, keys.Name(uint32(code)))
	}

	return out
}
