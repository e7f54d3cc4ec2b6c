package targetspec

import (
	"errors"
	"strings"
)

// Delimiter separates the parts of a composite field.
const Delimiter = "<|||>"

// MaxParts is the number of parts a composite field can carry.
const MaxParts = 3

// ErrDelimiterInPart is returned by EncodeStrict when a part contains Delimiter.
var ErrDelimiterInPart = errors.New("targetspec: part contains the reserved delimiter")

// Field is a raw composite value as stored in the settings document.
type Field string

// Parts returns the full split result, including parts past MaxParts.
// An empty field has no parts.
func (f Field) Parts() []string {
	if f == "" {
		return nil
	}

	return strings.Split(string(f), Delimiter)
}

// Primary returns the program part, or the raw value when it has no parts.
func (f Field) Primary() string {
	if parts := f.Parts(); len(parts) >= 1 {
		return parts[0]
	}

	return string(f)
}

// PrimaryBaseName returns the last path segment of Primary.
func (f Field) PrimaryBaseName() string {
	return BaseName(f.Primary())
}

// Secondary returns the arguments part or "".
func (f Field) Secondary() string {
	return f.part(1)
}

// Tertiary returns the working directory part or "".
func (f Field) Tertiary() string {
	return f.part(2)
}

// Spec decodes the field.
func (f Field) Spec() Spec {
	return Decode(string(f))
}

func (f Field) part(i int) string {
	if parts := f.Parts(); len(parts) > i {
		return parts[i]
	}

	return ""
}

// Overflow returns the parts of raw that do not fit into a Spec.
func Overflow(raw string) []string {
	parts := Field(raw).Parts()
	if len(parts) <= MaxParts {
		return nil
	}

	return parts[MaxParts:]
}

// BaseName returns the file name component of a Windows or slash separated
// path. A bare drive prefix such as "C:" is stripped as well.
func BaseName(path string) string {
	if i := strings.LastIndexAny(path, `\/`); i >= 0 {
		return path[i+1:]
	}

	if len(path) >= 2 && path[1] == ':' && isDriveLetter(path[0]) {
		return path[2:]
	}

	return path
}

func isDriveLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
