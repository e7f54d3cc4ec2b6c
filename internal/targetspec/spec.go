package targetspec

import (
	"fmt"
	"strings"
)

// Spec is the decoded form of a composite field.
type Spec struct {
	// Primary is the program path.
	Primary string
	// Secondary holds the launch arguments.
	Secondary string
	// Tertiary is the working directory.
	Tertiary string
	// Count is how many parts were present when decoded, capped at MaxParts.
	// Encode writes at least this many parts so that trailing empty parts
	// survive a round trip.
	Count int
}

// Decode splits raw into a Spec. It never fails; parts past MaxParts are
// dropped.
func Decode(raw string) Spec {
	f := Field(raw)
	parts := f.Parts()

	return Spec{
		Primary:   f.Primary(),
		Secondary: f.Secondary(),
		Tertiary:  f.Tertiary(),
		Count:     min(len(parts), MaxParts),
	}
}

// Encode joins s back into a composite field. Empty trailing parts are only
// written when Count asks for them.
func Encode(s Spec) string {
	values := [MaxParts]string{s.Primary, s.Secondary, s.Tertiary}

	n := min(max(s.Count, 0), MaxParts)
	for i := MaxParts - 1; i >= n; i-- {
		if values[i] != "" {
			n = i + 1
			break
		}
	}

	return strings.Join(values[:n], Delimiter)
}

// EncodeStrict is Encode but refuses parts that contain Delimiter, since
// those would not decode back to the same Spec.
func EncodeStrict(s Spec) (string, error) {
	names := [MaxParts]string{"primary", "secondary", "tertiary"}

	for i, v := range [MaxParts]string{s.Primary, s.Secondary, s.Tertiary} {
		if strings.Contains(v, Delimiter) {
			return "", fmt.Errorf("%s part %q: %w", names[i], v, ErrDelimiterInPart)
		}
	}

	return Encode(s), nil
}

// Field returns the encoded field.
func (s Spec) Field() Field {
	return Field(Encode(s))
}
