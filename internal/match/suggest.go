package match

import (
	"sort"
	"strings"
)

// DefaultThreshold is the minimum similarity a candidate needs to be suggested.
const DefaultThreshold = 0.5

// NormalizeName lowercases s and removes spaces, underscores, dashes and
// parentheses, so "Ctrl (Left)" and "ctrl_left" compare equal.
func NormalizeName(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		switch r {
		case ' ', '_', '-', '(', ')', '\t':
			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}

type scored struct {
	name  string
	score float64
}

// Suggest returns up to limit candidates whose normalized similarity to name
// is at least DefaultThreshold, best first. Ties keep candidate order.
func Suggest(name string, candidates []string, limit int) []string {
	if limit <= 0 || len(candidates) == 0 {
		return nil
	}

	norm := NormalizeName(name)

	var ranked []scored

	for _, c := range candidates {
		score := Similarity(norm, NormalizeName(c))
		if score >= DefaultThreshold {
			ranked = append(ranked, scored{name: c, score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	out := make([]string, 0, min(limit, len(ranked)))
	for i := 0; i < len(ranked) && i < limit; i++ {
		out = append(out, ranked[i].name)
	}

	return out
}
