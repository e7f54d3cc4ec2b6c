package common

// UniqueFunc returns s without elements that eq considers equal to an
// earlier element. Order is preserved and s is not modified.
func UniqueFunc[S ~[]E, E any](s S, eq func(a, b E) bool) S {
	out := make(S, 0, len(s))

outer:
	for _, v := range s {
		for _, kept := range out {
			if eq(kept, v) {
				continue outer
			}
		}

		out = append(out, v)
	}

	return out
}
