package alg

// Find returns the first position in r whose element is equal to v,
// or r.End() if there is none.
func Find[P Position[P, T], T comparable](r Range[P], v T) P {
	return FindIf(r, func(e T) bool { return e == v })
}

// FindEq is like [Find] but compares elements to v using eq.
func FindEq[P Position[P, T], T any](r Range[P], eq func(T, T) bool, v T) P {
	return FindIf(r, func(e T) bool { return eq(e, v) })
}

// FindIf returns the first position in r whose element pred returns
// true for, or r.End() if there is none.
func FindIf[P Position[P, T], T any](r Range[P], pred func(T) bool) P {
	end := r.End()
	for p := r.Begin(); p != end; p = p.Next() {
		if pred(p.Get()) {
			return p
		}
	}
	return end
}

// Count returns the number of elements in r that are equal to v.
func Count[P Position[P, T], T comparable](r Range[P], v T) int {
	return CountIf(r, func(e T) bool { return e == v })
}

// CountEq is like [Count] but compares elements to v using eq.
func CountEq[P Position[P, T], T any](r Range[P], eq func(T, T) bool, v T) int {
	return CountIf(r, func(e T) bool { return eq(e, v) })
}

// CountIf returns the number of elements in r that pred returns true
// for.
func CountIf[P Position[P, T], T any](r Range[P], pred func(T) bool) (n int) {
	for p := r.Begin(); p != r.End(); p = p.Next() {
		if pred(p.Get()) {
			n++
		}
	}
	return n
}
