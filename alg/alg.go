// Package alg implements algorithms that work with any container whose
// positions and ranges have the right methods. A container doesn't
// need to know about this package to be usable with it; providing the
// methods described by [Position] and [Range], and optionally the
// inserter interfaces, is enough.
//
// None of the algorithms synchronize access to the containers they
// operate on.
package alg

import "iter"

// Position is the constraint satisfied by a position type P in a
// container holding elements of type T. Next must return the end
// position unchanged, and Get and Set are never called on the end
// position of a range.
type Position[P any, T any] interface {
	comparable
	Next() P
	Get() T
	Set(T)
}

// Range is a half-open run of positions. Begin must reach End by
// repeatedly calling Next.
type Range[P any] interface {
	Begin() P
	End() P
}

// FrontInserter is a container that can insert at its front.
type FrontInserter[P, T any] interface {
	InsertFront(T) (P, error)
}

// BeforeInserter is a container that can insert before a position.
type BeforeInserter[P, T any] interface {
	InsertBefore(P, T) (P, error)
}

// AfterInserter is a container that can insert after a position.
type AfterInserter[P, T any] interface {
	InsertAfter(P, T) (P, error)
}

// Values returns an iterator over the elements in r.
func Values[T any, P Position[P, T]](r Range[P]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := r.Begin(); p != r.End(); p = p.Next() {
			if !yield(p.Get()) {
				return
			}
		}
	}
}

// ForEach calls f with every element in r in order.
func ForEach[P Position[P, T], T any](r Range[P], f func(T)) {
	for p := r.Begin(); p != r.End(); p = p.Next() {
		f(p.Get())
	}
}

// Fill sets every element in r to v.
func Fill[P Position[P, T], T any](r Range[P], v T) {
	for p := r.Begin(); p != r.End(); p = p.Next() {
		p.Set(v)
	}
}

// Generate sets every element in r to the result of calling gen with
// that element's index in r, starting from 0.
func Generate[P Position[P, T], T any](r Range[P], gen func(int) T) {
	i := 0
	for p := r.Begin(); p != r.End(); p = p.Next() {
		p.Set(gen(i))
		i++
	}
}

// Swap exchanges the elements at a and b.
func Swap[T any, P Position[P, T]](a, b P) {
	tmp := a.Get()
	a.Set(b.Get())
	b.Set(tmp)
}
