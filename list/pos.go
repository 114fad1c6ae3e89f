package list

import (
	"iter"

	"deedles.dev/xcontainer"
	"deedles.dev/xcontainer/internal/debug"
)

// Pos is a position in a [List]. It refers to a single node and stays
// valid for as long as that node is linked into a list, including
// after the node is moved or spliced into a different list. Using a
// Pos whose element has been released or removed is undefined.
//
// The zero Pos is invalid. It is returned by inserts that fail.
type Pos[T any] struct {
	n *node[T]
}

// Valid returns false for the zero Pos.
func (p Pos[T]) Valid() bool {
	return p.n != nil
}

// IsEnd returns true if p is the end position of a list.
func (p Pos[T]) IsEnd() bool {
	return p.n != nil && p.n.sentinel
}

func (p Pos[T]) check() error {
	switch {
	case p.n == nil:
		return xcontainer.ErrInvalid
	case p.n.sentinel:
		return xcontainer.ErrEnd
	default:
		return nil
	}
}

// Get returns the element at p. It panics with a
// [xcontainer.ContractError] if p is invalid or an end position.
func (p Pos[T]) Get() T {
	if err := p.check(); err != nil {
		debug.Must("list.Pos.Get", err)
	}
	return p.n.val
}

// Set replaces the element at p. It panics under the same conditions
// as [Pos.Get].
func (p Pos[T]) Set(v T) {
	if err := p.check(); err != nil {
		debug.Must("list.Pos.Set", err)
	}
	p.n.val = v
}

// Next returns the position after p. The position after the last
// element is the end position, and the end position has nothing after
// it, so Next returns it unchanged.
func (p Pos[T]) Next() Pos[T] {
	if p.n == nil || p.n.sentinel {
		return p
	}
	return Pos[T]{n: p.n.next}
}

// Prev returns the position before p. The position before the first
// element is the end position, and the position before the end
// position is the last element.
func (p Pos[T]) Prev() Pos[T] {
	if p.n == nil {
		return p
	}
	return Pos[T]{n: p.n.prev}
}

// Forward advances p to [Pos.Next].
func (p *Pos[T]) Forward() {
	*p = p.Next()
}

// Backward moves p back to [Pos.Prev].
func (p *Pos[T]) Backward() {
	*p = p.Prev()
}

// Range is a half-open run of positions, from Begin up to but not
// including End. It does not own anything and can outlive changes made
// to lists, but it must only be used while End can be reached from
// Begin.
type Range[T any] struct {
	begin, end Pos[T]
}

// RangeOf returns the range [begin, end).
func RangeOf[T any](begin, end Pos[T]) Range[T] {
	return Range[T]{begin: begin, end: end}
}

// Begin returns the first position in the range.
func (r Range[T]) Begin() Pos[T] { return r.begin }

// End returns the position just past the range.
func (r Range[T]) End() Pos[T] { return r.end }

// Empty returns true if the range contains no positions.
func (r Range[T]) Empty() bool {
	return r.begin == r.end
}

// Len counts the positions in the range. It is O(n).
func (r Range[T]) Len() (n int) {
	for range r.Positions() {
		n++
	}
	return n
}

// Positions returns an iterator over the positions in the range. It
// is safe to remove the currently-yielded position during iteration.
//
// Iteration stops early if it runs into the end of a list before
// reaching the end of the range.
func (r Range[T]) Positions() iter.Seq[Pos[T]] {
	return func(yield func(Pos[T]) bool) {
		cur := r.begin
		for cur != r.end && cur.check() == nil {
			next := cur.Next()
			if !yield(cur) {
				return
			}
			cur = next
		}
	}
}

// Values returns an iterator over the elements in the range.
func (r Range[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := range r.Positions() {
			if !yield(p.n.val) {
				return
			}
		}
	}
}
