// Package slist implements a generic singly-linked list that also
// keeps a reference to its last node for quick inserts at both ends.
//
// Like [deedles.dev/xcontainer/list], its positions and ranges work
// with the algorithms in [deedles.dev/xcontainer/alg], but because
// nodes don't know their predecessor, it can only insert at the front,
// at the back and after an existing position.
//
// A List is not safe for concurrent use.
package slist

import (
	"iter"

	"deedles.dev/xcontainer"
	"deedles.dev/xcontainer/internal/debug"
)

// List is a singly-linked list. The zero value is an empty list ready
// to use.
type List[T any] struct {
	head, tail *node[T]
}

// Begin returns the position of the first element.
func (ls *List[T]) Begin() Pos[T] {
	return Pos[T]{n: ls.head}
}

// End returns the position after the last element. It is the zero
// Pos.
func (ls *List[T]) End() Pos[T] {
	return Pos[T]{}
}

// All returns a range covering the whole list.
func (ls *List[T]) All() Range[T] {
	return Range[T]{begin: ls.Begin()}
}

// RangeFrom returns the range from p to the end of the list.
func (ls *List[T]) RangeFrom(p Pos[T]) Range[T] {
	return Range[T]{begin: p}
}

// Empty returns true if the list has no elements.
func (ls *List[T]) Empty() bool {
	return ls.head == nil
}

// Len counts the elements of the list. It is O(n).
func (ls *List[T]) Len() (n int) {
	for range ls.Values() {
		n++
	}
	return n
}

// Front returns the first element of the list.
func (ls *List[T]) Front() (v T, err error) {
	if ls.head == nil {
		return v, debug.Violation("slist.Front", xcontainer.ErrEmpty)
	}
	return ls.head.val, nil
}

// Back returns the last element of the list.
func (ls *List[T]) Back() (v T, err error) {
	if ls.tail == nil {
		return v, debug.Violation("slist.Back", xcontainer.ErrEmpty)
	}
	return ls.tail.val, nil
}

// PushBack adds v as a new node at the tail of the list. Nodes are
// allocated with new, so unlike [List.InsertAfter] there is no misuse
// or allocation failure to report and it returns only the position.
func (ls *List[T]) PushBack(v T) Pos[T] {
	n := ls.tail.insert()
	n.val = v
	ls.tail = n

	if ls.head == nil {
		ls.head = n
	}
	return Pos[T]{n: n}
}

// InsertFront adds v as a new node at the head of the list. It never
// fails.
func (ls *List[T]) InsertFront(v T) (Pos[T], error) {
	n := &node[T]{val: v, next: ls.head}
	ls.head = n
	if ls.tail == nil {
		ls.tail = n
	}
	return Pos[T]{n: n}, nil
}

// InsertAfter adds v as a new node after at, which must not be the
// end position.
func (ls *List[T]) InsertAfter(at Pos[T], v T) (Pos[T], error) {
	if at.n == nil {
		return Pos[T]{}, debug.Violation("slist.InsertAfter", xcontainer.ErrEnd)
	}
	if debug.Enabled && !ls.owns(at.n) {
		return Pos[T]{}, debug.Violation("slist.InsertAfter", xcontainer.ErrForeign)
	}

	n := at.n.insert()
	n.val = v
	if at.n == ls.tail {
		ls.tail = n
	}
	return Pos[T]{n: n}, nil
}

func (ls *List[T]) owns(n *node[T]) bool {
	for cur := ls.head; cur != nil; cur = cur.next {
		if cur == n {
			return true
		}
	}
	return false
}

// RemoveFront removes the current head node from the list.
func (ls *List[T]) RemoveFront() error {
	if ls.head == nil {
		return debug.Violation("slist.RemoveFront", xcontainer.ErrEmpty)
	}

	n := ls.head
	ls.head = n.next
	if ls.head == nil {
		ls.tail = nil
	}

	n.next = nil
	return nil
}

// Clear empties the list.
func (ls *List[T]) Clear() {
	ls.head = nil
	ls.tail = nil
}

// Values returns an iterator over the elements of the list.
func (ls *List[T]) Values() iter.Seq[T] {
	return ls.All().Values()
}

type node[T any] struct {
	val  T
	next *node[T]
}

func (n *node[T]) insert() *node[T] {
	if n == nil {
		return new(node[T])
	}

	n.next = &node[T]{next: n.next}
	return n.next
}

// Pos is a position in a [List]. The zero Pos is the end position of
// every List.
type Pos[T any] struct {
	n *node[T]
}

// IsEnd returns true if p is the end position.
func (p Pos[T]) IsEnd() bool {
	return p.n == nil
}

// Get returns the element at p. It panics with a
// [xcontainer.ContractError] if p is the end position.
func (p Pos[T]) Get() T {
	if p.n == nil {
		debug.Must("slist.Pos.Get", xcontainer.ErrEnd)
	}
	return p.n.val
}

// Set replaces the element at p. It panics if p is the end position.
func (p Pos[T]) Set(v T) {
	if p.n == nil {
		debug.Must("slist.Pos.Set", xcontainer.ErrEnd)
	}
	p.n.val = v
}

// Next returns the position after p. Next of the end position is the
// end position.
func (p Pos[T]) Next() Pos[T] {
	if p.n == nil {
		return p
	}
	return Pos[T]{n: p.n.next}
}

// Forward advances p to [Pos.Next].
func (p *Pos[T]) Forward() {
	*p = p.Next()
}

// Range is a half-open run of positions in a [List].
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

// Values returns an iterator over the elements in the range.
func (r Range[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := r.begin.n; cur != r.end.n && cur != nil; cur = cur.next {
			if !yield(cur.val) {
				return
			}
		}
	}
}
