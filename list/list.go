// Package list implements a generic circular doubly-linked list built
// around a sentinel node.
//
// Every element lives in its own node, so a [Pos] stays valid across
// insertions and removals of other elements. Single nodes and whole
// runs of nodes can be moved from one list to another in constant time
// without allocating.
//
// Misuse, such as removing the end position or reading from an empty
// list, is reported as an error wrapping [xcontainer.ErrContract].
// Building with the xcontainer_debug tag turns those errors into
// panics and adds checks that a position actually belongs to the list
// it is used with and that a range's end can be reached from its
// beginning.
//
// Without the tag, those last checks are skipped because they take
// O(n) time. Passing a position from another list, a position whose
// node was released, or a range whose end comes before its beginning
// is then undefined and can corrupt the lists involved.
//
// A List is not safe for concurrent use.
package list

import (
	"iter"

	"deedles.dev/xcontainer"
	"deedles.dev/xcontainer/internal/debug"
)

// List is a doubly-linked list of values of type T. The zero value is
// an empty list with no destructor that is ready to use.
//
// A List must not be copied after first use.
type List[T any] struct {
	_ noCopy

	end     node[T]
	destroy func(T)
	pool    *Pool[T]
}

// New returns a new, empty list. If destroy is not nil, it is called
// with each element that is removed from the list by [List.Remove],
// [List.Clear] and the like.
func New[T any](destroy func(T)) *List[T] {
	return new(List[T]).Init(destroy)
}

// Init empties ls and sets its destructor. Nodes that were in ls are
// freed without calling any destructor. To destroy their elements
// instead, use [List.Clear].
func (ls *List[T]) Init(destroy func(T)) *List[T] {
	if ls.end.next != nil {
		ls.free()
	}
	ls.reset()
	ls.destroy = destroy
	return ls
}

// free frees every node in the list, returning pooled ones to their
// pool. It leaves the sentinel's links dangling.
func (ls *List[T]) free() {
	n := ls.end.next
	for n != &ls.end {
		next := n.next
		n.free()
		n = next
	}
}

func (ls *List[T]) reset() {
	ls.end.sentinel = true
	ls.end.next = &ls.end
	ls.end.prev = &ls.end
}

func (ls *List[T]) init() {
	if ls.end.next == nil {
		ls.reset()
	}
}

// Destroy calls the destructor with every element in order, frees all
// of the nodes and then returns ls to its zero state, forgetting both
// its destructor and its pool.
func (ls *List[T]) Destroy() {
	ls.Clear()
	ls.destroy = nil
	ls.pool = nil
	ls.end = node[T]{}
}

// Clear calls the destructor with every element in order and then
// frees every node, leaving the list empty. The destructor is kept.
func (ls *List[T]) Clear() {
	ls.init()

	if ls.destroy != nil {
		for n := ls.end.next; n != &ls.end; n = n.next {
			ls.destroy(n.val)
		}
	}

	ls.free()
	ls.reset()
}

// Begin returns the position of the first element, or [List.End] if
// the list is empty.
func (ls *List[T]) Begin() Pos[T] {
	ls.init()
	return Pos[T]{n: ls.end.next}
}

// End returns the position one past the last element. It never holds
// a value.
func (ls *List[T]) End() Pos[T] {
	ls.init()
	return Pos[T]{n: &ls.end}
}

// All returns a range covering the whole list.
func (ls *List[T]) All() Range[T] {
	return Range[T]{begin: ls.Begin(), end: ls.End()}
}

// RangeFrom returns the range from p to the end of the list.
func (ls *List[T]) RangeFrom(p Pos[T]) Range[T] {
	return Range[T]{begin: p, end: ls.End()}
}

// RangeTo returns the range from the beginning of the list up to, but
// not including, p.
func (ls *List[T]) RangeTo(p Pos[T]) Range[T] {
	return Range[T]{begin: ls.Begin(), end: p}
}

// Empty returns true if the list has no elements.
func (ls *List[T]) Empty() bool {
	ls.init()
	return ls.end.next == &ls.end
}

// Len counts the elements of the list. It is O(n).
func (ls *List[T]) Len() int {
	return ls.All().Len()
}

// Front returns the first element of the list.
func (ls *List[T]) Front() (v T, err error) {
	if ls.Empty() {
		return v, debug.Violation("list.Front", xcontainer.ErrEmpty)
	}
	return ls.end.next.val, nil
}

// Back returns the last element of the list.
func (ls *List[T]) Back() (v T, err error) {
	if ls.Empty() {
		return v, debug.Violation("list.Back", xcontainer.ErrEmpty)
	}
	return ls.end.prev.val, nil
}

// Positions returns an iterator over the positions of the list. It is
// safe to remove the currently-yielded position during iteration.
func (ls *List[T]) Positions() iter.Seq[Pos[T]] {
	return ls.All().Positions()
}

// Values returns an iterator over the elements of the list.
func (ls *List[T]) Values() iter.Seq[T] {
	return ls.All().Values()
}

// Backward returns an iterator over the elements of the list from
// back to front.
func (ls *List[T]) Backward() iter.Seq[T] {
	ls.init()
	return func(yield func(T) bool) {
		for n := ls.end.prev; n != &ls.end; n = n.prev {
			if !yield(n.val) {
				return
			}
		}
	}
}

type node[T any] struct {
	val        T
	prev, next *node[T]
	sentinel   bool
	pool       *Pool[T]
}

func (n *node[T]) link(next *node[T]) {
	n.next = next
	next.prev = n
}

func (n *node[T]) unlink() {
	n.prev.link(n.next)
}

// free resets n and hands it back to the pool it came from, if any.
func (n *node[T]) free() {
	var zero T
	n.val = zero
	n.prev = nil
	n.next = nil
	if n.pool != nil {
		n.pool.put(n)
	}
}

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
