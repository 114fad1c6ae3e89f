package list

import (
	"deedles.dev/xcontainer"
	"deedles.dev/xcontainer/internal/debug"
)

// checkPos reports a violation if p can't be used with ls. If value is
// true, p must also hold an element.
func (ls *List[T]) checkPos(op string, p Pos[T], value bool) error {
	switch {
	case p.n == nil:
		return debug.Violation(op, xcontainer.ErrInvalid)
	case value && p.n.sentinel:
		return debug.Violation(op, xcontainer.ErrEnd)
	case debug.Enabled && !ls.owns(p.n):
		return debug.Violation(op, xcontainer.ErrForeign)
	}
	return nil
}

// owns walks forward from n to the first sentinel it finds and checks
// if it is ls's.
func (ls *List[T]) owns(n *node[T]) bool {
	for ; n != nil; n = n.next {
		if n.sentinel {
			return n == &ls.end
		}
	}
	return false
}

// checkRange reports a violation if r isn't a range in ls. If at is
// not nil, it must not be strictly inside of r.
func (ls *List[T]) checkRange(op string, r Range[T], at *node[T]) error {
	if r.begin.n == nil || r.end.n == nil {
		return debug.Violation(op, xcontainer.ErrInvalid)
	}
	if r.Empty() {
		return nil
	}
	if r.begin.n.sentinel {
		return debug.Violation(op, xcontainer.ErrRange)
	}
	if !debug.Enabled {
		return nil
	}

	for n := r.begin.n.next; n != r.end.n; n = n.next {
		if n == nil || n.sentinel {
			return debug.Violation(op, xcontainer.ErrRange)
		}
		if n == at {
			return debug.Violation(op, xcontainer.ErrRange)
		}
	}
	if !ls.owns(r.end.n) {
		return debug.Violation(op, xcontainer.ErrForeign)
	}
	return nil
}

func (ls *List[T]) alloc(v T) (*node[T], error) {
	if ls.pool == nil {
		return &node[T]{val: v}, nil
	}

	n, ok := ls.pool.get()
	if !ok {
		return nil, xcontainer.ErrAllocation
	}
	n.val = v
	return n, nil
}

func (ls *List[T]) insertBefore(at *node[T], v T) (Pos[T], error) {
	n, err := ls.alloc(v)
	if err != nil {
		return Pos[T]{}, err
	}

	at.prev.link(n)
	n.link(at)
	return Pos[T]{n: n}, nil
}

// InsertBefore inserts v into the list just before at and returns its
// position. If the new node can't be allocated, it returns
// [xcontainer.ErrAllocation], an invalid position and leaves the list
// as it was.
func (ls *List[T]) InsertBefore(at Pos[T], v T) (Pos[T], error) {
	ls.init()
	if err := ls.checkPos("list.InsertBefore", at, false); err != nil {
		return Pos[T]{}, err
	}
	return ls.insertBefore(at.n, v)
}

// InsertAfter inserts v into the list just after at, which must not
// be the end position. It fails the same way as [List.InsertBefore].
func (ls *List[T]) InsertAfter(at Pos[T], v T) (Pos[T], error) {
	ls.init()
	if err := ls.checkPos("list.InsertAfter", at, true); err != nil {
		return Pos[T]{}, err
	}
	return ls.insertBefore(at.n.next, v)
}

// InsertFront inserts v at the front of the list.
func (ls *List[T]) InsertFront(v T) (Pos[T], error) {
	ls.init()
	return ls.insertBefore(ls.end.next, v)
}

// InsertBack inserts v at the back of the list.
func (ls *List[T]) InsertBack(v T) (Pos[T], error) {
	ls.init()
	return ls.insertBefore(&ls.end, v)
}

// Release unlinks and frees the node at p without calling the
// destructor. It's meant for when ownership of the element has
// already been taken elsewhere.
func (ls *List[T]) Release(p Pos[T]) error {
	ls.init()
	if err := ls.checkPos("list.Release", p, true); err != nil {
		return err
	}

	p.n.unlink()
	p.n.free()
	return nil
}

// Remove is like [List.Release] but calls the destructor with the
// element first.
func (ls *List[T]) Remove(p Pos[T]) error {
	ls.init()
	if err := ls.checkPos("list.Remove", p, true); err != nil {
		return err
	}

	ls.remove(p.n)
	return nil
}

func (ls *List[T]) remove(n *node[T]) {
	if ls.destroy != nil {
		ls.destroy(n.val)
	}
	n.unlink()
	n.free()
}

// RemoveFront removes the first element of the list.
func (ls *List[T]) RemoveFront() error {
	if ls.Empty() {
		return debug.Violation("list.RemoveFront", xcontainer.ErrEmpty)
	}
	ls.remove(ls.end.next)
	return nil
}

// RemoveBack removes the last element of the list.
func (ls *List[T]) RemoveBack() error {
	if ls.Empty() {
		return debug.Violation("list.RemoveBack", xcontainer.ErrEmpty)
	}
	ls.remove(ls.end.prev)
	return nil
}

func moveBefore[T any](at, n *node[T]) {
	if at == n {
		return
	}

	n.unlink()
	at.prev.link(n)
	n.link(at)
}

func (ls *List[T]) checkMove(op string, at Pos[T], atValue bool, src *List[T], p Pos[T]) error {
	ls.init()
	src.init()
	if err := ls.checkPos(op, at, atValue); err != nil {
		return err
	}
	return src.checkPos(op, p, true)
}

// MoveBefore moves the node at p out of src and into ls just before
// at. Nothing is allocated or destroyed and p remains a valid position
// for the element, now in ls.
func (ls *List[T]) MoveBefore(at Pos[T], src *List[T], p Pos[T]) error {
	if err := ls.checkMove("list.MoveBefore", at, false, src, p); err != nil {
		return err
	}
	moveBefore(at.n, p.n)
	return nil
}

// MoveAfter is like [List.MoveBefore] but moves the node to just after
// at, which must not be the end position.
func (ls *List[T]) MoveAfter(at Pos[T], src *List[T], p Pos[T]) error {
	if err := ls.checkMove("list.MoveAfter", at, true, src, p); err != nil {
		return err
	}
	moveBefore(at.n.next, p.n)
	return nil
}

// MoveFront moves the node at p out of src and to the front of ls.
func (ls *List[T]) MoveFront(src *List[T], p Pos[T]) error {
	if err := ls.checkMove("list.MoveFront", ls.Begin(), false, src, p); err != nil {
		return err
	}
	moveBefore(ls.end.next, p.n)
	return nil
}

// MoveBack moves the node at p out of src and to the back of ls.
func (ls *List[T]) MoveBack(src *List[T], p Pos[T]) error {
	if err := ls.checkMove("list.MoveBack", ls.End(), false, src, p); err != nil {
		return err
	}
	moveBefore(&ls.end, p.n)
	return nil
}

// splice relinks the nodes in [begin, end) to just before at. Only the
// links at the edges of the run are touched.
func splice[T any](at, begin, end *node[T]) {
	last := end.prev
	begin.prev.link(end)
	at.prev.link(begin)
	last.link(at)
}

func (ls *List[T]) splice(op string, at Pos[T], atValue bool, src *List[T], r Range[T]) error {
	ls.init()
	src.init()
	if err := ls.checkPos(op, at, atValue); err != nil {
		return err
	}

	to := at.n
	if atValue {
		to = to.next
	}
	if err := src.checkRange(op, r, to); err != nil {
		return err
	}

	if r.Empty() || to == r.begin.n || to == r.end.n {
		return nil
	}
	splice(to, r.begin.n, r.end.n)
	return nil
}

// SpliceBefore moves every node in r out of src and into ls just
// before at, keeping their order. It takes constant time no matter
// how long r is. Every position in r stays valid and now refers to an
// element of ls.
//
// at must not be inside of r. Splicing an empty range does nothing.
func (ls *List[T]) SpliceBefore(at Pos[T], src *List[T], r Range[T]) error {
	return ls.splice("list.SpliceBefore", at, false, src, r)
}

// SpliceAfter is like [List.SpliceBefore] but moves the nodes to just
// after at, which must not be the end position.
func (ls *List[T]) SpliceAfter(at Pos[T], src *List[T], r Range[T]) error {
	return ls.splice("list.SpliceAfter", at, true, src, r)
}

// SpliceFront moves every node in r out of src and to the front of
// ls.
func (ls *List[T]) SpliceFront(src *List[T], r Range[T]) error {
	return ls.splice("list.SpliceFront", ls.Begin(), false, src, r)
}

// SpliceBack moves every node in r out of src and to the back of ls.
func (ls *List[T]) SpliceBack(src *List[T], r Range[T]) error {
	return ls.splice("list.SpliceBack", ls.End(), false, src, r)
}
