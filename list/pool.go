package list

// Pool recycles list nodes and can put a limit on how many of them are
// in use at once. Lists created by [Pool.New] take their nodes from the
// pool, and nodes go back to the pool they came from when they are
// freed, even if they were moved or spliced into a list that uses a
// different pool or none at all.
//
// A zero Pool has no limit and is ready to use.
type Pool[T any] struct {
	limit int
	live  int

	idle  *node[T]
	nidle int
}

// NewPool returns a pool that allows at most limit nodes to be in use
// at the same time. If limit is zero or less, the number is unbounded.
func NewPool[T any](limit int) *Pool[T] {
	return &Pool[T]{limit: max(limit, 0)}
}

// New returns a new, empty list that allocates its nodes from p. Once
// p's limit is reached, inserts into the list fail with
// [xcontainer.ErrAllocation] until some nodes are freed.
func (p *Pool[T]) New(destroy func(T)) *List[T] {
	ls := &List[T]{pool: p}
	return ls.Init(destroy)
}

// Limit returns the maximum number of nodes that can be in use, or 0
// if there is none.
func (p *Pool[T]) Limit() int {
	return p.limit
}

// Live returns the number of nodes from p currently linked into lists.
func (p *Pool[T]) Live() int {
	return p.live
}

// Idle returns the number of freed nodes waiting to be reused.
func (p *Pool[T]) Idle() int {
	return p.nidle
}

// Trim drops every idle node so that they can be garbage collected.
func (p *Pool[T]) Trim() {
	p.idle = nil
	p.nidle = 0
}

func (p *Pool[T]) get() (*node[T], bool) {
	if p.limit > 0 && p.live >= p.limit {
		return nil, false
	}

	n := p.idle
	if n == nil {
		n = &node[T]{pool: p}
	} else {
		p.idle = n.next
		p.nidle--
		n.next = nil
	}

	p.live++
	return n, true
}

func (p *Pool[T]) put(n *node[T]) {
	n.next = p.idle
	p.idle = n
	p.nidle++
	p.live--
}
