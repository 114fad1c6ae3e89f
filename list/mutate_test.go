package list_test

import (
	"slices"
	"testing"

	"deedles.dev/xcontainer"
	"deedles.dev/xcontainer/internal/debug"
	"deedles.dev/xcontainer/list"
	"github.com/stretchr/testify/require"
)

func count[T comparable](ls *list.List[T], v T) (n int) {
	for e := range ls.Values() {
		if e == v {
			n++
		}
	}
	return n
}

func TestMove(t *testing.T) {
	tests := []struct {
		name string
		move func(dst, src *list.List[int], p list.Pos[int]) error
		want []int
	}{
		{
			name: "Before",
			move: func(dst, src *list.List[int], p list.Pos[int]) error {
				return dst.MoveBefore(find(dst, 20), src, p)
			},
			want: []int{10, 2, 20, 30},
		},
		{
			name: "After",
			move: func(dst, src *list.List[int], p list.Pos[int]) error {
				return dst.MoveAfter(find(dst, 20), src, p)
			},
			want: []int{10, 20, 2, 30},
		},
		{
			name: "Front",
			move: func(dst, src *list.List[int], p list.Pos[int]) error {
				return dst.MoveFront(src, p)
			},
			want: []int{2, 10, 20, 30},
		},
		{
			name: "Back",
			move: func(dst, src *list.List[int], p list.Pos[int]) error {
				return dst.MoveBack(src, p)
			},
			want: []int{10, 20, 30, 2},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var rec recorder[int]
			src := list.New(rec.destroy)
			dst := list.New(rec.destroy)
			fill(t, src, 1, 2, 3)
			fill(t, dst, 10, 20, 30)

			p := find(src, 2)
			require.NoError(t, test.move(dst, src, p))

			require.Equal(t, 2, p.Get())
			require.Equal(t, []int{1, 3}, slices.Collect(src.Values()))
			require.Equal(t, test.want, slices.Collect(dst.Values()))
			require.Equal(t, 0, count(src, 2))
			require.Equal(t, 1, count(dst, 2))
			require.Empty(t, rec.got)
		})
	}
}

func TestMoveWithinList(t *testing.T) {
	ls := list.New[int](nil)
	fill(t, ls, 1, 2, 3, 4)

	one := find(ls, 1)
	require.NoError(t, ls.MoveBack(ls, one))
	require.Equal(t, []int{2, 3, 4, 1}, slices.Collect(ls.Values()))

	require.NoError(t, ls.MoveBefore(one, ls, one))
	require.Equal(t, []int{2, 3, 4, 1}, slices.Collect(ls.Values()))

	three := find(ls, 3)
	require.NoError(t, ls.MoveAfter(find(ls, 2), ls, three))
	require.Equal(t, []int{2, 3, 4, 1}, slices.Collect(ls.Values()))

	require.NoError(t, ls.MoveFront(ls, find(ls, 4)))
	require.Equal(t, []int{4, 2, 3, 1}, slices.Collect(ls.Values()))
}

func TestMoveEnd(t *testing.T) {
	src := list.New[int](nil)
	dst := list.New[int](nil)
	fill(t, src, 1)
	fill(t, dst, 2)

	err := debug.Catch(func() error { return dst.MoveBack(src, src.End()) })
	require.ErrorIs(t, err, xcontainer.ErrEnd)
	err = debug.Catch(func() error { return dst.MoveAfter(dst.End(), src, src.Begin()) })
	require.ErrorIs(t, err, xcontainer.ErrEnd)
	require.Equal(t, []int{1}, slices.Collect(src.Values()))
	require.Equal(t, []int{2}, slices.Collect(dst.Values()))
}

func TestSplice(t *testing.T) {
	tests := []struct {
		name   string
		splice func(dst, src *list.List[int], r list.Range[int]) error
		want   []int
	}{
		{
			name: "Before",
			splice: func(dst, src *list.List[int], r list.Range[int]) error {
				return dst.SpliceBefore(find(dst, 20), src, r)
			},
			want: []int{10, 2, 3, 4, 20, 30},
		},
		{
			name: "After",
			splice: func(dst, src *list.List[int], r list.Range[int]) error {
				return dst.SpliceAfter(find(dst, 20), src, r)
			},
			want: []int{10, 20, 2, 3, 4, 30},
		},
		{
			name: "Front",
			splice: func(dst, src *list.List[int], r list.Range[int]) error {
				return dst.SpliceFront(src, r)
			},
			want: []int{2, 3, 4, 10, 20, 30},
		},
		{
			name: "Back",
			splice: func(dst, src *list.List[int], r list.Range[int]) error {
				return dst.SpliceBack(src, r)
			},
			want: []int{10, 20, 30, 2, 3, 4},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			src := list.New[int](nil)
			dst := list.New[int](nil)
			fill(t, src, 1, 2, 3, 4, 5)
			fill(t, dst, 10, 20, 30)

			one, two, five := find(src, 1), find(src, 2), find(src, 5)
			ten, thirty := find(dst, 10), find(dst, 30)

			require.NoError(t, test.splice(dst, src, list.RangeOf(two, five)))

			require.Equal(t, []int{1, 5}, slices.Collect(src.Values()))
			require.Equal(t, test.want, slices.Collect(dst.Values()))
			require.Equal(t, 8, src.Len()+dst.Len())

			require.Equal(t, five, one.Next())
			require.Equal(t, one, five.Prev())
			require.Equal(t, 10, ten.Get())
			require.Equal(t, 30, thirty.Get())
			require.Equal(t, 2, two.Get())
		})
	}
}

func TestSpliceWholeList(t *testing.T) {
	src := list.New[int](nil)
	dst := list.New[int](nil)
	fill(t, src, 1, 2, 3)

	require.NoError(t, dst.SpliceBack(src, src.All()))
	require.True(t, src.Empty())
	require.Equal(t, []int{1, 2, 3}, slices.Collect(dst.Values()))
	require.Equal(t, []int{3, 2, 1}, slices.Collect(dst.Backward()))

	require.NoError(t, src.SpliceFront(dst, dst.All()))
	require.True(t, dst.Empty())
	require.Equal(t, []int{1, 2, 3}, slices.Collect(src.Values()))
}

func TestSpliceWithinList(t *testing.T) {
	ls := list.New[int](nil)
	fill(t, ls, 1, 2, 3, 4, 5)

	require.NoError(t, ls.SpliceFront(ls, ls.RangeFrom(find(ls, 4))))
	require.Equal(t, []int{4, 5, 1, 2, 3}, slices.Collect(ls.Values()))

	r := list.RangeOf(find(ls, 1), find(ls, 3))
	require.NoError(t, ls.SpliceBefore(r.Begin(), ls, r))
	require.NoError(t, ls.SpliceBefore(r.End(), ls, r))
	require.Equal(t, []int{4, 5, 1, 2, 3}, slices.Collect(ls.Values()))

	require.NoError(t, ls.SpliceBack(ls, r))
	require.Equal(t, []int{4, 5, 3, 1, 2}, slices.Collect(ls.Values()))
}

func TestSpliceEmptyRange(t *testing.T) {
	src := list.New[int](nil)
	dst := list.New[int](nil)
	fill(t, src, 1, 2)
	fill(t, dst, 3)

	two := find(src, 2)
	require.NoError(t, dst.SpliceBack(src, list.RangeOf(two, two)))
	require.NoError(t, dst.SpliceBack(src, src.RangeFrom(src.End())))
	require.Equal(t, []int{1, 2}, slices.Collect(src.Values()))
	require.Equal(t, []int{3}, slices.Collect(dst.Values()))
}

func TestSpliceMalformed(t *testing.T) {
	src := list.New[int](nil)
	dst := list.New[int](nil)
	fill(t, src, 1, 2)

	err := debug.Catch(func() error {
		return dst.SpliceBack(src, list.RangeOf(src.End(), src.Begin()))
	})
	require.ErrorIs(t, err, xcontainer.ErrRange)

	err = debug.Catch(func() error {
		return dst.SpliceBack(src, list.RangeOf(list.Pos[int]{}, src.End()))
	})
	require.ErrorIs(t, err, xcontainer.ErrInvalid)

	err = debug.Catch(func() error { return dst.SpliceAfter(dst.End(), src, src.All()) })
	require.ErrorIs(t, err, xcontainer.ErrEnd)

	require.Equal(t, []int{1, 2}, slices.Collect(src.Values()))
	require.True(t, dst.Empty())
}
