package heap

import (
	"errors"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/neganovalexey/agenda/codeerrors"
	"github.com/neganovalexey/agenda/traverse"
)

func intAsc(a, b int) int {
	return a - b
}

func intDesc(a, b int) int {
	return b - a
}

func checkHeap[T any](t *testing.T, h *MaxHeap[T]) {
	for i := 0; i < h.size; i++ {
		for _, c := range []int{2*i + 1, 2*i + 2} {
			if c < h.size && h.comparator(h.items[i], h.items[c]) < 0 {
				t.Fatalf("heap property broken at %d/%d: %v < %v", i, c, h.items[i], h.items[c])
			}
		}
	}
}

func TestHeapExtractOrder(t *testing.T) {
	h := New[int]()
	require.NoError(t, h.Build([]int{5, 1, 9, 3}, intAsc))
	checkHeap(t, h)

	for _, exp := range []int{9, 5, 3, 1} {
		v, err := h.ExtractMax()
		require.NoError(t, err)
		require.Equal(t, exp, v)
	}
	require.True(t, h.Empty())

	_, err := h.ExtractMax()
	require.True(t, errors.Is(err, codeerrors.ErrEmptyCollection))
	_, err = h.PeekMax()
	require.True(t, errors.Is(err, codeerrors.ErrEmptyCollection))
}

func TestHeapBuildCopiesInput(t *testing.T) {
	input := []int{1, 2, 3}
	h := New[int]()
	require.NoError(t, h.Build(input, intAsc))
	require.Equal(t, []int{1, 2, 3}, input)
	require.Equal(t, 3, h.Size())
}

func TestHeapWithoutComparator(t *testing.T) {
	h := New[int]()
	require.True(t, errors.Is(h.Insert(1), codeerrors.ErrInvalidState))
	require.True(t, errors.Is(h.Build([]int{1}, nil), codeerrors.ErrInvalidState))
	require.True(t, h.Empty())
}

func TestHeapInsertGrows(t *testing.T) {
	h := New[int]()
	require.NoError(t, h.Build(nil, intAsc))

	max := -1
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		v := rnd.Intn(10000)
		require.NoError(t, h.Insert(v))
		if v > max {
			max = v
		}
		top, err := h.PeekMax()
		require.NoError(t, err)
		require.Equal(t, max, top)
	}
	checkHeap(t, h)
	require.Equal(t, 1000, h.Size())
	require.Equal(t, 1024, len(h.items))

	prev := max
	for !h.Empty() {
		v, err := h.ExtractMax()
		require.NoError(t, err)
		require.LessOrEqual(t, v, prev)
		prev = v
	}
}

func TestHeapTies(t *testing.T) {
	type rec struct {
		name  string
		total int
	}
	byTotal := func(a, b rec) int { return a.total - b.total }

	h := New[rec]()
	require.NoError(t, h.Build([]rec{{"a", 1}, {"b", 5}, {"c", 5}}, byTotal))
	require.NoError(t, h.Insert(rec{"d", 5}))

	top, _ := h.PeekMax()
	require.Equal(t, 5, top.total)

	totals := []int{}
	for !h.Empty() {
		r, _ := h.ExtractMax()
		totals = append(totals, r.total)
	}
	require.Equal(t, []int{5, 5, 5, 1}, totals)
}

func TestHeapReorganize(t *testing.T) {
	items := []int{4, 8, 1, 7, 3, 9, 2}
	h := New[int]()
	require.NoError(t, h.Build(items, intAsc))
	top, _ := h.PeekMax()
	require.Equal(t, 9, top)

	h.Reorganize(intDesc)
	checkHeap(t, h)
	top, _ = h.PeekMax()
	require.Equal(t, 1, top)
	require.ElementsMatch(t, items, h.Items())

	// nil comparator changes nothing
	before := h.Items()
	h.Reorganize(nil)
	require.Equal(t, before, h.Items())

	out := []int{}
	for !h.Empty() {
		v, _ := h.ExtractMax()
		out = append(out, v)
	}
	require.Equal(t, []int{1, 2, 3, 4, 7, 8, 9}, out)
}

func TestHeapReorganizeStrings(t *testing.T) {
	names := []string{"Plzen", "Adamov", "Brno", "Zlin"}
	h := New[string]()
	require.NoError(t, h.Build(names, strings.Compare))
	top, _ := h.PeekMax()
	require.Equal(t, "Zlin", top)

	h.Reorganize(func(a, b string) int { return strings.Compare(b, a) })
	top, _ = h.PeekMax()
	require.Equal(t, "Adamov", top)
}

func TestHeapClearKeepsComparator(t *testing.T) {
	h := New[int]()
	require.NoError(t, h.Build([]int{3, 1, 2}, intAsc))
	h.Clear()
	require.True(t, h.Empty())
	require.Empty(t, h.Items())

	require.NoError(t, h.Insert(5))
	require.NoError(t, h.Insert(6))
	top, _ := h.PeekMax()
	require.Equal(t, 6, top)
}

func TestHeapIterate(t *testing.T) {
	h := New[int]()
	require.NoError(t, h.Build([]int{5, 1, 9, 3}, intAsc))
	require.Equal(t, []int{9, 3, 5, 1}, h.Items())

	require.Equal(t, []int{9, 3, 1, 5}, traverse.Collect(h.Iterate(traverse.DepthFirst)))
	require.Equal(t, []int{9, 3, 5, 1}, traverse.Collect(h.Iterate(traverse.BreadthFirst)))

	it := h.Iterate(traverse.DepthFirst)
	for it.HasNext() {
		_, err := it.Next()
		require.NoError(t, err)
	}
	_, err := it.Next()
	require.True(t, errors.Is(err, codeerrors.ErrInvalidState))

	require.Panics(t, func() { h.Iterate(traverse.Mode(-1)) })
}

func TestHeapIterateSameMultiset(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	items := make([]int, 257)
	for i := range items {
		items[i] = rnd.Intn(100)
	}
	h := New[int]()
	require.NoError(t, h.Build(items, intAsc))
	checkHeap(t, h)

	dfs := traverse.Collect(h.Iterate(traverse.DepthFirst))
	bfs := traverse.Collect(h.Iterate(traverse.BreadthFirst))
	require.Len(t, dfs, len(items))
	require.ElementsMatch(t, dfs, bfs)
	require.ElementsMatch(t, items, dfs)
	require.NotEqual(t, dfs, bfs)

	// extraction yields the sorted input
	sort.Sort(sort.Reverse(sort.IntSlice(items)))
	for _, exp := range items {
		v, err := h.ExtractMax()
		require.NoError(t, err)
		require.Equal(t, exp, v)
	}
}

func TestHeapIterateEmpty(t *testing.T) {
	h := New[int]()
	require.False(t, h.Iterate(traverse.DepthFirst).HasNext())
	require.False(t, h.Iterate(traverse.BreadthFirst).HasNext())
}
