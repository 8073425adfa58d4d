package set

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCopyOnWriteLongSetAdd(t *testing.T) {
	s := NewCopyOnWriteLongSet()
	require.True(t, s.IsEmpty())
	require.True(t, s.Add(1))
	require.False(t, s.Add(1))
	require.Equal(t, 1, s.Size())
	require.True(t, s.Contains(1))
	require.False(t, s.Contains(2))
}

func TestCopyOnWriteLongSetConstructorDeduplicates(t *testing.T) {
	s := NewCopyOnWriteLongSet(1, 2, 2, 3, 1)
	require.Equal(t, 3, s.Size())
	require.Equal(t, []int64{1, 2, 3}, s.ToArray())
}

func TestCopyOnWriteLongSetAddAllRemove(t *testing.T) {
	s := NewCopyOnWriteLongSet(1)
	require.True(t, s.AddAll([]int64{1, 2, 3}))
	require.False(t, s.AddAll([]int64{1, 2, 3}))
	require.Equal(t, 3, s.Size())

	require.True(t, s.Remove(2))
	require.False(t, s.Remove(2))
	require.True(t, s.RemoveAll([]int64{1, 9}))
	require.Equal(t, []int64{3}, s.ToArray())

	s.AddAll([]int64{4, 5})
	require.True(t, s.RetainAll([]int64{3, 4}))
	require.Equal(t, []int64{3, 4}, s.ToArray())
	require.True(t, s.ContainsAll([]int64{3, 4}))
	require.False(t, s.ContainsAll([]int64{3, 5}))
}

func TestCopyOnWriteLongSetSnapshotIteration(t *testing.T) {
	s := NewCopyOnWriteLongSet(1, 2)
	it := s.Iterator()
	s.Add(3)

	var seen []int64
	for it.HasNext() {
		v, err := it.Next()
		require.NoError(t, err)
		seen = append(seen, v)
	}
	require.Equal(t, []int64{1, 2}, seen)

	var order []int64
	s.ForEach(func(val int64) bool {
		order = append(order, val)
		return true
	})
	// 迭代顺序即插入顺序
	require.Equal(t, []int64{1, 2, 3}, order)
}

func TestCopyOnWriteLongSetEqual(t *testing.T) {
	a := NewCopyOnWriteLongSet(1, 2, 3)
	b := NewCopyOnWriteLongSet(3, 1, 2)
	c := NewCopyOnWriteLongSet(1, 2)
	d := NewCopyOnWriteLongSet(1, 2, 4)
	require.True(t, a.Equal(b))
	require.True(t, a.Equal(a))
	require.False(t, a.Equal(c))
	require.False(t, c.Equal(a))
	require.False(t, a.Equal(d))
	require.False(t, a.Equal(nil))
}

func TestCopyOnWriteLongSetOps(t *testing.T) {
	a := NewCopyOnWriteLongSet(1, 2, 3)
	b := NewCopyOnWriteLongSet(2, 3, 4)

	require.True(t, a.Intersect(b).Equal(NewCopyOnWriteLongSet(2, 3)))
	require.True(t, a.Union(b).Equal(NewCopyOnWriteLongSet(1, 2, 3, 4)))
	require.True(t, a.Diff(b).Equal(NewCopyOnWriteLongSet(1)))
	require.True(t, b.Diff(a).Equal(NewCopyOnWriteLongSet(4)))
}

func TestCopyOnWriteLongSetClear(t *testing.T) {
	s := NewCopyOnWriteLongSet(1, 2)
	s.Clear()
	require.True(t, s.IsEmpty())
	require.True(t, s.Add(1))
}

func TestCopyOnWriteLongSetConcurrentAdd(t *testing.T) {
	s := NewCopyOnWriteLongSet()
	const goroutines = 8
	const members = 100

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < members; i++ {
				s.Add(int64(i))
			}
		}()
	}
	wg.Wait()
	require.Equal(t, members, s.Size())
}
