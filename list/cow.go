package list

import (
	"errors"
	"sync"
	"sync/atomic"
)

var (
	ErrNoSuchElement      = errors.New("no more elements")
	ErrRemoveNotSupported = errors.New("snapshot iterator does not support remove")
)

// CopyOnWriteLongList 的每次写操作都在互斥锁内复制整个底层数组后原子发布，
// 读操作无锁读取当前快照。适合读远多于写且规模不大的场景
type CopyOnWriteLongList struct {
	mu    sync.Mutex
	elems atomic.Value // []int64
}

func NewCopyOnWriteLongList(vals ...int64) *CopyOnWriteLongList {
	l := &CopyOnWriteLongList{}
	snapshot := make([]int64, len(vals))
	copy(snapshot, vals)
	l.elems.Store(snapshot)
	return l
}

func (l *CopyOnWriteLongList) snapshot() []int64 {
	if l == nil {
		panic("Nil list")
	}
	return l.elems.Load().([]int64)
}

func (l *CopyOnWriteLongList) Size() int {
	return len(l.snapshot())
}

func (l *CopyOnWriteLongList) IsEmpty() bool {
	return l.Size() == 0
}

func (l *CopyOnWriteLongList) Get(index int) int64 {
	cur := l.snapshot()
	if index < 0 || index >= len(cur) {
		panic("Index out of bounds")
	}
	return cur[index]
}

func (l *CopyOnWriteLongList) Set(index int, val int64) (old int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	cur := l.snapshot()
	if index < 0 || index >= len(cur) {
		panic("Index out of bounds")
	}
	old = cur[index]
	next := make([]int64, len(cur))
	copy(next, cur)
	next[index] = val
	l.elems.Store(next)
	return
}

func (l *CopyOnWriteLongList) Contains(val int64) bool {
	return l.IndexOf(val) >= 0
}

func (l *CopyOnWriteLongList) ContainsAll(vals []int64) bool {
	cur := l.snapshot()
	for _, val := range vals {
		if indexOf(cur, val) < 0 {
			return false
		}
	}
	return true
}

func (l *CopyOnWriteLongList) IndexOf(val int64) int {
	return indexOf(l.snapshot(), val)
}

func (l *CopyOnWriteLongList) Add(val int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	cur := l.snapshot()
	next := make([]int64, len(cur)+1)
	copy(next, cur)
	next[len(cur)] = val
	l.elems.Store(next)
}

// AddIfAbsent 只在元素不存在时追加，是集合语义的基础
func (l *CopyOnWriteLongList) AddIfAbsent(val int64) (ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	cur := l.snapshot()
	if indexOf(cur, val) >= 0 {
		return false
	}
	next := make([]int64, len(cur)+1)
	copy(next, cur)
	next[len(cur)] = val
	l.elems.Store(next)
	return true
}

// AddAllAbsent 过滤掉已存在和本批内重复的元素后一次性复制
func (l *CopyOnWriteLongList) AddAllAbsent(vals []int64) (added int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	cur := l.snapshot()
	toAdd := make([]int64, 0, len(vals))
	for _, val := range vals {
		if indexOf(cur, val) < 0 && indexOf(toAdd, val) < 0 {
			toAdd = append(toAdd, val)
		}
	}
	if len(toAdd) == 0 {
		return 0
	}
	next := make([]int64, len(cur)+len(toAdd))
	copy(next, cur)
	copy(next[len(cur):], toAdd)
	l.elems.Store(next)
	return len(toAdd)
}

func (l *CopyOnWriteLongList) Remove(val int64) (ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	cur := l.snapshot()
	i := indexOf(cur, val)
	if i < 0 {
		return false
	}
	l.elems.Store(removeAt(cur, i))
	return true
}

func (l *CopyOnWriteLongList) RemoveAt(index int) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	cur := l.snapshot()
	if index < 0 || index >= len(cur) {
		panic("Index out of bounds")
	}
	val := cur[index]
	l.elems.Store(removeAt(cur, index))
	return val
}

func (l *CopyOnWriteLongList) RemoveAll(vals []int64) (changed bool) {
	return l.filter(func(v int64) bool {
		return indexOf(vals, v) < 0
	})
}

func (l *CopyOnWriteLongList) RetainAll(vals []int64) (changed bool) {
	return l.filter(func(v int64) bool {
		return indexOf(vals, v) >= 0
	})
}

func (l *CopyOnWriteLongList) ForEach(c Consumer) {
	for i, val := range l.snapshot() {
		if !c(i, val) {
			break
		}
	}
}

// ToArray 返回的数组与内部快照不共享存储
func (l *CopyOnWriteLongList) ToArray() []int64 {
	cur := l.snapshot()
	res := make([]int64, len(cur))
	copy(res, cur)
	return res
}

func (l *CopyOnWriteLongList) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.elems.Store(make([]int64, 0))
}

func (l *CopyOnWriteLongList) Equal(other *CopyOnWriteLongList) bool {
	if l == other {
		return true
	}
	if other == nil {
		return false
	}
	a, b := l.snapshot(), other.snapshot()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Iterator 基于创建时刻的快照，遍历期间不受任何写操作影响
func (l *CopyOnWriteLongList) Iterator() *LongIterator {
	return &LongIterator{snapshot: l.snapshot()}
}

type LongIterator struct {
	snapshot []int64
	cursor   int
}

func (it *LongIterator) HasNext() bool {
	return it.cursor < len(it.snapshot)
}

func (it *LongIterator) Next() (int64, error) {
	if it.cursor >= len(it.snapshot) {
		return 0, ErrNoSuchElement
	}
	val := it.snapshot[it.cursor]
	it.cursor++
	return val, nil
}

func (it *LongIterator) Remove() error {
	return ErrRemoveNotSupported
}

func (l *CopyOnWriteLongList) filter(keep func(int64) bool) (changed bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	cur := l.snapshot()
	next := make([]int64, 0, len(cur))
	for _, v := range cur {
		if keep(v) {
			next = append(next, v)
		}
	}
	if len(next) == len(cur) {
		return false
	}
	l.elems.Store(next)
	return true
}

func indexOf(vals []int64, val int64) int {
	for i, v := range vals {
		if v == val {
			return i
		}
	}
	return -1
}

func removeAt(cur []int64, index int) []int64 {
	next := make([]int64, len(cur)-1)
	copy(next, cur[:index])
	copy(next[index:], cur[index+1:])
	return next
}
