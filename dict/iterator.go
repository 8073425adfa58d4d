package dict

import "errors"

var (
	ErrConcurrentModification = errors.New("concurrent modification detected")
	ErrNoSuchElement          = errors.New("no more elements")
	ErrIllegalState           = errors.New("illegal iterator state")
)

// Iterator 创建时记录 modCount 快照，之后每次推进前都和实时值比对，
// 检测到外部结构性修改立即失败而不是返回可能已损坏的数据
type Iterator[V any] struct {
	m                *HashIntMap[V]
	next             *entry[V]
	current          *entry[V]
	index            int
	expectedModCount int
}

// Iterator 的遍历顺序为桶下标升序，同一桶内后插入的先被访问
func (m *HashIntMap[V]) Iterator() *Iterator[V] {
	if m == nil || m.table == nil {
		panic("Nil map")
	}
	it := &Iterator[V]{m: m, expectedModCount: m.modCount}
	if m.size > 0 {
		it.advance()
	}
	return it
}

func (it *Iterator[V]) HasNext() bool {
	return it.next != nil
}

func (it *Iterator[V]) Next() (key int32, value V, err error) {
	if it.m.modCount != it.expectedModCount {
		err = ErrConcurrentModification
		return
	}
	e := it.next
	if e == nil {
		err = ErrNoSuchElement
		return
	}
	it.next = e.next
	if it.next == nil {
		it.advance()
	}
	it.current = e
	return e.key, e.value, nil
}

// Remove 通过哈希表自身的摘链流程删除当前结点，之后重新记录快照，
// 使迭代可以继续
func (it *Iterator[V]) Remove() error {
	if it.current == nil {
		return ErrIllegalState
	}
	if it.m.modCount != it.expectedModCount {
		return ErrConcurrentModification
	}
	key := it.current.key
	it.current = nil
	it.m.Remove(key)
	it.expectedModCount = it.m.modCount
	return nil
}

func (it *Iterator[V]) advance() {
	tab := it.m.table
	for it.index < len(tab) {
		it.next = tab[it.index]
		it.index++
		if it.next != nil {
			return
		}
	}
}
