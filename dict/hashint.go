package dict

import (
	"fmt"
	"math"
	"math/rand"
)

const (
	defaultInitialCapacity = 16
	maximumCapacity        = 1 << 30
	defaultLoadFactor      = 0.75
)

// entry 是桶内链表的结点，hash 和 key 创建后不再改变
type entry[V any] struct {
	hash  int32
	key   int32
	value V
	next  *entry[V]
}

// HashIntMap 是以 int32 为 key 的链式哈希表，非线程安全，
// 需要并发访问时应使用 SyncIntMap 包装
type HashIntMap[V any] struct {
	table      []*entry[V]
	size       int
	threshold  int
	loadFactor float64
	modCount   int
}

func NewHashIntMap[V any]() *HashIntMap[V] {
	return &HashIntMap[V]{
		table:      make([]*entry[V], defaultInitialCapacity),
		threshold:  int(defaultInitialCapacity * defaultLoadFactor),
		loadFactor: defaultLoadFactor,
	}
}

func NewHashIntMapWithCapacity[V any](initialCapacity int) *HashIntMap[V] {
	return NewHashIntMapWithCapacityFactor[V](initialCapacity, defaultLoadFactor)
}

func NewHashIntMapWithCapacityFactor[V any](initialCapacity int, loadFactor float64) *HashIntMap[V] {
	if initialCapacity < 0 {
		panic(fmt.Sprintf("Illegal initial capacity: %d", initialCapacity))
	}
	if initialCapacity > maximumCapacity {
		initialCapacity = maximumCapacity
	}
	if loadFactor <= 0 || math.IsNaN(loadFactor) {
		panic(fmt.Sprintf("Illegal load factor: %v", loadFactor))
	}
	// 将容量对齐到不小于 initialCapacity 的 2 的整数次幂
	capacity := 1
	for capacity < initialCapacity {
		capacity <<= 1
	}
	return &HashIntMap[V]{
		table:      make([]*entry[V], capacity),
		threshold:  int(float64(capacity) * loadFactor),
		loadFactor: loadFactor,
	}
}

func NewHashIntMapFrom[V any](other IntMap[V]) *HashIntMap[V] {
	capacity := int(float64(other.Size())/defaultLoadFactor) + 1
	if capacity < defaultInitialCapacity {
		capacity = defaultInitialCapacity
	}
	m := NewHashIntMapWithCapacity[V](capacity)
	other.ForEach(func(key int32, value V) bool {
		m.Put(key, value)
		return true
	})
	return m
}

// spread 是二次哈希，避免低位熵不足的 key 在 2 的整数次幂长度的表上聚集
func spread(key int32) int32 {
	h := uint32(key)
	h ^= (h >> 20) ^ (h >> 12)
	h ^= (h >> 7) ^ (h >> 4)
	return int32(h)
}

func indexFor(hash int32, length int) int {
	return int(uint32(hash)) & (length - 1)
}

func (m *HashIntMap[V]) Size() int {
	if m == nil || m.table == nil {
		panic("Nil map")
	}
	return m.size
}

func (m *HashIntMap[V]) IsEmpty() bool {
	return m.Size() == 0
}

func (m *HashIntMap[V]) Get(key int32) (value V, ok bool) {
	if m == nil || m.table == nil {
		panic("Nil map")
	}
	hash := spread(key)
	for e := m.table[indexFor(hash, len(m.table))]; e != nil; e = e.next {
		if e.hash == hash && e.key == key {
			return e.value, true
		}
	}
	return
}

func (m *HashIntMap[V]) ContainsKey(key int32) bool {
	_, ok := m.Get(key)
	return ok
}

// ContainsValue 线性扫描所有链，value 的相等性由调用方注入
func (m *HashIntMap[V]) ContainsValue(value V, equals EqualsFunc[V]) bool {
	if m == nil || m.table == nil {
		panic("Nil map")
	}
	if equals == nil {
		panic("Nil equals function")
	}
	for _, head := range m.table {
		for e := head; e != nil; e = e.next {
			if equals(e.value, value) {
				return true
			}
		}
	}
	return false
}

// Put 覆盖已有 key 时只替换 value，不算结构性修改
func (m *HashIntMap[V]) Put(key int32, value V) (prev V, existed bool) {
	if m == nil || m.table == nil {
		panic("Nil map")
	}
	hash := spread(key)
	i := indexFor(hash, len(m.table))
	for e := m.table[i]; e != nil; e = e.next {
		if e.hash == hash && e.key == key {
			prev, existed = e.value, true
			e.value = value
			return
		}
	}
	m.modCount++
	m.addEntry(hash, key, value, i)
	return
}

func (m *HashIntMap[V]) PutIfAbsent(key int32, value V) (ok bool) {
	if m.ContainsKey(key) {
		return false
	}
	m.Put(key, value)
	return true
}

func (m *HashIntMap[V]) PutIfExists(key int32, value V) (ok bool) {
	if !m.ContainsKey(key) {
		return false
	}
	m.Put(key, value)
	return true
}

func (m *HashIntMap[V]) Remove(key int32) (value V, ok bool) {
	if m == nil || m.table == nil {
		panic("Nil map")
	}
	hash := spread(key)
	i := indexFor(hash, len(m.table))
	var prev *entry[V]
	for e := m.table[i]; e != nil; e = e.next {
		if e.hash == hash && e.key == key {
			m.modCount++
			m.size--
			if prev == nil {
				m.table[i] = e.next
			} else {
				prev.next = e.next
			}
			e.next = nil
			return e.value, true
		}
		prev = e
	}
	return
}

// PutAll 可能超过阈值时先保守扩容一次，之后逐个 Put
func (m *HashIntMap[V]) PutAll(other IntMap[V]) {
	numKeysToBeAdded := other.Size()
	if numKeysToBeAdded == 0 {
		return
	}
	if numKeysToBeAdded > m.threshold {
		targetCapacity := int(float64(numKeysToBeAdded)/m.loadFactor) + 1
		if targetCapacity > maximumCapacity {
			targetCapacity = maximumCapacity
		}
		newCapacity := len(m.table)
		for newCapacity < targetCapacity {
			newCapacity <<= 1
		}
		if newCapacity > len(m.table) {
			m.resize(newCapacity)
		}
	}
	other.ForEach(func(key int32, value V) bool {
		m.Put(key, value)
		return true
	})
}

func (m *HashIntMap[V]) Clear() {
	if m == nil || m.table == nil {
		panic("Nil map")
	}
	m.modCount++
	for i := range m.table {
		m.table[i] = nil
	}
	m.size = 0
}

func (m *HashIntMap[V]) ForEach(p Processor[V]) {
	if m == nil || m.table == nil {
		panic("Nil map")
	}
	expectedModCount := m.modCount
	tab := m.table
	for i := 0; i < len(tab); i++ {
		for e := tab[i]; e != nil; e = e.next {
			if !p(e.key, e.value) {
				return
			}
			if m.modCount != expectedModCount {
				panic("Concurrent map modification")
			}
		}
	}
}

func (m *HashIntMap[V]) Keys() []int32 {
	res := make([]int32, 0, m.Size())
	m.ForEach(func(key int32, _ V) bool {
		res = append(res, key)
		return true
	})
	return res
}

func (m *HashIntMap[V]) Values() []V {
	res := make([]V, 0, m.Size())
	m.ForEach(func(_ int32, value V) bool {
		res = append(res, value)
		return true
	})
	return res
}

func (m *HashIntMap[V]) RandomKeys(nKeys int) []int32 {
	if nKeys >= m.Size() {
		return m.Keys()
	}
	res := make([]int32, nKeys)
	for i := 0; i < nKeys; {
		e := m.table[rand.Intn(len(m.table))]
		if e != nil {
			res[i] = e.key
			i++
		}
	}
	return res
}

func (m *HashIntMap[V]) RandomDistinctKeys(nKeys int) []int32 {
	if nKeys >= m.Size() {
		return m.Keys()
	}
	picked := NewSimpleIntMap[struct{}]()
	for picked.Size() < nKeys {
		e := m.table[rand.Intn(len(m.table))]
		if e != nil {
			picked.Put(e.key, struct{}{})
		}
	}
	return picked.Keys()
}

// Capacity 返回桶数组长度，供外部持久化协作方使用
func (m *HashIntMap[V]) Capacity() int {
	if m == nil || m.table == nil {
		panic("Nil map")
	}
	return len(m.table)
}

func (m *HashIntMap[V]) LoadFactor() float64 {
	return m.loadFactor
}

func (m *HashIntMap[V]) addEntry(hash, key int32, value V, bucketIndex int) {
	m.table[bucketIndex] = &entry[V]{
		hash:  hash,
		key:   key,
		value: value,
		next:  m.table[bucketIndex],
	}
	m.size++
	if m.size > m.threshold {
		m.resize(2 * len(m.table))
	}
}

// resize 达到最大容量后不再扩容，把阈值固定为 MaxInt32，退化为更长的链
func (m *HashIntMap[V]) resize(newCapacity int) {
	oldCapacity := len(m.table)
	if oldCapacity == maximumCapacity {
		m.threshold = math.MaxInt32
		return
	}
	newTable := make([]*entry[V], newCapacity)
	m.transfer(newTable)
	m.table = newTable
	m.threshold = int(float64(newCapacity) * m.loadFactor)
}

// transfer 把旧表的结点原样重链到新表，不复制结点，链序允许反转
func (m *HashIntMap[V]) transfer(newTable []*entry[V]) {
	newCapacity := len(newTable)
	for j, e := range m.table {
		m.table[j] = nil
		for e != nil {
			next := e.next
			i := indexFor(e.hash, newCapacity)
			e.next = newTable[i]
			newTable[i] = e
			e = next
		}
	}
}
