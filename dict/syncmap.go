package dict

import "sync"

// SyncIntMap 用一把读写锁包装任意 IntMap，为单线程实现提供外部互斥边界
type SyncIntMap[V any] struct {
	mu    sync.RWMutex
	inner IntMap[V]
}

func NewSyncIntMap[V any](inner IntMap[V]) *SyncIntMap[V] {
	if inner == nil {
		panic("Nil map")
	}
	return &SyncIntMap[V]{inner: inner}
}

func (m *SyncIntMap[V]) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.inner.Size()
}

func (m *SyncIntMap[V]) IsEmpty() bool {
	return m.Size() == 0
}

func (m *SyncIntMap[V]) Put(key int32, value V) (prev V, existed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inner.Put(key, value)
}

func (m *SyncIntMap[V]) PutIfAbsent(key int32, value V) (ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inner.PutIfAbsent(key, value)
}

func (m *SyncIntMap[V]) PutIfExists(key int32, value V) (ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inner.PutIfExists(key, value)
}

func (m *SyncIntMap[V]) Get(key int32) (value V, ok bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.inner.Get(key)
}

func (m *SyncIntMap[V]) Remove(key int32) (value V, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inner.Remove(key)
}

func (m *SyncIntMap[V]) ContainsKey(key int32) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.inner.ContainsKey(key)
}

func (m *SyncIntMap[V]) PutAll(other IntMap[V]) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inner.PutAll(other)
}

// ForEach 在读锁内回调，回调中不可再对本 map 做写操作
func (m *SyncIntMap[V]) ForEach(p Processor[V]) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.inner.ForEach(p)
}

func (m *SyncIntMap[V]) Keys() []int32 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.inner.Keys()
}

func (m *SyncIntMap[V]) Values() []V {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.inner.Values()
}

func (m *SyncIntMap[V]) RandomKeys(nKeys int) []int32 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.inner.RandomKeys(nKeys)
}

func (m *SyncIntMap[V]) RandomDistinctKeys(nKeys int) []int32 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.inner.RandomDistinctKeys(nKeys)
}

func (m *SyncIntMap[V]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inner.Clear()
}
