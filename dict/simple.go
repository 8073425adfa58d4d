package dict

// SimpleIntMap 是内置 map 的薄封装，作为 IntMap 的参照实现
type SimpleIntMap[V any] struct {
	data map[int32]V
}

func NewSimpleIntMap[V any]() *SimpleIntMap[V] {
	return &SimpleIntMap[V]{data: make(map[int32]V)}
}

func (m *SimpleIntMap[V]) Size() int {
	if m.data == nil {
		panic("Nil map")
	}
	return len(m.data)
}

func (m *SimpleIntMap[V]) IsEmpty() bool {
	return m.Size() == 0
}

func (m *SimpleIntMap[V]) Put(key int32, value V) (prev V, existed bool) {
	if m.data == nil {
		panic("Nil map")
	}
	prev, existed = m.data[key]
	m.data[key] = value
	return
}

func (m *SimpleIntMap[V]) PutIfAbsent(key int32, value V) (ok bool) {
	if m.data == nil {
		panic("Nil map")
	}
	_, exists := m.data[key]
	if !exists {
		m.data[key] = value
	}
	return !exists
}

func (m *SimpleIntMap[V]) PutIfExists(key int32, value V) (ok bool) {
	if m.data == nil {
		panic("Nil map")
	}
	_, exists := m.data[key]
	if exists {
		m.data[key] = value
	}
	return exists
}

func (m *SimpleIntMap[V]) Get(key int32) (value V, ok bool) {
	if m.data == nil {
		panic("Nil map")
	}
	value, ok = m.data[key]
	return
}

func (m *SimpleIntMap[V]) Remove(key int32) (value V, ok bool) {
	if m.data == nil {
		panic("Nil map")
	}
	value, ok = m.data[key]
	if ok {
		delete(m.data, key)
	}
	return
}

func (m *SimpleIntMap[V]) ContainsKey(key int32) bool {
	_, ok := m.Get(key)
	return ok
}

func (m *SimpleIntMap[V]) ContainsValue(value V, equals EqualsFunc[V]) bool {
	if m.data == nil {
		panic("Nil map")
	}
	if equals == nil {
		panic("Nil equals function")
	}
	for _, v := range m.data {
		if equals(v, value) {
			return true
		}
	}
	return false
}

func (m *SimpleIntMap[V]) PutAll(other IntMap[V]) {
	other.ForEach(func(key int32, value V) bool {
		m.Put(key, value)
		return true
	})
}

func (m *SimpleIntMap[V]) ForEach(p Processor[V]) {
	if m.data == nil {
		panic("Nil map")
	}
	for k, v := range m.data {
		if !p(k, v) {
			break
		}
	}
}

func (m *SimpleIntMap[V]) Keys() []int32 {
	if m.data == nil {
		panic("Nil map")
	}
	res := make([]int32, 0, len(m.data))
	for key := range m.data {
		res = append(res, key)
	}
	return res
}

func (m *SimpleIntMap[V]) Values() []V {
	if m.data == nil {
		panic("Nil map")
	}
	res := make([]V, 0, len(m.data))
	for _, value := range m.data {
		res = append(res, value)
	}
	return res
}

func (m *SimpleIntMap[V]) RandomKeys(nKeys int) []int32 {
	if m.data == nil {
		panic("Nil map")
	}
	res := make([]int32, nKeys)
	for i := 0; i < nKeys; i++ {
		for key := range m.data {
			res[i] = key
			break
		}
	}
	return res
}

func (m *SimpleIntMap[V]) RandomDistinctKeys(nKeys int) []int32 {
	if m.data == nil {
		panic("Nil map")
	}
	if nKeys >= len(m.data) {
		return m.Keys()
	}
	res := make([]int32, 0, nKeys)
	for key := range m.data {
		res = append(res, key)
		if len(res) == nKeys {
			break
		}
	}
	return res
}

func (m *SimpleIntMap[V]) Clear() {
	*m = *NewSimpleIntMap[V]()
}
