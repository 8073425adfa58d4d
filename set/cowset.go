package set

import "primcoll/list"

// LongConsumer 依次消费集合成员，返回 false 则中止遍历
type LongConsumer func(int64) bool

// CopyOnWriteLongSet 是 CopyOnWriteLongList 之上的集合门面，
// 写时复制使其天然线程安全，迭代基于创建时刻的快照
type CopyOnWriteLongSet struct {
	al *list.CopyOnWriteLongList
}

func NewCopyOnWriteLongSet(members ...int64) *CopyOnWriteLongSet {
	res := &CopyOnWriteLongSet{al: list.NewCopyOnWriteLongList()}
	res.al.AddAllAbsent(members)
	return res
}

func (s *CopyOnWriteLongSet) Size() int {
	return s.al.Size()
}

func (s *CopyOnWriteLongSet) IsEmpty() bool {
	return s.al.IsEmpty()
}

func (s *CopyOnWriteLongSet) Contains(val int64) bool {
	return s.al.Contains(val)
}

func (s *CopyOnWriteLongSet) ContainsAll(vals []int64) bool {
	return s.al.ContainsAll(vals)
}

func (s *CopyOnWriteLongSet) Add(val int64) (ok bool) {
	return s.al.AddIfAbsent(val)
}

func (s *CopyOnWriteLongSet) AddAll(vals []int64) (ok bool) {
	return s.al.AddAllAbsent(vals) > 0
}

func (s *CopyOnWriteLongSet) Remove(val int64) (ok bool) {
	return s.al.Remove(val)
}

func (s *CopyOnWriteLongSet) RemoveAll(vals []int64) (ok bool) {
	return s.al.RemoveAll(vals)
}

func (s *CopyOnWriteLongSet) RetainAll(vals []int64) (ok bool) {
	return s.al.RetainAll(vals)
}

func (s *CopyOnWriteLongSet) Clear() {
	s.al.Clear()
}

func (s *CopyOnWriteLongSet) ToArray() []int64 {
	return s.al.ToArray()
}

func (s *CopyOnWriteLongSet) ForEach(c LongConsumer) {
	s.al.ForEach(func(_ int, val int64) bool {
		return c(val)
	})
}

func (s *CopyOnWriteLongSet) Iterator() *list.LongIterator {
	return s.al.Iterator()
}

// Equal 与元素顺序无关，只比较成员资格。
// O(n^2) 的逐个配对只适合写时复制集合预期的小规模
func (s *CopyOnWriteLongSet) Equal(other *CopyOnWriteLongSet) bool {
	if s == other {
		return true
	}
	if other == nil {
		return false
	}
	elements := s.al.ToArray()
	matched := make([]bool, len(elements))
	k := 0
	ok := true
	other.ForEach(func(val int64) bool {
		k++
		if k > len(elements) {
			ok = false
			return false
		}
		for i, e := range elements {
			if !matched[i] && e == val {
				matched[i] = true
				return true
			}
		}
		ok = false
		return false
	})
	return ok && k == len(elements)
}

func (s *CopyOnWriteLongSet) Intersect(s1 *CopyOnWriteLongSet) *CopyOnWriteLongSet {
	if s == nil {
		panic("Nil set")
	}
	res := NewCopyOnWriteLongSet()
	s.ForEach(func(member int64) bool {
		if s1.Contains(member) {
			res.Add(member)
		}
		return true
	})
	return res
}

func (s *CopyOnWriteLongSet) Union(s1 *CopyOnWriteLongSet) *CopyOnWriteLongSet {
	if s == nil {
		panic("Nil set")
	}
	res := NewCopyOnWriteLongSet()
	addFunc := func(member int64) bool {
		res.Add(member)
		return true
	}
	s.ForEach(addFunc)
	s1.ForEach(addFunc)
	return res
}

func (s *CopyOnWriteLongSet) Diff(s1 *CopyOnWriteLongSet) *CopyOnWriteLongSet {
	if s == nil {
		panic("Nil set")
	}
	res := NewCopyOnWriteLongSet()
	s.ForEach(func(member int64) bool {
		if !s1.Contains(member) {
			res.Add(member)
		}
		return true
	})
	return res
}
