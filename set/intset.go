package set

import "primcoll/dict"

// IntConsumer 依次消费集合成员，返回 false 则中止遍历
type IntConsumer func(int32) bool

// IntHashSet 是 IntMap 之上的集合门面，与底层哈希表一样非线程安全
type IntHashSet struct {
	m dict.IntMap[struct{}]
}

func NewIntHashSet(members ...int32) *IntHashSet {
	res := &IntHashSet{m: dict.NewHashIntMap[struct{}]()}
	for _, member := range members {
		res.Add(member)
	}
	return res
}

func (s *IntHashSet) Size() int {
	return s.m.Size()
}

func (s *IntHashSet) IsEmpty() bool {
	return s.m.IsEmpty()
}

func (s *IntHashSet) Add(val int32) (ok bool) {
	return s.m.PutIfAbsent(val, struct{}{})
}

func (s *IntHashSet) Contains(val int32) bool {
	return s.m.ContainsKey(val)
}

func (s *IntHashSet) Remove(val int32) (ok bool) {
	_, ok = s.m.Remove(val)
	return
}

func (s *IntHashSet) Clear() {
	s.m.Clear()
}

func (s *IntHashSet) ForEach(c IntConsumer) {
	s.m.ForEach(func(key int32, _ struct{}) bool {
		return c(key)
	})
}

func (s *IntHashSet) Members() []int32 {
	res := make([]int32, 0, s.m.Size())
	s.m.ForEach(func(key int32, _ struct{}) bool {
		res = append(res, key)
		return true
	})
	return res
}

func (s *IntHashSet) RandomMembers(nMembers int) []int32 {
	return s.m.RandomKeys(nMembers)
}

func (s *IntHashSet) RandomDistinctMembers(nMembers int) []int32 {
	return s.m.RandomDistinctKeys(nMembers)
}

func (s *IntHashSet) Intersect(s1 *IntHashSet) *IntHashSet {
	if s == nil {
		panic("Nil set")
	}
	res := NewIntHashSet()
	s.ForEach(func(member int32) bool {
		if s1.Contains(member) {
			res.Add(member)
		}
		return true
	})
	return res
}

func (s *IntHashSet) Union(s1 *IntHashSet) *IntHashSet {
	if s == nil {
		panic("Nil set")
	}
	res := NewIntHashSet()
	addFunc := func(member int32) bool {
		res.Add(member)
		return true
	}
	s.ForEach(addFunc)
	s1.ForEach(addFunc)
	return res
}

func (s *IntHashSet) Diff(s1 *IntHashSet) *IntHashSet {
	if s == nil {
		panic("Nil set")
	}
	res := NewIntHashSet()
	s.ForEach(func(member int32) bool {
		if !s1.Contains(member) {
			res.Add(member)
		}
		return true
	})
	return res
}
