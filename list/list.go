package list

// Consumer 依次消费下标和元素，返回 false 则中止遍历
type Consumer func(index int, val int64) bool

type LongList interface {
	Size() int
	IsEmpty() bool
	Get(index int) int64
	Set(index int, val int64) (old int64)
	Contains(val int64) bool
	ContainsAll(vals []int64) bool
	IndexOf(val int64) int
	Add(val int64)
	AddIfAbsent(val int64) (ok bool)
	AddAllAbsent(vals []int64) (added int)
	Remove(val int64) (ok bool)
	RemoveAt(index int) int64
	RemoveAll(vals []int64) (changed bool)
	RetainAll(vals []int64) (changed bool)
	ForEach(c Consumer)
	ToArray() []int64
	Clear()
}
