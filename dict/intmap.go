package dict

// Processor 依次处理每个键值对，返回 false 则中止遍历
type Processor[V any] func(int32, V) bool

// EqualsFunc 判断两个 value 是否相等
type EqualsFunc[V any] func(a, b V) bool

type IntMap[V any] interface {
	Size() int
	IsEmpty() bool
	Put(key int32, value V) (prev V, existed bool)
	PutIfAbsent(key int32, value V) (ok bool)
	PutIfExists(key int32, value V) (ok bool)
	Get(key int32) (value V, ok bool)
	Remove(key int32) (value V, ok bool)
	ContainsKey(key int32) bool
	PutAll(other IntMap[V])
	ForEach(p Processor[V])
	Keys() []int32
	Values() []V
	RandomKeys(nKeys int) []int32
	RandomDistinctKeys(nKeys int) []int32
	Clear()
}
