package dict

import (
	"sync/atomic"
	"testing"
	"time"
)

const benchMask = (1 << 20) - 1

var benchSink atomic.Value

/* Algorithm "xor" from p. 4 of Marsaglia, "Xorshift RNGs" */
func xorshift(r int) int {
	r ^= r << 13
	r ^= r >> 17
	r ^= r << 5
	return r & 0x7fffffff
}

func BenchmarkHashIntMapPut(b *testing.B) {
	m := NewHashIntMap[int]()
	r := time.Now().Nanosecond()
	for i := 0; i < b.N; i++ {
		r = xorshift(r)
		m.Put(int32(r&benchMask), r)
	}
}

func BenchmarkHashIntMapGet(b *testing.B) {
	m := NewHashIntMap[int]()
	for k := int32(0); k <= benchMask; k++ {
		m.Put(k, int(k))
	}
	r := time.Now().Nanosecond()
	var sum int
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r = xorshift(r)
		v, _ := m.Get(int32(r & benchMask))
		sum += v
	}
	benchSink.Store(sum)
}

func BenchmarkHashIntMapPutGet(b *testing.B) {
	m := NewHashIntMap[int]()
	r := time.Now().Nanosecond()
	var sum int
	for i := 0; i < b.N; i++ {
		r = xorshift(r)
		m.Put(int32(r&benchMask), r)
		r = xorshift(r)
		v, _ := m.Get(int32(r & benchMask))
		sum += v
	}
	benchSink.Store(sum)
}

func BenchmarkSimpleIntMapPut(b *testing.B) {
	m := NewSimpleIntMap[int]()
	r := time.Now().Nanosecond()
	for i := 0; i < b.N; i++ {
		r = xorshift(r)
		m.Put(int32(r&benchMask), r)
	}
}

func BenchmarkSimpleIntMapGet(b *testing.B) {
	m := NewSimpleIntMap[int]()
	for k := int32(0); k <= benchMask; k++ {
		m.Put(k, int(k))
	}
	r := time.Now().Nanosecond()
	var sum int
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r = xorshift(r)
		v, _ := m.Get(int32(r & benchMask))
		sum += v
	}
	benchSink.Store(sum)
}
