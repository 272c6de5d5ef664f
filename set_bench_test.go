package hashset

import "testing"

func setupBenchData(n int) []uint64 {
	data := make([]uint64, n)
	for i := range n {
		data[i] = uint64(i * 1234567)
	}
	return data
}

func benchSet(b *testing.B, p Policy) *Set[uint64] {
	b.Helper()
	const capacity = 8192
	keys := setupBenchData(capacity / 2)
	s, err := New[uint64](capacity, DefaultHash[uint64], WithPolicy[uint64](p))
	if err != nil {
		b.Fatal(err)
	}
	for _, k := range keys {
		_ = s.Insert(k)
	}
	return s
}

func BenchmarkSet_Contains_Scalar(b *testing.B) {
	s := benchSet(b, Scalar)
	for i := 0; b.Loop(); i++ {
		s.Contains(uint64(i))
	}
}

func BenchmarkSet_Contains_SIMD16(b *testing.B) {
	s := benchSet(b, SIMD16)
	for i := 0; b.Loop(); i++ {
		s.Contains(uint64(i))
	}
}

func BenchmarkSet_Contains_SIMD32(b *testing.B) {
	s := benchSet(b, SIMD32)
	for i := 0; b.Loop(); i++ {
		s.Contains(uint64(i))
	}
}

func BenchmarkStdMap_Contains(b *testing.B) {
	const capacity = 8192
	keys := setupBenchData(capacity / 2)
	m := make(map[uint64]struct{}, capacity)
	for _, k := range keys {
		m[k] = struct{}{}
	}

	for i := 0; b.Loop(); i++ {
		_ = m[uint64(i)]
	}
}

func BenchmarkSet_Insert(b *testing.B) {
	const capacity = 8192
	keys := setupBenchData(capacity)
	s, err := New[uint64](capacity, DefaultHash[uint64])
	if err != nil {
		b.Fatal(err)
	}

	for i := 0; b.Loop(); i++ {
		if s.Count() >= int(float64(s.Capacity())*maxLoadFactor) {
			b.StopTimer()
			s.Reset()
			b.StartTimer()
		}
		_ = s.Insert(keys[i%len(keys)])
	}
}

func BenchmarkStdMap_Insert(b *testing.B) {
	const capacity = 8192
	keys := setupBenchData(capacity)
	m := make(map[uint64]struct{}, capacity)

	for i := 0; b.Loop(); i++ {
		if len(m) >= int(float64(capacity)*maxLoadFactor) {
			b.StopTimer()
			for k := range m {
				delete(m, k)
			}
			b.StartTimer()
		}
		m[keys[i%len(keys)]] = struct{}{}
	}
}

func BenchmarkSet_Remove(b *testing.B) {
	const size = 1000
	s, err := New[int](size, DefaultHash[int])
	if err != nil {
		b.Fatal(err)
	}
	for i := range size {
		_ = s.Insert(i)
	}

	for i := 0; b.Loop(); i++ {
		s.Remove(i % size)
	}
}

func BenchmarkStdMap_Delete(b *testing.B) {
	const size = 1000
	m := make(map[int]struct{}, size)
	for i := range size {
		m[i] = struct{}{}
	}

	for i := 0; b.Loop(); i++ {
		delete(m, i%size)
	}
}
