package rawvec

import "testing"

// Benchmarks compare the arena-backed vector against native slices for
// the access patterns the container is meant for.

func BenchmarkPushBack(b *testing.B) {
	b.ReportAllocs()
	v := New[int]()
	for i := 0; i < b.N; i++ {
		v.PushBack(i)
	}
}

func BenchmarkPushBackPreallocated(b *testing.B) {
	b.ReportAllocs()
	v := New[int]()
	v.Reserve(b.N)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.PushBack(i)
	}
}

func BenchmarkNativeAppend(b *testing.B) {
	b.ReportAllocs()
	var s []int
	for i := 0; i < b.N; i++ {
		s = append(s, i)
	}
	_ = s
}

func BenchmarkInsertFront(b *testing.B) {
	v := New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Insert(0, i)
		if v.Len() == 4096 {
			v.Resize(0)
		}
	}
}

func BenchmarkEraseMiddle(b *testing.B) {
	v := New[int]()
	for i := 0; i < 4096; i++ {
		v.PushBack(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Erase(v.Len() / 2)
		if v.Len() == 0 {
			b.StopTimer()
			for j := 0; j < 4096; j++ {
				v.PushBack(j)
			}
			b.StartTimer()
		}
	}
}

func BenchmarkClone(b *testing.B) {
	b.ReportAllocs()
	v := New[int]()
	for i := 0; i < 1024; i++ {
		v.PushBack(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c, err := v.Clone()
		if err != nil {
			b.Fatal(err)
		}
		c.Release()
	}
}

func BenchmarkIterate(b *testing.B) {
	v := New[int]()
	for i := 0; i < 1024; i++ {
		v.PushBack(i)
	}
	b.ResetTimer()
	sum := 0
	for i := 0; i < b.N; i++ {
		for x := range v.Values() {
			sum += x
		}
	}
	_ = sum
}
