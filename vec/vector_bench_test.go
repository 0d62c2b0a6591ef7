package vec

import (
	"testing"
	"time"
)

var sinkInt int

func BenchmarkPush_NaturalGrowth(b *testing.B) {
	const count = 1000
	b.ReportAllocs()
	b.ResetTimer()

	start := time.Now()
	for i := 0; i < b.N; i++ {
		v := New[int]()
		for j := 0; j < count; j++ {
			_ = v.Push(j)
		}
		sinkInt = v.Len()
	}
	elapsed := time.Since(start)

	b.StopTimer()
	perPush := float64(elapsed.Nanoseconds()) / float64(b.N*count)
	opsPerSec := 1e9 / perPush
	b.Logf("NaturalGrowth: per-push = %.2f ns/op, %.2f ops/sec", perPush, opsPerSec)
}

func BenchmarkPush_Hinted(b *testing.B) {
	const count = 1000
	b.ReportAllocs()
	b.ResetTimer()

	start := time.Now()
	for i := 0; i < b.N; i++ {
		v, _ := NewWithHint[int](Reserve(count))
		for j := 0; j < count; j++ {
			_ = v.Push(j)
		}
		sinkInt = v.Len()
	}
	elapsed := time.Since(start)

	b.StopTimer()
	perPush := float64(elapsed.Nanoseconds()) / float64(b.N*count)
	opsPerSec := 1e9 / perPush
	b.Logf("Hinted: per-push = %.2f ns/op, %.2f ops/sec", perPush, opsPerSec)
}

func BenchmarkPush_Pooled(b *testing.B) {
	const count = 1000
	pool := NewPool[int]()

	b.ReportAllocs()
	b.ResetTimer()

	start := time.Now()
	for i := 0; i < b.N; i++ {
		v := pool.Get()
		for j := 0; j < count; j++ {
			_ = v.Push(j)
		}
		sinkInt = v.Len()
		pool.Put(v)
	}
	elapsed := time.Since(start)

	b.StopTimer()
	perPush := float64(elapsed.Nanoseconds()) / float64(b.N*count)
	opsPerSec := 1e9 / perPush
	b.Logf("Pooled: per-push = %.2f ns/op, %.2f ops/sec", perPush, opsPerSec)
}

func BenchmarkPush_AppendBaseline(b *testing.B) {
	const count = 1000
	b.ReportAllocs()
	b.ResetTimer()

	start := time.Now()
	for i := 0; i < b.N; i++ {
		var s []int
		for j := 0; j < count; j++ {
			s = append(s, j)
		}
		sinkInt = len(s)
	}
	elapsed := time.Since(start)

	b.StopTimer()
	perPush := float64(elapsed.Nanoseconds()) / float64(b.N*count)
	opsPerSec := 1e9 / perPush
	b.Logf("AppendBaseline: per-push = %.2f ns/op, %.2f ops/sec", perPush, opsPerSec)
}

func BenchmarkInsertFront(b *testing.B) {
	const count = 1000
	b.ReportAllocs()
	b.ResetTimer()

	start := time.Now()
	for i := 0; i < b.N; i++ {
		v, _ := NewWithHint[int](Reserve(count))
		for j := 0; j < count; j++ {
			_, _ = v.Insert(0, j)
		}
		sinkInt = v.Len()
	}
	elapsed := time.Since(start)

	b.StopTimer()
	perInsert := float64(elapsed.Nanoseconds()) / float64(b.N*count)
	b.Logf("InsertFront: per-insert = %.2f ns/op", perInsert)
}

func BenchmarkGetUncheckedVsChecked(b *testing.B) {
	const count = 1000
	v, _ := NewSize[int](count)
	for i := 0; i < count; i++ {
		v.Set(i, i)
	}

	b.Run("Get", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			for j := 0; j < count; j++ {
				sinkInt = v.Get(j)
			}
		}
	})

	b.Run("At", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			for j := 0; j < count; j++ {
				x, _ := v.At(j)
				sinkInt = x
			}
		}
	})
}
