package cache

import (
	"math/rand"
	"strconv"
	"sync/atomic"
	"testing"
)

// benchmarkMix exercises a read/write mix against a warm cache.
func benchmarkMix(b *testing.B, eng EngineKind, readsPct int) {
	c, err := New[string, string](Options[string, string]{
		Capacity: 100_000,
		Engine:   eng,
	})
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { _ = c.Close() })

	for i := 0; i < 50_000; i++ {
		k := "k:" + strconv.Itoa(i)
		c.Set(k, "v")
	}

	b.ReportAllocs()
	b.ResetTimer()

	var seed int64 = 1
	keyMask := (1 << 16) - 1

	b.RunParallel(func(pb *testing.PB) {
		r := rand.New(rand.NewSource(atomic.AddInt64(&seed, 1)))
		i := 0
		for pb.Next() {
			k := "k:" + strconv.Itoa(i&keyMask)
			if r.Intn(100) < readsPct {
				c.Get(k)
			} else {
				c.Set(k, "v")
			}
			i++
		}
	})
}

func BenchmarkSieve_90r10w(b *testing.B)  { benchmarkMix(b, SIEVE, 90) }
func BenchmarkSieve_50r50w(b *testing.B)  { benchmarkMix(b, SIEVE, 50) }
func BenchmarkS3FIFO_90r10w(b *testing.B) { benchmarkMix(b, S3FIFO, 90) }
func BenchmarkS3FIFO_50r50w(b *testing.B) { benchmarkMix(b, S3FIFO, 50) }

// benchmarkMixInt is the same workload with int keys, removing
// strconv/alloc noise to better expose the cache hot path.
func benchmarkMixInt(b *testing.B, eng EngineKind, readsPct int) {
	c, err := New[int, int](Options[int, int]{
		Capacity: 100_000,
		Engine:   eng,
	})
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { _ = c.Close() })

	for i := 0; i < 50_000; i++ {
		c.Set(i, 1)
	}

	b.ReportAllocs()
	b.ResetTimer()

	var seed int64 = 1
	keyMask := (1 << 16) - 1

	b.RunParallel(func(pb *testing.PB) {
		r := rand.New(rand.NewSource(atomic.AddInt64(&seed, 1)))
		i := 0
		for pb.Next() {
			k := i & keyMask
			if r.Intn(100) < readsPct {
				c.Get(k)
			} else {
				c.Set(k, 1)
			}
			i++
		}
	})
}

func BenchmarkSieve_IntKeys_90r10w(b *testing.B)  { benchmarkMixInt(b, SIEVE, 90) }
func BenchmarkS3FIFO_IntKeys_90r10w(b *testing.B) { benchmarkMixInt(b, S3FIFO, 90) }
