// Command afina-bench runs a synthetic read/write workload against a
// storage.Striped cache, dispatched through an executor.Executor worker
// pool, and reports throughput and hit rate.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/namitmax/afina-go/executor"
	"github.com/namitmax/afina-go/internal/util"
	"github.com/namitmax/afina-go/storage"
)

func main() {
	var (
		capBytes = flag.Int("cap-bytes", 64<<20, "total cache byte budget")
		stripes  = flag.Int("stripes", 0, "stripe count (0 = auto)")

		poolLow  = flag.Int("pool-low", runtime.GOMAXPROCS(0), "executor low watermark")
		poolHigh = flag.Int("pool-high", 4*runtime.GOMAXPROCS(0), "executor high watermark")
		poolQ    = flag.Int("pool-queue", 4096, "executor max queue size")

		duration = flag.Duration("duration", 10*time.Second, "benchmark duration")
		readPct  = flag.Int("reads", 80, "read percentage [0..100]")

		keys    = flag.Int("keys", 1_000_000, "keyspace size")
		zipfS   = flag.Float64("zipf-s", 1.1, "Zipf s > 1 (skew)")
		zipfV   = flag.Float64("zipf-v", 1.0, "Zipf v")
		seed    = flag.Int64("seed", time.Now().UnixNano(), "random seed")
		preload = flag.Int("preload", 0, "entries to preload (0 = keys/2)")
	)
	flag.Parse()

	cache, err := newCache(*capBytes, *stripes)
	if err != nil {
		log.Fatalf("afina-bench: %v", err)
	}

	pool := executor.New()
	if err := pool.Start(executor.Config{
		Name:          "afina-bench",
		LowWatermark:  *poolLow,
		HighWatermark: *poolHigh,
		MaxQueueSize:  *poolQ,
	}); err != nil {
		log.Fatalf("afina-bench: %v", err)
	}
	defer pool.Stop(true)

	preloadN := *preload
	if preloadN == 0 {
		preloadN = *keys / 2
	}
	for i := 0; i < preloadN; i++ {
		k := "k:" + strconv.Itoa(i)
		cache.Put([]byte(k), []byte("v"+strconv.Itoa(i)))
	}

	var reads, writes, hits, misses, total uint64
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	keysMax := uint64(*keys - 1)
	var wg sync.WaitGroup
	start := time.Now()

	submitWorker := func(id int) {
		defer wg.Done()
		localR := rand.New(rand.NewSource(*seed + int64(id)*9973))
		localZipf := rand.NewZipf(localR, *zipfS, *zipfV, keysMax)
		keyByZipf := func() []byte {
			return []byte("k:" + strconv.FormatUint(localZipf.Uint64(), 10))
		}

		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			atomic.AddUint64(&total, 1)
			if int(localR.Int31n(100)) < *readPct {
				atomic.AddUint64(&reads, 1)
				if _, ok := cache.Get(keyByZipf()); ok {
					atomic.AddUint64(&hits, 1)
				} else {
					atomic.AddUint64(&misses, 1)
				}
			} else {
				atomic.AddUint64(&writes, 1)
				cache.Set(keyByZipf(), []byte("v"+strconv.Itoa(localR.Int())))
			}
		}
	}

	workerCount := *poolHigh
	wg.Add(workerCount)
	for w := 0; w < workerCount; w++ {
		w := w
		if !pool.Submit(func() { submitWorker(w) }) {
			log.Fatalf("afina-bench: failed to submit load-generator %d", w)
		}
	}
	wg.Wait()
	elapsed := time.Since(start)

	ops := atomic.LoadUint64(&total)
	readsN := atomic.LoadUint64(&reads)
	writesN := atomic.LoadUint64(&writes)
	hitsN := atomic.LoadUint64(&hits)
	missesN := atomic.LoadUint64(&misses)

	hitRate := 0.0
	if readsN > 0 {
		hitRate = float64(hitsN) / float64(readsN) * 100
	}

	fmt.Printf("cap_bytes=%d stripes=%d workers=%d keys=%d dur=%v seed=%d\n",
		*capBytes, cache.StripeCount(), workerCount, *keys, elapsed, *seed)
	fmt.Printf("ops=%d (%.0f ops/s)  reads=%d  writes=%d\n",
		ops, float64(ops)/elapsed.Seconds(), readsN, writesN)
	fmt.Printf("hits=%d  misses=%d  hit-rate=%.2f%%\n", hitsN, missesN, hitRate)

	st := cache.Stats()
	fmt.Printf("entries=%d current_bytes=%d/%d evictions=%d\n",
		st.Entries, st.CurrentBytes, st.MaxBytes, st.Evictions)
}

func newCache(capBytes, stripes int) (*storage.Striped, error) {
	if stripes <= 0 {
		stripes = util.ReasonableShardCount()
	}
	return storage.NewStriped(storage.StripedConfig{
		MaxBytes:    capBytes,
		StripeCount: stripes,
	})
}
