// core/pairwise/run.go
package pairwise

import (
	"runtime"
	"sync"
	"sync/atomic"

	"psdm-core/hamming"
)

// Runner maps planned pairs to distances on a fixed-size worker pool.
//
// Threads <= 0 sizes the pool to all available CPUs; the size is fixed for
// the whole batch. OnProgress, when set, is called after every completed
// pair with the running count and the total. It may be called from several
// workers at once and must tolerate that; the count itself is maintained
// with an atomic increment so no update is lost.
type Runner struct {
	Threads    int
	OnProgress func(done, total int64)
}

// SelfDistances computes distances for pairs planned by SelfPairs over one
// alignment. Diagonal pairs short-circuit to 0 without touching the
// distance kernel.
func (r *Runner) SelfDistances(pairs []Pair, seqs [][]byte) []uint64 {
	return r.run(pairs, func(p Pair) uint64 {
		if p.A == p.B {
			return 0
		}
		return hamming.Distance(seqs[p.A], seqs[p.B])
	})
}

// CrossDistances computes distances for pairs planned by CrossPairs:
// primary[A] against secondary[B].
func (r *Runner) CrossDistances(pairs []Pair, primary, secondary [][]byte) []uint64 {
	return r.run(pairs, func(p Pair) uint64 {
		return hamming.Distance(primary[p.A], secondary[p.B])
	})
}

// run feeds pair indices to the pool and waits for the whole batch: there is
// no cancellation and no partial result. The result slice is addressed by
// the same index as the input pair no matter which worker computed it or in
// what order work finished; workers write disjoint slots, so the only shared
// mutable state is the progress counter.
func (r *Runner) run(pairs []Pair, f func(Pair) uint64) []uint64 {
	threads := r.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	out := make([]uint64, len(pairs))
	total := int64(len(pairs))
	var done atomic.Int64

	jobs := make(chan int, threads*2)
	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for k := range jobs {
				out[k] = f(pairs[k])
				n := done.Add(1)
				if r.OnProgress != nil {
					r.OnProgress(n, total)
				}
			}
		}()
	}

	for k := range pairs {
		jobs <- k
	}
	close(jobs)
	wg.Wait()
	return out
}
