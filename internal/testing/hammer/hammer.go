// Package hammer runs a test body from many goroutines at once, to expose data races under -race.
package hammer

import (
	"runtime"
	"sync"
	"testing"
)

// Run invokes test concurrently in P goroutines, each looping N times. All goroutines are started before any of
// them calls test. A panic in test fails t instead of crashing the binary.
//
// Assert with assert, not require, inside test: FailNow cannot stop the test from another goroutine, so a
// goroutine that exits early is reported as an error.
//
// Here's an example:
//
//	P, N := 8, 1000
//	if testing.Short() {
//		P, N = 4, 100
//	}
//	hammer.Run(t, P, N, func(p, n int) {
//		// decode something shared
//	})
//	if t.Failed() {
//		return
//	}
func Run(t testing.TB, P, N int, test func(p, n int)) {
	t.Helper()
	// Ensure goroutines have to switch cores.
	defer runtime.GOMAXPROCS(runtime.GOMAXPROCS(max(P/2, 1)))

	start := make(chan struct{})
	var ready, done sync.WaitGroup
	ready.Add(P)
	done.Add(P)
	for p := 0; p < P; p++ {
		p := p
		go func() {
			defer done.Done()
			n := 0
			defer func() {
				if recovered := recover(); recovered != nil {
					t.Errorf("goroutine %d panicked at iteration %d: %v", p, n, recovered)
				} else if n < N {
					t.Errorf("goroutine %d exited at iteration %d of %d", p, n, N)
				}
			}()
			ready.Done()
			<-start
			for ; n < N; n++ {
				test(p, n)
			}
		}()
	}

	ready.Wait()
	close(start)
	done.Wait()
}
