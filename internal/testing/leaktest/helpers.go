// Package leaktest holds test helpers that flag goroutines or heap left
// behind by the code under test.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleTimeout = 500 * time.Millisecond
	pollInterval  = 10 * time.Millisecond
)

// goroutinesSettle polls until at most target goroutines run or the
// timeout passes, returning the last count seen.
func goroutinesSettle(target int, timeout time.Duration) int {
	deadline := time.Now().Add(timeout)
	n := runtime.NumGoroutine()
	for n > target && time.Now().Before(deadline) {
		runtime.Gosched()
		time.Sleep(pollInterval)
		n = runtime.NumGoroutine()
	}
	return n
}

// GoroutineChecker compares the goroutine count before and after a test body.
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count.
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{before: runtime.NumGoroutine(), t: t}
}

// Check fails the test when more than tolerance goroutines outlive the
// body once they had settleTimeout to exit.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	after := goroutinesSettle(g.before+tolerance, settleTimeout)
	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and requires every goroutine it started to exit.
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// HeapChecker compares live heap before and after a test body.
type HeapChecker struct {
	before uint64
	t      testing.TB
}

func liveHeap() uint64 {
	runtime.GC()
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.HeapAlloc
}

// NewHeapChecker records the live heap after a collection.
func NewHeapChecker(t testing.TB) *HeapChecker {
	t.Helper()
	return &HeapChecker{before: liveHeap(), t: t}
}

// Check fails the test when the live heap grew by more than maxGrowthMB.
func (h *HeapChecker) Check(maxGrowthMB float64) {
	h.t.Helper()

	after := liveHeap()
	if after <= h.before {
		return
	}
	growthMB := float64(after-h.before) / (1 << 20)
	if growthMB > maxGrowthMB {
		h.t.Errorf("Potential memory leak: heap grew %.2fMB (max=%.2fMB)", growthMB, maxGrowthMB)
	}
}

// CheckNoHeapGrowth runs fn and bounds the live heap it leaves behind.
func CheckNoHeapGrowth(t testing.TB, maxGrowthMB float64, fn func()) {
	t.Helper()

	checker := NewHeapChecker(t)
	fn()
	checker.Check(maxGrowthMB)
}
