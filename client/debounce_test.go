package client

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncerCoalesces(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	var calls int64
	for i := 0; i < 5; i++ {
		d.Do(func() { atomic.AddInt64(&calls, 1) })
	}
	time.Sleep(150 * time.Millisecond)
	if got := atomic.LoadInt64(&calls); got != 1 {
		t.Errorf("expected a single coalesced call, got %d", got)
	}
}

func TestDebouncerFiresAgainAfterQuiet(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	var calls int64
	d.Do(func() { atomic.AddInt64(&calls, 1) })
	time.Sleep(80 * time.Millisecond)
	d.Do(func() { atomic.AddInt64(&calls, 1) })
	time.Sleep(80 * time.Millisecond)
	if got := atomic.LoadInt64(&calls); got != 2 {
		t.Errorf("expected two separate calls, got %d", got)
	}
}

func TestDebouncerStop(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	var calls int64
	d.Do(func() { atomic.AddInt64(&calls, 1) })
	d.Stop()
	time.Sleep(80 * time.Millisecond)
	if got := atomic.LoadInt64(&calls); got != 0 {
		t.Errorf("Stop must cancel the pending call, got %d", got)
	}
}

func TestDebouncerZeroDelayFallsBack(t *testing.T) {
	d := NewDebouncer(0)
	if d.delay != DefaultSearchDelay {
		t.Errorf("expected the default delay, got %v", d.delay)
	}
}
