// Package transaction contains transaction-related use cases.
package transaction

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer(t *testing.T) {
	t.Run("fires once after the delay", func(t *testing.T) {
		d := NewDebouncer(20 * time.Millisecond)
		defer d.Stop()

		var calls int32
		d.Trigger(func() { atomic.AddInt32(&calls, 1) })

		time.Sleep(60 * time.Millisecond)
		if got := atomic.LoadInt32(&calls); got != 1 {
			t.Errorf("calls = %d, want 1", got)
		}
	})

	t.Run("rapid triggers coalesce into the last call", func(t *testing.T) {
		d := NewDebouncer(30 * time.Millisecond)
		defer d.Stop()

		var last int32
		for i := int32(1); i <= 5; i++ {
			v := i
			d.Trigger(func() { atomic.StoreInt32(&last, v) })
			time.Sleep(5 * time.Millisecond)
		}

		time.Sleep(80 * time.Millisecond)
		if got := atomic.LoadInt32(&last); got != 5 {
			t.Errorf("last = %d, want 5", got)
		}
	})

	t.Run("Stop cancels the pending call", func(t *testing.T) {
		d := NewDebouncer(20 * time.Millisecond)

		var calls int32
		d.Trigger(func() { atomic.AddInt32(&calls, 1) })
		d.Stop()

		time.Sleep(60 * time.Millisecond)
		if got := atomic.LoadInt32(&calls); got != 0 {
			t.Errorf("calls = %d, want 0 after Stop", got)
		}
	})

	t.Run("Trigger after Stop schedules again", func(t *testing.T) {
		d := NewDebouncer(10 * time.Millisecond)
		defer d.Stop()

		var calls int32
		d.Trigger(func() { atomic.AddInt32(&calls, 1) })
		d.Stop()
		d.Trigger(func() { atomic.AddInt32(&calls, 1) })

		time.Sleep(50 * time.Millisecond)
		if got := atomic.LoadInt32(&calls); got != 1 {
			t.Errorf("calls = %d, want 1", got)
		}
	})
}
