package debounce

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	var calls int64
	d := New(30*time.Millisecond, func() { atomic.AddInt64(&calls, 1) })
	defer d.Stop()

	for i := 0; i < 10; i++ {
		d.Trigger()
	}

	time.Sleep(120 * time.Millisecond)
	require.EqualValues(t, 1, atomic.LoadInt64(&calls))
}

func TestDebouncer_FiresAgainAfterQuiet(t *testing.T) {
	var calls int64
	d := New(20*time.Millisecond, func() { atomic.AddInt64(&calls, 1) })
	defer d.Stop()

	d.Trigger()
	time.Sleep(80 * time.Millisecond)
	d.Trigger()
	time.Sleep(80 * time.Millisecond)

	require.EqualValues(t, 2, atomic.LoadInt64(&calls))
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	var calls int64
	d := New(30*time.Millisecond, func() { atomic.AddInt64(&calls, 1) })

	d.Trigger()
	d.Stop()

	time.Sleep(100 * time.Millisecond)
	require.EqualValues(t, 0, atomic.LoadInt64(&calls))
}
