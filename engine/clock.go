package engine

import (
	"context"
	"time"

	"golang.org/x/sys/unix"

	"microkernel-go/abi"
)

// monotonicNow reads CLOCK_MONOTONIC directly rather than time.Now(), the
// same "don't trust the wall clock" stance the teacher takes when sizing a
// PTY or timing a container signal: the kernel's Timestamp is a tick count
// that must never jump backward across an NTP step, which time.Now() alone
// doesn't guarantee on every platform the way CLOCK_MONOTONIC does.
func monotonicNow() abi.Timestamp {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return 0
	}
	return abi.Timestamp(ts.Sec)*1000 + abi.Timestamp(ts.Nsec)/1_000_000
}

// RunClock drives Tick at the given interval off the monotonic clock until
// ctx is canceled. It is the simulated hardware timer interrupt source:
// nothing else in this repo reads wall-clock time.
func (e *Engine) RunClock(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			e.Tick(ctx, monotonicNow())
		case <-ctx.Done():
			return
		}
	}
}
