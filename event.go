// Copyright (c) 2026 Keziah Biermann
// This package is licensed under a BSD license that can be found in the LICENSE file.

package timeoutio

import (
	"time"
)

// WaitReadable blocks until the descriptor is ready for reading or an error
// condition is pending on it, or until timeout elapses. It returns
// ErrTimeout when neither event arrived in time.
func (d Descriptor) WaitReadable(timeout time.Duration) error {
	return d.waitEvent(EventRead, timeout)
}

// WaitWritable blocks until the descriptor is ready for writing or an error
// condition is pending on it, or until timeout elapses. It returns
// ErrTimeout when neither event arrived in time.
func (d Descriptor) WaitWritable(timeout time.Duration) error {
	return d.waitEvent(EventWrite, timeout)
}

// waitEvent waits for the requested event on a single descriptor. The error
// event is always part of the interest so that a broken descriptor does not
// sit out the full timeout.
func (d Descriptor) waitEvent(event EventMask, timeout time.Duration) error {
	entries := [1]Entry{{Fd: d, Interest: event | EventError}}
	if err := Wait(entries[:], timeout); err != nil {
		return err
	}
	if entries[0].Ready == EventNone {
		return ErrTimeout
	}
	return nil
}
