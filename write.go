// Copyright (c) 2026 Keziah Biermann
// This package is licensed under a BSD license that can be found in the LICENSE file.

package timeoutio

import (
	"time"
)

// Write executes one write of as much of data as possible within timeout and
// returns the number of bytes written. It is meant for packet-like endpoints
// where a single write is atomic. Interrupted and would-block results are
// absorbed by waiting for readiness again until the deadline. Empty data
// returns immediately.
//
// Write switches the descriptor to non-blocking mode and leaves it there;
// restoring the previous mode is up to the caller.
func (d Descriptor) Write(data []byte, timeout time.Duration) (int, error) {
	if err := d.SetBlocking(false); err != nil {
		return 0, err
	}
	if len(data) == 0 {
		return 0, nil
	}
	expiry := newDeadline(timeout)
	for {
		if err := d.WaitWritable(expiry.remaining()); err != nil {
			return 0, err
		}
		n, err := sysWrite(d, data)
		if err != nil {
			if retryable(err) {
				continue
			}
			return 0, err
		}
		if n > 0 {
			return n, nil
		}
	}
}

// WriteFull writes all of data or fails with the first error, typically
// ErrTimeout once the deadline passes mid-stream. It is meant for
// stream-like endpoints where partial writes are common.
//
// WriteFull switches the descriptor to non-blocking mode and leaves it
// there.
func (d Descriptor) WriteFull(data []byte, timeout time.Duration) error {
	if err := d.SetBlocking(false); err != nil {
		return err
	}
	expiry := newDeadline(timeout)
	for len(data) > 0 {
		if err := d.WaitWritable(expiry.remaining()); err != nil {
			return err
		}
		n, err := sysWrite(d, data)
		if err != nil {
			if retryable(err) {
				continue
			}
			return err
		}
		data = data[n:]
	}
	return nil
}
