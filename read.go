// Copyright (c) 2026 Keziah Biermann
// This package is licensed under a BSD license that can be found in the LICENSE file.

package timeoutio

import (
	"bytes"
	"io"
	"time"
)

// Read executes one read of up to len(buf) bytes within timeout. It is meant
// for packet-like endpoints where a single read is atomic, or when the
// amount of incoming data is unknown. Interrupted and would-block results
// are absorbed by waiting for readiness again until the deadline; a closed
// peer yields EOF. An empty buf returns immediately.
//
// Read switches the descriptor to non-blocking mode and leaves it there;
// restoring the previous mode is up to the caller.
func (d Descriptor) Read(buf []byte, timeout time.Duration) (int, error) {
	if err := d.SetBlocking(false); err != nil {
		return 0, err
	}
	if len(buf) == 0 {
		return 0, nil
	}
	expiry := newDeadline(timeout)
	for {
		if err := d.WaitReadable(expiry.remaining()); err != nil {
			return 0, err
		}
		n, err := sysRead(d, buf)
		if err != nil {
			if retryable(err) {
				continue
			}
			return 0, err
		}
		if n == 0 {
			return 0, EOF
		}
		return n, nil
	}
}

// ReadFull reads until buf is filled completely or timeout elapses. It is
// meant for stream-like endpoints where partial reads are common and the
// expected length is known. A peer that closes before buf is full yields
// EOF if nothing was read, io.ErrUnexpectedEOF otherwise.
//
// ReadFull switches the descriptor to non-blocking mode and leaves it there.
func (d Descriptor) ReadFull(buf []byte, timeout time.Duration) error {
	if err := d.SetBlocking(false); err != nil {
		return err
	}
	expiry := newDeadline(timeout)
	total := 0
	for total < len(buf) {
		if err := d.WaitReadable(expiry.remaining()); err != nil {
			return err
		}
		n, err := sysRead(d, buf[total:])
		if err != nil {
			if retryable(err) {
				continue
			}
			return err
		}
		if n == 0 {
			if total > 0 {
				return io.ErrUnexpectedEOF
			}
			return EOF
		}
		total += n
	}
	return nil
}

// ReadUntil reads one byte at a time until buf ends with pattern, buf is
// full, or timeout elapses. It returns the number of bytes read; when buf
// fills up without a match the error is ErrPatternNotFound. Reading byte by
// byte keeps the descriptor's stream position exactly one past the pattern,
// at the cost of one readiness wait per byte.
//
// ReadUntil switches the descriptor to non-blocking mode and leaves it
// there.
func (d Descriptor) ReadUntil(pattern, buf []byte, timeout time.Duration) (int, error) {
	expiry := newDeadline(timeout)
	total := 0
	for total < len(buf) {
		if err := d.ReadFull(buf[total:total+1], expiry.remaining()); err != nil {
			if err == EOF && total > 0 {
				err = io.ErrUnexpectedEOF
			}
			return total, err
		}
		total++
		if total >= len(pattern) && bytes.HasSuffix(buf[:total], pattern) {
			return total, nil
		}
	}
	return total, ErrPatternNotFound
}
