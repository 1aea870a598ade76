// Copyright (c) 2026 Keziah Biermann
// This package is licensed under a BSD license that can be found in the LICENSE file.

// Package timeoutio implements timeout-bounded I/O on raw file and socket
// descriptors, based on select readiness multiplexing.
package timeoutio

import (
	"errors"
	"io"
	"os"
	"syscall"
	"time"
)

// Descriptor identifies an OS I/O endpoint: a file descriptor on UNIX or a
// SOCKET handle on Windows. Descriptors are owned by the caller; this
// package never opens or closes them.
type Descriptor uint64

// InvalidDescriptor marks the absence of a descriptor. It is never a valid
// descriptor value.
const InvalidDescriptor = ^Descriptor(0)

// EventMask is a bitset of I/O events, used both to request interest in
// events and to report observed readiness.
type EventMask uint8

const (
	// EventRead indicates readability.
	EventRead EventMask = 1 << iota
	// EventWrite indicates writability.
	EventWrite
	// EventError indicates an exceptional condition on the descriptor.
	EventError
)

// EventNone is the empty event mask.
const EventNone EventMask = 0

// Entry pairs a descriptor with the events to wait for. Wait reads Interest
// and writes Ready; entries keep their position, and duplicate descriptors
// are each updated from the same underlying result.
type Entry struct {
	Fd       Descriptor
	Interest EventMask
	Ready    EventMask
}

// EOF is the error returned by Read when no more input is available.
var EOF = io.EOF

// ErrTimeout is returned when a deadline expires before the operation
// completes.
var ErrTimeout = os.ErrDeadlineExceeded

// ErrUnsupported is returned on platforms without a readiness backend.
var ErrUnsupported = errors.ErrUnsupported

// ErrSetSize is returned when a descriptor does not fit the native select
// set, either by value or by count.
var ErrSetSize = errors.New("Descriptor outside select set limits")

// ErrPatternNotFound is returned by ReadUntil when the buffer fills up
// before the pattern occurs.
var ErrPatternNotFound = errors.New("Pattern not found")

// ErrInvalidAddress is returned for addresses that cannot be parsed.
var ErrInvalidAddress = errors.New("Invalid address")

// ErrNoAddress is returned when a lookup yields no usable address.
var ErrNoAddress = errors.New("No address found")

// Errno returns the platform error code carried by err. The native select
// APIs report failures through an ambient last-error value; here the code is
// captured at the failing call and travels with the returned error instead.
func Errno(err error) (syscall.Errno, bool) {
	var code syscall.Errno
	if errors.As(err, &code) {
		return code, true
	}
	return 0, false
}

// deadline is the absolute expiry of an operation. The zero deadline never
// expires.
type deadline struct {
	when time.Time
}

func newDeadline(timeout time.Duration) deadline {
	if timeout < 0 {
		return deadline{}
	}
	return deadline{when: time.Now().Add(timeout)}
}

// remaining returns the time left until expiry clamped to zero, or a
// negative duration if the deadline never expires.
func (d deadline) remaining() time.Duration {
	if d.when.IsZero() {
		return -1
	}
	if left := time.Until(d.when); left > 0 {
		return left
	}
	return 0
}
