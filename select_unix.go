// Copyright (c) 2026 Keziah Biermann
// This package is licensed under a BSD license that can be found in the LICENSE file.

//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd
// +build linux darwin dragonfly freebsd netbsd openbsd

package timeoutio

import (
	"time"

	"golang.org/x/sys/unix"
)

// Backend is the readiness backend compiled into this build.
var Backend = "select"

// fdSetLimit is the highest number of descriptors the native select set
// holds. Descriptors must also be smaller than this value, because POSIX
// select addresses its sets by descriptor value.
const fdSetLimit = unix.FD_SETSIZE

// Wait blocks until at least one descriptor in entries is ready for an event
// it registered interest in, or until timeout elapses. A zero timeout polls
// without blocking and a negative timeout blocks indefinitely.
//
// On success every entry's Ready field is rewritten from the native result
// sets, position by position; a descriptor is only reported ready for events
// some entry registered it for, and duplicate descriptors converge to the
// same result. An empty entries slice turns the call into a plain sleep.
// On failure the platform error is returned and no Ready field is modified.
// Wait never retries: an interrupted call surfaces unix.EINTR to the caller.
func Wait(entries []Entry, timeout time.Duration) error {
	var readSet, writeSet, errorSet unix.FdSet
	readSet.Zero()
	writeSet.Zero()
	errorSet.Zero()
	// The highest descriptor bounds the kernel's scan through the sets.
	highest := 0
	for i := range entries {
		if entries[i].Fd >= fdSetLimit {
			return ErrSetSize
		}
		fd := int(entries[i].Fd)
		interest := entries[i].Interest
		if interest&EventRead != 0 {
			readSet.Set(fd)
		}
		if interest&EventWrite != 0 {
			writeSet.Set(fd)
		}
		if interest&EventError != 0 {
			errorSet.Set(fd)
		}
		if fd > highest {
			highest = fd
		}
	}
	var timeval *unix.Timeval
	if timeout >= 0 {
		t := unix.NsecToTimeval(timeout.Nanoseconds())
		timeval = &t
	}
	if _, err := unix.Select(highest+1, &readSet, &writeSet, &errorSet, timeval); err != nil {
		return err
	}
	for i := range entries {
		fd := int(entries[i].Fd)
		entries[i].Ready = EventNone
		if readSet.IsSet(fd) {
			entries[i].Ready |= EventRead
		}
		if writeSet.IsSet(fd) {
			entries[i].Ready |= EventWrite
		}
		if errorSet.IsSet(fd) {
			entries[i].Ready |= EventError
		}
	}
	return nil
}
