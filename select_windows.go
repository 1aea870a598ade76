// Copyright (c) 2026 Keziah Biermann
// This package is licensed under a BSD license that can be found in the LICENSE file.

//go:build windows
// +build windows

package timeoutio

import (
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Backend is the readiness backend compiled into this build.
var Backend = "winsock"

// fdSetLimit is the number of sockets a Winsock fd_set holds. Unlike POSIX,
// Winsock stores the sockets as an array, so the limit bounds the count per
// set and not the descriptor values.
const fdSetLimit = 64

const socketError = -1

var (
	ws2_32            = windows.NewLazySystemDLL("ws2_32.dll")
	procselect        = ws2_32.NewProc("select")
	procWSAFDIsSet    = ws2_32.NewProc("__WSAFDIsSet")
	procWSASetLastErr = ws2_32.NewProc("WSASetLastError")
)

// fdSet matches the Winsock fd_set layout: a u_int count followed by an
// array of SOCKETs. Declaring the count as uint keeps the field offsets
// right on both 386 and amd64, where the 64-bit SOCKET alignment pads the
// 32-bit u_int to a machine word.
type fdSet struct {
	count uint
	array [fdSetLimit]uintptr
}

// set adds fd to the set and reports whether it fit. Duplicates are stored
// once, like the native FD_SET macro.
func (s *fdSet) set(fd uintptr) bool {
	for i := uint(0); i < s.count; i++ {
		if s.array[i] == fd {
			return true
		}
	}
	if s.count >= fdSetLimit {
		return false
	}
	s.array[s.count] = fd
	s.count++
	return true
}

func (s *fdSet) isSet(fd uintptr) bool {
	isset, _, _ := procWSAFDIsSet.Call(fd, uintptr(unsafe.Pointer(s)))
	return isset != 0
}

// Wait blocks until at least one descriptor in entries is ready for an event
// it registered interest in, or until timeout elapses. A zero timeout polls
// without blocking and a negative timeout blocks indefinitely. Descriptors
// must be Winsock SOCKET handles.
//
// On success every entry's Ready field is rewritten from the native result
// sets, position by position; a descriptor is only reported ready for events
// some entry registered it for, and duplicate descriptors converge to the
// same result. An empty entries slice turns the call into a plain sleep.
// On failure the WSA error is returned and no Ready field is modified. Wait
// never retries.
func Wait(entries []Entry, timeout time.Duration) error {
	var readSet, writeSet, errorSet fdSet
	// Winsock ignores the nfds argument, but the highest descriptor is
	// tracked anyway so that both backends honor the same contract.
	var highest uintptr
	for i := range entries {
		fd := uintptr(entries[i].Fd)
		interest := entries[i].Interest
		if interest&EventRead != 0 && !readSet.set(fd) {
			return ErrSetSize
		}
		if interest&EventWrite != 0 && !writeSet.set(fd) {
			return ErrSetSize
		}
		if interest&EventError != 0 && !errorSet.set(fd) {
			return ErrSetSize
		}
		if fd > highest {
			highest = fd
		}
	}
	if readSet.count == 0 && writeSet.count == 0 && errorSet.count == 0 {
		// Winsock rejects a select without a single socket, so the pure
		// timeout case degrades to a plain sleep to keep the contract.
		for timeout < 0 {
			time.Sleep(time.Hour)
		}
		time.Sleep(timeout)
		for i := range entries {
			entries[i].Ready = EventNone
		}
		return nil
	}
	var timeval *windows.Timeval
	if timeout >= 0 {
		timeval = &windows.Timeval{
			Sec:  int32(timeout / time.Second),
			Usec: int32(timeout % time.Second / time.Microsecond),
		}
	}
	// Winsock select does not set the last error on every failure path, so
	// it is cleared first and read back right after the call.
	procWSASetLastErr.Call(0)
	r1, _, callErr := procselect.Call(
		uintptr(int(highest)+1),
		uintptr(unsafe.Pointer(&readSet)),
		uintptr(unsafe.Pointer(&writeSet)),
		uintptr(unsafe.Pointer(&errorSet)),
		uintptr(unsafe.Pointer(timeval)),
	)
	if int32(r1) == socketError {
		return callErr
	}
	for i := range entries {
		fd := uintptr(entries[i].Fd)
		entries[i].Ready = EventNone
		if readSet.isSet(fd) {
			entries[i].Ready |= EventRead
		}
		if writeSet.isSet(fd) {
			entries[i].Ready |= EventWrite
		}
		if errorSet.isSet(fd) {
			entries[i].Ready |= EventError
		}
	}
	return nil
}
