// Copyright (c) 2026 Keziah Biermann
// This package is licensed under a BSD license that can be found in the LICENSE file.

//go:build windows
// +build windows

package timeoutio

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// Winsock entry points without a wrapper in x/sys/windows. The descriptors
// handled here are SOCKETs, so the socket routines apply, not ReadFile and
// friends.
var (
	procrecv   = ws2_32.NewProc("recv")
	procsend   = ws2_32.NewProc("send")
	procaccept = ws2_32.NewProc("accept")
)

func sysRead(d Descriptor, p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	r1, _, callErr := procrecv.Call(uintptr(d), uintptr(unsafe.Pointer(&p[0])), uintptr(len(p)), 0)
	n := int(int32(r1))
	if n == socketError {
		return 0, callErr
	}
	return n, nil
}

func sysWrite(d Descriptor, p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	r1, _, callErr := procsend.Call(uintptr(d), uintptr(unsafe.Pointer(&p[0])), uintptr(len(p)), 0)
	n := int(int32(r1))
	if n == socketError {
		return 0, callErr
	}
	return n, nil
}

func sysAccept(d Descriptor) (Descriptor, error) {
	r1, _, callErr := procaccept.Call(uintptr(d), 0, 0)
	if windows.Handle(r1) == windows.InvalidHandle {
		return InvalidDescriptor, callErr
	}
	return Descriptor(r1), nil
}

func sysClose(d Descriptor) error {
	return windows.Closesocket(windows.Handle(d))
}

// retryable reports whether err only signals that the call should be tried
// again after the next readiness wait.
func retryable(err error) bool {
	return err == windows.WSAEINTR || err == windows.WSAEWOULDBLOCK
}
