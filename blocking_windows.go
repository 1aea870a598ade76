// Copyright (c) 2026 Keziah Biermann
// This package is licensed under a BSD license that can be found in the LICENSE file.

//go:build windows
// +build windows

package timeoutio

import (
	"unsafe"
)

// fionbio is the ioctlsocket command that toggles non-blocking I/O mode,
// from winsock2.h.
const fionbio = 0x8004667e

var procioctlsocket = ws2_32.NewProc("ioctlsocket")

// SetBlocking puts the socket into blocking or non-blocking I/O mode via
// ioctlsocket(FIONBIO). The call is idempotent. The descriptor must be a
// Winsock SOCKET handle.
func (d Descriptor) SetBlocking(blocking bool) error {
	var mode uint32
	if !blocking {
		mode = 1
	}
	r1, _, callErr := procioctlsocket.Call(uintptr(d), fionbio, uintptr(unsafe.Pointer(&mode)))
	if int32(r1) == socketError {
		return callErr
	}
	return nil
}
