// Copyright (c) 2026 Keziah Biermann
// This package is licensed under a BSD license that can be found in the LICENSE file.

package timeoutio

import (
	"syscall"
)

// FileDescriptor returns the descriptor of f, typically an *os.File. The
// descriptor stays owned by f: it is only valid while f is open, and on
// *os.File the Fd call switches the file back to blocking mode.
func FileDescriptor(f interface{ Fd() uintptr }) Descriptor {
	return Descriptor(f.Fd())
}

// ConnDescriptor borrows the descriptor of a connection or listener owned by
// the net runtime. The descriptor is only valid while c is open, and I/O on
// it races any I/O the runtime performs on c itself, so the caller should be
// the only user of the connection. On Windows the result is a SOCKET handle.
func ConnDescriptor(c syscall.Conn) (Descriptor, error) {
	raw, err := c.SyscallConn()
	if err != nil {
		return InvalidDescriptor, err
	}
	d := InvalidDescriptor
	if err := raw.Control(func(fd uintptr) { d = Descriptor(fd) }); err != nil {
		return InvalidDescriptor, err
	}
	return d, nil
}
