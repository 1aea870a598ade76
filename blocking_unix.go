// Copyright (c) 2026 Keziah Biermann
// This package is licensed under a BSD license that can be found in the LICENSE file.

//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd
// +build linux darwin dragonfly freebsd netbsd openbsd

package timeoutio

import (
	"golang.org/x/sys/unix"
)

// SetBlocking puts the descriptor into blocking or non-blocking I/O mode,
// leaving all other descriptor flags untouched. The call is idempotent, but
// the read-modify-write of the flags is not atomic: no other goroutine or
// process may change the same descriptor's flags concurrently.
func (d Descriptor) SetBlocking(blocking bool) error {
	flags, err := unix.FcntlInt(uintptr(d), unix.F_GETFL, 0)
	if err != nil {
		return err
	}
	if blocking {
		flags &^= unix.O_NONBLOCK
	} else {
		flags |= unix.O_NONBLOCK
	}
	_, err = unix.FcntlInt(uintptr(d), unix.F_SETFL, flags)
	return err
}
