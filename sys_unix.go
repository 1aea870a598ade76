// Copyright (c) 2026 Keziah Biermann
// This package is licensed under a BSD license that can be found in the LICENSE file.

//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd
// +build linux darwin dragonfly freebsd netbsd openbsd

package timeoutio

import (
	"golang.org/x/sys/unix"
)

func sysRead(d Descriptor, p []byte) (int, error) {
	return unix.Read(int(d), p)
}

func sysWrite(d Descriptor, p []byte) (int, error) {
	return unix.Write(int(d), p)
}

func sysAccept(d Descriptor) (Descriptor, error) {
	nfd, _, err := unix.Accept(int(d))
	if err != nil {
		return InvalidDescriptor, err
	}
	return Descriptor(nfd), nil
}

func sysClose(d Descriptor) error {
	return unix.Close(int(d))
}

// retryable reports whether err only signals that the call should be tried
// again after the next readiness wait.
func retryable(err error) bool {
	return err == unix.EINTR || err == unix.EAGAIN || err == unix.EWOULDBLOCK
}
