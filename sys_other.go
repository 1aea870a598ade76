// Copyright (c) 2026 Keziah Biermann
// This package is licensed under a BSD license that can be found in the LICENSE file.

//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd && !windows
// +build !linux,!darwin,!dragonfly,!freebsd,!netbsd,!openbsd,!windows

package timeoutio

func sysRead(d Descriptor, p []byte) (int, error) {
	return 0, ErrUnsupported
}

func sysWrite(d Descriptor, p []byte) (int, error) {
	return 0, ErrUnsupported
}

func sysAccept(d Descriptor) (Descriptor, error) {
	return InvalidDescriptor, ErrUnsupported
}

func sysClose(d Descriptor) error {
	return ErrUnsupported
}

func retryable(err error) bool {
	return false
}
