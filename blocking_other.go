// Copyright (c) 2026 Keziah Biermann
// This package is licensed under a BSD license that can be found in the LICENSE file.

//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd && !windows
// +build !linux,!darwin,!dragonfly,!freebsd,!netbsd,!openbsd,!windows

package timeoutio

// SetBlocking is not supported on this platform.
func (d Descriptor) SetBlocking(blocking bool) error {
	return ErrUnsupported
}
