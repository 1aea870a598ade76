// Copyright (c) 2026 Keziah Biermann
// This package is licensed under a BSD license that can be found in the LICENSE file.

//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd && !windows
// +build !linux,!darwin,!dragonfly,!freebsd,!netbsd,!openbsd,!windows

package timeoutio

import (
	"time"
)

// Backend is the readiness backend compiled into this build.
var Backend = "none"

// Wait is not supported on this platform.
func Wait(entries []Entry, timeout time.Duration) error {
	return ErrUnsupported
}
