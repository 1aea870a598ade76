// Copyright (c) 2026 Keziah Biermann
// This package is licensed under a BSD license that can be found in the LICENSE file.

//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd
// +build !linux,!darwin,!dragonfly,!freebsd,!netbsd,!openbsd

package timeoutio

import (
	"net"
	"os"
)

func sendFile(conn net.Conn, file *os.File, count int64, expiry deadline) (int64, error) {
	return 0, ErrUnsupported
}

func relay(dst, src net.Conn, count int64, expiry deadline) (int64, error) {
	return relayBuffered(dst, src, count, expiry)
}
