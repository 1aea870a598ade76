// Copyright (c) 2026 Keziah Biermann
// This package is licensed under a BSD license that can be found in the LICENSE file.

//go:build darwin || dragonfly || freebsd || netbsd || openbsd
// +build darwin dragonfly freebsd netbsd openbsd

package timeoutio

import (
	"net"
)

func relay(dst, src net.Conn, count int64, expiry deadline) (int64, error) {
	return relayBuffered(dst, src, count, expiry)
}
