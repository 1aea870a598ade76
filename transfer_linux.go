// Copyright (c) 2026 Keziah Biermann
// This package is licensed under a BSD license that can be found in the LICENSE file.

//go:build linux
// +build linux

package timeoutio

import (
	"errors"
	"io"
	"net"

	"github.com/hslam/splice"
)

// relay splices the data between the sockets, chunk by chunk. The splice
// drain loop cannot be interrupted once a chunk starts, so only unbounded
// relays take this path; bounded ones copy through the pooled buffer, where
// the deadline holds between syscalls.
func relay(dst, src net.Conn, count int64, expiry deadline) (int64, error) {
	if !expiry.when.IsZero() {
		return relayBuffered(dst, src, count, expiry)
	}
	srcFd, err := transferDescriptor(src)
	if err != nil {
		return 0, err
	}
	var moved int64
	for {
		if err := srcFd.WaitReadable(expiry.remaining()); err != nil {
			return moved, err
		}
		chunk := int64(transferChunkSize)
		if rest := count - moved; rest < chunk {
			chunk = rest
		}
		n, err := splice.Splice(dst, src, chunk)
		if n > 0 {
			moved += n
			if moved >= count {
				return moved, nil
			}
		}
		switch {
		case err == nil && n > 0:
		case err == nil || err == EOF:
			// Readable with nothing to move means the peer closed.
			if moved > 0 {
				return moved, io.ErrUnexpectedEOF
			}
			return 0, EOF
		case errors.Is(err, ErrTimeout):
			return moved, ErrTimeout
		default:
			return moved, err
		}
	}
}
