// Copyright (c) 2026 Keziah Biermann
// This package is licensed under a BSD license that can be found in the LICENSE file.

//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd
// +build linux darwin dragonfly freebsd netbsd openbsd

package timeoutio

import (
	"errors"
	"io"
	"net"
	"os"
	"time"

	"github.com/hslam/sendfile"
)

// sendFile sends the file region chunk by chunk so that the deadline is
// rechecked between chunks. The source is addressed positionally and every
// chunk is clamped to the file size, so the file offset is moved once on
// exit to keep it in step with the bytes sent.
func sendFile(conn net.Conn, file *os.File, count int64, expiry deadline) (sent int64, err error) {
	connFd, err := transferDescriptor(conn)
	if err != nil {
		return 0, err
	}
	pos, err := file.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	info, err := file.Stat()
	if err != nil {
		return 0, err
	}
	size := info.Size()
	defer func() {
		if _, serr := file.Seek(pos+sent, io.SeekStart); serr != nil && err == nil {
			err = serr
		}
	}()
	target := conn
	if !expiry.when.IsZero() {
		// The raw sendfile loop cannot be interrupted once a chunk starts,
		// so bounded sends are staged through the connection's write path,
		// where the armed deadline applies.
		target = opaqueConn{conn}
	}
	src := int(file.Fd())
	conn.SetWriteDeadline(expiry.when)
	defer conn.SetWriteDeadline(time.Time{})
	for {
		chunk := int64(transferChunkSize)
		if rest := count - sent; rest < chunk {
			chunk = rest
		}
		if avail := size - (pos + sent); avail < chunk {
			chunk = avail
		}
		if chunk <= 0 {
			// The file ended before the requested count.
			if sent > 0 {
				return sent, io.ErrUnexpectedEOF
			}
			return 0, EOF
		}
		if werr := connFd.WaitWritable(expiry.remaining()); werr != nil {
			return sent, werr
		}
		n, serr := sendfile.SendFile(target, src, pos+sent, chunk)
		if n > 0 {
			sent += n
			if sent >= count {
				return sent, nil
			}
		}
		switch {
		case serr == nil && n > 0:
		case serr == nil || serr == EOF:
			// No progress inside a valid range still counts as end of input.
			if sent > 0 {
				return sent, io.ErrUnexpectedEOF
			}
			return 0, EOF
		case errors.Is(serr, ErrTimeout):
			return sent, ErrTimeout
		default:
			return sent, serr
		}
	}
}
