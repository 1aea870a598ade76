// Copyright (c) 2026 Keziah Biermann
// This package is licensed under a BSD license that can be found in the LICENSE file.

package timeoutio

import (
	"errors"
	"io"
	"net"
	"os"
	"syscall"
	"time"

	"github.com/hslam/buffer"
)

const (
	transferBufferSize = 0x10000
	transferChunkSize  = 1 << 20
)

// SendFile sends count bytes from the file's current offset to conn within
// timeout, and returns the number of bytes sent. The file offset is advanced
// by that amount. conn must expose its raw descriptor (syscall.Conn). A
// finite timeout sends through the connection's write path with the write
// deadline armed; the raw sendfile path cannot be interrupted mid-chunk, so
// it serves unbounded calls only. A file that ends before count bytes yields
// EOF or io.ErrUnexpectedEOF like ReadFull. On platforms without a sendfile
// backend it returns ErrUnsupported.
func SendFile(conn net.Conn, file *os.File, count int64, timeout time.Duration) (int64, error) {
	if count <= 0 {
		return 0, nil
	}
	return sendFile(conn, file, count, newDeadline(timeout))
}

// Relay pumps exactly count bytes from src to dst within timeout and returns
// the number of bytes moved. src must expose its raw descriptor
// (syscall.Conn). On Linux an unbounded relay (negative timeout) splices the
// data between the sockets without entering user space; bounded relays copy
// through a pooled buffer with dst's write deadline armed, because the
// splice drain loop cannot be interrupted mid-chunk. A src that ends before
// count bytes yields EOF or io.ErrUnexpectedEOF like ReadFull.
func Relay(dst, src net.Conn, count int64, timeout time.Duration) (int64, error) {
	if count <= 0 {
		return 0, nil
	}
	return relay(dst, src, count, newDeadline(timeout))
}

// transferDescriptor borrows the raw descriptor of a transfer endpoint for
// the readiness gates.
func transferDescriptor(c net.Conn) (Descriptor, error) {
	sc, ok := c.(syscall.Conn)
	if !ok {
		return InvalidDescriptor, ErrUnsupported
	}
	return ConnDescriptor(sc)
}

// opaqueConn hides the raw-descriptor access of the wrapped connection, so
// that transfer libraries take their staged write path instead of the raw
// one.
type opaqueConn struct{ net.Conn }

// relayBuffered is the generic relay loop: wait until src is readable, read
// into a pooled chunk, write the chunk out.
func relayBuffered(dst, src net.Conn, count int64, expiry deadline) (int64, error) {
	srcFd, err := transferDescriptor(src)
	if err != nil {
		return 0, err
	}
	pool := buffer.AssignPool(transferBufferSize)
	buf := pool.GetBuffer(transferBufferSize)
	defer pool.PutBuffer(buf)
	dst.SetWriteDeadline(expiry.when)
	defer dst.SetWriteDeadline(time.Time{})
	var moved int64
	for {
		if err := srcFd.WaitReadable(expiry.remaining()); err != nil {
			return moved, err
		}
		chunk := int64(len(buf))
		if rest := count - moved; rest < chunk {
			chunk = rest
		}
		n, err := src.Read(buf[:chunk])
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				if errors.Is(werr, ErrTimeout) {
					werr = ErrTimeout
				}
				return moved, werr
			}
			moved += int64(n)
			if moved >= count {
				return moved, nil
			}
		}
		switch {
		case err == nil:
		case err == EOF:
			if moved > 0 {
				return moved, io.ErrUnexpectedEOF
			}
			return 0, EOF
		default:
			return moved, err
		}
	}
}
