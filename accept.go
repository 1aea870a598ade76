// Copyright (c) 2026 Keziah Biermann
// This package is licensed under a BSD license that can be found in the LICENSE file.

package timeoutio

import (
	"time"
)

// Accept takes the next connection from a listening descriptor within
// timeout and returns the accepted descriptor, owned by the caller. When the
// deadline passes without a connection it returns InvalidDescriptor and
// ErrTimeout. Connections that vanish between readiness and the accept call
// are absorbed by waiting again until the deadline.
//
// Accept switches the listening descriptor to non-blocking mode and leaves
// it there. The accepted descriptor is put into blocking mode before it is
// returned; some platforms inherit the listener's mode, others do not.
func (d Descriptor) Accept(timeout time.Duration) (Descriptor, error) {
	if err := d.SetBlocking(false); err != nil {
		return InvalidDescriptor, err
	}
	expiry := newDeadline(timeout)
	for {
		if err := d.WaitReadable(expiry.remaining()); err != nil {
			return InvalidDescriptor, err
		}
		nfd, err := sysAccept(d)
		if err != nil {
			if retryable(err) {
				continue
			}
			return InvalidDescriptor, err
		}
		if err := nfd.SetBlocking(true); err != nil {
			sysClose(nfd)
			return InvalidDescriptor, err
		}
		return nfd, nil
	}
}
