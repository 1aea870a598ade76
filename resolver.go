// Copyright (c) 2026 Keziah Biermann
// This package is licensed under a BSD license that can be found in the LICENSE file.

package timeoutio

import (
	"context"
	"net"
	"net/netip"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/hslam/scheduler"
)

// Resolver resolves host:port addresses with a timeout. Lookups run on a
// bounded worker pool because the system resolver offers no deadline of its
// own: a lookup that loses the race against the timeout keeps running on its
// worker until the OS gives up, it just no longer has anyone listening.
type Resolver struct {
	sched scheduler.Scheduler
}

// NewResolver returns a Resolver running at most workers concurrent lookups.
// A workers value below one selects one worker per CPU.
func NewResolver(workers int) *Resolver {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Resolver{sched: scheduler.New(workers, &scheduler.Options{Threshold: 2})}
}

// Resolve resolves an address of the form "host:port" into the first address
// the system resolver reports. Literal IP addresses are parsed directly and
// never hit the pool. The port must be numeric; a malformed address returns
// ErrInvalidAddress, a lookup without a usable result ErrNoAddress, and a
// lookup still pending at the deadline ErrTimeout.
func (r *Resolver) Resolve(address string, timeout time.Duration) (netip.AddrPort, error) {
	if addrPort, err := ParseAddress(address); err == nil {
		return addrPort, nil
	}
	host, portStr, err := net.SplitHostPort(address)
	if err != nil || host == "" {
		return netip.AddrPort{}, ErrInvalidAddress
	}
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return netip.AddrPort{}, ErrInvalidAddress
	}
	type result struct {
		addrs []netip.Addr
		err   error
	}
	done := make(chan result, 1)
	r.sched.Schedule(func() {
		addrs, err := net.DefaultResolver.LookupNetIP(context.Background(), "ip", host)
		done <- result{addrs: addrs, err: err}
	})
	var expired <-chan time.Time
	if timeout >= 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.C
	}
	select {
	case res := <-done:
		if res.err != nil {
			return netip.AddrPort{}, res.err
		}
		if len(res.addrs) == 0 {
			return netip.AddrPort{}, ErrNoAddress
		}
		return netip.AddrPortFrom(res.addrs[0].Unmap(), uint16(port)), nil
	case <-expired:
		return netip.AddrPort{}, ErrTimeout
	}
}

// Close releases the worker pool. Lookups already scheduled keep running.
func (r *Resolver) Close() {
	r.sched.Close()
}

var (
	resolverOnce    sync.Once
	defaultResolver *Resolver
)

// Resolve resolves address on a lazily created process-wide Resolver.
func Resolve(address string, timeout time.Duration) (netip.AddrPort, error) {
	resolverOnce.Do(func() { defaultResolver = NewResolver(0) })
	return defaultResolver.Resolve(address, timeout)
}

// ParseAddress parses a literal "ip:port" address, with the usual bracket
// form for IPv6 such as "[::1]:80". Host names and service names are not
// accepted; use Resolve for those.
func ParseAddress(address string) (netip.AddrPort, error) {
	addrPort, err := netip.ParseAddrPort(address)
	if err != nil {
		return netip.AddrPort{}, ErrInvalidAddress
	}
	return addrPort, nil
}
