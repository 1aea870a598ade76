// Copyright (c) 2026 Keziah Biermann
// This package is licensed under a BSD license that can be found in the LICENSE file.

//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd
// +build linux darwin dragonfly freebsd netbsd openbsd

package timeoutio

import (
	"context"
	"net"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/hslam/reuse"
	"golang.org/x/net/nettest"
	"golang.org/x/sys/unix"
)

func listenerDescriptor(t *testing.T, listener net.Listener) Descriptor {
	t.Helper()
	fd, err := ConnDescriptor(listener.(syscall.Conn))
	if err != nil {
		t.Fatal(err)
	}
	return fd
}

func TestAccept(t *testing.T) {
	listener, err := nettest.NewLocalListener("tcp")
	if err != nil {
		t.Fatal(err)
	}
	defer listener.Close()
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		time.Sleep(50 * time.Millisecond)
		conn, err := net.Dial("tcp", listener.Addr().String())
		if err != nil {
			return
		}
		conn.Write([]byte("x"))
		time.Sleep(100 * time.Millisecond)
		conn.Close()
	}()
	fd, err := listenerDescriptor(t, listener).Accept(time.Second)
	if err != nil {
		t.Error(err)
	}
	if fd == InvalidDescriptor {
		t.Error("Unexpected")
	}
	if statusFlags(t, fd)&unix.O_NONBLOCK != 0 {
		t.Error("accepted descriptor not blocking")
	}
	buf := make([]byte, 1)
	if _, err := fd.Read(buf, time.Second); err != nil {
		t.Error(err)
	}
	if buf[0] != 'x' {
		t.Error(buf[0])
	}
	unix.Close(int(fd))
	wg.Wait()
}

func TestAcceptTimeout(t *testing.T) {
	listener, err := nettest.NewLocalListener("tcp")
	if err != nil {
		t.Fatal(err)
	}
	defer listener.Close()
	start := time.Now()
	fd, err := listenerDescriptor(t, listener).Accept(100 * time.Millisecond)
	if err != ErrTimeout {
		t.Error(err)
	}
	if fd != InvalidDescriptor {
		t.Error(fd)
	}
	if elapsed := time.Since(start); elapsed < 90*time.Millisecond {
		t.Error("returned early:", elapsed)
	}
}

func TestAcceptClosed(t *testing.T) {
	listener, err := nettest.NewLocalListener("tcp")
	if err != nil {
		t.Fatal(err)
	}
	fd := listenerDescriptor(t, listener)
	listener.Close()
	if _, err := fd.Accept(100 * time.Millisecond); err == nil || err == ErrTimeout {
		t.Error(err)
	}
}

func TestAcceptSharedPort(t *testing.T) {
	lc := net.ListenConfig{Control: reuse.Control}
	first, err := lc.Listen(context.Background(), "tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer first.Close()
	second, err := lc.Listen(context.Background(), "tcp", first.Addr().String())
	if err != nil {
		t.Fatal(err)
	}
	defer second.Close()
	conn, err := net.Dial("tcp", first.Addr().String())
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	results := make(chan error, 2)
	for _, listener := range []net.Listener{first, second} {
		fd := listenerDescriptor(t, listener)
		go func() {
			accepted, err := fd.Accept(500 * time.Millisecond)
			if err == nil {
				unix.Close(int(accepted))
			}
			results <- err
		}()
	}
	succeeded := 0
	for i := 0; i < 2; i++ {
		if err := <-results; err == nil {
			succeeded++
		} else if err != ErrTimeout {
			t.Error(err)
		}
	}
	if succeeded != 1 {
		t.Error(succeeded)
	}
}
