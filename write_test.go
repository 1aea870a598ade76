// Copyright (c) 2026 Keziah Biermann
// This package is licensed under a BSD license that can be found in the LICENSE file.

//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd
// +build linux darwin dragonfly freebsd netbsd openbsd

package timeoutio

import (
	"bytes"
	"io"
	"net"
	"strings"
	"testing"
	"time"
)

func TestWrite(t *testing.T) {
	client, server := socketPair(t)
	n, err := connDescriptor(t, client).Write([]byte("Testolope"), time.Second)
	if err != nil {
		t.Error(err)
	}
	if n != 9 {
		t.Error(n)
	}
	buf := make([]byte, 9)
	if _, err := io.ReadFull(server, buf); err != nil {
		t.Error(err)
	}
	if string(buf) != "Testolope" {
		t.Error(string(buf))
	}
}

func TestWriteEmpty(t *testing.T) {
	client, _ := socketPair(t)
	n, err := connDescriptor(t, client).Write(nil, time.Second)
	if err != nil {
		t.Error(err)
	}
	if n != 0 {
		t.Error(n)
	}
}

func TestWriteFull(t *testing.T) {
	client, server := socketPair(t)
	payload := []byte(strings.Repeat("Testolope", 1<<16))
	received := make([]byte, len(payload))
	done := make(chan error, 1)
	go func() {
		_, err := io.ReadFull(server, received)
		done <- err
	}()
	if err := connDescriptor(t, client).WriteFull(payload, 5*time.Second); err != nil {
		t.Error(err)
	}
	if err := <-done; err != nil {
		t.Error(err)
	}
	if !bytes.Equal(payload, received) {
		t.Error("payload mismatch")
	}
}

func TestWriteFullTimeout(t *testing.T) {
	client, server := socketPair(t)
	// Pin the buffer sizes so the unread payload reliably exceeds them.
	client.(*net.TCPConn).SetWriteBuffer(64 << 10)
	server.(*net.TCPConn).SetReadBuffer(64 << 10)
	payload := make([]byte, 1<<22)
	start := time.Now()
	err := connDescriptor(t, client).WriteFull(payload, 200*time.Millisecond)
	if err != ErrTimeout {
		t.Error(err)
	}
	if elapsed := time.Since(start); elapsed < 190*time.Millisecond {
		t.Error("returned early:", elapsed)
	}
}
