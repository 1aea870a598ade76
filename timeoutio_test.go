// Copyright (c) 2026 Keziah Biermann
// This package is licensed under a BSD license that can be found in the LICENSE file.

package timeoutio

import (
	"errors"
	"fmt"
	"syscall"
	"testing"
	"time"
)

func TestDeadlineRemaining(t *testing.T) {
	expiry := newDeadline(50 * time.Millisecond)
	if rest := expiry.remaining(); rest <= 0 || rest > 50*time.Millisecond {
		t.Error(rest)
	}
	time.Sleep(60 * time.Millisecond)
	if rest := expiry.remaining(); rest != 0 {
		t.Error(rest)
	}
}

func TestDeadlineInfinite(t *testing.T) {
	expiry := newDeadline(-1)
	if rest := expiry.remaining(); rest >= 0 {
		t.Error(rest)
	}
	time.Sleep(10 * time.Millisecond)
	if rest := expiry.remaining(); rest >= 0 {
		t.Error(rest)
	}
	if !expiry.when.IsZero() {
		t.Error(expiry.when)
	}
}

func TestDeadlineZero(t *testing.T) {
	if rest := newDeadline(0).remaining(); rest != 0 {
		t.Error(rest)
	}
}

func TestErrno(t *testing.T) {
	code, ok := Errno(syscall.Errno(9))
	if !ok || code != syscall.Errno(9) {
		t.Error(code, ok)
	}
	wrapped := fmt.Errorf("select: %w", syscall.Errno(4))
	code, ok = Errno(wrapped)
	if !ok || code != syscall.Errno(4) {
		t.Error(code, ok)
	}
	if _, ok := Errno(errors.New("no code")); ok {
		t.Error("Unexpected")
	}
	if _, ok := Errno(nil); ok {
		t.Error("Unexpected")
	}
}

func TestEventMaskBits(t *testing.T) {
	masks := []EventMask{EventRead, EventWrite, EventError}
	for i, a := range masks {
		for _, b := range masks[i+1:] {
			if a&b != 0 {
				t.Error(a, b)
			}
		}
	}
	if EventNone != 0 {
		t.Error(EventNone)
	}
}
