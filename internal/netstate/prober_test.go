package netstate

import (
	"context"
	"net"
	"testing"
	"time"
)

func TestCheck_ReachableTarget(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen failed: %v", err)
	}
	defer ln.Close()

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()

	p := NewProber(ln.Addr().String())
	if !p.Check(context.Background()) {
		t.Error("expected reachable target to report online")
	}
}

func TestCheck_UnreachableTarget(t *testing.T) {
	// Grab a port and close it so the dial is refused.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen failed: %v", err)
	}
	addr := ln.Addr().String()
	ln.Close()

	p := NewProber(addr)
	p.timeout = 200 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if p.Check(ctx) {
		t.Error("expected closed port to report offline")
	}
}

func TestCheck_AnyTargetCounts(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen failed: %v", err)
	}
	defer ln.Close()
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()

	// One dead target plus one live one: link is up.
	dead, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen failed: %v", err)
	}
	deadAddr := dead.Addr().String()
	dead.Close()

	p := NewProber(deadAddr, ln.Addr().String())
	p.timeout = 200 * time.Millisecond
	if !p.Check(context.Background()) {
		t.Error("expected online when any target is reachable")
	}
}
