package mcplay

import (
	"context"
	"io"
	"net"
	"testing"
	"time"
)

func TestServerPing(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	srv := &Server{Options: testOptions(t)}

	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, l) }()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()

	res, err := Ping(pingCtx, l.Addr().String(), 404)
	if err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if res.Status.Version.Protocol != 404 || res.Status.Version.Name != "1.13.1" {
		t.Errorf("version %+v", res.Status.Version)
	}
	if res.Status.Players.Max != 100 || res.Status.Description.Text != "A Minecraft Server" {
		t.Errorf("status %+v", res.Status)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestServerClosesIdlePlayers(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	opts := testOptions(t)
	srv := &Server{Options: opts}

	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, l) }()

	nc, err := net.Dial("tcp", l.Addr().String())
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer nc.Close()

	// The server owns fresh counters, so the first teleport id is 1.
	if _, err := io.Copy(nc, loginInput(t, 1, "brand")); err != nil {
		t.Fatalf("write login: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for opts.Online() != 1 {
		if time.Now().After(deadline) {
			t.Fatal("player never reached play")
		}
		time.Sleep(10 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
	if n := opts.Online(); n != 0 {
		t.Errorf("online %d after shutdown", n)
	}
}
