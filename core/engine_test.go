package core

import (
	"io"
	"net"
	"strings"
	"testing"

	"github.com/searchktools/mini-server/core/http"
)

// roundTrip writes raw to one end of a pipe served by the engine and
// returns everything written back before the connection closed.
func roundTrip(t *testing.T, e *Engine, raw string) string {
	t.Helper()

	cli, srv := net.Pipe()
	done := make(chan struct{})
	go func() {
		e.ServeConn(srv)
		close(done)
	}()

	if _, err := cli.Write([]byte(raw)); err != nil {
		t.Fatalf("client write: %v", err)
	}
	resp, err := io.ReadAll(cli)
	if err != nil {
		t.Fatalf("client read: %v", err)
	}
	<-done
	cli.Close()

	return string(resp)
}

// TestEngineDispatch tests read, parse, route and response writing for one
// connection
func TestEngineDispatch(t *testing.T) {
	e := NewEngine(Options{})
	e.GET("/ping", func(ctx *http.Context) {
		ctx.String(http.StatusOK, "pong")
	})

	got := roundTrip(t, e, "GET /ping HTTP/1.1\r\nHost: localhost\r\n\r\n")

	if !strings.HasPrefix(got, "HTTP/1.1 200 OK\r\n") {
		t.Errorf("Expected 200 status line, got %q", got)
	}
	if !strings.HasSuffix(got, "\r\n\r\npong\r\n\r\n") {
		t.Errorf("Expected pong body, got %q", got)
	}
}

// TestEngineNoRoute tests that unmatched requests answer 404 with an empty
// body
func TestEngineNoRoute(t *testing.T) {
	e := NewEngine(Options{})

	got := roundTrip(t, e, "GET /missing HTTP/1.1\r\n\r\n")

	if got != "HTTP/1.1 404 Not Found\r\n\r\n" {
		t.Errorf("Expected bare 404, got %q", got)
	}
}

// TestEngineMalformed tests that an unparseable request answers 400
func TestEngineMalformed(t *testing.T) {
	e := NewEngine(Options{})

	got := roundTrip(t, e, "GARBAGE\r\n\r\n")

	if got != "HTTP/1.1 400 Bad Request\r\n\r\n" {
		t.Errorf("Expected bare 400, got %q", got)
	}
}

// TestEngineProtoEchoed tests that the request's protocol token is copied
// into the status line verbatim
func TestEngineProtoEchoed(t *testing.T) {
	e := NewEngine(Options{})

	got := roundTrip(t, e, "GET /missing HTTP/1.0\r\n\r\n")

	if got != "HTTP/1.0 404 Not Found\r\n\r\n" {
		t.Errorf("Expected HTTP/1.0 status line, got %q", got)
	}
}

// TestEngineConnectionClosed tests the one-shot contract: the connection is
// closed after the single response
func TestEngineConnectionClosed(t *testing.T) {
	e := NewEngine(Options{})
	e.GET("/", func(ctx *http.Context) {
		ctx.Status(http.StatusOK)
	})

	cli, srv := net.Pipe()
	go e.ServeConn(srv)

	if _, err := cli.Write([]byte("GET / HTTP/1.1\r\n\r\n")); err != nil {
		t.Fatalf("client write: %v", err)
	}
	if _, err := io.ReadAll(cli); err != nil {
		t.Fatalf("client read: %v", err)
	}

	// A second request must not be served.
	if _, err := cli.Write([]byte("GET / HTTP/1.1\r\n\r\n")); err == nil {
		buf := make([]byte, 1)
		if _, err := cli.Read(buf); err != io.EOF {
			t.Errorf("Expected EOF on reused connection, got %v", err)
		}
	}
	cli.Close()
}
