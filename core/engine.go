package core

import (
	"context"
	"log"
	"net"
	"time"

	"golang.org/x/net/netutil"

	"github.com/searchktools/mini-server/core/http"
	"github.com/searchktools/mini-server/core/pools"
	"github.com/searchktools/mini-server/core/router"
)

// HandlerFunc defines the handler function type
type HandlerFunc func(ctx *http.Context)

// Defaults applied when Options leave a field zero.
const (
	DefaultReadBufferSize = 1024
	DefaultMaxConns       = 1024
)

// Options carries the tunables an Engine is built with.
type Options struct {
	ReadBufferSize int
	MaxConns       int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

// Engine ties the listener, the route table and per-connection handling
// together. It holds no cross-request state: everything a connection needs
// travels through its own goroutine.
type Engine struct {
	router  *router.Router
	bufPool *pools.BufferPool

	maxConns     int
	readTimeout  time.Duration
	writeTimeout time.Duration
}

// NewEngine creates a new engine instance
func NewEngine(opts Options) *Engine {
	if opts.ReadBufferSize <= 0 {
		opts.ReadBufferSize = DefaultReadBufferSize
	}
	if opts.MaxConns <= 0 {
		opts.MaxConns = DefaultMaxConns
	}

	return &Engine{
		router:       router.New(),
		bufPool:      pools.NewBufferPool(opts.ReadBufferSize),
		maxConns:     opts.MaxConns,
		readTimeout:  opts.ReadTimeout,
		writeTimeout: opts.WriteTimeout,
	}
}

// GET registers a GET route
func (e *Engine) GET(pattern string, handler HandlerFunc) {
	e.router.Add("GET", pattern, func(ctx any) {
		handler(ctx.(*http.Context))
	})
}

// POST registers a POST route
func (e *Engine) POST(pattern string, handler HandlerFunc) {
	e.router.Add("POST", pattern, func(ctx any) {
		handler(ctx.(*http.Context))
	})
}

// Run binds the listening socket and accepts connections indefinitely.
// Each accepted connection is handled by its own goroutine; accept errors
// are logged and never terminate the loop.
func (e *Engine) Run(addr string) error {
	lc := net.ListenConfig{Control: listenControl}
	ln, err := lc.Listen(context.Background(), "tcp", addr)
	if err != nil {
		return err
	}
	defer ln.Close()

	ln = netutil.LimitListener(ln, e.maxConns)

	log.Printf("🚀 mini-server listening on %s (max %d conns, %dB read buffer)",
		addr, e.maxConns, e.bufPool.Size())

	for {
		conn, err := ln.Accept()
		if err != nil {
			log.Printf("accept error: %v", err)
			continue
		}
		go e.ServeConn(conn)
	}
}

// ServeConn processes exactly one request on conn: a single bounded read,
// parse, dispatch, serialize, write, close. Requests larger than the read
// buffer are truncated; the one-read contract does not repair that.
func (e *Engine) ServeConn(conn net.Conn) {
	defer func() {
		if err := conn.Close(); err != nil {
			log.Printf("close %s: %v", conn.RemoteAddr(), err)
		}
	}()

	if e.readTimeout > 0 {
		conn.SetReadDeadline(time.Now().Add(e.readTimeout))
	}

	buf := e.bufPool.Get()
	defer e.bufPool.Put(buf)

	n, err := conn.Read(buf)
	if n == 0 {
		log.Printf("read %s: %v", conn.RemoteAddr(), err)
		return
	}

	req, err := http.ParseRequest(buf[:n])
	if err != nil {
		log.Printf("parse %s: %v", conn.RemoteAddr(), err)
		// No protocol token was recovered, answer with the literal version.
		e.write(conn, &http.Response{Proto: "HTTP/1.1", Status: http.StatusBadRequest})
		return
	}

	handler, params := e.router.Find(req.Method, req.Path)
	if handler == nil {
		e.write(conn, &http.Response{Proto: req.Proto, Status: http.StatusNotFound})
		return
	}

	ctx := http.NewContext(req, params)
	handler(ctx)

	e.write(conn, ctx.Response())
}

func (e *Engine) write(conn net.Conn, resp *http.Response) {
	if e.writeTimeout > 0 {
		conn.SetWriteDeadline(time.Now().Add(e.writeTimeout))
	}
	if _, err := conn.Write(resp.Serialize()); err != nil {
		log.Printf("write %s: %v", conn.RemoteAddr(), err)
	}
}
