/*
Package miniserver provides a minimal HTTP/1.1 server built directly on TCP.

Mini-Server accepts TCP connections, parses a single HTTP request per
connection from one bounded read, dispatches it through an ordered route
table, and writes back a well-formed response. Every connection is one-shot:
one request, one response, then the transport closes.

Features

  - Single-read request handling with a fixed-size, pooled read buffer
  - Line-oriented HTTP/1.1 request parsing (request line, headers, raw body)
  - Ordered route table with exact and trailing-wildcard patterns
  - Exact-bytes response serialization with computed Content-Length
  - Goroutine per connection, no shared mutable state across connections
  - Static file serving: GET and POST under /files/ against a configured directory
  - Connection cap via netutil.LimitListener and listener-level socket tuning

Quick Start

Basic usage example:

package main

import (
    "github.com/searchktools/mini-server/app"
    "github.com/searchktools/mini-server/config"
)

func main() {
    cfg := config.New()
    application := app.New(cfg)
    application.Run()
}

The built-in route table serves:

  GET  /                root probe, empty 200
  GET  /echo/<text>     echoes <text> as text/plain
  GET  /user-agent      reflects the User-Agent request header
  GET  /files/<name>    reads <name> from the serving directory
  POST /files/<name>    writes the request body to <name>

Modules

The module is organized into several packages:

  - app: Application lifecycle and the route table
  - config: Configuration loading (flags and environment)
  - core: Server loop and per-connection handling
  - core/http: HTTP request parsing, response building, handler context
  - core/router: Ordered route matching
  - core/pools: Read buffer pooling

Limitations

Mini-Server deliberately performs exactly one bounded read per connection:
requests larger than the read buffer are truncated. There is no keep-alive,
chunked transfer encoding, pipelining, or TLS.
*/
package miniserver
