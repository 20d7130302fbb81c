// Package router implements an ordered route table where the first
// matching route wins.
package router

import "strings"

// HandlerFunc defines the handler function type
type HandlerFunc func(ctx any)

type route struct {
	method   string
	pattern  string
	prefix   string // literal prefix before the wildcard
	wildcard string // capture name for the path remainder
	handler  HandlerFunc
}

// Router dispatches requests over routes in registration order. A trailing
// "*name" wildcard captures the raw remainder of the path, which may itself
// contain slashes; remainders are opaque strings, not decoded further.
type Router struct {
	routes []route
}

// New creates a new router
func New() *Router {
	return &Router{}
}

// Add registers a route. Patterns must begin with '/'; a single wildcard is
// allowed only as the final "/*name" segment.
func (r *Router) Add(method, pattern string, handler HandlerFunc) {
	if pattern == "" || pattern[0] != '/' {
		panic("router: pattern must begin with '/'")
	}

	rt := route{method: method, pattern: pattern, handler: handler}

	if star := strings.IndexByte(pattern, '*'); star != -1 {
		name := pattern[star+1:]
		if star == 0 || pattern[star-1] != '/' || name == "" || strings.ContainsAny(name, "/*") {
			panic("router: wildcard must be a trailing '/*name' segment")
		}
		rt.prefix = pattern[:star]
		rt.wildcard = name
	}

	r.routes = append(r.routes, rt)
}

// Find returns the first route matching method and path, with the wildcard
// capture if any. A nil handler means no route matched.
func (r *Router) Find(method, path string) (HandlerFunc, map[string]string) {
	for _, rt := range r.routes {
		if rt.method != method {
			continue
		}
		if rt.wildcard == "" {
			if path == rt.pattern {
				return rt.handler, nil
			}
			continue
		}
		if rest, ok := strings.CutPrefix(path, rt.prefix); ok {
			return rt.handler, map[string]string{rt.wildcard: rest}
		}
	}
	return nil, nil
}
