package http

// Request is one parsed HTTP request. It is built once per connection by
// ParseRequest and never modified afterwards.
type Request struct {
	Method string
	Path   string
	Proto  string

	// Headers keeps names as literally parsed; no case normalization.
	Headers map[string]string

	// Body holds the raw bytes after the head/body separator, unparsed.
	Body []byte
}

// Header returns a request header value and whether it was present.
func (r *Request) Header(key string) (string, bool) {
	value, ok := r.Headers[key]
	return value, ok
}
