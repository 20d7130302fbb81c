package http

import (
	"bytes"
	"errors"
	"strings"
)

var (
	ErrMalformedRequest = errors.New("malformed HTTP request line")
)

var headBodySep = []byte("\r\n\r\n")

// ParseRequest parses a single request from one read's worth of bytes.
// The head is decoded as UTF-8 with invalid sequences replaced; the body is
// kept as raw bytes so binary payloads pass through untouched.
func ParseRequest(data []byte) (*Request, error) {
	head := data
	var body []byte
	if i := bytes.Index(data, headBodySep); i != -1 {
		head = data[:i]
		body = data[i+len(headBodySep):]
	}
	// No separator means a truncated or header-only request: the whole
	// buffer is treated as head and the body stays empty.

	lines := strings.Split(strings.ToValidUTF8(string(head), "�"), "\r\n")

	// Request line: METHOD PATH PROTO. The three tokens are mandatory;
	// runs of whitespace between them are tolerated.
	fields := strings.Fields(lines[0])
	if len(fields) < 3 {
		return nil, ErrMalformedRequest
	}

	req := &Request{
		Method:  fields[0],
		Path:    fields[1],
		Proto:   fields[2],
		Headers: make(map[string]string, len(lines)-1),
	}

	for _, line := range lines[1:] {
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		req.Headers[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}

	if len(body) > 0 {
		req.Body = append([]byte(nil), body...)
	}

	return req, nil
}
