package http

import "strconv"

// Response is built once by a handler and serialized once. Proto is copied
// verbatim from the originating request.
type Response struct {
	Proto   string
	Status  int
	Headers map[string]string
	Body    []byte
}

// SetHeader sets a response header, allocating the map on first use.
func (r *Response) SetHeader(key, value string) {
	if r.Headers == nil {
		r.Headers = make(map[string]string, 2)
	}
	r.Headers[key] = value
}

// Serialize renders the exact wire bytes:
//
//	<proto> <code> <reason>\r\n
//	<name>: <value>\r\n        (zero or more, map order)
//	\r\n
//	<body>\r\n\r\n             (only when the body is non-empty)
//
// The trailing CRLF pair after a non-empty body is kept for wire
// compatibility with existing clients of this protocol subset.
func (r *Response) Serialize() []byte {
	buf := make([]byte, 0, 128+len(r.Body))

	buf = append(buf, r.Proto...)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(r.Status), 10)
	buf = append(buf, ' ')
	buf = append(buf, StatusText(r.Status)...)
	buf = append(buf, "\r\n"...)

	for name, value := range r.Headers {
		buf = append(buf, name...)
		buf = append(buf, ": "...)
		buf = append(buf, value...)
		buf = append(buf, "\r\n"...)
	}
	buf = append(buf, "\r\n"...)

	if len(r.Body) > 0 {
		buf = append(buf, r.Body...)
		buf = append(buf, "\r\n\r\n"...)
	}

	return buf
}
