package http

import "fmt"

// Status codes this server produces.
const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusBadRequest          = 400
	StatusNotFound            = 404
	StatusInternalServerError = 500
)

// HTTP header constants
const (
	HeaderContentType   = "Content-Type"
	HeaderContentLength = "Content-Length"
	HeaderUserAgent     = "User-Agent"
	HeaderHost          = "Host"
)

// Content types used by the built-in routes.
const (
	MIMETextPlain   = "text/plain"
	MIMEOctetStream = "application/octet-stream"
)

var statusText = map[int]string{
	StatusOK:                  "OK",
	StatusCreated:             "Created",
	StatusBadRequest:          "Bad Request",
	StatusNotFound:            "Not Found",
	StatusInternalServerError: "Internal Server Error",
}

// StatusText returns the fixed reason phrase for code. Codes outside the
// supported set are a programming error, not a runtime condition.
func StatusText(code int) string {
	text, ok := statusText[code]
	if !ok {
		panic(fmt.Sprintf("http: unsupported status code %d", code))
	}
	return text
}
