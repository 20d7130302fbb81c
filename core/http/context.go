package http

import "strconv"

// Context carries one request through a handler and collects the response.
// It lives for exactly one request and is discarded after serialization.
type Context struct {
	request *Request
	params  map[string]string
	resp    Response
}

// NewContext builds a context for req with the route's wildcard captures.
func NewContext(req *Request, params map[string]string) *Context {
	return &Context{
		request: req,
		params:  params,
		resp: Response{
			Proto:  req.Proto,
			Status: StatusOK,
		},
	}
}

// Method returns the HTTP method
func (c *Context) Method() string {
	return c.request.Method
}

// Path returns the request path
func (c *Context) Path() string {
	return c.request.Path
}

// Body returns the raw request body
func (c *Context) Body() []byte {
	return c.request.Body
}

// Param returns the wildcard remainder captured by the matched route.
func (c *Context) Param(key string) string {
	return c.params[key]
}

// Header returns a request header value and whether it was present.
func (c *Context) Header(key string) (string, bool) {
	return c.request.Header(key)
}

// Status sets the response to the given code with an empty body and no
// extra headers.
func (c *Context) Status(code int) {
	c.resp.Status = code
}

// SetHeader sets a response header.
func (c *Context) SetHeader(key, value string) {
	c.resp.SetHeader(key, value)
}

// String sends a text/plain body with an exact Content-Length.
func (c *Context) String(code int, s string) {
	c.Data(code, MIMETextPlain, []byte(s))
}

// Data sends a body with the given content type and an exact Content-Length.
func (c *Context) Data(code int, contentType string, body []byte) {
	c.resp.Status = code
	c.resp.SetHeader(HeaderContentType, contentType)
	c.resp.SetHeader(HeaderContentLength, strconv.Itoa(len(body)))
	c.resp.Body = body
}

// Response returns the response built so far.
func (c *Context) Response() *Response {
	return &c.resp
}
