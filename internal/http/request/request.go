package request

import (
	"mini_web/internal/http/header"
)

// Request is the parsed form of one client request. It is not modified after
// construction; WithBody returns a copy.
type Request struct {
	method  string
	path    string
	headers *header.Header
	body    string
	hasBody bool
}

func New(method, path string, headers *header.Header) *Request {
	if headers == nil {
		headers = header.New()
	}
	return &Request{
		method:  method,
		path:    path,
		headers: headers,
	}
}

func (r *Request) Method() string {
	return r.method
}

// Path is the request target exactly as sent, query string included.
func (r *Request) Path() string {
	return r.path
}

func (r *Request) Value(key string) string {
	return r.headers.Value(key)
}

func (r *Request) Lookup(key string) (string, bool) {
	return r.headers.Lookup(key)
}

func (r *Request) Headers() []header.Field {
	return r.headers.Fields()
}

// Query is always empty: the query string is left inside Path and never
// parsed.
func (r *Request) Query() map[string][]string {
	return map[string][]string{}
}

// Body reports false when no body was read, which is different from an empty
// body.
func (r *Request) Body() (string, bool) {
	return r.body, r.hasBody
}

func (r *Request) WithBody(body string) *Request {
	c := *r
	c.headers = r.headers.Clone()
	c.body = body
	c.hasBody = true
	return &c
}
