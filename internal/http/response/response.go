package response

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"mini_web/internal/http/header"
)

type Kind int

const (
	KindPlain Kind = iota
	KindJSON
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindJSON:
		return "json"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

const (
	ContentTypeHTML = "text/html"
	ContentTypeJSON = "application/json"
)

var ErrEncodeBody = errors.New("cannot encode response body")

// Response is a complete message ready to be serialized. Content-Type,
// Content-Length and Status are derived once, when the response is built, and
// replace any caller supplied values for those keys.
type Response struct {
	kind        Kind
	statusCode  int
	contentType string
	headers     *header.Header
	body        string
}

type Option func(*options)

type options struct {
	statusCode  int
	contentType string
	headers     []header.Field
}

func WithStatus(code int) Option {
	return func(o *options) {
		o.statusCode = code
	}
}

func WithContentType(contentType string) Option {
	return func(o *options) {
		o.contentType = contentType
	}
}

func WithHeader(key, value string) Option {
	return func(o *options) {
		o.headers = append(o.headers, header.Field{Key: key, Value: value})
	}
}

// New builds a plain response, 200 text/html by default.
//
// A string or []byte body is used verbatim; any other value is encoded as
// JSON first.
func New(body any, opts ...Option) (*Response, error) {
	return build(KindPlain, 200, ContentTypeHTML, body, opts)
}

// NewJSON builds a 200 application/json response.
func NewJSON(body any, opts ...Option) (*Response, error) {
	return build(KindJSON, 200, ContentTypeJSON, body, opts)
}

// NewError builds a 500 application/json response. Return it directly or
// raise it from a handler with Raise.
func NewError(body any, opts ...Option) (*Response, error) {
	return build(KindError, 500, ContentTypeJSON, body, opts)
}

func build(kind Kind, statusCode int, contentType string, body any, opts []Option) (*Response, error) {
	o := options{statusCode: statusCode, contentType: contentType}
	for _, opt := range opts {
		opt(&o)
	}

	text, err := encodeBody(body)
	if err != nil {
		return nil, err
	}

	h := header.New()
	for _, f := range o.headers {
		h.Set(f.Key, f.Value)
	}
	h.Set("Content-Type", o.contentType+"; charset=utf-8")
	h.Set("Content-Length", strconv.Itoa(len(text)))
	h.Set("Status", strconv.Itoa(o.statusCode))

	return &Response{
		kind:        kind,
		statusCode:  o.statusCode,
		contentType: o.contentType,
		headers:     h,
		body:        text,
	}, nil
}

func encodeBody(body any) (string, error) {
	switch v := body.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(body); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodeBody, err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func (r *Response) Kind() Kind {
	return r.kind
}

func (r *Response) IsError() bool {
	return r.kind == KindError
}

func (r *Response) StatusCode() int {
	return r.statusCode
}

func (r *Response) ContentType() string {
	return r.contentType
}

func (r *Response) Body() string {
	return r.body
}

func (r *Response) Value(key string) string {
	return r.headers.Value(key)
}

func (r *Response) Headers() []header.Field {
	return r.headers.Fields()
}
