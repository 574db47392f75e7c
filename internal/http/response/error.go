package response

import "fmt"

// HTTPError carries an error response through a handler's error return. The
// connection handler writes the carried response as is.
type HTTPError struct {
	resp *Response
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error %d: %s", e.resp.statusCode, e.resp.body)
}

func (e *HTTPError) Response() *Response {
	return e.resp
}

// Raise wraps resp so it can be returned as an error.
func Raise(resp *Response) *HTTPError {
	return &HTTPError{resp: resp}
}

// Fail builds an error response and returns it as an error. If the body cannot
// be encoded the encoding error is returned instead, which ends up as a 500.
func Fail(body any, opts ...Option) error {
	resp, err := NewError(body, opts...)
	if err != nil {
		return err
	}
	return Raise(resp)
}
