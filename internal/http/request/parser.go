package request

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"mini_web/internal/http/header"
)

const DefaultMaxHeadBytes = 64 * 1024

var DELIMITER = []byte{0x0D, 0x0A, 0x0D, 0x0A}

var (
	ErrIncompleteHead  = errors.New("stream ended before end of request head")
	ErrHeadTooLarge    = errors.New("request head exceeds limit")
	ErrInvalidStart    = errors.New("invalid request line")
	ErrInvalidEncoding = errors.New("invalid utf-8")
	ErrIncompleteBody  = errors.New("stream ended before end of request body")
)

// ReadHead reads from br up to and including the first blank line.
func ReadHead(br *bufio.Reader, limit int) ([]byte, error) {
	if limit <= 0 {
		limit = DefaultMaxHeadBytes
	}
	head := make([]byte, 0, 512)
	for {
		line, err := br.ReadSlice('\n')
		head = append(head, line...)
		if len(head) > limit {
			return nil, fmt.Errorf("%w: more than %d bytes", ErrHeadTooLarge, limit)
		}
		if err != nil {
			if errors.Is(err, bufio.ErrBufferFull) {
				continue
			}
			return nil, fmt.Errorf("%w: %w", ErrIncompleteHead, err)
		}
		if bytes.HasSuffix(head, DELIMITER) {
			return head, nil
		}
	}
}

// Parse builds a Request from a head read by ReadHead. The body is never taken
// from head; see ReadBody.
func Parse(head []byte) (*Request, error) {
	if !utf8.Valid(head) {
		return nil, fmt.Errorf("%w in request head", ErrInvalidEncoding)
	}

	lineEnd := bytes.Index(head, []byte("\r\n"))
	if lineEnd == -1 {
		return nil, fmt.Errorf("%w: no CRLF found in start line", ErrInvalidStart)
	}

	method, path, err := parseStartLine(head[:lineEnd])
	if err != nil {
		return nil, err
	}

	headers, err := header.ParseLines(head[lineEnd+2:])
	if err != nil {
		return nil, err
	}

	return New(method, path, headers), nil
}

func parseStartLine(startLine []byte) (method, path string, err error) {
	parts := bytes.Split(startLine, []byte(" "))
	if len(parts) != 3 {
		return "", "", fmt.Errorf("%w: expected 3 fields, got %d", ErrInvalidStart, len(parts))
	}
	for _, p := range parts {
		if len(p) == 0 {
			return "", "", fmt.Errorf("%w: empty field in %q", ErrInvalidStart, startLine)
		}
	}
	return string(parts[0]), string(parts[1]), nil
}

// ContentLength returns the declared body size when the Content-Length header
// is a positive integer. Anything else means there is no body to read.
func ContentLength(req *Request) (int, bool) {
	raw, ok := req.Lookup("Content-Length")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// ReadBody reads exactly Content-Length bytes from r when the request declares
// a body and returns a copy of req carrying it. Without a declared body req is
// returned as is.
func ReadBody(r io.Reader, req *Request) (*Request, error) {
	n, ok := ContentLength(req)
	if !ok {
		return req, nil
	}

	// Grow with the data instead of trusting the declared size up front.
	var buf bytes.Buffer
	if _, err := io.CopyN(&buf, r, int64(n)); err != nil {
		return nil, fmt.Errorf("%w: got %d of %d bytes: %w", ErrIncompleteBody, buf.Len(), n, err)
	}
	if !utf8.Valid(buf.Bytes()) {
		return nil, fmt.Errorf("%w in request body", ErrInvalidEncoding)
	}
	return req.WithBody(buf.String()), nil
}
