package header

import (
	"bytes"
	"errors"
	"fmt"
)

var (
	ErrMalformedLine = errors.New("malformed header line")
)

var separator = []byte(": ")

// ParseLine splits a header line once on ": ".
func ParseLine(line []byte) (key, value string, err error) {
	idx := bytes.Index(line, separator)
	if idx == -1 {
		return "", "", fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	return string(line[:idx]), string(line[idx+len(separator):]), nil
}

// ParseLines reads header lines from remaining until the first empty line or
// the end of the data.
func ParseLines(remaining []byte) (*Header, error) {
	h := New()
	for len(remaining) > 0 {
		lineEnd := bytes.Index(remaining, []byte("\r\n"))
		if lineEnd == -1 {
			lineEnd = len(remaining)
		}

		line := remaining[:lineEnd]
		if len(line) == 0 {
			break
		}

		key, value, err := ParseLine(line)
		if err != nil {
			return nil, err
		}
		h.Set(key, value)

		if lineEnd == len(remaining) {
			break
		}
		remaining = remaining[lineEnd+2:]
	}
	return h, nil
}

// AppendTo writes every field as "Key: Value\r\n" in order.
func (h *Header) AppendTo(buf []byte) []byte {
	for _, f := range h.fields {
		buf = append(buf, f.Key...)
		buf = append(buf, ':', ' ')
		buf = append(buf, f.Value...)
		buf = append(buf, '\r', '\n')
	}
	return buf
}

// Size is the number of bytes AppendTo writes.
func (h *Header) Size() int {
	size := 0
	for _, f := range h.fields {
		size += len(f.Key) + 2 + len(f.Value) + 2
	}
	return size
}
