package response

import (
	"io"
	"strconv"
)

// Bytes renders the response for the wire. The reason phrase is always "OK",
// whatever the status code.
func (r *Response) Bytes() []byte {
	status := strconv.Itoa(r.statusCode)

	size := len("HTTP/1.1 ") + len(status) + len(" OK") + 2
	size += r.headers.Size()
	size += 2 + len(r.body)

	buf := make([]byte, 0, size)
	buf = append(buf, "HTTP/1.1 "...)
	buf = append(buf, status...)
	buf = append(buf, " OK\r\n"...)
	buf = r.headers.AppendTo(buf)
	buf = append(buf, '\r', '\n')
	buf = append(buf, r.body...)
	return buf
}

func (r *Response) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.Bytes())
	return int64(n), err
}
