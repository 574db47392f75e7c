package random

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

const ConnIDBytes = 6

var (
	ErrInvalidLength = fmt.Errorf("invalid length")
)

// Random produces identifiers used to tag the log lines of one connection.
type Random interface {
	Hex(n int) (string, error)
	ConnID() string
}

type random struct {
	reader io.Reader
}

func New() Random {
	return &random{reader: rand.Reader}
}

// Hex returns 2*n hex characters from n random bytes.
func (ran *random) Hex(n int) (string, error) {
	if n < 0 {
		return "", ErrInvalidLength
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(ran.reader, b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// ConnID never fails; a broken source yields "unknown" so logging can go on.
func (ran *random) ConnID() string {
	id, err := ran.Hex(ConnIDBytes)
	if err != nil {
		return "unknown"
	}
	return id
}
