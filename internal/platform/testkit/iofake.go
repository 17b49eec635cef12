package testkit

import (
	"io"
	"strings"
)

// ReadCloser is a scripted io.ReadCloser for source tests
// It serves Data, then returns ReadErr (io.EOF when nil); Close returns CloseErr
// and counts calls
type ReadCloser struct {
	r        *strings.Reader
	ReadErr  error
	CloseErr error
	Closes   int
	Reads    int
}

// NewReadCloser builds a ReadCloser over data
func NewReadCloser(data string) *ReadCloser {
	return &ReadCloser{r: strings.NewReader(data)}
}

// Read implements io.Reader
func (rc *ReadCloser) Read(p []byte) (int, error) {
	rc.Reads++
	n, err := rc.r.Read(p)
	if err == io.EOF && rc.ReadErr != nil {
		return n, rc.ReadErr
	}
	return n, err
}

// Close implements io.Closer
func (rc *ReadCloser) Close() error {
	rc.Closes++
	return rc.CloseErr
}

// Remaining reports how many bytes were never consumed by the reader
func (rc *ReadCloser) Remaining() int { return rc.r.Len() }
