package cookielog

import (
	"bufio"
	"compress/gzip"
	"errors"
	"io"

	perr "cookiejar/internal/platform/errors"
	"cookiejar/internal/platform/logger"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Operation labels attached to source errors
const (
	OpOpen  = "cookielog.open"
	OpRead  = "cookielog.read"
	OpClose = "cookielog.close"
)

const (
	// DefaultMaxLineBytes caps a single line; cookie lines are tiny so 1MB is generous
	DefaultMaxLineBytes = 1 << 20
	initialBufBytes     = 64 * 1024
)

var gzipMagic = [2]byte{0x1f, 0x8b}

// Option configures a Source
type Option func(*Source)

// WithMaxLineBytes overrides the per-line cap; values <= 0 keep the default
func WithMaxLineBytes(n int) Option {
	return func(s *Source) {
		if n > 0 {
			s.maxLine = n
		}
	}
}

// Source hands out the lines of a cookie log in order
// Not safe for concurrent use
type Source struct {
	rc      io.ReadCloser
	gz      *gzip.Reader
	sc      *bufio.Scanner
	err     error // sticky: io.EOF or a read failure
	closed  bool
	maxLine int
	lines   int
	text    int64 // decoded line text plus one terminator per line
}

// NewSource wraps rc; the Source owns rc from here on and releases it in Close
// rc is closed before returning when the stream cannot be set up
func NewSource(rc io.ReadCloser, opts ...Option) (*Source, error) {
	s := &Source{rc: rc, maxLine: DefaultMaxLineBytes}
	for _, o := range opts {
		o(s)
	}

	br := bufio.NewReader(rc)
	var r io.Reader = br

	// a failed peek is left for the scanner to report on the first read
	if magic, err := br.Peek(len(gzipMagic)); err == nil && [2]byte(magic) == gzipMagic {
		gz, err := gzip.NewReader(br)
		if err != nil {
			if cerr := rc.Close(); cerr != nil {
				err = errors.Join(err, cerr)
			}
			return nil, perr.WrapOp(err, perr.ErrorCodeIO, OpOpen, "unable to open gzip cookie source")
		}
		s.gz = gz
		r = gz
		logger.Named("cookielog").Debug().Msg("cookielog: gzip input detected")
	}

	r = transform.NewReader(r, unicode.BOMOverride(transform.Nop))

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, min(initialBufBytes, s.maxLine)), s.maxLine)
	s.sc = sc
	return s, nil
}

// NextLine returns the next line without its terminator
// It returns io.EOF once the input is exhausted, and on every call after that
func (s *Source) NextLine() (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.closed {
		s.err = perr.WrapOp(io.ErrClosedPipe, perr.ErrorCodeIO, OpRead, "cookie source is closed")
		return "", s.err
	}
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			s.err = perr.WrapOp(err, perr.ErrorCodeIO, OpRead, "unexpected error reading cookie source")
			return "", s.err
		}
		s.err = io.EOF
		return "", io.EOF
	}
	line := s.sc.Text()
	s.lines++
	s.text += int64(len(line) + 1)
	return line, nil
}

// Close releases the decoder and the underlying stream; only the first call does work
// A failure here never replaces a read failure already returned by NextLine
func (s *Source) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var first error
	if s.gz != nil {
		if err := s.gz.Close(); err != nil {
			first = err
		}
	}
	if s.rc != nil {
		if err := s.rc.Close(); err != nil && first == nil {
			first = err
		}
	}

	logger.Named("cookielog").Debug().
		Int("lines", s.lines).
		Int64("text_bytes", s.text).
		Msg("cookielog: source closed")

	if first != nil {
		return perr.WrapOp(first, perr.ErrorCodeIO, OpClose, "unexpected error closing cookie source")
	}
	return nil
}

// Stats returns the number of lines handed out and their decoded size
// textBytes counts each line plus a one byte terminator, so it is only an
// approximation of the input size: CRLF endings, a stripped BOM and gzip
// framing are not counted
func (s *Source) Stats() (lines int, textBytes int64) {
	return s.lines, s.text
}
