package cookielog

import (
	"bufio"
	"compress/gzip"
	"io"
	"strings"

	"cookiejar/internal/core/cookie"
	perr "cookiejar/internal/platform/errors"
)

// OpWrite labels writer errors
const OpWrite = "cookielog.write"

// Writer produces a cookie log in the format Source reads
// Records must be written newest first; Writer does not sort
type Writer struct {
	gz      *gzip.Writer
	bw      *bufio.Writer
	records int
	err     error
}

// NewWriter writes header to w, gzip-compressing everything when compress is set
// The caller keeps ownership of w; Close flushes but does not close it
func NewWriter(w io.Writer, header []string, compress bool) (*Writer, error) {
	lw := &Writer{}
	out := w
	if compress {
		lw.gz = gzip.NewWriter(w)
		out = lw.gz
	}
	lw.bw = bufio.NewWriter(out)
	if _, err := lw.bw.WriteString(strings.Join(header, ",") + "\n"); err != nil {
		return nil, perr.WrapOp(err, perr.ErrorCodeIO, OpWrite, "unable to write cookie log header")
	}
	return lw, nil
}

// Write appends one record; the first failure is sticky
func (w *Writer) Write(v cookie.Valid) error {
	if w.err != nil {
		return w.err
	}
	if _, err := w.bw.WriteString(v.Line() + "\n"); err != nil {
		w.err = perr.WrapOp(err, perr.ErrorCodeIO, OpWrite, "unable to write cookie log record")
		return w.err
	}
	w.records++
	return nil
}

// Records returns how many records were written
func (w *Writer) Records() int { return w.records }

// Close flushes buffered output and finishes the gzip stream
func (w *Writer) Close() error {
	if w.err != nil {
		return w.err
	}
	if err := w.bw.Flush(); err != nil {
		w.err = perr.WrapOp(err, perr.ErrorCodeIO, OpWrite, "unable to flush cookie log")
		return w.err
	}
	if w.gz != nil {
		if err := w.gz.Close(); err != nil {
			w.err = perr.WrapOp(err, perr.ErrorCodeIO, OpWrite, "unable to finish gzip cookie log")
			return w.err
		}
	}
	return nil
}
