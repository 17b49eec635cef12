package testkit

import (
	"errors"
	"io"
	"os"
	"testing"
)

func TestMustPanic(t *testing.T) {
	t.Parallel()

	MustPanic(t, func() {
		panic("boom")
	})
}

func TestMustContain(t *testing.T) {
	t.Parallel()

	MustContain(t, "alpha beta gamma", "beta")
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	path := WriteFile(t, "cookies.csv", []byte("cookie,timestamp\n"))
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(b) != "cookie,timestamp\n" {
		t.Fatalf("content = %q", b)
	}
}

func TestLines(t *testing.T) {
	t.Parallel()

	if got := Lines(); got != "" {
		t.Fatalf("Lines() = %q, want empty", got)
	}
	if got := Lines("a", "b"); got != "a\nb\n" {
		t.Fatalf("Lines(a,b) = %q", got)
	}
}

func TestReadCloser(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	rc := NewReadCloser("abc")
	rc.ReadErr = boom
	rc.CloseErr = io.ErrClosedPipe

	b, err := io.ReadAll(rc)
	if !errors.Is(err, boom) || string(b) != "abc" {
		t.Fatalf("ReadAll = %q, %v", b, err)
	}
	if rc.Remaining() != 0 {
		t.Fatalf("Remaining = %d", rc.Remaining())
	}
	if err := rc.Close(); !errors.Is(err, io.ErrClosedPipe) || rc.Closes != 1 {
		t.Fatalf("Close = %v, closes=%d", err, rc.Closes)
	}
}
