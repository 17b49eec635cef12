package cookielog

import (
	"errors"
	"io/fs"
	"os"

	perr "cookiejar/internal/platform/errors"
)

// Open validates path and returns a Source over the file
// missing file -> NotFound, directory -> InvalidArgument, anything else -> IO
func Open(path string, opts ...Option) (*Source, error) {
	fi, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, perr.WithOp(perr.WithField(perr.NotFoundf("the provided log file %s doesn't exist", path), "file"), OpOpen)
	case err != nil:
		return nil, perr.WrapOp(err, perr.ErrorCodeIO, OpOpen, "unable to stat log file "+path)
	case fi.IsDir():
		return nil, perr.WithOp(perr.WithField(perr.InvalidArgf("the provided log file %s is a directory", path), "file"), OpOpen)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, perr.WrapOp(err, perr.ErrorCodeIO, OpOpen,
				"the provided log file "+path+" is not accessible, check file permissions")
		}
		return nil, perr.WrapOp(err, perr.ErrorCodeIO, OpOpen, "unable to open log file "+path)
	}
	return NewSource(f, opts...)
}
