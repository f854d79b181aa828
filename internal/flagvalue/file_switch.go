// Package flagvalue implements flag.Value types for the command line.
package flagvalue

import (
	"flag"
	"io"
	"os"

	"braces.dev/errtrace"
)

// FileSwitch is a flag that may be passed as "-x" or "-x=path".
//
//   - absent: output is discarded
//   - "-x": output goes to a fallback writer (usually stderr)
//   - "-x=path": output goes to the named file
type FileSwitch string

var _ flag.Getter = (*FileSwitch)(nil)

// Get returns the path held by the flag,
// "-" if it was passed without a value,
// or "" if it wasn't passed.
func (fs *FileSwitch) Get() any { return string(*fs) }

// String returns the same value as Get.
func (fs *FileSwitch) String() string {
	return string(*fs)
}

// IsBoolFlag allows the flag to be passed without a value.
func (*FileSwitch) IsBoolFlag() bool {
	return true
}

// Set receives the value for this flag.
// "true", which the flag package passes for a bare "-x",
// selects the fallback writer.
func (fs *FileSwitch) Set(v string) error {
	switch v {
	case "true":
		v = "-"
	case "false":
		v = ""
	}
	*fs = FileSwitch(v)
	return nil
}

// Bool reports whether this flag was set with any value.
func (fs *FileSwitch) Bool() bool {
	return len(*fs) > 0
}

// Create opens the destination selected by this flag.
// The returned Closer must be closed when the caller is done writing;
// it only closes files opened by Create, never the fallback.
func (fs *FileSwitch) Create(fallback io.Writer) (io.WriteCloser, error) {
	switch *fs {
	case "":
		return nopCloser{io.Discard}, nil
	case "-":
		return nopCloser{fallback}, nil
	default:
		f, err := os.Create(string(*fs))
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		return f, nil
	}
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
