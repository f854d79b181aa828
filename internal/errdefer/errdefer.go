// Package errdefer runs cleanup from defer statements
// without losing the errors that cleanup returns.
//
// Each function takes a pointer to the caller's named error return
// and joins the cleanup error into it.
package errdefer

import (
	"errors"
	"io"
)

// Close closes c and joins its error into *err.
//
//	f, err := os.Create(path)
//	if err != nil {
//		return err
//	}
//	defer errdefer.Close(&err, f)
func Close(err *error, c io.Closer) {
	*err = errors.Join(*err, c.Close())
}

// Flusher is a buffered writer, such as [bufio.Writer].
type Flusher interface {
	Flush() error
}

// Flush flushes f and joins its error into *err.
//
// Flush runs even if *err is already set,
// so whatever was buffered before a failure still reaches
// the underlying writer.
// Defer it after the Close of the underlying writer
// so that it runs first.
func Flush(err *error, f Flusher) {
	*err = errors.Join(*err, f.Flush())
}
