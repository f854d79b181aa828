// Package iotest provides IO helpers for tests.
package iotest

import (
	"bytes"
	"io"
	"testing"
)

// Writer builds an io.Writer that logs each line written to it
// with t.Log, so that output from loggers and commands
// shows up alongside the test that produced it.
func Writer(t testing.TB) io.Writer {
	return &writer{t: t}
}

type writer struct{ t testing.TB }

func (w *writer) Write(b []byte) (int, error) {
	n := len(b)
	for _, line := range bytes.Split(bytes.TrimSuffix(b, []byte("\n")), []byte("\n")) {
		w.t.Logf("%s", line)
	}
	return n, nil
}
