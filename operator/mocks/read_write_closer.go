// Package mocks provides the readers and writers the operator tests use to observe task behaviour.
package mocks

import (
	"errors"
	"io"
)

// ErrWrite the error a FailingWriter returns
var ErrWrite = errors.New("write failure")

type WriteCloser struct {
	IsClosed bool
}

func (o *WriteCloser) Write(p []byte) (n int, err error) {
	return len(p), nil
}

func (o *WriteCloser) Close() error {
	o.IsClosed = true
	return nil
}

type ReadCloser struct {
	IsClosed bool
}

func (o *ReadCloser) Read(p []byte) (n int, err error) {
	return 0, io.EOF
}

func (o *ReadCloser) Close() error {
	o.IsClosed = true
	return nil
}

// FailingWriter rejects every write
type FailingWriter struct{}

func (FailingWriter) Write(p []byte) (n int, err error) {
	return 0, ErrWrite
}
