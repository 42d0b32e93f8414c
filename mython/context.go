package mython

import (
	"bytes"
	"io"
)

// Context abstracts the output sink used by Print and by __str__-driven
// printing. It has a single operation, separating the production sink
// from the one a test owns and can inspect.
type Context interface {
	Output() io.Writer
}

// writerContext wraps an externally supplied io.Writer, the
// production case, used by the CLI to target stdout.
type writerContext struct {
	w io.Writer
}

// NewWriterContext returns a Context that writes through w.
func NewWriterContext(w io.Writer) Context {
	return &writerContext{w: w}
}

func (c *writerContext) Output() io.Writer { return c.w }

// BufferContext owns an internal buffer for later inspection, used by
// tests that need to assert on everything a program printed.
type BufferContext struct {
	buf bytes.Buffer
}

// NewBufferContext returns a Context backed by an in-memory buffer.
func NewBufferContext() *BufferContext {
	return &BufferContext{}
}

func (c *BufferContext) Output() io.Writer { return &c.buf }

// String returns everything written to the buffer so far.
func (c *BufferContext) String() string {
	return c.buf.String()
}
