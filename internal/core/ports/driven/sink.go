package driven

import "io"

// Sink opens export destinations.
type Sink interface {
	// Create opens path for writing. Nothing is visible at path until
	// Commit succeeds; Abort discards everything written.
	Create(path string) (SinkWriter, error)
}

// SinkWriter is an open export destination.
type SinkWriter interface {
	io.Writer

	// Commit publishes the written bytes at the destination and
	// releases the handle.
	Commit() error

	// Abort discards the written bytes and releases the handle.
	// Calling Abort after Commit is a no-op.
	Abort() error
}
