package memory

import (
	"bytes"
	"errors"
	"sync"

	"github.com/custodia-labs/vcardqr/internal/core/ports/driven"
)

// Ensure Sink implements the interface.
var _ driven.Sink = (*Sink)(nil)

// ErrSinkClosed is returned when writing to a committed or aborted writer.
var ErrSinkClosed = errors.New("memory sink: writer closed")

// Sink keeps committed exports in memory, keyed by path.
type Sink struct {
	mu    sync.RWMutex
	files map[string][]byte

	// CreateErr, when set, is returned by Create.
	CreateErr error

	// open counts writers that have been created but not released.
	open int
}

// NewSink creates an empty memory sink.
func NewSink() *Sink {
	return &Sink{files: make(map[string][]byte)}
}

// Create opens path for writing.
func (s *Sink) Create(path string) (driven.SinkWriter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.CreateErr != nil {
		return nil, s.CreateErr
	}
	s.open++
	return &sinkWriter{sink: s, path: path}, nil
}

// File returns the committed bytes at path.
func (s *Sink) File(path string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.files[path]
	return b, ok
}

// Len returns the number of committed files.
func (s *Sink) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.files)
}

// Open returns the number of writers not yet committed or aborted.
func (s *Sink) Open() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.open
}

type sinkWriter struct {
	sink   *Sink
	path   string
	buf    bytes.Buffer
	closed bool
}

func (w *sinkWriter) Write(p []byte) (int, error) {
	if w.closed {
		return 0, ErrSinkClosed
	}
	return w.buf.Write(p)
}

func (w *sinkWriter) Commit() error {
	if w.closed {
		return ErrSinkClosed
	}
	w.closed = true

	w.sink.mu.Lock()
	defer w.sink.mu.Unlock()
	w.sink.files[w.path] = bytes.Clone(w.buf.Bytes())
	w.sink.open--
	return nil
}

func (w *sinkWriter) Abort() error {
	if w.closed {
		return nil
	}
	w.closed = true

	w.sink.mu.Lock()
	defer w.sink.mu.Unlock()
	w.sink.open--
	return nil
}
