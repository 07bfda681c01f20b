// Package filesink writes exports to the local filesystem.
//
// Each export is written to a uniquely named temporary file next to the
// destination and renamed over it on commit, so a failed encode never
// leaves a partial image behind.
package filesink

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/custodia-labs/vcardqr/internal/core/ports/driven"
)

// Ensure Sink implements the interface.
var _ driven.Sink = (*Sink)(nil)

// ErrWriterClosed is returned when using a committed or aborted writer.
var ErrWriterClosed = errors.New("filesink: writer closed")

// DefaultPerm is the mode of exported files.
const DefaultPerm os.FileMode = 0o644

// Sink creates files on the local filesystem.
type Sink struct {
	perm os.FileMode
}

// NewSink creates a file sink writing files with DefaultPerm.
func NewSink() *Sink {
	return &Sink{perm: DefaultPerm}
}

// Create opens a temporary file beside path.
func (s *Sink) Create(path string) (driven.SinkWriter, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	tmp := tempName(path)
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, s.perm)
	if err != nil {
		return nil, err
	}
	return &writer{file: f, tmp: tmp, path: path}, nil
}

// tempName returns a hidden sibling of path unique to this write.
func tempName(path string) string {
	dir, base := filepath.Split(path)
	return filepath.Join(dir, "."+base+"."+uuid.NewString()+".tmp")
}

type writer struct {
	file   *os.File
	tmp    string
	path   string
	closed bool
}

func (w *writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, ErrWriterClosed
	}
	return w.file.Write(p)
}

// Commit flushes the temporary file and renames it over the destination.
func (w *writer) Commit() error {
	if w.closed {
		return ErrWriterClosed
	}
	w.closed = true

	if err := w.file.Sync(); err != nil {
		_ = w.file.Close()
		_ = os.Remove(w.tmp)
		return err
	}
	if err := w.file.Close(); err != nil {
		_ = os.Remove(w.tmp)
		return err
	}
	if err := os.Rename(w.tmp, w.path); err != nil {
		_ = os.Remove(w.tmp)
		return err
	}
	return nil
}

// Abort removes the temporary file. It is a no-op after Commit.
func (w *writer) Abort() error {
	if w.closed {
		return nil
	}
	w.closed = true

	return errors.Join(w.file.Close(), os.Remove(w.tmp))
}
