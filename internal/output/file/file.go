package file

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/crimson-sun/backline/internal/output"
)

const defaultBufSize = 64 * 1024 // 64KB

// Option configures a file Sink.
type Option func(*Sink)

// WithBufSize sets the bufio.Writer buffer size. Default: 64KB.
func WithBufSize(bytes int) Option {
	return func(s *Sink) { s.bufSize = bytes }
}

// Sink appends analysis runs to an NDJSON file: one line per run document,
// so successive runs with different parameter sets accumulate side by side.
type Sink struct {
	mu      sync.Mutex
	w       *bufio.Writer
	f       *os.File
	path    string
	bufSize int
}

// New creates a file sink appending NDJSON to the given path.
func New(path string, opts ...Option) (*Sink, error) {
	s := &Sink{path: path, bufSize: defaultBufSize}
	for _, opt := range opts {
		opt(s)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("file sink: %w", err)
	}
	s.f = f
	s.w = bufio.NewWriterSize(f, s.bufSize)
	return s, nil
}

func (s *Sink) Write(_ context.Context, doc output.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("file sink: %w", err)
	}
	if _, err := s.w.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("file sink: %w", err)
	}
	return nil
}

func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.w.Flush(); err != nil {
		s.f.Close()
		return fmt.Errorf("file sink: %w", err)
	}
	return s.f.Close()
}
