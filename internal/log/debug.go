// Package log collects debug output and user-facing warnings.
//
// Debug lines are held in memory until SetFile picks a destination, so lines
// written while flags and config are still being read end up in the file
// too. Warnings go to the warning writer (stderr by default) and are copied
// into the debug log.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// sink is the io.Writer behind the debug logger. It holds lines in pending
// until a file is opened, then writes through. Once dropped is set every
// line is thrown away.
type sink struct {
	mu      sync.Mutex
	out     *os.File
	pending []byte
	dropped bool
	warn    io.Writer
}

var (
	defaultSink = &sink{warn: os.Stderr}
	debug       = log.New(defaultSink, "", log.LstdFlags|log.Lmicroseconds)
)

func (s *sink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.dropped:
		return len(p), nil
	case s.out != nil:
		n, err := s.out.Write(p)
		_ = s.out.Sync()
		return n, err
	}
	// append copies, p stays the caller's
	s.pending = append(s.pending, p...)
	return len(p), nil
}

// open switches the sink to path, flushing pending lines into it. An empty
// path, or one that cannot be opened, drops everything.
func (s *sink) open(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.out != nil {
		_ = s.out.Close()
		s.out = nil
	}
	s.dropped = true
	pending := s.pending
	s.pending = nil

	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec
	if err != nil {
		return fmt.Errorf("opening debug log: %w", err)
	}

	s.out = f
	s.dropped = false
	if len(pending) > 0 {
		_, _ = f.Write(pending)
		_ = f.Sync()
	}
	return nil
}

func (s *sink) close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.out == nil {
		return nil
	}
	err := s.out.Close()
	s.out = nil
	return err
}

func (s *sink) swapWarn(w io.Writer) io.Writer {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.warn
	s.warn = w
	return prev
}

func (s *sink) warnWriter() io.Writer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.warn
}

// SetFile sends the debug log to path, creating the file if needed and
// flushing anything written so far. An empty path discards buffered and
// future messages.
func SetFile(path string) error {
	return defaultSink.open(path)
}

// Printf writes a formatted debug message.
func Printf(format string, args ...any) {
	debug.Printf(format, args...)
}

// SetWarnWriter redirects warnings and returns the previous writer.
func SetWarnWriter(w io.Writer) io.Writer {
	return defaultSink.swapWarn(w)
}

// Warnf prints "gitree: <message>" to the warning writer and records the
// message in the debug log.
func Warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	debug.Printf("warning: %s", msg)

	if w := defaultSink.warnWriter(); w != nil {
		_, _ = fmt.Fprintf(w, "gitree: %s\n", msg)
	}
}

// Close closes the debug log file, if one is open.
func Close() error {
	return defaultSink.close()
}
