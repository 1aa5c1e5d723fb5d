package jsonl

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Writer appends newline-delimited JSON records to a file. The file is opened
// lazily on first write and every record is written with a single syscall so
// tailers always see whole lines.
//
// A nil *Writer discards all writes, so callers can treat the audit trail as
// optional without guarding every call site.
type Writer struct {
	mu   sync.Mutex
	path string
	file *os.File
}

// New returns a writer that appends to path, or nil when path is blank.
func New(path string) *Writer {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	return &Writer{path: path}
}

// Write appends v as one JSON object followed by '\n'.
func (w *Writer) Write(v any) error {
	if w == nil {
		return nil
	}
	if v == nil {
		return fmt.Errorf("jsonl: nil record")
	}

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("jsonl: marshal record: %w", err)
	}
	b = append(b, '\n')

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
			return fmt.Errorf("jsonl: create dir for %s: %w", w.path, err)
		}
		f, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("jsonl: open %s: %w", w.path, err)
		}
		w.file = f
	}

	if _, err := w.file.Write(b); err != nil {
		return fmt.Errorf("jsonl: append to %s: %w", w.path, err)
	}
	return nil
}

// Close closes the underlying file if one was opened.
func (w *Writer) Close() error {
	if w == nil {
		return nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	return err
}
