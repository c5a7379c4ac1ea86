// Package audit mirrors every produced simulation event to an optional
// append-only JSONL file. This is operational logging of the session for
// later inspection; the simulation state itself stays in memory only.
package audit

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/snazarov/aclsim/models"
)

// Logger writes audit events to an append-only log.
// The zero value (and a Logger created with an empty path) discards events.
type Logger struct {
	mu   sync.Mutex
	file *os.File
}

// NewLogger opens an append-only audit log file. An empty path yields a
// no-op logger.
func NewLogger(path string) (*Logger, error) {
	if path == "" {
		return &Logger{}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, err
	}
	return &Logger{file: f}, nil
}

// Log writes one event as a JSON line.
func (l *Logger) Log(evt models.Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	line, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	line = append(line, '\n')
	_, err = l.file.Write(line)
	return err
}

// Close closes the audit log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
