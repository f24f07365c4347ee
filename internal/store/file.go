package store

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"safewatch-chatbot/pkg"
)

// DefaultDataFile is where the file sink appends reports when no path is
// configured.
const DefaultDataFile = "adverse_events.json"

// FileSink appends reports to a local JSON array file. It is the default
// backend for local development. Writes are serialised with a mutex
// because the file is rewritten whole on every save.
type FileSink struct {
	path string
	mu   sync.Mutex
}

// NewFileSink constructs a file sink writing to path, or to
// DefaultDataFile when path is empty.
func NewFileSink(path string) *FileSink {
	if path == "" {
		path = DefaultDataFile
	}
	return &FileSink{path: path}
}

// Save loads the existing report list, appends the new report and writes
// the file back. A missing, empty or corrupted data file is treated as an
// empty list rather than an error, so one bad write never wedges
// reporting permanently.
func (s *FileSink) Save(ctx context.Context, report *pkg.AdverseEventReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var existing []pkg.AdverseEventReport
	if raw, err := os.ReadFile(s.path); err == nil {
		if err := json.Unmarshal(raw, &existing); err != nil {
			existing = nil
		}
	}
	existing = append(existing, *report)

	out, err := json.MarshalIndent(existing, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, out, 0o644)
}
