// Package history provides the bounded, file-backed prediction log.
// The log is append-only from the predictor's point of view; writes are
// atomic and a damaged file degrades to an empty history so prediction
// stays available.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"freshchain/internal/errors"
	"freshchain/internal/logging"
)

// DefaultLimit is the default retention window for prediction entries
const DefaultLimit = 120

// Entry is one prediction record
type Entry struct {
	BatchID           string   `json:"batch_id,omitempty"`
	Product           string   `json:"product"`
	Temperature       float64  `json:"temperature"`
	Humidity          float64  `json:"humidity"`
	MLPrediction      float64  `json:"ml_prediction"`
	KineticPrediction float64  `json:"kinetic_prediction"`
	HybridPrediction  float64  `json:"hybrid_prediction"`
	AlphaUsed         float64  `json:"alpha_used"`
	SensorSamples     int      `json:"sensor_samples"`

	// ActualShelfLife is filled in later by external curation, when the
	// observed outcome for the batch becomes known. It is never set by
	// the predictor itself.
	ActualShelfLife *float64 `json:"actual_shelf_life,omitempty"`

	RecordedAt time.Time `json:"recorded_at"`
}

// Validated reports whether the entry carries an observed outcome
func (e Entry) Validated() bool {
	return e.ActualShelfLife != nil && *e.ActualShelfLife > 0
}

// Store is a size-capped ordered log persisted as a single JSON file.
// The load-append-truncate-save cycle is guarded by a per-store mutex so
// concurrent predictions sharing one file cannot lose writes.
type Store struct {
	mu    sync.Mutex
	path  string
	limit int
}

// NewStore creates a store writing to path, retaining at most limit entries.
// A limit of zero or less falls back to DefaultLimit.
func NewStore(path string, limit int) (*Store, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Storage("failed to create history directory", err)
	}
	return &Store{path: path, limit: limit}, nil
}

// Append adds an entry, dropping the oldest entries beyond the retention
// window. Storage failures are reported but callers are expected to treat
// them as non-fatal.
func (s *Store) Append(entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.loadLocked()
	entries = append(entries, entry)
	if len(entries) > s.limit {
		entries = entries[len(entries)-s.limit:]
	}
	return s.saveLocked(entries)
}

// LoadAll returns every retained entry, oldest first. A missing or corrupt
// file yields an empty history, never an error.
func (s *Store) LoadAll() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

// AnnotateLatest attaches an observed shelf life to the most recent entry
// for a batch. This is the external curation hook; it does not touch any
// other field.
func (s *Store) AnnotateLatest(batchID string, actualDays float64) error {
	if batchID == "" {
		return errors.Input("batch id is required to annotate history")
	}
	if actualDays <= 0 {
		return errors.Input("observed shelf life must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.loadLocked()
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].BatchID == batchID {
			entries[i].ActualShelfLife = &actualDays
			return s.saveLocked(entries)
		}
	}
	return errors.Newf(errors.TypeInput, "no history entry for batch %s", batchID)
}

func (s *Store) loadLocked() []Entry {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Warn("failed to read prediction history", zap.String("path", s.path), zap.Error(err))
		}
		return nil
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		logging.Warn("prediction history is corrupt, starting empty", zap.String("path", s.path), zap.Error(err))
		return nil
	}
	return entries
}

// saveLocked writes the log atomically: marshal, write a temp file, rename.
// An interrupted write never leaves a half-written history behind.
func (s *Store) saveLocked(entries []Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return errors.Storage("failed to serialize prediction history", err)
	}

	tempPath := s.path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return errors.Storage("failed to write prediction history", err)
	}
	if err := os.Rename(tempPath, s.path); err != nil {
		return errors.Storage("failed to commit prediction history", err)
	}
	return nil
}
