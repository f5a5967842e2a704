package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"pcb-research/backend/common"
)

// Store persists the whole collection as a single pretty-printed JSON array.
// Every mutation is a full read-modify-write of the file; writes are not
// atomic and carry no cross-process lock, so concurrent sessions race with
// last-writer-wins semantics. That matches the observed contract of the tool.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted collection. A missing file is an empty catalogue,
// not an error; a present but malformed file fails with the parse error.
func (s *Store) Load() ([]PCBRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []PCBRecord{}, nil
		}
		return nil, fmt.Errorf("read database %s: %w", s.path, err)
	}

	var records []PCBRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse database %s: %w", s.path, err)
	}
	if records == nil {
		records = []PCBRecord{}
	}
	return records, nil
}

// Save serializes the full sequence, overwriting any existing state.
func (s *Store) Save(records []PCBRecord) error {
	if records == nil {
		records = []PCBRecord{}
	}
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("serialize database: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create database directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write database %s: %w", s.path, err)
	}
	return nil
}

// Append is load, append, save. The new record always lands at the end.
func (s *Store) Append(record PCBRecord) ([]PCBRecord, error) {
	records, err := s.Load()
	if err != nil {
		return nil, err
	}
	records = append(records, record)
	if err := s.Save(records); err != nil {
		return nil, err
	}
	return records, nil
}

// DB is the store behind the session-held collection below.
var DB *Store

var (
	recordsMu sync.RWMutex
	records   []PCBRecord
)

// InitDB opens the store at the configured path and loads the collection
// into memory. It is called once at startup; the in-memory copy lives for
// the whole session and is only ever mutated by AddRecord.
func InitDB() error {
	DB = NewStore(common.DatabasePath)
	loaded, err := DB.Load()
	if err != nil {
		return err
	}
	recordsMu.Lock()
	records = loaded
	recordsMu.Unlock()
	common.SysLog(fmt.Sprintf("database loaded from %s (%d records)", common.DatabasePath, len(loaded)))
	return nil
}

// AllRecords returns a copy of the in-memory collection in insertion order.
func AllRecords() []PCBRecord {
	recordsMu.RLock()
	defer recordsMu.RUnlock()
	out := make([]PCBRecord, len(records))
	copy(out, records)
	return out
}

// RecordCount returns the size of the in-memory collection.
func RecordCount() int {
	recordsMu.RLock()
	defer recordsMu.RUnlock()
	return len(records)
}

// AddRecord appends the record to the in-memory collection and persists the
// whole sequence. The mutex only serializes handlers within this process;
// the file itself stays unlocked.
func AddRecord(record PCBRecord) error {
	recordsMu.Lock()
	defer recordsMu.Unlock()
	next := append(append([]PCBRecord{}, records...), record)
	if err := DB.Save(next); err != nil {
		return err
	}
	records = next
	return nil
}
