package cryptofolio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store persists the record collection and the settings as one JSON file per
// storage key under a local directory, the device-local equivalent of the
// tracked key-value slots.
//
// Reads are lenient (see sanitize.go); writes replace the whole file through
// a temporary file and rename, so a failed save leaves the previous state
// intact.
type Store struct {
	dir string
}

// Storage keys.
const (
	recordsFile  = "transactions.json"
	settingsFile = "settings.json"
)

// OpenStore opens (and creates if needed) a store rooted at dir.
func OpenStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create storage directory %q: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the storage directory.
func (s *Store) Dir() string { return s.dir }

// Load reads the persisted record collection. A missing file yields an empty
// collection, not an error. Malformed entries are silently dropped and the
// surviving entries defensively defaulted, so callers never observe a partial
// record.
func (s *Store) Load() ([]TransactionRecord, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, recordsFile))
	if errors.Is(err, fs.ErrNotExist) {
		return []TransactionRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read stored transactions: %w", err)
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		// Not a list at all: the whole blob is unusable, start empty.
		return []TransactionRecord{}, nil
	}
	return sanitizeRecords(raws), nil
}

// Ledger loads the stored collection into a Ledger.
func (s *Store) Ledger() (*Ledger, error) {
	records, err := s.Load()
	if err != nil {
		return nil, err
	}
	return NewLedger(records...)
}

// Save overwrites the whole record collection. The write is atomic from the
// caller's perspective: either the new collection is fully on disk or the
// previous one is untouched.
func (s *Store) Save(records []TransactionRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot serialize transactions: %w", err)
	}
	return s.writeFile(recordsFile, data)
}

// Append validates the record and adds it at the end of the stored
// collection. Nothing is persisted when validation fails.
func (s *Store) Append(rec TransactionRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	ledger, err := s.Ledger()
	if err != nil {
		return err
	}
	if err := ledger.Append(rec); err != nil {
		return err
	}
	return s.Save(ledger.Snapshot())
}

// Remove deletes the record with the given ID and reports whether one was
// removed. The caller owns any confirmation step.
func (s *Store) Remove(id string) (bool, error) {
	ledger, err := s.Ledger()
	if err != nil {
		return false, err
	}
	if !ledger.Remove(id) {
		return false, nil
	}
	return true, s.Save(ledger.Snapshot())
}

// LoadSettings reads the persisted settings, defaulting every missing or
// out-of-domain field. A missing file yields the defaults.
func (s *Store) LoadSettings() (Settings, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, settingsFile))
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("cannot read stored settings: %w", err)
	}
	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), nil
	}
	return settings.sanitized(), nil
}

// SaveSettings overwrites the persisted settings.
func (s *Store) SaveSettings(settings Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot serialize settings: %w", err)
	}
	return s.writeFile(settingsFile, data)
}

// Clear deletes the record collection and the co-located settings. The two
// removals are sequential, not atomic as a unit: a failure in between leaves
// the settings behind.
func (s *Store) Clear() error {
	for _, name := range []string{recordsFile, settingsFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("cannot clear %s: %w", name, err)
		}
	}
	return nil
}

// writeFile writes a storage key atomically via a temporary file and rename.
func (s *Store) writeFile(name string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("cannot stage write for %s: %w", name, err)
	}
	_, werr := tmp.Write(append(data, '\n'))
	cerr := tmp.Close()
	if werr != nil || cerr != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cannot write %s: %w", name, errors.Join(werr, cerr))
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cannot commit %s: %w", name, err)
	}
	return nil
}
