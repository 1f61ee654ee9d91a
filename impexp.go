package cryptofolio

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// this file contains functions to handle the backup import/export format.
// It is a single human-readable JSON document carrying the whole stored
// state plus enough metadata to recognise a backup later.

// exportVersion identifies the backup document layout.
const exportVersion = "1.0.0"

// exportDoc is the on-disk backup layout.
type exportDoc struct {
	Transactions []json.RawMessage `json:"transactions"`
	Settings     Settings          `json:"settings"`
	Metadata     exportMetadata    `json:"metadata"`
}

type exportMetadata struct {
	Version           string `json:"version"`
	ExportedAt        string `json:"exportedAt"`
	TotalTransactions int    `json:"totalTransactions"`
}

// BackupFilename returns the conventional backup file name for a given day.
func BackupFilename(on Date) string {
	return fmt.Sprintf("cryptofolio-backup-%s.json", on)
}

// Export writes the record collection and settings to w as a single backup
// document.
func Export(w io.Writer, records []TransactionRecord, settings Settings) error {
	raws := make([]json.RawMessage, 0, len(records))
	for _, rec := range records {
		raw, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("cannot serialize record %s: %w", rec.ID, err)
		}
		raws = append(raws, raw)
	}
	doc := exportDoc{
		Transactions: raws,
		Settings:     settings,
		Metadata: exportMetadata{
			Version:           exportVersion,
			ExportedAt:        time.Now().UTC().Format(time.RFC3339),
			TotalTransactions: len(records),
		},
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// Import reads a backup document from r. Records go through the same
// lenient sanitization as a stored collection, and settings through the
// same defaulting, so a hand-edited or partially corrupted backup still
// imports whatever survives.
func Import(r io.Reader) ([]TransactionRecord, Settings, error) {
	var doc exportDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, Settings{}, fmt.Errorf("cannot parse backup document: %w", err)
	}
	return sanitizeRecords(doc.Transactions), doc.Settings.sanitized(), nil
}
