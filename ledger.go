package cryptofolio

import (
	"fmt"
	"iter"
)

// Ledger is the insertion-ordered collection of transaction records.
//
// Records are never mutated in place: the only operations are append,
// removal by ID, and wholesale replacement. Order is the order records
// were added, which the aggregation relies on for first-seen grouping.
type Ledger struct {
	records []TransactionRecord
	index   map[string]int // record ID to position in records
}

// NewLedger creates an empty ledger.
func NewLedger(records ...TransactionRecord) (*Ledger, error) {
	l := &Ledger{
		records: make([]TransactionRecord, 0, len(records)),
		index:   make(map[string]int),
	}
	for _, rec := range records {
		if err := l.Append(rec); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Len returns the number of records in the ledger.
func (l *Ledger) Len() int { return len(l.records) }

// Append adds a record at the end of the collection. The record ID must be
// unique across the ledger.
func (l *Ledger) Append(rec TransactionRecord) error {
	if rec.ID == "" {
		return fmt.Errorf("record has no id")
	}
	if _, exists := l.index[rec.ID]; exists {
		return fmt.Errorf("duplicate record id %q", rec.ID)
	}
	l.index[rec.ID] = len(l.records)
	l.records = append(l.records, rec)
	return nil
}

// Remove deletes the record with the given ID. It reports whether a record
// was actually removed.
func (l *Ledger) Remove(id string) bool {
	i, ok := l.index[id]
	if !ok {
		return false
	}
	l.records = append(l.records[:i], l.records[i+1:]...)
	delete(l.index, id)
	// reindex the tail that shifted left.
	for j := i; j < len(l.records); j++ {
		l.index[l.records[j].ID] = j
	}
	return true
}

// Get returns the record with the given ID, or false if unknown.
func (l *Ledger) Get(id string) (TransactionRecord, bool) {
	i, ok := l.index[id]
	if !ok {
		return TransactionRecord{}, false
	}
	return l.records[i], true
}

// Records returns an iterator over records in insertion order, restricted to
// those accepted by any of the given filters. With no filter all records are
// yielded.
func (l *Ledger) Records(filters ...func(TransactionRecord) bool) iter.Seq2[int, TransactionRecord] {
	return func(yield func(int, TransactionRecord) bool) {
		for i, rec := range l.records {
			accept := len(filters) == 0
			for _, filter := range filters {
				if filter(rec) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, rec) {
				return
			}
		}
	}
}

// Snapshot returns a copy of the record collection, in insertion order. The
// copy is safe to hand to the pure aggregation functions.
func (l *Ledger) Snapshot() []TransactionRecord {
	out := make([]TransactionRecord, len(l.records))
	copy(out, l.records)
	return out
}

// ByCoin returns a predicate that filters records by coin identifier.
func ByCoin(coinID string) func(TransactionRecord) bool {
	return func(rec TransactionRecord) bool { return rec.CoinID == coinID }
}

// InRange returns a predicate accepting records dated within [from, to],
// both inclusive. A zero bound is open.
func InRange(from, to Date) func(TransactionRecord) bool {
	return func(rec TransactionRecord) bool {
		if !from.IsZero() && rec.Date.Before(from) {
			return false
		}
		if !to.IsZero() && rec.Date.After(to) {
			return false
		}
		return true
	}
}
