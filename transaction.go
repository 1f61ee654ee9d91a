package cryptofolio

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UnknownCoinID is the sentinel coin identifier used when a record does not
// carry one. Records grouped under it are reported, never dropped.
const UnknownCoinID = "unknown"

// Sentinel display metadata paired with UnknownCoinID.
const (
	unknownCoinName   = "Unknown Coin"
	unknownCoinSymbol = "UNKNOWN"
)

// TransactionRecord is a user-entered log of acquiring some quantity of an
// asset at a cost. It is the sole unit of persisted state.
//
// Records are immutable after creation: the only mutations on the stored
// collection are removal by ID and clear-all. The display metadata
// (CoinName, CoinSymbol, CoinImage) is snapshotted at creation time and
// never re-fetched.
type TransactionRecord struct {
	ID          string    // unique across the collection, generated at creation
	CoinID      string    // canonical asset id from the market data provider
	CoinName    string    // snapshot, not re-fetched later
	CoinSymbol  string    // snapshot, upper-cased for display
	CoinImage   string    // snapshot, may be empty
	Quantity    Quantity  // amount acquired, positive for validated records
	AverageCost Money     // unit price paid, reporting currency
	TotalValue  Money     // Quantity * AverageCost at creation time, stored redundantly
	Date        Date      // day the transaction is attributed to
	Notes       string    // optional free text
	CreatedAt   time.Time // creation timestamp, distinct from Date
}

// NewTransactionRecord creates a record from validated user input. TotalValue
// is computed from quantity and cost; the symbol is upper-cased; a zero date
// defaults to today.
func NewTransactionRecord(coinID, coinName, coinSymbol, coinImage string, quantity Quantity, averageCost Money, day Date, notes string) TransactionRecord {
	if day.IsZero() {
		day = Today()
	}
	return TransactionRecord{
		ID:          uuid.NewString(),
		CoinID:      coinID,
		CoinName:    coinName,
		CoinSymbol:  strings.ToUpper(coinSymbol),
		CoinImage:   coinImage,
		Quantity:    quantity,
		AverageCost: averageCost,
		TotalValue:  averageCost.Mul(quantity),
		Date:        day,
		Notes:       notes,
		CreatedAt:   time.Now(),
	}
}

// FieldError reports a validation failure on a single entry field, so the
// caller can surface it next to the offending input.
type FieldError struct {
	Field string
	Msg   string
}

func (e FieldError) Error() string { return e.Field + ": " + e.Msg }

// Validate checks the record against the entry rules. It returns all field
// errors joined together; a record failing validation must never be persisted.
func (t TransactionRecord) Validate() error {
	var errs error
	if t.ID == "" {
		errs = errors.Join(errs, FieldError{"id", "missing record id"})
	}
	if t.CoinID == "" || t.CoinID == UnknownCoinID {
		errs = errors.Join(errs, FieldError{"coin", "please select a coin"})
	}
	if !t.Quantity.IsPositive() {
		errs = errors.Join(errs, FieldError{"quantity", "please enter a valid quantity"})
	}
	if !t.AverageCost.IsPositive() {
		errs = errors.Join(errs, FieldError{"averageCost", "please enter a valid cost"})
	}
	if t.Date.IsZero() {
		errs = errors.Join(errs, FieldError{"date", "please select a date"})
	} else if t.Date.After(Today()) {
		errs = errors.Join(errs, FieldError{"date", "date cannot be in the future"})
	}
	if !t.TotalValue.Equal(t.AverageCost.Mul(t.Quantity)) {
		errs = errors.Join(errs, FieldError{"totalValue", fmt.Sprintf("total value %s does not equal quantity times cost", t.TotalValue)})
	}
	return errs
}

// MarshalJSON implements json.Marshaler with a stable field order, so the
// stored collection stays diffable across saves.
func (t TransactionRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("coinId", t.CoinID)
	w.Append("coinName", t.CoinName)
	w.Append("coinSymbol", t.CoinSymbol)
	w.Optional("coinImage", t.CoinImage)
	w.Append("quantity", t.Quantity)
	w.Append("averageCost", t.AverageCost)
	w.Append("totalValue", t.TotalValue)
	w.Append("date", t.Date)
	w.Optional("notes", t.Notes)
	w.Append("createdAt", t.CreatedAt.Format(time.RFC3339))
	return w.MarshalJSON()
}
