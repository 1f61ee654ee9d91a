package cryptofolio

import (
	"reflect"
	"testing"
)

func TestLedger_Append(t *testing.T) {
	ledger, err := NewLedger()
	if err != nil {
		t.Fatalf("NewLedger: %v", err)
	}

	if err := ledger.Append(rec("t1", "bitcoin", 1, 100, "2025-01-10")); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := ledger.Append(rec("t2", "ethereum", 2, 50, "2025-01-11")); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if ledger.Len() != 2 {
		t.Errorf("Len() = %d, want 2", ledger.Len())
	}

	// Duplicate and empty ids are rejected.
	if err := ledger.Append(rec("t1", "bitcoin", 1, 100, "2025-01-12")); err == nil {
		t.Error("Append with duplicate id must fail")
	}
	empty := rec("", "bitcoin", 1, 100, "2025-01-12")
	if err := ledger.Append(empty); err == nil {
		t.Error("Append with empty id must fail")
	}
	if ledger.Len() != 2 {
		t.Errorf("a rejected Append must not grow the ledger, Len() = %d", ledger.Len())
	}
}

func TestNewLedger_DuplicateID(t *testing.T) {
	_, err := NewLedger(
		rec("t1", "bitcoin", 1, 100, "2025-01-10"),
		rec("t1", "ethereum", 2, 50, "2025-01-11"),
	)
	if err == nil {
		t.Fatal("NewLedger with duplicate ids must fail")
	}
}

func TestLedger_Remove(t *testing.T) {
	ledger, err := NewLedger(
		rec("t1", "bitcoin", 1, 100, "2025-01-10"),
		rec("t2", "ethereum", 2, 50, "2025-01-11"),
		rec("t3", "bitcoin", 3, 120, "2025-01-12"),
	)
	if err != nil {
		t.Fatalf("NewLedger: %v", err)
	}

	if ledger.Remove("missing") {
		t.Error("Remove of an unknown id must report false")
	}
	if !ledger.Remove("t2") {
		t.Fatal("Remove of a known id must report true")
	}

	// The tail shifted left and lookups still work.
	var ids []string
	for _, r := range ledger.Records() {
		ids = append(ids, r.ID)
	}
	if want := []string{"t1", "t3"}; !reflect.DeepEqual(ids, want) {
		t.Errorf("remaining ids = %v, want %v", ids, want)
	}
	if r, ok := ledger.Get("t3"); !ok || r.ID != "t3" {
		t.Errorf("Get(t3) after remove = %v, %v", r.ID, ok)
	}
	if _, ok := ledger.Get("t2"); ok {
		t.Error("Get of a removed id must report false")
	}
}

func TestLedger_Records(t *testing.T) {
	ledger, err := NewLedger(
		rec("t1", "bitcoin", 1, 100, "2025-01-10"),
		rec("t2", "ethereum", 2, 50, "2025-01-15"),
		rec("t3", "bitcoin", 3, 120, "2025-02-01"),
	)
	if err != nil {
		t.Fatalf("NewLedger: %v", err)
	}

	collect := func(filters ...func(TransactionRecord) bool) []string {
		var ids []string
		for _, r := range ledger.Records(filters...) {
			ids = append(ids, r.ID)
		}
		return ids
	}

	if got := collect(); !reflect.DeepEqual(got, []string{"t1", "t2", "t3"}) {
		t.Errorf("unfiltered = %v", got)
	}
	if got := collect(ByCoin("bitcoin")); !reflect.DeepEqual(got, []string{"t1", "t3"}) {
		t.Errorf("ByCoin(bitcoin) = %v", got)
	}
	from, to := MustParseDate("2025-01-11"), MustParseDate("2025-01-31")
	if got := collect(InRange(from, to)); !reflect.DeepEqual(got, []string{"t2"}) {
		t.Errorf("InRange = %v", got)
	}
	// A zero bound is open.
	if got := collect(InRange(Date{}, MustParseDate("2025-01-15"))); !reflect.DeepEqual(got, []string{"t1", "t2"}) {
		t.Errorf("InRange open start = %v", got)
	}
}

func TestLedger_Snapshot(t *testing.T) {
	ledger, err := NewLedger(rec("t1", "bitcoin", 1, 100, "2025-01-10"))
	if err != nil {
		t.Fatalf("NewLedger: %v", err)
	}

	snap := ledger.Snapshot()
	snap[0].ID = "mutated"

	if r, _ := ledger.Get("t1"); r.ID != "t1" {
		t.Error("mutating a snapshot must not touch the ledger")
	}
}
