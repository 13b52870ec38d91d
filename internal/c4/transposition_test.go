package c4

import "testing"

func TestTranspositionTableAddGet(t *testing.T) {
	pos := Construct("162636")
	tt := NewTranspositionTable()

	tt.Add(pos, 20)
	got, ok := tt.Get(pos)
	if !ok || got != 20 {
		t.Fatalf("Get() = (%d, %v), want (20, true)", got, ok)
	}

	tt.Add(pos, 10)
	got, ok = tt.Get(pos)
	if !ok || got != 10 {
		t.Fatalf("Get() after overwrite = (%d, %v), want (10, true)", got, ok)
	}

	stores, _, hits := tt.Stats()
	if stores != 2 {
		t.Errorf("stores = %d, want 2", stores)
	}
	if hits != 2 {
		t.Errorf("hits = %d, want 2", hits)
	}
}

func TestTranspositionTableMissOnEmptySlot(t *testing.T) {
	tt := NewTranspositionTable()
	_, ok := tt.Get(New())
	if ok {
		t.Fatal("expected miss on a freshly cleared table")
	}
}

func TestTranspositionTableClear(t *testing.T) {
	pos := Construct("1")
	tt := NewTranspositionTable()
	tt.Add(pos, 5)

	tt.Clear()

	if _, ok := tt.Get(pos); ok {
		t.Fatal("expected miss after Clear")
	}
	stores, probes, hits := tt.Stats()
	if stores != 0 || probes != 1 || hits != 0 {
		t.Errorf("stats after clear+one probe = (%d,%d,%d), want (0,1,0)", stores, probes, hits)
	}
}
