package kmer

import "testing"

func TestTableIncrSaturates(t *testing.T) {
	tbl := NewTable(21, 16)
	var c *Count
	for i := 0; i < 300; i++ {
		c = tbl.Incr(7)
	}
	if c.N != maxCount {
		t.Errorf("got %d, want saturated at %d", c.N, maxCount)
	}
}

func TestTablePurgeSingletons(t *testing.T) {
	tbl := NewTable(21, 16)
	tbl.Incr(1)
	tbl.Incr(2)
	tbl.Incr(2)
	tbl.Incr(3)
	tbl.Incr(3)
	tbl.Incr(3)

	tbl.PurgeSingletons()

	if _, ok := tbl.Get(1); ok {
		t.Error("singleton kmer 1 should have been purged")
	}
	if _, ok := tbl.Get(2); !ok {
		t.Error("kmer 2 with count 2 should survive")
	}
	if _, ok := tbl.Get(3); !ok {
		t.Error("kmer 3 with count 3 should survive")
	}
	if tbl.Len() != 2 {
		t.Errorf("got len %d, want 2", tbl.Len())
	}
}

func TestTableSortedKeys(t *testing.T) {
	tbl := NewTable(21, 16)
	for _, w := range []uint64{50, 10, 30, 20, 40} {
		tbl.Incr(w)
	}
	keys := tbl.SortedKeys()
	want := []uint64{10, 20, 30, 40, 50}
	if len(keys) != len(want) {
		t.Fatalf("got %d keys, want %d", len(keys), len(want))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("index %d: got %d, want %d", i, keys[i], want[i])
		}
	}
}

func TestTableDeleteDuringRange(t *testing.T) {
	tbl := NewTable(21, 16)
	for _, w := range []uint64{1, 2, 3, 4} {
		tbl.Incr(w)
	}
	tbl.Range(func(w uint64, c *Count) bool {
		if w%2 == 0 {
			tbl.Delete(w)
		}
		return true
	})
	if tbl.Len() != 2 {
		t.Errorf("got len %d, want 2", tbl.Len())
	}
}

func TestFlagVisited(t *testing.T) {
	tbl := NewTable(21, 16)
	c := tbl.Incr(9)
	c.Flag |= FlagVisited
	got, _ := tbl.Get(9)
	if got.Flag&FlagVisited == 0 {
		t.Error("FlagVisited should be set")
	}
}
