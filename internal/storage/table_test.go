package storage

import "testing"

func TestIndexInsertAndGotoKeyUnique(t *testing.T) {
	table := NewTable()
	if err := table.CreateIndex("dnt", true); err != nil {
		t.Fatalf("CreateIndex() error = %v", err)
	}

	dnt := table.NewDNT()
	table.Insert(dnt)
	if err := table.IndexPut("dnt", []byte{0, 0, 0, 1}, dnt); err != nil {
		t.Fatalf("IndexPut() error = %v", err)
	}

	ix, err := table.index("dnt")
	if err != nil {
		t.Fatalf("index() error = %v", err)
	}
	got, ok := ix.gotoKey([]byte{0, 0, 0, 1})
	if !ok || got != dnt {
		t.Fatalf("gotoKey() = %v, %v, want %v, true", got, ok, dnt)
	}
}

func TestUniqueIndexRejectsDuplicateKey(t *testing.T) {
	table := NewTable()
	if err := table.CreateIndex("sid", true); err != nil {
		t.Fatalf("CreateIndex() error = %v", err)
	}

	a, b := table.NewDNT(), table.NewDNT()
	if err := table.IndexPut("sid", []byte("key"), a); err != nil {
		t.Fatalf("IndexPut() error = %v", err)
	}
	if err := table.IndexPut("sid", []byte("key"), b); err == nil {
		t.Error("IndexPut() on a unique index should reject a duplicate key")
	}
}

func TestNonUniqueIndexAllowsDuplicateKeysInInsertionOrder(t *testing.T) {
	table := NewTable()
	if err := table.CreateIndex("category", false); err != nil {
		t.Fatalf("CreateIndex() error = %v", err)
	}

	first, second := table.NewDNT(), table.NewDNT()
	if err := table.IndexPut("category", []byte("person"), first); err != nil {
		t.Fatalf("IndexPut() error = %v", err)
	}
	if err := table.IndexPut("category", []byte("person"), second); err != nil {
		t.Fatalf("IndexPut() error = %v", err)
	}

	ix, _ := table.index("category")
	pos := ix.firstEqual([]byte("person"))
	e0, _ := ix.at(pos)
	e1, _ := ix.at(pos + 1)
	if e0.dnt != first || e1.dnt != second {
		t.Errorf("entries = %v, %v, want insertion order %v, %v", e0.dnt, e1.dnt, first, second)
	}
}

func TestIndexPutOnUnknownIndexErrors(t *testing.T) {
	table := NewTable()
	if err := table.IndexPut("missing", []byte("x"), table.NewDNT()); err != ErrUnknownIndex {
		t.Fatalf("err = %v, want ErrUnknownIndex", err)
	}
}

func TestNewDNTIsMonotonicAndNeverZero(t *testing.T) {
	table := NewTable()
	var prev int32
	for i := 0; i < 5; i++ {
		dnt := table.NewDNT()
		if int32(dnt) <= prev {
			t.Fatalf("NewDNT() = %d, want strictly greater than %d", dnt, prev)
		}
		prev = int32(dnt)
	}
}

func TestCloneRowIsIndependentOfOriginal(t *testing.T) {
	row := newRow(1)
	row.Attrs[1] = "original"

	clone := cloneRow(row)
	clone.Attrs[1] = "modified"

	if row.Attrs[1] != "original" {
		t.Error("mutating a clone's Attrs should not affect the source row")
	}
}
