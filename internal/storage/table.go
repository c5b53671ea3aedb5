package storage

import (
	"bytes"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/KilimcininKorOglu/dsagent/agent"
)

// ErrUnknownIndex is returned when a caller names an index the Table never
// registered.
var ErrUnknownIndex = errors.New("storage: unknown index")

// ErrIndexExists is returned by CreateIndex for a name already registered.
var ErrIndexExists = errors.New("storage: index already registered")

// attrMeta is the per-attribute (local_usn, timestamp) metadata tuple
// spec.md §3 attaches to every attribute.
type attrMeta struct {
	usn       int64
	timestamp time.Time
}

// Row is one object-table row, identified by DNT.
type Row struct {
	DNT      agent.DNT
	Attrs    map[agent.AttributeID]any
	Meta     map[agent.AttributeID]attrMeta
	Deleted  bool
	Writable bool
}

func newRow(dnt agent.DNT) *Row {
	return &Row{
		DNT:      dnt,
		Attrs:    make(map[agent.AttributeID]any),
		Meta:     make(map[agent.AttributeID]attrMeta),
		Writable: true,
	}
}

func cloneRow(r *Row) *Row {
	clone := &Row{
		DNT:      r.DNT,
		Attrs:    make(map[agent.AttributeID]any, len(r.Attrs)),
		Meta:     make(map[agent.AttributeID]attrMeta, len(r.Meta)),
		Deleted:  r.Deleted,
		Writable: r.Writable,
	}
	for k, v := range r.Attrs {
		clone.Attrs[k] = v
	}
	for k, v := range r.Meta {
		clone.Meta[k] = v
	}
	return clone
}

// indexEntry is one (key, DNT) pair in an Index. Entries sharing a key
// keep a stable relative order — the scan-forward-for-first-writable
// protocol (spec.md §4.1.1) depends on a deterministic order among
// duplicates — by always inserting a new tie after the existing ones.
type indexEntry struct {
	key []byte
	dnt agent.DNT
}

// Index is a sorted (by key, then insertion order) array of entries
// backing one named lookup. Unique indexes (DNT, ObjectGUID, ObjectSid)
// reject a second insert under an existing key; non-unique indexes
// (SamAccountName, ObjectCategory, SAMAccountType) do not.
type Index struct {
	mu      sync.RWMutex
	name    string
	unique  bool
	entries []indexEntry
}

func newIndex(name string, unique bool) *Index {
	return &Index{name: name, unique: unique}
}

func (ix *Index) insert(key []byte, dnt agent.DNT) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	if ix.unique {
		lower := sort.Search(len(ix.entries), func(i int) bool {
			return bytes.Compare(ix.entries[i].key, key) >= 0
		})
		if lower < len(ix.entries) && bytes.Equal(ix.entries[lower].key, key) {
			return errors.New("storage: duplicate key in unique index " + ix.name)
		}
	}

	// Upper-bound search: a new entry sharing a key with existing ones is
	// placed after them, so ties keep a stable first-inserted-first order
	// when a non-unique index's equal-range is scanned forward.
	pos := sort.Search(len(ix.entries), func(i int) bool {
		return bytes.Compare(ix.entries[i].key, key) > 0
	})

	entry := indexEntry{key: append([]byte(nil), key...), dnt: dnt}

	ix.entries = append(ix.entries, indexEntry{})
	copy(ix.entries[pos+1:], ix.entries[pos:])
	ix.entries[pos] = entry
	return nil
}

// gotoKey returns the DNT stored under an exact key match. Defined for
// both unique and non-unique indexes; callers restrict its use to unique
// ones per spec.md §4.1.1 step 3.
func (ix *Index) gotoKey(key []byte) (agent.DNT, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	pos := sort.Search(len(ix.entries), func(i int) bool {
		return bytes.Compare(ix.entries[i].key, key) >= 0
	})
	if pos < len(ix.entries) && bytes.Equal(ix.entries[pos].key, key) {
		return ix.entries[pos].dnt, true
	}
	return 0, false
}

// firstEqual returns the position of the first entry matching key, or
// len(entries) if none match.
func (ix *Index) firstEqual(key []byte) int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return sort.Search(len(ix.entries), func(i int) bool {
		return bytes.Compare(ix.entries[i].key, key) >= 0
	})
}

func (ix *Index) at(pos int) (indexEntry, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	if pos < 0 || pos >= len(ix.entries) {
		return indexEntry{}, false
	}
	return ix.entries[pos], true
}

func (ix *Index) len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.entries)
}

// Table is the DNT-keyed object table plus its named indexes.
type Table struct {
	mu      sync.RWMutex
	rows    map[agent.DNT]*Row
	indexes map[string]*Index
	nextDNT int32
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{
		rows:    make(map[agent.DNT]*Row),
		indexes: make(map[string]*Index),
	}
}

// CreateIndex registers a named index. unique rejects duplicate keys.
func (t *Table) CreateIndex(name string, unique bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.indexes[name]; exists {
		return ErrIndexExists
	}
	t.indexes[name] = newIndex(name, unique)
	return nil
}

func (t *Table) index(name string) (*Index, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ix, ok := t.indexes[name]
	if !ok {
		return nil, ErrUnknownIndex
	}
	return ix, nil
}

// NewDNT allocates the next DNT. DNTs start at 1; 0 is never assigned.
func (t *Table) NewDNT() agent.DNT {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.nextDNT++
	return agent.DNT(t.nextDNT)
}

// Insert adds a new row for dnt and returns it. The caller is responsible
// for populating index entries via IndexPut.
func (t *Table) Insert(dnt agent.DNT) *Row {
	row := newRow(dnt)
	t.mu.Lock()
	t.rows[dnt] = row
	t.mu.Unlock()
	return row
}

// Get returns the row for dnt.
func (t *Table) Get(dnt agent.DNT) (*Row, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.rows[dnt]
	return row, ok
}

// replace swaps the row stored for dnt, used by Cursor.AcceptChanges to
// publish a staged edit.
func (t *Table) replace(dnt agent.DNT, row *Row) {
	t.mu.Lock()
	t.rows[dnt] = row
	t.mu.Unlock()
}

// IndexPut registers key -> dnt in the named index.
func (t *Table) IndexPut(name string, key []byte, dnt agent.DNT) error {
	ix, err := t.index(name)
	if err != nil {
		return err
	}
	return ix.insert(key, dnt)
}
