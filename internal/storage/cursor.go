package storage

import (
	"bytes"
	"errors"
	"sync"

	"github.com/KilimcininKorOglu/dsagent/agent"
)

// ErrNoActiveEdit is returned by AcceptChanges/RejectChanges when no
// BeginEdit is outstanding.
var ErrNoActiveEdit = errors.New("storage: no active edit")

// Cursor is the shared, stateful cursor the whole Directory Agent drives:
// one current index, one scan position, and at most one outstanding edit.
// It satisfies agent.Cursor. Concurrent callers must coordinate externally
// (spec.md §5: the cursor is mutable shared state); Cursor itself only
// guards its own fields.
type Cursor struct {
	mu sync.Mutex

	table *Table

	currentIndex string
	pos          int
	matchKey     []byte // nil => unbounded forward scan
	scanning     bool

	editRow   *Row
	editStage *Row

	disposed bool
}

// NewCursor returns a Cursor over table with no current index set.
func NewCursor(table *Table) *Cursor {
	return &Cursor{table: table}
}

// SetCurrentIndex implements agent.Cursor. It resets the scan position —
// a plain SetCurrentIndex without a following FindEqual starts an
// unbounded forward scan of the whole index (used by get_accounts'
// full sAMAccountType walk).
func (c *Cursor) SetCurrentIndex(indexName string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := c.table.index(indexName); err != nil {
		return err
	}
	c.currentIndex = indexName
	c.pos = 0
	c.matchKey = nil
	c.scanning = false
	return nil
}

// CurrentIndex implements agent.Cursor.
func (c *Cursor) CurrentIndex() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentIndex
}

// GotoKey implements agent.Cursor: a unique-key lookup (spec.md §4.1.1
// step 3 — DNT/GUID/SID indexes).
func (c *Cursor) GotoKey(key []byte) (agent.ObjectView, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ix, err := c.table.index(c.currentIndex)
	if err != nil {
		return nil, false, err
	}

	dnt, ok := ix.gotoKey(key)
	if !ok {
		return nil, false, nil
	}
	row, ok := c.table.Get(dnt)
	if !ok {
		return nil, false, nil
	}
	return &objectView{row: row}, true, nil
}

// FindEqual implements agent.Cursor: positions the cursor at the first
// entry matching key and bounds subsequent MoveNext calls to that key
// (spec.md §4.1.1 step 4, §4.1.2's objectCategory seek).
func (c *Cursor) FindEqual(key []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	ix, err := c.table.index(c.currentIndex)
	if err != nil {
		return err
	}
	c.pos = ix.firstEqual(key)
	c.matchKey = append([]byte(nil), key...)
	c.scanning = true
	return nil
}

// MoveNext implements agent.Cursor. Under a FindEqual bound it stops at
// the first non-matching key; otherwise it walks the whole index forward.
func (c *Cursor) MoveNext() (agent.ObjectView, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ix, err := c.table.index(c.currentIndex)
	if err != nil {
		return nil, false, err
	}

	entry, ok := ix.at(c.pos)
	if !ok {
		return nil, false, nil
	}
	if c.scanning && !bytes.Equal(entry.key, c.matchKey) {
		return nil, false, nil
	}
	c.pos++

	row, ok := c.table.Get(entry.dnt)
	if !ok {
		return nil, false, &agent.StorageError{Inner: errors.New("index entry points at a missing row")}
	}
	return &objectView{row: row}, true, nil
}

// SaveLocation implements agent.Cursor.
func (c *Cursor) SaveLocation() agent.CursorLocation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return agent.CursorLocation{Index: c.currentIndex, Position: c.pos}
}

// RestoreLocation implements agent.Cursor. It restores the index and
// position but not the FindEqual bound, matching CursorLocation's shape
// (index + position only, per spec.md §4.1.5's invariant).
func (c *Cursor) RestoreLocation(loc agent.CursorLocation) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if loc.Index != "" {
		if _, err := c.table.index(loc.Index); err != nil {
			return err
		}
	}
	c.currentIndex = loc.Index
	c.pos = loc.Position
	c.matchKey = nil
	c.scanning = false
	return nil
}

// BeginEdit implements agent.Cursor: stages a writable copy of dnt's row.
// Only one edit may be outstanding at a time.
func (c *Cursor) BeginEdit(dnt agent.DNT) (agent.ObjectView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.editRow != nil {
		return nil, errors.New("storage: an edit is already in progress")
	}

	row, ok := c.table.Get(dnt)
	if !ok {
		return nil, &agent.NotFoundError{Identifier: "dnt"}
	}

	c.editRow = row
	c.editStage = cloneRow(row)
	return &objectView{row: c.editStage, editable: true}, nil
}

// AcceptChanges implements agent.Cursor: publishes the staged edit.
func (c *Cursor) AcceptChanges() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.editRow == nil {
		return ErrNoActiveEdit
	}
	c.table.replace(c.editRow.DNT, c.editStage)
	c.editRow = nil
	c.editStage = nil
	return nil
}

// RejectChanges implements agent.Cursor: discards the staged edit.
func (c *Cursor) RejectChanges() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.editRow == nil {
		return ErrNoActiveEdit
	}
	c.editRow = nil
	c.editStage = nil
	return nil
}

// Dispose implements agent.Cursor. Double-dispose is a no-op (spec.md §5).
func (c *Cursor) Dispose() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disposed = true
	return nil
}
