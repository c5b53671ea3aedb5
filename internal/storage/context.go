package storage

import (
	"sync"
	"sync/atomic"

	"github.com/KilimcininKorOglu/dsagent/agent"
)

// Context implements agent.Context over an in-memory Table, a single
// shared Cursor, and caller-supplied Schema/DNResolver adapters.
type Context struct {
	table    *Table
	cursor   *Cursor
	schema   agent.Schema
	resolver agent.DNResolver
	header   *agent.DCHeader

	nextTxID uint64

	mu       sync.Mutex
	disposed bool
}

// NewContext wires a Table together with a Schema, a DNResolver, and a
// DCHeader into a ready-to-use agent.Context.
func NewContext(table *Table, schema agent.Schema, resolver agent.DNResolver, header *agent.DCHeader) *Context {
	return &Context{
		table:    table,
		cursor:   NewCursor(table),
		schema:   schema,
		resolver: resolver,
		header:   header,
	}
}

// BeginTransaction implements agent.Context.
func (c *Context) BeginTransaction() (agent.Transaction, error) {
	id := atomic.AddUint64(&c.nextTxID, 1)
	return &Transaction{id: id, state: txActive}, nil
}

// Cursor implements agent.Context.
func (c *Context) Cursor() agent.Cursor { return c.cursor }

// Schema implements agent.Context.
func (c *Context) Schema() agent.Schema { return c.schema }

// DNResolver implements agent.Context.
func (c *Context) DNResolver() agent.DNResolver { return c.resolver }

// DCHeader implements agent.Context.
func (c *Context) DCHeader() *agent.DCHeader { return c.header }

// Table exposes the underlying Table, e.g. for test fixtures that need to
// populate rows and indexes directly.
func (c *Context) Table() *Table { return c.table }

// Dispose implements agent.Context. Double-dispose is a no-op.
func (c *Context) Dispose() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return nil
	}
	c.disposed = true
	return c.cursor.Dispose()
}
