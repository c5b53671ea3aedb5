package agent

import "time"

// ObjectView is the thin, cursor-bound record view the storage engine
// produces for the object at the cursor's current position. It becomes
// invalid as soon as the cursor moves; callers must read what they need
// before stepping (spec.md §3 Lifecycle).
type ObjectView interface {
	// DNT returns the object's Distinguished Name Tag.
	DNT() DNT

	// ReadAttribute returns the typed value stored for attr, or ok=false
	// if the attribute is absent.
	ReadAttribute(attr AttributeID) (value any, ok bool)

	// SetAttribute writes value to attr. changed reports whether the
	// stored value actually differs from what was there before.
	SetAttribute(attr AttributeID, value any) (changed bool, err error)

	// AddAttribute merge-appends values into a multi-valued attribute.
	// grew reports whether the stored set actually grew.
	AddAttribute(attr AttributeID, values []any) (grew bool, err error)

	// UpdateAttributeMeta stamps the replication metadata for attr.
	UpdateAttributeMeta(attr AttributeID, usn int64, timestamp time.Time) error

	// Delete marks the row deleted.
	Delete() error

	IsDeleted() bool
	IsWritable() bool
	IsAccount() bool
	IsSecurityPrincipal() bool
}

// MatchMode names how a seek key is matched against a non-unique index.
// The Agent only ever needs equality matches (spec.md §4.1.1), which
// Cursor.FindEqual provides.
type MatchMode int

const (
	MatchEqual MatchMode = iota
)

// CursorLocation is an opaque save/restore token: the current index plus
// position within it. save_location/restore_location (spec.md §4.1.5,
// §6) round-trip through this value.
type CursorLocation struct {
	Index    string
	Position int
}

// Cursor is the shared, mutable table cursor the storage engine exposes.
// Every Agent operation drives the same Cursor instance; see spec.md §5 for
// the single-cursor concurrency model this implies.
type Cursor interface {
	// SetCurrentIndex switches the cursor onto the named index.
	SetCurrentIndex(indexName string) error

	// CurrentIndex reports the index the cursor is currently on.
	CurrentIndex() string

	// GotoKey performs a unique-key lookup on the current index and
	// materializes the matching Object View. ok is false if no row has
	// that key.
	GotoKey(key []byte) (view ObjectView, ok bool, err error)

	// FindEqual positions the cursor at the first row of a non-unique
	// index whose key equals key, ready for MoveNext to begin scanning.
	FindEqual(key []byte) error

	// MoveNext advances the cursor within the current scan range and
	// materializes the Object View at the new position, or ok=false if
	// the range is exhausted.
	MoveNext() (view ObjectView, ok bool, err error)

	// SaveLocation and RestoreLocation bracket any internal re-seek a
	// helper performs on behalf of an in-flight public enumeration
	// (spec.md §4.1.5, §5).
	SaveLocation() CursorLocation
	RestoreLocation(loc CursorLocation) error

	// BeginEdit opens the row for update inside the active transaction
	// and returns its Object View.
	BeginEdit(dnt DNT) (ObjectView, error)

	// AcceptChanges and RejectChanges close out an edit opened with
	// BeginEdit.
	AcceptChanges() error
	RejectChanges() error

	Dispose() error
}

// Transaction is the unit of work every mutator wraps itself in exactly
// once (spec.md §5).
type Transaction interface {
	Commit() error
	Abort() error
}

// Schema resolves attribute/class names to the ids and index names the
// Agent and storage engine operate on.
type Schema interface {
	FindIndexName(attr AttributeID) (string, error)
	FindClassID(name string) (ClassID, error)
}

// DNResolver resolves a distinguished name to the DNT of the object it
// names.
type DNResolver interface {
	Resolve(dn string) (DNT, error)
}

// Context owns the database session: a transaction factory, the one shared
// Cursor, the Schema and DN Resolver collaborators, and the mutable DC
// Header (spec.md §2).
type Context interface {
	BeginTransaction() (Transaction, error)
	Cursor() Cursor
	Schema() Schema
	DNResolver() DNResolver
	DCHeader() *DCHeader
	Dispose() error
}

// Clock abstracts "now" so attribute-metadata timestamps are deterministic
// in tests (spec.md §9: "the 'current time' ... is an injected clock, not a
// wall-clock call site").
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock, backed by time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
