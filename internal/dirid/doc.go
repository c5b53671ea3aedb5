// Package dirid provides the binary identifier types the Directory Agent
// uses to address objects: security identifiers (SIDs) and object GUIDs.
//
// Both types decode/encode the same wire layouts Windows directory services
// use on disk, so the Agent's key-composition step (spec.md §4.1.1) can
// round-trip an identifier straight to an index key without reaching into
// the storage engine's internals.
package dirid
