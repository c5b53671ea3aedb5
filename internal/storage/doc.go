// Package storage is a concrete, in-memory stand-in for the indexed
// storage engine the Directory Agent treats as an external collaborator:
// a Table of DNT-keyed rows, named Indexes over attribute values, a shared
// Cursor with save/restore position semantics, and a Transaction state
// machine. Its on-disk layout is deliberately undefined — callers only
// depend on the index-name and attribute-id contracts in package agent.
package storage
