// Package agent implements the Directory Agent: a read/write access layer
// over an on-disk directory-service database. It locates objects by several
// identifiers, retrieves account records containing encrypted secrets,
// decrypts those secrets using a per-database Password Encryption Key list
// wrapped by a Boot Key, and performs the small set of transactional
// attribute mutations a directory service needs, with correct
// replication-metadata bookkeeping.
//
// The storage engine, schema catalogue, and DN resolver are external
// collaborators: this package defines the contracts it needs from them
// (Context, Cursor, Transaction, ObjectView, Schema, DNResolver) and is
// agnostic to their concrete implementation. See internal/storage,
// internal/dirschema, and internal/dnresolve for the implementations this
// module ships. Secret decryption has no contract here: the package uses
// internal/secretcrypto's Decryptor directly.
package agent
