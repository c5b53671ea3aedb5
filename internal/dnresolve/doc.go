// Package dnresolve is a concrete DN Resolver satisfying agent.DNResolver:
// it normalizes a Distinguished Name string and resolves it to the DNT of
// the object it names. Entries are registered explicitly (e.g. as the
// storage engine's object table is populated) rather than derived from a
// parsed LDIF tree.
package dnresolve
