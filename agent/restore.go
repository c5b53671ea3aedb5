package agent

// AuthoritativeRestore is the admin surface stub named in spec.md §6/§9:
// the surface must exist and signal NotImplemented, since the source
// leaves attribute-level authoritative-restore semantics unspecified.
func (a *Agent) AuthoritativeRestore(id Identifier, attributeNames []string) error {
	return &NotImplementedError{Op: "authoritative_restore"}
}
