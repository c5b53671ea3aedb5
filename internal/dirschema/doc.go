// Package dirschema is a concrete catalogue satisfying agent.Schema: it
// resolves attribute-ids to the index names that back them and class names
// to class-ids. The attribute/class set is fixed to what the Directory
// Agent core needs rather than loaded from an LDIF schema definition.
package dirschema
