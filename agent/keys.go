package agent

import "encoding/binary"

// dntIndexName is the well-known name of the object table's own primary-key
// index. DNT is the table's native row key rather than a Schema-registered
// attribute, so it is not resolved through Schema.FindIndexName like the
// other identifier kinds in §4.1.1.
const dntIndexName = "dnt"

// dntKeyBytes encodes a DNT as the big-endian 4-byte key the dnt index is
// keyed on.
func dntKeyBytes(dnt DNT) []byte {
	out := make([]byte, 4)
	binary.BigEndian.PutUint32(out, uint32(dnt))
	return out
}

// classIDKeyBytes encodes a ClassID as the big-endian 4-byte key the
// objectCategory index is keyed on.
func classIDKeyBytes(id ClassID) []byte {
	out := make([]byte, 4)
	binary.BigEndian.PutUint32(out, uint32(id))
	return out
}

// indexAndKey resolves the index name and composes the seek key for id, per
// spec.md §4.1.1 step 1-2. unique reports whether the index is a unique-key
// index (goto) or a non-unique one (equal-range scan). id must not be a
// DistinguishedName: callers resolve that to a DNT first.
func (a *Agent) indexAndKey(id Identifier) (indexName string, key []byte, unique bool, err error) {
	schema := a.ctx.Schema()

	switch id.Kind() {
	case KindSamAccountName:
		name, err := schema.FindIndexName(AttrSAMAccountName)
		if err != nil {
			return "", nil, false, err
		}
		return name, []byte(id.sam), false, nil

	case KindObjectSID:
		name, err := schema.FindIndexName(AttrObjectSid)
		if err != nil {
			return "", nil, false, err
		}
		return name, id.sid.KeyBytes(), true, nil

	case KindObjectGUID:
		name, err := schema.FindIndexName(AttrObjectGUID)
		if err != nil {
			return "", nil, false, err
		}
		return name, id.guid.Bytes(), true, nil

	case KindDNT:
		return dntIndexName, dntKeyBytes(id.dnt), true, nil

	default:
		return "", nil, false, &InvalidArgumentError{Param: "identifier"}
	}
}

// resolve turns a DistinguishedName identifier into a DnTag one via the DN
// Resolver contract; every other kind passes through unchanged.
func (a *Agent) resolve(id Identifier) (Identifier, error) {
	if id.Kind() != KindDistinguishedName {
		return id, nil
	}
	dnt, err := a.ctx.DNResolver().Resolve(id.dn)
	if err != nil {
		return Identifier{}, &NotFoundError{Identifier: id.String()}
	}
	return ByDNT(dnt), nil
}
