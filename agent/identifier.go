package agent

import (
	"fmt"

	"github.com/KilimcininKorOglu/dsagent/internal/dirid"
)

// IdentifierKind tags which field of an Identifier is populated. This
// replaces the four-way find_object/get_account overload of the original
// design (spec.md §9) with a single tagged sum type.
type IdentifierKind int

const (
	KindSamAccountName IdentifierKind = iota
	KindObjectSID
	KindDistinguishedName
	KindObjectGUID
	KindDNT
)

func (k IdentifierKind) String() string {
	switch k {
	case KindSamAccountName:
		return "SamAccountName"
	case KindObjectSID:
		return "ObjectSid"
	case KindDistinguishedName:
		return "DistinguishedName"
	case KindObjectGUID:
		return "ObjectGuid"
	case KindDNT:
		return "DnTag"
	default:
		return "Unknown"
	}
}

// Identifier is the tagged union the Agent's lookup and mutator operations
// accept: exactly one of the constructors below should be used to build it.
type Identifier struct {
	kind IdentifierKind
	sam  string
	sid  dirid.SID
	dn   string
	guid dirid.GUID
	dnt  DNT
}

// BySamAccountName identifies an object by its sAMAccountName.
func BySamAccountName(name string) Identifier {
	return Identifier{kind: KindSamAccountName, sam: name}
}

// ByObjectSID identifies an object by its ObjectSid.
func ByObjectSID(sid dirid.SID) Identifier {
	return Identifier{kind: KindObjectSID, sid: sid}
}

// ByDistinguishedName identifies an object by DN; the Agent resolves this to
// a DNT via the DN Resolver contract before using it.
func ByDistinguishedName(dn string) Identifier {
	return Identifier{kind: KindDistinguishedName, dn: dn}
}

// ByObjectGUID identifies an object by its ObjectGUID.
func ByObjectGUID(guid dirid.GUID) Identifier {
	return Identifier{kind: KindObjectGUID, guid: guid}
}

// ByDNT identifies an object directly by its Distinguished Name Tag.
func ByDNT(dnt DNT) Identifier {
	return Identifier{kind: KindDNT, dnt: dnt}
}

// Kind reports which identifier variant this is.
func (id Identifier) Kind() IdentifierKind { return id.kind }

// String renders the identifier for error messages and log fields; it never
// participates in lookup logic, which always keys on raw bytes.
func (id Identifier) String() string {
	switch id.kind {
	case KindSamAccountName:
		return fmt.Sprintf("sam:%s", id.sam)
	case KindObjectSID:
		return fmt.Sprintf("sid:%s", id.sid.String())
	case KindDistinguishedName:
		return fmt.Sprintf("dn:%s", id.dn)
	case KindObjectGUID:
		return fmt.Sprintf("guid:%s", id.guid.String())
	case KindDNT:
		return fmt.Sprintf("dnt:%d", id.dnt)
	default:
		return "identifier:unknown"
	}
}
