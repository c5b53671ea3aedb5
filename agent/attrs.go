package agent

// Well-known attribute ids, per spec.md §3's fixed attribute set. The
// concrete values only need to be stable within one process: the Schema
// contract maps these ids to index names, and the storage adapter keys
// row attributes on them.
const (
	AttrPEKList AttributeID = iota + 1
	AttrSAMAccountType
	AttrSAMAccountName
	AttrObjectSid
	AttrObjectGUID
	AttrObjectCategory
	AttrUserAccountControl
	AttrSIDHistory
	AttrPrimaryGroupId

	// AttrBootKeyFragment addresses the PEK-list fragment an ADLDS root or
	// schema anchor object carries for the Boot-Key Composer (spec.md §3,
	// §4.1.5). It is read from the configuration NC object (root fragment)
	// and the schema NC object (schema fragment); neither fragment is a
	// named attribute in spec.md's fixed set, since the source text leaves
	// the storage location of ADLDS boot-key fragments unspecified beyond
	// "two in-database fragments" — this is the implementation's own
	// documented choice of where those fragments live, not a guess at one
	// of the three named Open Questions.
	AttrBootKeyFragment

	// The following address the per-object secret material the Projections
	// in spec.md §4.3 read through a Decryptor. Like AttrBootKeyFragment,
	// none of these are named in spec.md §3's fixed attribute list, which
	// enumerates only the attributes the lookup/mutator protocols key or
	// branch on; the projection bodies still need somewhere concrete to
	// read from, so these are the implementation's own attribute slots.
	AttrUnicodePwd              // Account: NT password hash, sealed.
	AttrSupplementalCredentials // Account: supplemental credential blob, sealed.
	AttrSecretBlob              // DPAPI Backup Key (class Secret): sealed key material.
	AttrKdsRootKeyData          // KDS Root Key: plaintext key material, no decryptor needed.
)

// Well-known class names the Agent resolves via Schema.FindClassID.
const (
	ClassSecret     = "Secret"
	ClassKdsRootKey = "msKds-ProvRootKey"
)

// SAMAccountType values that indicate an account-role security principal,
// i.e. is_account should be true (a small, representative subset of the
// real value space is enough for this core: normal user accounts,
// workstation/server trust accounts, and security groups are all
// "accounts" for the purposes of §3's is_account predicate).
const (
	SamNormalUserAccount int32 = 0x30000000
	SamWorkstationTrust  int32 = 0x30000001
	SamServerTrust       int32 = 0x30000002
	SamSecurityGroup     int32 = 0x10000000
)

// UserAccountControl bits the Agent's mutators read/flip.
const (
	UACAccountDisable int32 = 0x0002
	UACNormalAccount  int32 = 0x0200
)
