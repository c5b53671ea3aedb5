package agent

import "sync"

// DNT is a Distinguished Name Tag: the 32-bit primary key of the object table.
type DNT int32

// AttributeID addresses an attribute slot on an object. The Schema contract
// resolves names to ids; the Agent and Object View only ever deal in ids.
type AttributeID int32

// ClassID identifies an object class, resolved from a name by the Schema contract.
type ClassID int32

// Variant distinguishes the two database flavors the Agent supports. They
// differ only in where the PEK holder object lives and whether the Boot Key
// is supplied externally.
type Variant int

const (
	ADDS Variant = iota
	ADLDS
)

func (v Variant) String() string {
	if v == ADLDS {
		return "ADLDS"
	}
	return "ADDS"
}

// DCState tracks where in its lifecycle the database is: a fresh Boot-state
// database has no secrets yet; Intermediate and Normal are both fully
// provisioned for the purposes of this core.
type DCState int

const (
	StateBoot DCState = iota
	StateIntermediate
	StateNormal
)

func (s DCState) String() string {
	switch s {
	case StateBoot:
		return "Boot"
	case StateIntermediate:
		return "Intermediate"
	case StateNormal:
		return "Normal"
	default:
		return "Unknown"
	}
}

// DCHeader is the process-singleton Domain Controller header record a
// Context owns: epoch, the monotonic highest-committed USN, the database
// variant and lifecycle state, and the three naming-context anchors.
type DCHeader struct {
	mu sync.Mutex

	Epoch               int32
	HighestCommittedUSN int64
	DBVariant           Variant
	DBState             DCState
	DomainNCDNT         *DNT // nil until the Domain NC is provisioned
	ConfigurationNCDNT  DNT
	SchemaNCDNT         DNT
}

// NextUSN atomically advances the header's USN counter by one and returns
// the new value. It is the only way §4.1.8's commit state machine is
// allowed to burn a USN.
func (h *DCHeader) NextUSN() int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.HighestCommittedUSN++
	return h.HighestCommittedUSN
}

// USN returns the current highest-committed USN.
func (h *DCHeader) USN() int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.HighestCommittedUSN
}

// SetUSN overwrites the header's USN counter directly. Used by the Agent's
// set_usn operation, which is a hard DC-header write, not an ordinary
// attribute mutation.
func (h *DCHeader) SetUSN(usn int64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.HighestCommittedUSN = usn
}

// SetEpoch overwrites the header's epoch directly.
func (h *DCHeader) SetEpoch(epoch int32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Epoch = epoch
}

// Snapshot returns the variant/state/anchor fields the Agent needs to
// decide decryptor acquisition policy (§4.1.5), taken under the header
// lock.
func (h *DCHeader) Snapshot() (variant Variant, state DCState, domainNC *DNT, configNC DNT, schemaNC DNT) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.DBVariant, h.DBState, h.DomainNCDNT, h.ConfigurationNCDNT, h.SchemaNCDNT
}
