package secretcrypto

import (
	"crypto/hmac"
	"crypto/sha256"
)

// ComposeLDSBootKey derives an LDS Boot Key by combining the two
// PEK-list fragments stored on the root and schema anchor objects
// (spec.md §3 "Boot-Key Composer"). The combination is an HMAC-SHA256 of
// the schema fragment keyed by the root fragment, truncated to
// BootKeyLength — deterministic, and neither fragment alone is sufficient
// to reconstruct the key.
func ComposeLDSBootKey(rootFragment, schemaFragment []byte) []byte {
	mac := hmac.New(sha256.New, rootFragment)
	mac.Write(schemaFragment)
	return mac.Sum(nil)[:BootKeyLength]
}
