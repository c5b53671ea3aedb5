// Package secretcrypto implements the PEK-list wrap/unwrap protocol and
// per-object secret decryption the Directory Agent's Secret Decryptor and
// Boot-Key Composer components need (spec.md §2, §4.1.5, §4.1.6).
//
// PEK List wire format (the TLV body, before any Boot-Key wrapping):
//
//	+--------+----------+------------------------------------+
//	| format | count    | count * { index(4) | len(2) | key }|
//	| 1 B    | uint16BE |                                    |
//	+--------+----------+------------------------------------+
//
// When wrapped, everything after the format byte (count and entries) is
// sealed with AES-256-GCM under the Boot Key using the same
// nonce‖ciphertext‖tag framing as per-object secret blobs; the format byte
// itself stays in the clear. When the Boot Key is empty, the encoding is plain — a documented
// feature used for database migration (spec.md §4.1.6 step 3).
package secretcrypto
