package dirid

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

// GUIDSize is the length of a GUID's native on-disk encoding.
const GUIDSize = 16

// ErrInvalidGUID is returned when a byte buffer is not exactly GUIDSize long.
type ErrInvalidGUID struct{ Len int }

func (e ErrInvalidGUID) Error() string {
	return fmt.Sprintf("dirid: invalid GUID: got %d bytes, want %d", e.Len, GUIDSize)
}

// GUID is a Microsoft-style GUID: a little-endian Data1/Data2/Data3 followed
// by an 8-byte opaque Data4 block. This is the storage engine's native GUID
// serialization referenced by spec.md §4.1.1.
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// ParseGUID decodes a GUID from its 16-byte native form.
func ParseGUID(data []byte) (GUID, error) {
	if len(data) != GUIDSize {
		return GUID{}, ErrInvalidGUID{len(data)}
	}
	var g GUID
	g.Data1 = binary.LittleEndian.Uint32(data[0:4])
	g.Data2 = binary.LittleEndian.Uint16(data[4:6])
	g.Data3 = binary.LittleEndian.Uint16(data[6:8])
	copy(g.Data4[:], data[8:16])
	return g, nil
}

// Bytes re-encodes the GUID in its native 16-byte form.
func (g GUID) Bytes() []byte {
	out := make([]byte, GUIDSize)
	binary.LittleEndian.PutUint32(out[0:4], g.Data1)
	binary.LittleEndian.PutUint16(out[4:6], g.Data2)
	binary.LittleEndian.PutUint16(out[6:8], g.Data3)
	copy(out[8:16], g.Data4[:])
	return out
}

// String returns the canonical hyphenated GUID form, or "" for the zero GUID.
func (g GUID) String() string {
	s := fmt.Sprintf("%08x-%04x-%04x-%04x-%012x",
		g.Data1, g.Data2, g.Data3, g.Data4[0:2], g.Data4[2:8])
	if s == "00000000-0000-0000-0000-000000000000" {
		return ""
	}
	return s
}

// IsZero reports whether this is the null GUID.
func (g GUID) IsZero() bool {
	return g == GUID{}
}

// NewGUID mints a fresh random GUID, backed by google/uuid's CSPRNG-seeded
// UUIDv4 generator rather than a hand-rolled crypto/rand draw.
func NewGUID() GUID {
	u := uuid.New()
	g, _ := ParseGUID(reorderToNative(u))
	return g
}

// reorderToNative converts a standard RFC-4122 big-endian UUID byte layout
// into the little-endian-Data1/Data2/Data3 native layout ParseGUID expects.
func reorderToNative(u uuid.UUID) []byte {
	out := make([]byte, GUIDSize)
	out[0], out[1], out[2], out[3] = u[3], u[2], u[1], u[0]
	out[4], out[5] = u[5], u[4]
	out[6], out[7] = u[7], u[6]
	copy(out[8:16], u[8:16])
	return out
}
