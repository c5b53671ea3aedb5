package secretcrypto

import (
	"encoding/binary"
	"errors"
)

// formatPlain and formatWrapped are the PEK List's leading format tag.
const (
	formatPlain   byte = 0x00
	formatWrapped byte = 0x01
)

// ErrMalformedPEKList is returned when a PEK List blob's TLV framing is
// corrupt or truncated.
var ErrMalformedPEKList = errors.New("secretcrypto: malformed PEK list")

// PEK is one versioned symmetric key in a PEK List.
type PEK struct {
	Index uint32
	Key   []byte
}

// PEKList is the versioned array of PEKs that decrypts an object's secret
// attributes (spec.md §3).
type PEKList struct {
	PEKs []PEK
}

// ByIndex returns the PEK with the given index, or ok=false if absent.
func (l PEKList) ByIndex(index uint32) (PEK, bool) {
	for _, pek := range l.PEKs {
		if pek.Index == index {
			return pek, true
		}
	}
	return PEK{}, false
}

// Latest returns the highest-indexed PEK, used to encrypt new secrets.
func (l PEKList) Latest() (PEK, bool) {
	if len(l.PEKs) == 0 {
		return PEK{}, false
	}
	latest := l.PEKs[0]
	for _, pek := range l.PEKs[1:] {
		if pek.Index > latest.Index {
			latest = pek
		}
	}
	return latest, true
}

// encodeTLV serializes the PEK List body (before any Boot-Key wrapping).
func encodeTLV(list PEKList) []byte {
	out := make([]byte, 2)
	binary.BigEndian.PutUint16(out, uint16(len(list.PEKs)))
	for _, pek := range list.PEKs {
		entry := make([]byte, 4+2+len(pek.Key))
		binary.BigEndian.PutUint32(entry[0:4], pek.Index)
		binary.BigEndian.PutUint16(entry[4:6], uint16(len(pek.Key)))
		copy(entry[6:], pek.Key)
		out = append(out, entry...)
	}
	return out
}

// decodeTLV parses the PEK List body produced by encodeTLV.
func decodeTLV(body []byte) (PEKList, error) {
	if len(body) < 2 {
		return PEKList{}, ErrMalformedPEKList
	}
	count := int(binary.BigEndian.Uint16(body[0:2]))
	pos := 2

	list := PEKList{PEKs: make([]PEK, 0, count)}
	for i := 0; i < count; i++ {
		if pos+6 > len(body) {
			return PEKList{}, ErrMalformedPEKList
		}
		index := binary.BigEndian.Uint32(body[pos : pos+4])
		keyLen := int(binary.BigEndian.Uint16(body[pos+4 : pos+6]))
		pos += 6
		if pos+keyLen > len(body) {
			return PEKList{}, ErrMalformedPEKList
		}
		key := make([]byte, keyLen)
		copy(key, body[pos:pos+keyLen])
		pos += keyLen

		list.PEKs = append(list.PEKs, PEK{Index: index, Key: key})
	}
	return list, nil
}

// EncodePEKList serializes a PEK List under the given Boot Key. An empty or
// all-zero Boot Key yields the plain (unwrapped) encoding — the documented
// migration feature spec.md §4.1.6 step 3 describes.
func EncodePEKList(list PEKList, bootKey []byte) ([]byte, error) {
	body := encodeTLV(list)

	if isZeroOrEmpty(bootKey) {
		return append([]byte{formatPlain}, body...), nil
	}
	if len(bootKey) != BootKeyLength {
		return nil, ErrInvalidBootKeyLength
	}

	sealed, err := seal(aesKeyFrom(bootKey), body)
	if err != nil {
		return nil, err
	}
	return append([]byte{formatWrapped}, sealed...), nil
}

// DecodePEKList parses a blob produced by EncodePEKList. bootKey must match
// what EncodePEKList was called with, except for a plain-encoded blob where
// bootKey is ignored.
func DecodePEKList(blob []byte, bootKey []byte) (PEKList, error) {
	if len(blob) < 1 {
		return PEKList{}, ErrMalformedPEKList
	}

	format, rest := blob[0], blob[1:]
	switch format {
	case formatPlain:
		return decodeTLV(rest)
	case formatWrapped:
		if len(bootKey) != BootKeyLength {
			return PEKList{}, ErrInvalidBootKeyLength
		}
		body, err := open(aesKeyFrom(bootKey), rest)
		if err != nil {
			return PEKList{}, err
		}
		return decodeTLV(body)
	default:
		return PEKList{}, ErrMalformedPEKList
	}
}

func isZeroOrEmpty(key []byte) bool {
	if len(key) == 0 {
		return true
	}
	for _, b := range key {
		if b != 0 {
			return false
		}
	}
	return true
}
