package secretcrypto

// Decryptor wraps a decoded PEK List and decrypts per-object secret blobs
// that were sealed against one of its PEKs (spec.md §2 "Secret Decryptor").
type Decryptor struct {
	list PEKList
}

// NewDecryptor decodes pekBlob under bootKey and returns a Decryptor ready
// to open per-object secrets.
func NewDecryptor(pekBlob []byte, bootKey []byte) (*Decryptor, error) {
	list, err := DecodePEKList(pekBlob, bootKey)
	if err != nil {
		return nil, err
	}
	return &Decryptor{list: list}, nil
}

// DecryptSecret opens a secret blob that records which PEK index sealed it.
// The wire format of a secret attribute is pekIndex(4 bytes BE) ‖
// nonce‖ciphertext‖tag, mirroring the PEK List's own sealed framing.
func (d *Decryptor) DecryptSecret(blob []byte) ([]byte, error) {
	if len(blob) < 4 {
		return nil, ErrInvalidCiphertext
	}
	index := uint32(blob[0])<<24 | uint32(blob[1])<<16 | uint32(blob[2])<<8 | uint32(blob[3])
	pek, ok := d.list.ByIndex(index)
	if !ok {
		return nil, ErrMalformedPEKList
	}
	return open(aesKeyFrom(pek.Key), blob[4:])
}

// EncryptSecret seals plaintext under the PEK List's latest PEK, producing
// the same pekIndex‖nonce‖ciphertext‖tag framing DecryptSecret consumes.
func (d *Decryptor) EncryptSecret(plaintext []byte) ([]byte, error) {
	pek, ok := d.list.Latest()
	if !ok {
		return nil, ErrMalformedPEKList
	}
	sealed, err := seal(aesKeyFrom(pek.Key), plaintext)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 4+len(sealed))
	out[0] = byte(pek.Index >> 24)
	out[1] = byte(pek.Index >> 16)
	out[2] = byte(pek.Index >> 8)
	out[3] = byte(pek.Index)
	copy(out[4:], sealed)
	return out, nil
}

// PEKList exposes the decoded list, e.g. for change_boot_key's re-encode step.
func (d *Decryptor) PEKList() PEKList { return d.list }
