package secretcrypto

import "testing"

func TestDecryptorEncryptDecryptRoundTrip(t *testing.T) {
	bootKey := make([]byte, BootKeyLength)
	for i := range bootKey {
		bootKey[i] = byte(i)
	}
	list := samplePEKList()
	blob, err := EncodePEKList(list, bootKey)
	if err != nil {
		t.Fatalf("EncodePEKList() error = %v", err)
	}

	dec, err := NewDecryptor(blob, bootKey)
	if err != nil {
		t.Fatalf("NewDecryptor() error = %v", err)
	}

	plaintext := []byte("correct horse battery staple")
	sealed, err := dec.EncryptSecret(plaintext)
	if err != nil {
		t.Fatalf("EncryptSecret() error = %v", err)
	}

	got, err := dec.DecryptSecret(sealed)
	if err != nil {
		t.Fatalf("DecryptSecret() error = %v", err)
	}
	if string(got) != string(plaintext) {
		t.Errorf("DecryptSecret() = %q, want %q", got, plaintext)
	}
}

func TestDecryptorEncryptUsesLatestPEK(t *testing.T) {
	dec := &Decryptor{list: samplePEKList()}

	sealed, err := dec.EncryptSecret([]byte("hello"))
	if err != nil {
		t.Fatalf("EncryptSecret() error = %v", err)
	}

	index := uint32(sealed[0])<<24 | uint32(sealed[1])<<16 | uint32(sealed[2])<<8 | uint32(sealed[3])
	if index != 2 {
		t.Errorf("sealed blob used PEK index %d, want 2 (latest)", index)
	}
}

func TestDecryptorRejectsUnknownPEKIndex(t *testing.T) {
	dec := &Decryptor{list: samplePEKList()}

	bogus := []byte{0, 0, 0, 99, 1, 2, 3}
	if _, err := dec.DecryptSecret(bogus); err != ErrMalformedPEKList {
		t.Fatalf("err = %v, want ErrMalformedPEKList", err)
	}
}

func TestNewDecryptorRejectsBadBootKey(t *testing.T) {
	bootKey := make([]byte, BootKeyLength)
	for i := range bootKey {
		bootKey[i] = byte(i + 1)
	}
	list := samplePEKList()
	blob, err := EncodePEKList(list, bootKey)
	if err != nil {
		t.Fatalf("EncodePEKList() error = %v", err)
	}

	if _, err := NewDecryptor(blob, make([]byte, 8)); err == nil {
		t.Error("NewDecryptor() with wrong-length boot key should fail")
	}
}
