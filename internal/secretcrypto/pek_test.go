package secretcrypto

import "testing"

func samplePEKList() PEKList {
	return PEKList{PEKs: []PEK{
		{Index: 1, Key: []byte("0123456789abcdef")},
		{Index: 2, Key: []byte("fedcba9876543210")},
	}}
}

func TestEncodeDecodePEKListPlain(t *testing.T) {
	list := samplePEKList()

	blob, err := EncodePEKList(list, nil)
	if err != nil {
		t.Fatalf("EncodePEKList() error = %v", err)
	}
	if blob[0] != formatPlain {
		t.Fatalf("format tag = %#x, want plain", blob[0])
	}

	got, err := DecodePEKList(blob, nil)
	if err != nil {
		t.Fatalf("DecodePEKList() error = %v", err)
	}
	if len(got.PEKs) != len(list.PEKs) {
		t.Fatalf("got %d PEKs, want %d", len(got.PEKs), len(list.PEKs))
	}
	for i, pek := range got.PEKs {
		if pek.Index != list.PEKs[i].Index || string(pek.Key) != string(list.PEKs[i].Key) {
			t.Errorf("PEK[%d] = %+v, want %+v", i, pek, list.PEKs[i])
		}
	}
}

func TestEncodeDecodePEKListWrapped(t *testing.T) {
	bootKey := make([]byte, BootKeyLength)
	for i := range bootKey {
		bootKey[i] = byte(i + 1)
	}
	list := samplePEKList()

	blob, err := EncodePEKList(list, bootKey)
	if err != nil {
		t.Fatalf("EncodePEKList() error = %v", err)
	}
	if blob[0] != formatWrapped {
		t.Fatalf("format tag = %#x, want wrapped", blob[0])
	}

	if _, err := DecodePEKList(blob, nil); err == nil {
		t.Error("DecodePEKList() with wrong boot key should fail")
	}

	got, err := DecodePEKList(blob, bootKey)
	if err != nil {
		t.Fatalf("DecodePEKList() error = %v", err)
	}
	if len(got.PEKs) != 2 {
		t.Fatalf("got %d PEKs, want 2", len(got.PEKs))
	}
}

func TestEncodePEKListRejectsWrongBootKeyLength(t *testing.T) {
	_, err := EncodePEKList(samplePEKList(), []byte{1, 2, 3})
	if err != ErrInvalidBootKeyLength {
		t.Fatalf("err = %v, want ErrInvalidBootKeyLength", err)
	}
}

func TestPEKListByIndexAndLatest(t *testing.T) {
	list := samplePEKList()

	pek, ok := list.ByIndex(2)
	if !ok || pek.Index != 2 {
		t.Fatalf("ByIndex(2) = %+v, %v", pek, ok)
	}

	if _, ok := list.ByIndex(99); ok {
		t.Error("ByIndex(99) should not be found")
	}

	latest, ok := list.Latest()
	if !ok || latest.Index != 2 {
		t.Fatalf("Latest() = %+v, want index 2", latest)
	}
}
