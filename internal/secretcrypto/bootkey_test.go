package secretcrypto

import "testing"

func TestComposeLDSBootKeyIsDeterministic(t *testing.T) {
	root := []byte("root-fragment")
	schema := []byte("schema-fragment")

	a := ComposeLDSBootKey(root, schema)
	b := ComposeLDSBootKey(root, schema)
	if string(a) != string(b) {
		t.Error("ComposeLDSBootKey() is not deterministic for identical inputs")
	}
	if len(a) != BootKeyLength {
		t.Errorf("len(ComposeLDSBootKey()) = %d, want %d", len(a), BootKeyLength)
	}
}

func TestComposeLDSBootKeyNeedsBothFragments(t *testing.T) {
	root := []byte("root-fragment")
	schema := []byte("schema-fragment")
	otherRoot := []byte("different-root")
	otherSchema := []byte("different-schema")

	base := ComposeLDSBootKey(root, schema)

	if string(ComposeLDSBootKey(otherRoot, schema)) == string(base) {
		t.Error("changing the root fragment should change the derived key")
	}
	if string(ComposeLDSBootKey(root, otherSchema)) == string(base) {
		t.Error("changing the schema fragment should change the derived key")
	}
}

func TestComposedBootKeyWorksWithPEKList(t *testing.T) {
	bootKey := ComposeLDSBootKey([]byte("root"), []byte("schema"))
	list := samplePEKList()

	blob, err := EncodePEKList(list, bootKey)
	if err != nil {
		t.Fatalf("EncodePEKList() error = %v", err)
	}

	got, err := DecodePEKList(blob, bootKey)
	if err != nil {
		t.Fatalf("DecodePEKList() error = %v", err)
	}
	if len(got.PEKs) != len(list.PEKs) {
		t.Fatalf("got %d PEKs, want %d", len(got.PEKs), len(list.PEKs))
	}
}
