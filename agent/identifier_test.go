package agent

import (
	"errors"
	"testing"

	"github.com/KilimcininKorOglu/dsagent/internal/dirid"
)

func TestIdentifierKindString(t *testing.T) {
	tests := []struct {
		kind IdentifierKind
		want string
	}{
		{KindSamAccountName, "SamAccountName"},
		{KindObjectSID, "ObjectSid"},
		{KindDistinguishedName, "DistinguishedName"},
		{KindObjectGUID, "ObjectGuid"},
		{KindDNT, "DnTag"},
		{IdentifierKind(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("IdentifierKind(%d).String() = %s, want %s", tt.kind, got, tt.want)
		}
	}
}

func TestIdentifierConstructorsSetKind(t *testing.T) {
	if BySamAccountName("alice").Kind() != KindSamAccountName {
		t.Error("BySamAccountName should set KindSamAccountName")
	}
	if ByObjectSID(dirid.SID{}).Kind() != KindObjectSID {
		t.Error("ByObjectSID should set KindObjectSID")
	}
	if ByDistinguishedName("cn=alice").Kind() != KindDistinguishedName {
		t.Error("ByDistinguishedName should set KindDistinguishedName")
	}
	if ByObjectGUID(dirid.GUID{}).Kind() != KindObjectGUID {
		t.Error("ByObjectGUID should set KindObjectGUID")
	}
	if ByDNT(7).Kind() != KindDNT {
		t.Error("ByDNT should set KindDNT")
	}
}

func TestIdentifierStringIncludesValue(t *testing.T) {
	if got := BySamAccountName("alice").String(); got != "sam:alice" {
		t.Errorf("String() = %q, want %q", got, "sam:alice")
	}
	if got := ByDNT(42).String(); got != "dnt:42" {
		t.Errorf("String() = %q, want %q", got, "dnt:42")
	}
}

func TestErrorHelpersClassifyWrappedErrors(t *testing.T) {
	notFound := &NotFoundError{Identifier: "alice"}
	if !IsNotFound(notFound) {
		t.Error("IsNotFound should recognize a NotFoundError")
	}
	if IsOperationError(notFound) {
		t.Error("IsNotFound error should not classify as an OperationError")
	}

	opErr := &OperationError{Reason: "not an account", Identifier: "alice"}
	if !IsOperationError(opErr) {
		t.Error("IsOperationError should recognize an OperationError")
	}

	invalid := &InvalidArgumentError{Param: "old"}
	if !IsInvalidArgument(invalid) {
		t.Error("IsInvalidArgument should recognize an InvalidArgumentError")
	}

	notImpl := &NotImplementedError{Op: "authoritative_restore"}
	if !IsNotImplemented(notImpl) {
		t.Error("IsNotImplemented should recognize a NotImplementedError")
	}

	wrapped := wrapStorageErr(errors.New("boom"))
	var storageErr *StorageError
	if !errors.As(wrapped, &storageErr) {
		t.Error("wrapStorageErr should produce a *StorageError")
	}
	if wrapStorageErr(nil) != nil {
		t.Error("wrapStorageErr(nil) should return nil")
	}
}
