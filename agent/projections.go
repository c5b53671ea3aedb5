package agent

import (
	"github.com/KilimcininKorOglu/dsagent/internal/dirid"
	"github.com/KilimcininKorOglu/dsagent/internal/secretcrypto"
)

// Account is an Object View plus an optional Decryptor (spec.md §4.3). A
// nil Decryptor is valid: get_accounts on a Boot-state database returns
// accounts whose encrypted fields read back absent rather than failing.
type Account struct {
	view ObjectView
	dec  *secretcrypto.Decryptor
}

func newAccount(view ObjectView, dec *secretcrypto.Decryptor) Account {
	return Account{view: view, dec: dec}
}

// DNT returns the account object's Distinguished Name Tag.
func (a Account) DNT() DNT { return a.view.DNT() }

// SAMAccountName returns the account's sAMAccountName.
func (a Account) SAMAccountName() (string, bool) {
	v, ok := a.view.ReadAttribute(AttrSAMAccountName)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// ObjectSid returns the account's security identifier.
func (a Account) ObjectSid() (dirid.SID, bool) {
	v, ok := a.view.ReadAttribute(AttrObjectSid)
	if !ok {
		return dirid.SID{}, false
	}
	sid, ok := v.(dirid.SID)
	return sid, ok
}

// UserAccountControl returns the raw userAccountControl bit field.
func (a Account) UserAccountControl() (int32, bool) {
	v, ok := a.view.ReadAttribute(AttrUserAccountControl)
	if !ok {
		return 0, false
	}
	uac, ok := v.(int32)
	return uac, ok
}

// NTHash lazily decrypts the account's NT password hash. It returns
// nil, nil (not an error) when the attribute is absent or no Decryptor was
// acquired, matching the "projections surface encrypted fields as absent"
// boundary behavior (spec.md §8).
func (a Account) NTHash() ([]byte, error) {
	return a.decryptField(AttrUnicodePwd)
}

// SupplementalCredentials lazily decrypts the account's supplemental
// credential blob, under the same absent-on-no-decryptor rule as NTHash.
func (a Account) SupplementalCredentials() ([]byte, error) {
	return a.decryptField(AttrSupplementalCredentials)
}

func (a Account) decryptField(attr AttributeID) ([]byte, error) {
	if a.dec == nil {
		return nil, nil
	}
	v, ok := a.view.ReadAttribute(attr)
	if !ok {
		return nil, nil
	}
	blob, ok := v.([]byte)
	if !ok {
		return nil, &StorageError{Inner: errAttributeTypeMismatch}
	}
	return a.dec.DecryptSecret(blob)
}

// DPAPIBackupKey is an Object View of class Secret plus an optional
// Decryptor (spec.md §4.3).
type DPAPIBackupKey struct {
	view ObjectView
	dec  *secretcrypto.Decryptor
}

func newDPAPIBackupKey(view ObjectView, dec *secretcrypto.Decryptor) DPAPIBackupKey {
	return DPAPIBackupKey{view: view, dec: dec}
}

// DNT returns the backup-key object's Distinguished Name Tag.
func (k DPAPIBackupKey) DNT() DNT { return k.view.DNT() }

// KeyMaterial lazily decrypts the backup key's sealed material, absent (not
// an error) if no Decryptor was acquired or the attribute is unset.
func (k DPAPIBackupKey) KeyMaterial() ([]byte, error) {
	if k.dec == nil {
		return nil, nil
	}
	v, ok := k.view.ReadAttribute(AttrSecretBlob)
	if !ok {
		return nil, nil
	}
	blob, ok := v.([]byte)
	if !ok {
		return nil, &StorageError{Inner: errAttributeTypeMismatch}
	}
	return k.dec.DecryptSecret(blob)
}

// KdsRootKey is an Object View of class msKds-ProvRootKey. Its key material
// is stored in the clear; no Decryptor is needed (spec.md §4.3).
type KdsRootKey struct {
	view ObjectView
}

func newKdsRootKey(view ObjectView) KdsRootKey {
	return KdsRootKey{view: view}
}

// DNT returns the KDS root key object's Distinguished Name Tag.
func (k KdsRootKey) DNT() DNT { return k.view.DNT() }

// KeyMaterial returns the root key's plaintext material, ok=false if unset.
func (k KdsRootKey) KeyMaterial() ([]byte, bool) {
	v, ok := k.view.ReadAttribute(AttrKdsRootKeyData)
	if !ok {
		return nil, false
	}
	blob, ok := v.([]byte)
	return blob, ok
}
