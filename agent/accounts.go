package agent

import "github.com/KilimcininKorOglu/dsagent/internal/secretcrypto"

// AccountIterator is the lazy, single-pass enumerator get_accounts
// produces (spec.md §4.1.3).
type AccountIterator struct {
	cur  Cursor
	dec  *secretcrypto.Decryptor
	done bool
}

// Next materializes the next writable, non-deleted account, or ok=false
// once the sAMAccountType index is exhausted.
func (it *AccountIterator) Next() (Account, bool, error) {
	if it.done {
		return Account{}, false, nil
	}
	for {
		view, ok, err := it.cur.MoveNext()
		if err != nil {
			it.done = true
			return Account{}, false, err
		}
		if !ok {
			it.done = true
			return Account{}, false, nil
		}
		if view.IsAccount() && view.IsWritable() && !view.IsDeleted() {
			return newAccount(view, it.dec), true, nil
		}
	}
}

// GetAccounts implements §4.1.3: acquire a decryptor, switch to the
// sAMAccountType index, and scan it unbounded (every account-role SAM type
// is a live candidate, not a single equal key).
func (a *Agent) GetAccounts(bootKey []byte) (*AccountIterator, error) {
	dec, err := a.GetSecretDecryptor(bootKey)
	if err != nil {
		return nil, err
	}

	indexName, err := a.ctx.Schema().FindIndexName(AttrSAMAccountType)
	if err != nil {
		return nil, err
	}
	cur := a.ctx.Cursor()
	if err := cur.SetCurrentIndex(indexName); err != nil {
		return nil, wrapStorageErr(err)
	}

	return &AccountIterator{cur: cur, dec: dec}, nil
}

// GetAccount implements §4.1.4: find, type-check, then acquire the
// decryptor only after the check passes so a query against a non-account
// never pays decryption cost.
func (a *Agent) GetAccount(id Identifier, bootKey []byte) (Account, error) {
	view, err := a.FindObject(id)
	if err != nil {
		return Account{}, err
	}
	if !view.IsAccount() {
		return Account{}, &OperationError{Reason: "not a security principal", Identifier: id.String()}
	}

	dec, err := a.GetSecretDecryptor(bootKey)
	if err != nil {
		return Account{}, err
	}
	return newAccount(view, dec), nil
}

// BackupKeyIterator is the lazy enumerator get_dpapi_backup_keys produces.
type BackupKeyIterator struct {
	cat *CategoryIterator
	dec *secretcrypto.Decryptor
}

// Next materializes the next DPAPI backup key.
func (it *BackupKeyIterator) Next() (DPAPIBackupKey, bool, error) {
	view, ok, err := it.cat.Next()
	if err != nil || !ok {
		return DPAPIBackupKey{}, ok, err
	}
	return newDPAPIBackupKey(view, it.dec), true, nil
}

// GetDpapiBackupKeys implements the backup-key enumerator named in §6:
// category-enumerate class Secret, with a decryptor threaded in.
func (a *Agent) GetDpapiBackupKeys(bootKey []byte) (*BackupKeyIterator, error) {
	dec, err := a.GetSecretDecryptor(bootKey)
	if err != nil {
		return nil, err
	}
	cat, err := a.FindObjectsByCategory(ClassSecret, false)
	if err != nil {
		return nil, err
	}
	return &BackupKeyIterator{cat: cat, dec: dec}, nil
}

// KdsRootKeyIterator is the lazy enumerator get_kds_root_keys produces.
type KdsRootKeyIterator struct {
	cat *CategoryIterator
}

// Next materializes the next KDS root key.
func (it *KdsRootKeyIterator) Next() (KdsRootKey, bool, error) {
	view, ok, err := it.cat.Next()
	if err != nil || !ok {
		return KdsRootKey{}, ok, err
	}
	return newKdsRootKey(view), true, nil
}

// GetKdsRootKeys implements the KDS-root-key enumerator named in §6:
// category-enumerate class msKds-ProvRootKey. No decryptor is involved,
// since KDS root key material is stored in the clear (spec.md §4.3).
func (a *Agent) GetKdsRootKeys() (*KdsRootKeyIterator, error) {
	cat, err := a.FindObjectsByCategory(ClassKdsRootKey, false)
	if err != nil {
		return nil, err
	}
	return &KdsRootKeyIterator{cat: cat}, nil
}
