package agent

import "github.com/KilimcininKorOglu/dsagent/internal/secretcrypto"

// ChangeBootKey implements §4.1.6: decrypt the Domain NC object's PEKList
// under old, re-encode it under new, and commit with skip_meta_update=true
// since boot-key rotation is administrative and must not burn a USN.
func (a *Agent) ChangeBootKey(old, newKey []byte) error {
	if len(old) != secretcrypto.BootKeyLength {
		return &InvalidArgumentError{Param: "old"}
	}
	if !isZeroOrEmpty(newKey) && len(newKey) != secretcrypto.BootKeyLength {
		return &InvalidArgumentError{Param: "new"}
	}

	variant, _, domainNC, _, _ := a.ctx.DCHeader().Snapshot()
	if domainNC == nil {
		return &NotFoundError{Identifier: "domain"}
	}

	edit, txn, err := a.beginEdit(*domainNC)
	if err != nil {
		return err
	}
	abort := func(err error) error {
		_ = a.ctx.Cursor().RejectChanges()
		_ = txn.Abort()
		return err
	}

	raw, ok := edit.ReadAttribute(AttrPEKList)
	if !ok {
		return abort(&NotFoundError{Identifier: "PEKList"})
	}
	blob, ok := raw.([]byte)
	if !ok {
		return abort(&StorageError{Inner: errAttributeTypeMismatch})
	}

	list, err := secretcrypto.DecodePEKList(blob, old)
	if err != nil {
		return abort(wrapStorageErr(err))
	}

	reencoded, err := secretcrypto.EncodePEKList(list, newKey)
	if err != nil {
		return abort(wrapStorageErr(err))
	}

	changed, err := edit.SetAttribute(AttrPEKList, reencoded)
	if err != nil {
		return abort(wrapStorageErr(err))
	}

	if err := a.commitAttributeUpdate(edit, AttrPEKList, txn, changed, true); err != nil {
		return err
	}
	a.log.BootKey(variant.String())
	return nil
}
