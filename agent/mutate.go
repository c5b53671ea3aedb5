package agent

import "github.com/KilimcininKorOglu/dsagent/internal/dirid"

// commitAttributeUpdate implements §4.1.8's state machine:
// Editing -> {NoOp, MetaUpdated} -> {Committed, Aborted}. The USN counter
// only advances when a real write occurred and metadata is being
// maintained, so replication never sees spurious or non-progressing
// versions.
func (a *Agent) commitAttributeUpdate(obj ObjectView, attr AttributeID, txn Transaction, changed bool, skipMeta bool) error {
	cur := a.ctx.Cursor()

	if !changed {
		if err := cur.RejectChanges(); err != nil {
			_ = txn.Abort()
			return wrapStorageErr(err)
		}
		if err := txn.Abort(); err != nil {
			return wrapStorageErr(err)
		}
		a.log.NoOp(int32(obj.DNT()))
		return nil
	}

	if !skipMeta {
		usn := a.ctx.DCHeader().NextUSN()
		ts := a.clock.Now()
		if err := obj.UpdateAttributeMeta(attr, usn, ts); err != nil {
			_ = cur.RejectChanges()
			_ = txn.Abort()
			return wrapStorageErr(err)
		}
	}

	if err := cur.AcceptChanges(); err != nil {
		_ = txn.Abort()
		return wrapStorageErr(err)
	}
	if err := txn.Commit(); err != nil {
		return wrapStorageErr(err)
	}
	a.log.Commit(int32(obj.DNT()), a.ctx.DCHeader().USN(), skipMeta)
	return nil
}

// beginEdit opens a transaction and stages dnt's row for a mutator,
// aborting the transaction on any failure before it reaches the caller.
func (a *Agent) beginEdit(dnt DNT) (ObjectView, Transaction, error) {
	txn, err := a.ctx.BeginTransaction()
	if err != nil {
		return nil, nil, wrapStorageErr(err)
	}
	edit, err := a.ctx.Cursor().BeginEdit(dnt)
	if err != nil {
		_ = txn.Abort()
		return nil, nil, wrapStorageErr(err)
	}
	return edit, txn, nil
}

// SetAccountStatus implements §4.1.7's set_account_status: flip the
// ACCOUNTDISABLE bit of userAccountControl.
func (a *Agent) SetAccountStatus(id Identifier, enabled bool, skipMetaUpdate bool) (bool, error) {
	view, err := a.FindObject(id)
	if err != nil {
		return false, err
	}

	raw, ok := view.ReadAttribute(AttrUserAccountControl)
	if !ok {
		return false, &OperationError{Reason: "not an account", Identifier: id.String()}
	}
	uac, ok := raw.(int32)
	if !ok {
		return false, &StorageError{Inner: errAttributeTypeMismatch}
	}

	newUAC := uac
	if enabled {
		newUAC &^= UACAccountDisable
	} else {
		newUAC |= UACAccountDisable
	}

	edit, txn, err := a.beginEdit(view.DNT())
	if err != nil {
		return false, err
	}

	changed, err := edit.SetAttribute(AttrUserAccountControl, newUAC)
	if err != nil {
		_ = a.ctx.Cursor().RejectChanges()
		_ = txn.Abort()
		return false, wrapStorageErr(err)
	}

	if err := a.commitAttributeUpdate(edit, AttrUserAccountControl, txn, changed, skipMetaUpdate); err != nil {
		return false, err
	}
	return changed, nil
}

// SetPrimaryGroupId implements §4.1.7's set_primary_group_id. Per the
// resolved Open Question (DESIGN.md), any int32 is accepted; values
// outside the informative RID range [1, 2^30) are logged, not rejected.
func (a *Agent) SetPrimaryGroupId(id Identifier, rid int32, skipMetaUpdate bool) (bool, error) {
	view, err := a.FindObject(id)
	if err != nil {
		return false, err
	}
	if !view.IsAccount() {
		return false, &OperationError{Reason: "not an account", Identifier: id.String()}
	}

	if rid < 1 || rid >= 1<<30 {
		a.log.Warn("primary group id outside informative RID range", "identifier", id.String(), "rid", rid)
	}

	edit, txn, err := a.beginEdit(view.DNT())
	if err != nil {
		return false, err
	}

	changed, err := edit.SetAttribute(AttrPrimaryGroupId, rid)
	if err != nil {
		_ = a.ctx.Cursor().RejectChanges()
		_ = txn.Abort()
		return false, wrapStorageErr(err)
	}

	if err := a.commitAttributeUpdate(edit, AttrPrimaryGroupId, txn, changed, skipMetaUpdate); err != nil {
		return false, err
	}
	return changed, nil
}

// AddSidHistory implements §4.1.7's add_sid_history: merge-append into the
// multi-valued sIDHistory attribute. No-op detection flows through the
// Object View's own grew report.
func (a *Agent) AddSidHistory(id Identifier, sids []dirid.SID, skipMetaUpdate bool) (bool, error) {
	view, err := a.FindObject(id)
	if err != nil {
		return false, err
	}
	if !view.IsSecurityPrincipal() {
		return false, &OperationError{Reason: "not a security principal", Identifier: id.String()}
	}

	edit, txn, err := a.beginEdit(view.DNT())
	if err != nil {
		return false, err
	}

	values := make([]any, len(sids))
	for i, sid := range sids {
		values[i] = sid
	}

	grew, err := edit.AddAttribute(AttrSIDHistory, values)
	if err != nil {
		_ = a.ctx.Cursor().RejectChanges()
		_ = txn.Abort()
		return false, wrapStorageErr(err)
	}

	if err := a.commitAttributeUpdate(edit, AttrSIDHistory, txn, grew, skipMetaUpdate); err != nil {
		return false, err
	}
	return grew, nil
}

// RemoveObject implements §4.1.7's remove_object: find and delete via the
// Object View. Deletion has no skip_meta_update parameter and no attribute
// to stamp metadata against, so it accepts and commits directly rather
// than routing through commitAttributeUpdate.
func (a *Agent) RemoveObject(id Identifier) error {
	view, err := a.FindObject(id)
	if err != nil {
		return err
	}

	edit, txn, err := a.beginEdit(view.DNT())
	if err != nil {
		return err
	}

	if err := edit.Delete(); err != nil {
		_ = a.ctx.Cursor().RejectChanges()
		_ = txn.Abort()
		return wrapStorageErr(err)
	}

	if err := a.ctx.Cursor().AcceptChanges(); err != nil {
		_ = txn.Abort()
		return wrapStorageErr(err)
	}
	return wrapStorageErr(txn.Commit())
}
