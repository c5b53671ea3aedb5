package agent

// SetEpoch implements §4.1.9: a hard DC-header write, bypassing the
// attribute pipeline entirely since the header is not an ordinary object.
func (a *Agent) SetEpoch(epoch int32) error {
	txn, err := a.ctx.BeginTransaction()
	if err != nil {
		return wrapStorageErr(err)
	}
	a.ctx.DCHeader().SetEpoch(epoch)
	return wrapStorageErr(txn.Commit())
}

// SetUSN implements §4.1.9: a hard DC-header write of the USN counter.
func (a *Agent) SetUSN(usn int64) error {
	txn, err := a.ctx.BeginTransaction()
	if err != nil {
		return wrapStorageErr(err)
	}
	a.ctx.DCHeader().SetUSN(usn)
	return wrapStorageErr(txn.Commit())
}
