package agent

// FindObject implements §4.1.1: resolve id to an index and key, then either
// goto (unique indexes) or equal-range scan forward for the first
// writable, non-deleted row (SamAccountName).
func (a *Agent) FindObject(id Identifier) (ObjectView, error) {
	resolved, err := a.resolve(id)
	if err != nil {
		a.log.Lookup(id.String(), false)
		return nil, err
	}

	indexName, key, unique, err := a.indexAndKey(resolved)
	if err != nil {
		a.log.Lookup(id.String(), false)
		return nil, err
	}

	cur := a.ctx.Cursor()
	if err := cur.SetCurrentIndex(indexName); err != nil {
		return nil, wrapStorageErr(err)
	}

	if unique {
		view, ok, err := cur.GotoKey(key)
		if err != nil {
			return nil, wrapStorageErr(err)
		}
		if !ok {
			a.log.Lookup(id.String(), false)
			return nil, &NotFoundError{Identifier: id.String()}
		}
		a.log.Lookup(id.String(), true)
		return view, nil
	}

	if err := cur.FindEqual(key); err != nil {
		return nil, wrapStorageErr(err)
	}
	for {
		view, ok, err := cur.MoveNext()
		if err != nil {
			return nil, wrapStorageErr(err)
		}
		if !ok {
			break
		}
		if view.IsWritable() && !view.IsDeleted() {
			a.log.Lookup(id.String(), true)
			return view, nil
		}
	}
	a.log.Lookup(id.String(), false)
	return nil, &NotFoundError{Identifier: id.String()}
}

// CategoryIterator is the lazy, single-pass, non-restartable pull iterator
// find_objects_by_category and the backup-key/KDS-root-key enumerators
// build on (spec.md §4.1.2, §9 "Lazy sequences"); get_accounts uses its own
// AccountIterator over the same cursor. It shares the Agent's one
// Cursor; abandoning it mid-scan leaves the cursor's position undefined.
type CategoryIterator struct {
	cur            Cursor
	includeDeleted bool
	done           bool
}

// Next materializes the next matching Object View, or ok=false once the
// equal-range is exhausted.
func (it *CategoryIterator) Next() (view ObjectView, ok bool, err error) {
	if it.done {
		return nil, false, nil
	}
	for {
		view, ok, err = it.cur.MoveNext()
		if err != nil {
			it.done = true
			return nil, false, err
		}
		if !ok {
			it.done = true
			return nil, false, nil
		}
		if !it.includeDeleted && view.IsDeleted() {
			continue
		}
		return view, true, nil
	}
}

// FindObjectsByCategory implements §4.1.2: resolve className to a class-id,
// switch to the objectCategory index, and seek the equal-range.
func (a *Agent) FindObjectsByCategory(className string, includeDeleted bool) (*CategoryIterator, error) {
	classID, err := a.ctx.Schema().FindClassID(className)
	if err != nil {
		return nil, err
	}

	indexName, err := a.ctx.Schema().FindIndexName(AttrObjectCategory)
	if err != nil {
		return nil, err
	}

	cur := a.ctx.Cursor()
	if err := cur.SetCurrentIndex(indexName); err != nil {
		return nil, wrapStorageErr(err)
	}
	if err := cur.FindEqual(classIDKeyBytes(classID)); err != nil {
		return nil, wrapStorageErr(err)
	}

	return &CategoryIterator{cur: cur, includeDeleted: includeDeleted}, nil
}
