package registry

const RangeCountLimit = 100

// Queries bypass the access gate. Single-id reads on a missing asset
// return ErrUnauthorizedAsset, the code that covers not-found; the
// boolean projections report false instead.

func (r *Registry) GetValue(id uint64) (uint64, error) {
	var value uint64
	err := r.store.View(func(tx StateView) error {
		if err := r.requireExists(tx, id); err != nil {
			return err
		}
		var err error
		value, _, err = tx.Value(id)
		return err
	})
	return value, err
}

func (r *Registry) GetHolder(id uint64) (Identity, error) {
	var holder Identity
	err := r.store.View(func(tx StateView) error {
		h, found, err := tx.Holder(id)
		if err != nil {
			return err
		}
		if !found {
			return ErrUnauthorizedAsset
		}
		holder = h
		return nil
	})
	return holder, err
}

// GetStatus reports whether the asset is deactivated.
func (r *Registry) GetStatus(id uint64) (bool, error) {
	var deactivated bool
	err := r.store.View(func(tx StateView) error {
		if err := r.requireExists(tx, id); err != nil {
			return err
		}
		var err error
		deactivated, err = tx.Deactivated(id)
		return err
	})
	return deactivated, err
}

func (r *Registry) GetNotes(id uint64) (string, error) {
	var notes string
	err := r.store.View(func(tx StateView) error {
		if err := r.requireExists(tx, id); err != nil {
			return err
		}
		var err error
		notes, _, err = tx.Notes(id)
		return err
	})
	return notes, err
}

func (r *Registry) Exists(id uint64) (bool, error) {
	var found bool
	err := r.store.View(func(tx StateView) error {
		var err error
		_, found, err = tx.Holder(id)
		return err
	})
	return found, err
}

func (r *Registry) CanTransfer(caller Identity, id uint64) (bool, error) {
	return r.holderAndActive(caller, id)
}

func (r *Registry) CanDeactivate(caller Identity, id uint64) (bool, error) {
	return r.holderAndActive(caller, id)
}

func (r *Registry) holderAndActive(caller Identity, id uint64) (bool, error) {
	var ok bool
	err := r.store.View(func(tx StateView) error {
		holder, found, err := tx.Holder(id)
		if err != nil {
			return err
		}
		if !found || holder != caller {
			return nil
		}
		deactivated, err := tx.Deactivated(id)
		if err != nil {
			return err
		}
		ok = !deactivated
		return nil
	})
	return ok, err
}

// TotalCreated and CurrentCount both resolve to the same monotonic
// counter: ids are never reused, so the count never decreases even
// after a destructive combine.
func (r *Registry) TotalCreated() (uint64, error) {
	return r.counter()
}

func (r *Registry) CurrentCount() (uint64, error) {
	return r.counter()
}

func (r *Registry) counter() (uint64, error) {
	var count uint64
	err := r.store.View(func(tx StateView) error {
		var err error
		count, err = tx.Counter()
		return err
	})
	return count, err
}

// GetRange assembles detail records for ids [start, start+count). A
// missing id anywhere in the window fails the whole call.
func (r *Registry) GetRange(start, count uint64) ([]*AssetDetail, error) {
	if count > RangeCountLimit {
		count = RangeCountLimit
	}
	var details []*AssetDetail
	err := r.store.View(func(tx StateView) error {
		details = make([]*AssetDetail, 0, count)
		for id := start; id < start+count; id++ {
			detail, err := r.readDetail(tx, id)
			if err != nil {
				return err
			}
			details = append(details, detail)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (r *Registry) readDetail(tx StateView, id uint64) (*AssetDetail, error) {
	holder, found, err := tx.Holder(id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrUnauthorizedAsset
	}
	value, _, err := tx.Value(id)
	if err != nil {
		return nil, err
	}
	deactivated, err := tx.Deactivated(id)
	if err != nil {
		return nil, err
	}
	notes, _, err := tx.Notes(id)
	if err != nil {
		return nil, err
	}
	return &AssetDetail{
		ID:          id,
		Holder:      holder,
		Value:       value,
		Deactivated: deactivated,
		Notes:       notes,
	}, nil
}
