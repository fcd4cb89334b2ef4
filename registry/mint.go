package registry

const MintBatchLimit = 100

// CreateSingle mints one asset held by the caller. A failed mint never
// consumes an id.
func (r *Registry) CreateSingle(caller Identity, amount uint64) (uint64, error) {
	if err := r.requireAdmin(caller); err != nil {
		return 0, err
	}
	if amount < 1 {
		return 0, ErrInvalidValue
	}
	return r.commit(OpCreate, caller, func(tx StateTx) (uint64, error) {
		return r.createAsset(tx, caller, amount)
	})
}

// CreateMultiple folds the amounts through the create path in order.
// Items below the minimum are dropped from the result with no error;
// the returned ids carry no marker of which inputs were skipped. The
// whole batch runs in one transaction, so a batch-level violation
// advances nothing.
func (r *Registry) CreateMultiple(caller Identity, amounts []uint64) ([]uint64, error) {
	if err := r.requireAdmin(caller); err != nil {
		return nil, err
	}
	if len(amounts) < 1 || len(amounts) > MintBatchLimit {
		return nil, ErrInvalidValue
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var ids []uint64
	err := r.store.Update(func(tx StateTx) error {
		ids = ids[:0]
		for _, amount := range amounts {
			if amount < 1 {
				continue
			}
			id, err := r.createAsset(tx, caller, amount)
			if err != nil {
				return err
			}
			if err := r.journal(tx, OpCreate, id, caller); err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	r.logger.Debug().Str("op", OpCreate).Int("batch", len(ids)).Str("actor", caller.String()).Msg("batch committed")
	return ids, nil
}

func (r *Registry) createAsset(tx StateTx, holder Identity, amount uint64) (uint64, error) {
	count, err := tx.Counter()
	if err != nil {
		return 0, err
	}
	id := count + 1
	if err := tx.SetHolder(id, holder); err != nil {
		return 0, err
	}
	if err := tx.SetValue(id, amount); err != nil {
		return 0, err
	}
	return id, tx.SetCounter(id)
}
