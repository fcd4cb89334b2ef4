package registry

// Combine folds the source value into the target and deletes the
// source's holder and value records: the source stops existing and its
// id is never reissued. Any note on the source is left orphaned.
func (r *Registry) Combine(caller Identity, source, target uint64) error {
	_, err := r.commit(OpCombine, caller, func(tx StateTx) (uint64, error) {
		sv, tv, err := r.readMergeValues(tx, source, target)
		if err != nil {
			return 0, err
		}
		if err := tx.SetValue(target, tv+sv); err != nil {
			return 0, err
		}
		if err := tx.DeleteValue(source); err != nil {
			return 0, err
		}
		return target, tx.DeleteHolder(source)
	})
	return err
}

// Consolidate folds the source value into the target but keeps the
// source existent at zero value.
func (r *Registry) Consolidate(caller Identity, source, target uint64) error {
	if err := r.requireAdmin(caller); err != nil {
		return err
	}
	_, err := r.commit(OpConsolidate, caller, func(tx StateTx) (uint64, error) {
		sv, tv, err := r.readMergeValues(tx, source, target)
		if err != nil {
			return 0, err
		}
		if err := tx.SetValue(target, tv+sv); err != nil {
			return 0, err
		}
		return target, tx.SetValue(source, 0)
	})
	return err
}

func (r *Registry) readMergeValues(tx StateView, source, target uint64) (uint64, uint64, error) {
	if err := r.requireExists(tx, source); err != nil {
		return 0, 0, err
	}
	if err := r.requireExists(tx, target); err != nil {
		return 0, 0, err
	}
	sv, _, err := tx.Value(source)
	if err != nil {
		return 0, 0, err
	}
	tv, _, err := tx.Value(target)
	if err != nil {
		return 0, 0, err
	}
	return sv, tv, nil
}
