package registry

// Deactivate marks an active asset inactive. The holder has no undo;
// only the administrator can restore a deactivated asset.
func (r *Registry) Deactivate(caller Identity, id uint64) error {
	return r.holderDeactivate(OpDeactivate, caller, id)
}

// Suspend is the reversible pause: the same state transition as
// Deactivate, paired with Reactivate on the holder side.
func (r *Registry) Suspend(caller Identity, id uint64) error {
	return r.holderDeactivate(OpSuspend, caller, id)
}

func (r *Registry) holderDeactivate(op string, caller Identity, id uint64) error {
	_, err := r.commit(op, caller, func(tx StateTx) (uint64, error) {
		if err := r.requireHolder(tx, caller, id); err != nil {
			return 0, err
		}
		deactivated, err := tx.Deactivated(id)
		if err != nil {
			return 0, err
		}
		if deactivated {
			return 0, ErrAlreadyDeactivated
		}
		return id, tx.SetDeactivated(id, true)
	})
	return err
}

// Reactivate returns the asset to the active state unconditionally.
func (r *Registry) Reactivate(caller Identity, id uint64) error {
	_, err := r.commit(OpReactivate, caller, func(tx StateTx) (uint64, error) {
		if err := r.requireHolder(tx, caller, id); err != nil {
			return 0, err
		}
		return id, tx.SetDeactivated(id, false)
	})
	return err
}

// MarkInactive deactivates regardless of the current state.
func (r *Registry) MarkInactive(caller Identity, id uint64) error {
	if err := r.requireAdmin(caller); err != nil {
		return err
	}
	_, err := r.commit(OpMarkInactive, caller, func(tx StateTx) (uint64, error) {
		if err := r.requireExists(tx, id); err != nil {
			return 0, err
		}
		return id, tx.SetDeactivated(id, true)
	})
	return err
}

// RestoreDeactivated reverses a deactivation; it only applies to
// assets currently deactivated.
func (r *Registry) RestoreDeactivated(caller Identity, id uint64) error {
	if err := r.requireAdmin(caller); err != nil {
		return err
	}
	_, err := r.commit(OpRestoreDeactivated, caller, func(tx StateTx) (uint64, error) {
		if err := r.requireExists(tx, id); err != nil {
			return 0, err
		}
		deactivated, err := tx.Deactivated(id)
		if err != nil {
			return 0, err
		}
		if !deactivated {
			return 0, ErrAlreadyDeactivated
		}
		return id, tx.SetDeactivated(id, false)
	})
	return err
}
