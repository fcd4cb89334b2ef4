package registry

// Transfer is pull-style: only the recipient may execute the move, a
// third party can never push a transfer on someone's behalf.
func (r *Registry) Transfer(caller Identity, id uint64, from, to Identity) error {
	if to != caller {
		return ErrUnauthorizedAsset
	}
	_, err := r.commit(OpTransfer, caller, func(tx StateTx) (uint64, error) {
		holder, found, err := tx.Holder(id)
		if err != nil {
			return 0, err
		}
		if !found || holder != from {
			return 0, ErrUnauthorizedAsset
		}
		deactivated, err := tx.Deactivated(id)
		if err != nil {
			return 0, err
		}
		if deactivated {
			return 0, ErrAlreadyDeactivated
		}
		return id, tx.SetHolder(id, to)
	})
	return err
}

// Reclaim forcibly moves an active asset to the administrator,
// bypassing the current holder's consent.
func (r *Registry) Reclaim(caller Identity, id uint64) error {
	if err := r.requireAdmin(caller); err != nil {
		return err
	}
	_, err := r.commit(OpReclaim, caller, func(tx StateTx) (uint64, error) {
		if err := r.requireExists(tx, id); err != nil {
			return 0, err
		}
		deactivated, err := tx.Deactivated(id)
		if err != nil {
			return 0, err
		}
		if deactivated {
			return 0, ErrAlreadyDeactivated
		}
		return id, tx.SetHolder(id, r.admin)
	})
	return err
}

// ClaimOwnership assigns the asset to the caller with no check against
// the current holder. Every claim is journaled.
func (r *Registry) ClaimOwnership(caller Identity, id uint64) error {
	_, err := r.commit(OpClaimOwnership, caller, func(tx StateTx) (uint64, error) {
		if err := r.requireExists(tx, id); err != nil {
			return 0, err
		}
		return id, tx.SetHolder(id, caller)
	})
	return err
}
