package registry

// ModifyValue overwrites the asset value. Any caller may invoke it on
// an existing asset, the floor of 1 only binds here and at mint time.
func (r *Registry) ModifyValue(caller Identity, id, value uint64) error {
	if value < 1 {
		return ErrInvalidValue
	}
	_, err := r.commit(OpModifyValue, caller, func(tx StateTx) (uint64, error) {
		if err := r.requireExists(tx, id); err != nil {
			return 0, err
		}
		return id, tx.SetValue(id, value)
	})
	return err
}

// ReduceValue decrements the asset value by amount.
func (r *Registry) ReduceValue(caller Identity, id, amount uint64) error {
	if err := r.requireAdmin(caller); err != nil {
		return err
	}
	_, err := r.commit(OpReduceValue, caller, func(tx StateTx) (uint64, error) {
		if err := r.requireExists(tx, id); err != nil {
			return 0, err
		}
		value, _, err := tx.Value(id)
		if err != nil {
			return 0, err
		}
		if value < amount {
			return 0, ErrInsufficientValue
		}
		return id, tx.SetValue(id, value-amount)
	})
	return err
}

// Redeem zeroes the asset value unconditionally.
func (r *Registry) Redeem(caller Identity, id uint64) error {
	_, err := r.commit(OpRedeem, caller, func(tx StateTx) (uint64, error) {
		if err := r.requireHolder(tx, caller, id); err != nil {
			return 0, err
		}
		return id, tx.SetValue(id, 0)
	})
	return err
}
