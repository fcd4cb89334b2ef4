package registry

const (
	NotesSizeLimit = 256

	// NoteDormantMark is the sentinel MarkDormant writes. Dormancy is
	// annotation only and never touches the lifecycle flag.
	NoteDormantMark = "DORMANT"
)

func (r *Registry) AddInformation(caller Identity, id uint64, text string) error {
	if len(text) > NotesSizeLimit {
		return ErrInvalidValue
	}
	_, err := r.commit(OpAddInformation, caller, func(tx StateTx) (uint64, error) {
		if err := r.requireHolder(tx, caller, id); err != nil {
			return 0, err
		}
		return id, tx.SetNotes(id, text)
	})
	return err
}

func (r *Registry) RemoveInformation(caller Identity, id uint64) error {
	_, err := r.commit(OpRemoveInformation, caller, func(tx StateTx) (uint64, error) {
		if err := r.requireHolder(tx, caller, id); err != nil {
			return 0, err
		}
		return id, tx.DeleteNotes(id)
	})
	return err
}

func (r *Registry) PurgeInformation(caller Identity, id uint64) error {
	if err := r.requireAdmin(caller); err != nil {
		return err
	}
	_, err := r.commit(OpPurgeInformation, caller, func(tx StateTx) (uint64, error) {
		if err := r.requireExists(tx, id); err != nil {
			return 0, err
		}
		return id, tx.DeleteNotes(id)
	})
	return err
}

func (r *Registry) MarkDormant(caller Identity, id uint64) error {
	_, err := r.commit(OpMarkDormant, caller, func(tx StateTx) (uint64, error) {
		if err := r.requireHolder(tx, caller, id); err != nil {
			return 0, err
		}
		return id, tx.SetNotes(id, NoteDormantMark)
	})
	return err
}

func (r *Registry) RestoreActive(caller Identity, id uint64) error {
	_, err := r.commit(OpRestoreActive, caller, func(tx StateTx) (uint64, error) {
		if err := r.requireHolder(tx, caller, id); err != nil {
			return 0, err
		}
		return id, tx.DeleteNotes(id)
	})
	return err
}
