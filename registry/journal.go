package registry

import "time"

const (
	OpCreate             = "create"
	OpTransfer           = "transfer"
	OpDeactivate         = "deactivate"
	OpSuspend            = "suspend"
	OpReactivate         = "reactivate"
	OpMarkInactive       = "mark-inactive"
	OpRestoreDeactivated = "restore-deactivated"
	OpModifyValue        = "modify-value"
	OpReduceValue        = "reduce-value"
	OpRedeem             = "redeem"
	OpReclaim            = "reclaim"
	OpClaimOwnership     = "claim-ownership"
	OpCombine            = "combine"
	OpConsolidate        = "consolidate"
	OpAddInformation     = "add-information"
	OpRemoveInformation  = "remove-information"
	OpPurgeInformation   = "purge-information"
	OpMarkDormant        = "mark-dormant"
	OpRestoreActive      = "restore-active"
)

// JournalEntry records one committed mutation. Entries are written in
// the same transaction as the mutation itself.
type JournalEntry struct {
	Operation string
	AssetID   uint64
	Actor     Identity
	CreatedAt time.Time
}

func (r *Registry) journal(tx StateTx, op string, id uint64, actor Identity) error {
	ts, err := r.clock.Tick(tx)
	if err != nil {
		return err
	}
	return tx.AppendJournal(&JournalEntry{
		Operation: op,
		AssetID:   id,
		Actor:     actor,
		CreatedAt: ts,
	})
}

func (r *Registry) ListJournal(limit int) ([]*JournalEntry, error) {
	return r.store.ListJournal(limit)
}
