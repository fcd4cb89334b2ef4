package store

import (
	"github.com/dgraph-io/badger/v3"
	"github.com/lumenkeep/registry/registry"
)

const prefixJournalPayload = "REGISTRY:JOURNAL:PAYLOAD:"

func (s *stateTxn) AppendJournal(entry *registry.JournalEntry) error {
	key := buildJournalTimedKey(entry)
	return s.txn.Set(key, msgpackMarshalPanic(entry))
}

func (bs *BadgerStore) ListJournal(limit int) ([]*registry.JournalEntry, error) {
	txn := bs.db.NewTransaction(false)
	defer txn.Discard()

	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(prefixJournalPayload)
	it := txn.NewIterator(opts)
	defer it.Close()

	var entries []*registry.JournalEntry
	for it.Seek(opts.Prefix); it.Valid(); it.Next() {
		val, err := it.Item().ValueCopy(nil)
		if err != nil {
			return nil, err
		}
		var entry registry.JournalEntry
		if err := msgpackUnmarshal(val, &entry); err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
		if len(entries) == limit {
			break
		}
	}
	return entries, nil
}

// The clock guarantees distinct timestamps, so a timed key never
// collides even within one transaction.
func buildJournalTimedKey(entry *registry.JournalEntry) []byte {
	key := append([]byte(prefixJournalPayload), tsToBytes(entry.CreatedAt)...)
	return append(key, []byte(entry.Operation)...)
}
