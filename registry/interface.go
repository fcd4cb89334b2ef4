package registry

type Store interface {
	ReadProperty(key []byte) ([]byte, error)
	WriteProperty(key, val []byte) error

	View(fn func(StateView) error) error
	Update(fn func(StateTx) error) error

	ListJournal(limit int) ([]*JournalEntry, error)
}

// StateView reads the four asset stores and the counter inside one
// consistent snapshot. An absent entry is reported, never an error.
type StateView interface {
	Counter() (uint64, error)
	Holder(id uint64) (Identity, bool, error)
	Value(id uint64) (uint64, bool, error)
	Deactivated(id uint64) (bool, error)
	Notes(id uint64) (string, bool, error)
}

// StateTx extends a StateView with writes. All writes of one Update
// closure commit together; returning an error discards them all.
type StateTx interface {
	StateView

	SetCounter(count uint64) error
	SetHolder(id uint64, holder Identity) error
	DeleteHolder(id uint64) error
	SetValue(id, value uint64) error
	DeleteValue(id uint64) error
	SetDeactivated(id uint64, deactivated bool) error
	SetNotes(id uint64, text string) error
	DeleteNotes(id uint64) error

	Property(key []byte) ([]byte, error)
	SetProperty(key, val []byte) error

	AppendJournal(entry *JournalEntry) error
}
