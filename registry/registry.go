package registry

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"
)

// Registry is the asset ledger and its state-transition rules. The
// administrator identity is fixed at construction and never rotated.
type Registry struct {
	mu     sync.Mutex
	store  Store
	admin  Identity
	clock  *Clock
	logger zerolog.Logger
}

func New(store Store, admin Identity, logger zerolog.Logger) (*Registry, error) {
	if admin == "" {
		return nil, errors.New("empty admin identity")
	}
	clock, err := NewClock(store)
	if err != nil {
		return nil, err
	}
	return &Registry{
		store:  store,
		admin:  admin,
		clock:  clock,
		logger: logger.With().Str("component", "registry").Logger(),
	}, nil
}

func (r *Registry) Admin() Identity {
	return r.admin
}

func (r *Registry) requireAdmin(caller Identity) error {
	if caller != r.admin {
		return ErrUnauthorizedAdmin
	}
	return nil
}

func (r *Registry) requireHolder(tx StateView, caller Identity, id uint64) error {
	holder, found, err := tx.Holder(id)
	if err != nil {
		return err
	}
	if !found || holder != caller {
		return ErrUnauthorizedAsset
	}
	return nil
}

func (r *Registry) requireExists(tx StateView, id uint64) error {
	_, found, err := tx.Holder(id)
	if err != nil {
		return err
	}
	if !found {
		return ErrUnauthorizedAsset
	}
	return nil
}

// commit runs fn as one store transaction, appends a journal entry for
// the asset id fn returns, and logs the mutation. Any error from fn
// discards every write of the transaction.
func (r *Registry) commit(op string, caller Identity, fn func(StateTx) (uint64, error)) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var id uint64
	err := r.store.Update(func(tx StateTx) error {
		var err error
		id, err = fn(tx)
		if err != nil {
			return err
		}
		return r.journal(tx, op, id, caller)
	})
	if err != nil {
		return 0, err
	}
	r.logger.Debug().Str("op", op).Uint64("id", id).Str("actor", caller.String()).Msg("mutation committed")
	return id, nil
}
