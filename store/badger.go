package store

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/lumenkeep/registry/registry"
	"github.com/rs/zerolog"
)

type BadgerStore struct {
	db     *badger.DB
	logger zerolog.Logger
}

func OpenBadger(ctx context.Context, path string, logger zerolog.Logger) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	logger = logger.With().Str("component", "store").Logger()

	go func() {
		for {
			lsm, vlog := db.Size()
			logger.Debug().Int64("lsm", lsm).Int64("vlog", vlog).Msg("badger size")
			if lsm > 1024*1024*8 || vlog > 1024*1024*32 {
				err := db.RunValueLogGC(0.5)
				logger.Debug().Err(err).Msg("badger value log gc")
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(5 * time.Minute):
			}
		}
	}()

	return &BadgerStore{
		db:     db,
		logger: logger,
	}, nil
}

func (bs *BadgerStore) Close() error {
	return bs.db.Close()
}

func (bs *BadgerStore) Badger() *badger.DB {
	return bs.db
}

func (bs *BadgerStore) WriteProperty(key, val []byte) error {
	return bs.db.Update(func(txn *badger.Txn) error {
		return txn.Set(append([]byte(prefixProperty), key...), val)
	})
}

func (bs *BadgerStore) ReadProperty(key []byte) ([]byte, error) {
	txn := bs.db.NewTransaction(false)
	defer txn.Discard()

	item, err := txn.Get(append([]byte(prefixProperty), key...))
	if err == badger.ErrKeyNotFound {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return item.ValueCopy(nil)
}

func (bs *BadgerStore) View(fn func(registry.StateView) error) error {
	return bs.db.View(func(txn *badger.Txn) error {
		return fn(&stateTxn{txn: txn})
	})
}

func (bs *BadgerStore) Update(fn func(registry.StateTx) error) error {
	return bs.db.Update(func(txn *badger.Txn) error {
		return fn(&stateTxn{txn: txn})
	})
}
