package store

import (
	"encoding/binary"

	"github.com/dgraph-io/badger/v3"
	"github.com/lumenkeep/registry/registry"
)

const (
	prefixAssetHolder = "REGISTRY:ASSET:HOLDER:"
	prefixAssetValue  = "REGISTRY:ASSET:VALUE:"
	prefixAssetFrozen = "REGISTRY:ASSET:FROZEN:"
	prefixAssetNotes  = "REGISTRY:ASSET:NOTES:"
	prefixProperty    = "REGISTRY:PROPERTY:"
	keyAssetCounter   = "REGISTRY:ASSET:COUNTER"
)

// stateTxn exposes the four asset stores and the counter over one
// badger transaction.
type stateTxn struct {
	txn *badger.Txn
}

func (s *stateTxn) Counter() (uint64, error) {
	val, err := s.get([]byte(keyAssetCounter))
	if err != nil || val == nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(val), nil
}

func (s *stateTxn) SetCounter(count uint64) error {
	return s.txn.Set([]byte(keyAssetCounter), idToBytes(count))
}

func (s *stateTxn) Holder(id uint64) (registry.Identity, bool, error) {
	val, err := s.get(assetKey(prefixAssetHolder, id))
	if err != nil || val == nil {
		return "", false, err
	}
	return registry.Identity(val), true, nil
}

func (s *stateTxn) SetHolder(id uint64, holder registry.Identity) error {
	return s.txn.Set(assetKey(prefixAssetHolder, id), []byte(holder))
}

func (s *stateTxn) DeleteHolder(id uint64) error {
	return s.txn.Delete(assetKey(prefixAssetHolder, id))
}

func (s *stateTxn) Value(id uint64) (uint64, bool, error) {
	val, err := s.get(assetKey(prefixAssetValue, id))
	if err != nil || val == nil {
		return 0, false, err
	}
	return binary.BigEndian.Uint64(val), true, nil
}

func (s *stateTxn) SetValue(id, value uint64) error {
	return s.txn.Set(assetKey(prefixAssetValue, id), idToBytes(value))
}

func (s *stateTxn) DeleteValue(id uint64) error {
	return s.txn.Delete(assetKey(prefixAssetValue, id))
}

// Deactivated is keyed on presence, an absent flag means active.
func (s *stateTxn) Deactivated(id uint64) (bool, error) {
	val, err := s.get(assetKey(prefixAssetFrozen, id))
	return val != nil, err
}

func (s *stateTxn) SetDeactivated(id uint64, deactivated bool) error {
	key := assetKey(prefixAssetFrozen, id)
	if !deactivated {
		return s.txn.Delete(key)
	}
	return s.txn.Set(key, []byte{1})
}

func (s *stateTxn) Notes(id uint64) (string, bool, error) {
	val, err := s.get(assetKey(prefixAssetNotes, id))
	if err != nil || val == nil {
		return "", false, err
	}
	return string(val), true, nil
}

func (s *stateTxn) SetNotes(id uint64, text string) error {
	return s.txn.Set(assetKey(prefixAssetNotes, id), []byte(text))
}

func (s *stateTxn) DeleteNotes(id uint64) error {
	return s.txn.Delete(assetKey(prefixAssetNotes, id))
}

func (s *stateTxn) Property(key []byte) ([]byte, error) {
	return s.get(append([]byte(prefixProperty), key...))
}

func (s *stateTxn) SetProperty(key, val []byte) error {
	return s.txn.Set(append([]byte(prefixProperty), key...), val)
}

func (s *stateTxn) get(key []byte) ([]byte, error) {
	item, err := s.txn.Get(key)
	if err == badger.ErrKeyNotFound {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return item.ValueCopy(nil)
}

func assetKey(prefix string, id uint64) []byte {
	return append([]byte(prefix), idToBytes(id)...)
}
